// SPDX-License-Identifier: EPL-2.0

// Command audtool runs one engine operation over assets in the configured
// store.
//
//	audtool [-env .env] [-o name] [-f encoding] <command> [args...]
//
// Commands:
//
//	join <a> <b> [more...]
//	blend <a> <b>
//	offset <fg> <bg> <start> <total>
//	cut <a> <start> <duration>
//	duration <a>
//	convert <a> <encoding>
//	import <path|-> [name]
//	encodings
//
// Assets are file names like "audio1.wav"; start and duration are whole seconds.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audtool"
	"github.com/ik5/audtool/config"
)

func main() {
	ctx := logger.WithContext(context.Background())

	if err := doMain(ctx); err != nil {
		logger.Ef(ctx, "run err %+v", err)
		os.Exit(1)
	}
}

func doMain(ctx context.Context) error {
	var envFile string
	var opts options
	flag.StringVar(&envFile, "env", ".env", "Load settings from this file when present")
	flag.StringVar(&opts.name, "o", "", "Output asset name, derived from the operation when empty")
	flag.StringVar(&opts.encoding, "f", "", "Output encoding (wav, mp3), the first input's when empty")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [flags] <command> [args...]\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(), "commands: %v\n", commandNames())
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("no command")
	}

	cfg, err := config.LoadFile(envFile)
	if err != nil {
		return errors.Wrapf(err, "load config")
	}
	logger.Tf(ctx, "load config as %v", cfg)

	e, err := audtool.Open(ctx, cfg)
	if err != nil {
		return errors.Wrapf(err, "open engine")
	}

	return run(ctx, e, opts, flag.Args(), os.Stdin, os.Stdout)
}
