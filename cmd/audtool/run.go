// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ossrs/go-oryx-lib/errors"
	"github.com/ossrs/go-oryx-lib/logger"

	"github.com/ik5/audtool/engine"
)

type options struct {
	name     string
	encoding string
}

func (o options) output() (engine.Output, error) {
	out := engine.Output{Name: o.name}
	if o.encoding != "" {
		enc, err := engine.ParseEncoding(o.encoding)
		if err != nil {
			return engine.Output{}, err
		}
		out.Encoding = enc
	}
	return out, nil
}

type command struct {
	args  string
	nargs int // minimum
	run   func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error
}

type ioEnv struct {
	stdin  io.Reader
	stdout io.Writer
}

var commands = map[string]command{
	"join": {args: "<a> <b> [more...]", nargs: 2, run: func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args...)
		if err != nil {
			return err
		}
		return env.asset(e.Join(ctx, out, assets...))
	}},
	"blend": {args: "<a> <b>", nargs: 2, run: func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args[:2]...)
		if err != nil {
			return err
		}
		return env.asset(e.Blend(ctx, out, assets[0], assets[1]))
	}},
	"offset": {args: "<fg> <bg> <start> <total>", nargs: 4, run: func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args[:2]...)
		if err != nil {
			return err
		}
		secs, err := parseSeconds(args[2:4]...)
		if err != nil {
			return err
		}
		return env.asset(e.BlendWithOffset(ctx, out, assets[0], assets[1], secs[0], secs[1]))
	}},
	"cut": {args: "<a> <start> <duration>", nargs: 3, run: func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args[0])
		if err != nil {
			return err
		}
		secs, err := parseSeconds(args[1:3]...)
		if err != nil {
			return err
		}
		return env.asset(e.Cut(ctx, out, assets[0], secs[0], secs[1]))
	}},
	"duration": {args: "<a>", nargs: 1, run: func(ctx context.Context, e *engine.Engine, _ engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args[0])
		if err != nil {
			return err
		}
		d, err := e.Duration(ctx, assets[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(env.stdout, "%v\t%.3f\n", assets[0], d)
		return nil
	}},
	"convert": {args: "<a> <encoding>", nargs: 2, run: func(ctx context.Context, e *engine.Engine, _ engine.Output, args []string, env *ioEnv) error {
		assets, err := parseAssets(args[0])
		if err != nil {
			return err
		}
		to, err := engine.ParseEncoding(args[1])
		if err != nil {
			return err
		}
		return env.asset(e.Convert(ctx, assets[0], to))
	}},
	"import": {args: "<path|-> [name]", nargs: 1, run: func(ctx context.Context, e *engine.Engine, out engine.Output, args []string, env *ioEnv) error {
		r := env.stdin
		name := out.Name
		if len(args) > 1 {
			name = args[1]
		}
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
			if out.Encoding == "" {
				enc, err := engine.ParseEncoding(filepath.Ext(args[0]))
				if err != nil {
					return err
				}
				out.Encoding = enc
			}
		}
		if out.Encoding == "" {
			return errors.New("import from stdin needs -f")
		}
		return env.asset(e.Import(ctx, r, name, out.Encoding))
	}},
	"encodings": {run: func(_ context.Context, e *engine.Engine, _ engine.Output, _ []string, env *ioEnv) error {
		fmt.Fprintln(env.stdout, strings.Join(e.Codecs().Encodings(), " "))
		return nil
	}},
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for k := range commands {
		names = append(names, k)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func run(ctx context.Context, e *engine.Engine, opts options, args []string, stdin io.Reader, stdout io.Writer) error {
	name, args := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return errors.Errorf("unknown command %v, want one of %v", name, commandNames())
	}
	if len(args) < cmd.nargs {
		return errors.Errorf("usage: %v %v", name, cmd.args)
	}

	out, err := opts.output()
	if err != nil {
		return errors.Wrapf(err, "output")
	}

	starttime := time.Now()
	logger.Tf(ctx, "%v %v start", name, strings.Join(args, " "))

	if err := cmd.run(ctx, e, out, args, &ioEnv{stdin: stdin, stdout: stdout}); err != nil {
		return errors.Wrapf(err, "%v %v", name, strings.Join(args, " "))
	}

	logger.Tf(ctx, "%v done, cost=%v", name, time.Since(starttime))
	return nil
}

func parseAssets(files ...string) ([]engine.Asset, error) {
	assets := make([]engine.Asset, 0, len(files))
	for _, f := range files {
		a, err := engine.ParseAsset(f)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func parseSeconds(values ...string) ([]int, error) {
	secs := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "seconds %q", v)
		}
		secs = append(secs, n)
	}
	return secs, nil
}

// asset prints the file name of a successful result.
func (env *ioEnv) asset(a engine.Asset, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, a.File())
	return nil
}
