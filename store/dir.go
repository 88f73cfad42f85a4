// SPDX-License-Identifier: EPL-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultDir is the directory used by Dir when none is configured.
const DefaultDir = "temporal"

// Dir stores each asset as a file inside a directory.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root, creating it when missing.
func NewDir(root string) (*Dir, error) {
	if root == "" {
		root = DefaultDir
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %v: %w", root, err)
	}
	return &Dir{root: root}, nil
}

// Root returns the directory holding the assets.
func (d *Dir) Root() string { return d.root }

// Path returns the file backing name.
func (d *Dir) Path(name string) string { return filepath.Join(d.root, name) }

func (d *Dir) Load(_ context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(d.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %v: %w", name, err)
	}
	return data, nil
}

// Save writes to a temporary file first so readers never see a partial asset.
func (d *Dir) Save(_ context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(d.root, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create %v: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %v: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %v: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), d.Path(name)); err != nil {
		return fmt.Errorf("rename %v: %w", name, err)
	}
	return nil
}

var _ Store = (*Dir)(nil)
