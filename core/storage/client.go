package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

// Client defines the filesystem operations used by the exporter.
type Client interface {
	// Exists reports whether path resolves to a file or directory.
	// Symlinks are followed, so a dangling link does not exist.
	Exists(path string) bool
	// Occupied reports whether anything holds the name path, including a
	// symlink whose target is gone.
	Occupied(path string) bool
	// MkdirAll creates path and every missing parent.
	MkdirAll(path string) error
	// Copy copies src to a new file at dst and returns the bytes written.
	// It fails if dst already exists.
	Copy(src, dst string) (int64, error)
	// Symlink creates dst pointing at src.
	Symlink(src, dst string) error
	// Open opens path for reading.
	Open(path string) (io.ReadSeekCloser, error)
	// SupportsSymlinks reports whether Symlink can work on this filesystem.
	SupportsSymlinks() bool
}

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// NewClient creates a Client on top of an afero filesystem.
func NewClient(fs afero.Fs) Client {
	return &aferoClient{fs: fs}
}

// NewOSClient creates a Client backed by the host filesystem.
func NewOSClient() Client {
	return NewClient(afero.NewOsFs())
}

type aferoClient struct {
	fs afero.Fs
}

func (c *aferoClient) Exists(path string) bool {
	_, err := c.fs.Stat(path)
	return err == nil
}

func (c *aferoClient) Occupied(path string) bool {
	if lst, ok := c.fs.(afero.Lstater); ok {
		_, _, err := lst.LstatIfPossible(path)
		return err == nil
	}
	_, err := c.fs.Stat(path)
	return err == nil
}

func (c *aferoClient) MkdirAll(path string) error {
	return c.fs.MkdirAll(path, dirPerm)
}

func (c *aferoClient) Copy(src, dst string) (int64, error) {
	in, err := c.fs.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	perm := filePerm
	if info, err := in.Stat(); err == nil {
		if info.IsDir() {
			return 0, fmt.Errorf("%s is a directory", src)
		}
		perm = info.Mode().Perm()
	}

	out, err := c.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		_ = c.fs.Remove(dst)
		return n, err
	}
	if err := out.Close(); err != nil {
		_ = c.fs.Remove(dst)
		return n, err
	}
	return n, nil
}

func (c *aferoClient) Symlink(src, dst string) error {
	linker, ok := c.fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: src, New: dst, Err: afero.ErrNoSymlink}
	}
	target := src
	if abs, err := filepath.Abs(src); err == nil {
		target = abs
	}
	return linker.SymlinkIfPossible(target, dst)
}

func (c *aferoClient) Open(path string) (io.ReadSeekCloser, error) {
	return c.fs.Open(path)
}

func (c *aferoClient) SupportsSymlinks() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	_, ok := c.fs.(afero.Linker)
	return ok
}
