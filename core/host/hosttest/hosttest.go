// Package hosttest provides a deterministic in-memory Host for tests.
package hosttest

import (
	"io/fs"
	"syscall"

	"github.com/spf13/afero"

	"gosh/core/host"
)

// Fake implements host.Host against an afero MemMapFs. The working
// directory and environment start empty; spawns are recorded and
// succeed with status 0 unless SpawnFn is set.
type Fake struct {
	*host.MapEnv

	Fs  afero.Fs
	Cwd string

	// SpawnFn, if set, handles Spawn calls after they are recorded.
	SpawnFn func(*host.Cmd) (int, error)

	// Spawned holds every command passed to Spawn, in order.
	Spawned []*host.Cmd
}

var _ host.Host = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		MapEnv: host.NewMapEnv(),
		Fs:     afero.NewMemMapFs(),
		Cwd:    "/",
	}
}

func (f *Fake) FS() afero.Fs {
	return f.Fs
}

func (f *Fake) Getwd() (string, error) {
	return f.Cwd, nil
}

func (f *Fake) Chdir(dir string) error {
	fi, err := f.Fs.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}
	f.Cwd = dir
	return nil
}

func (f *Fake) Spawn(c *host.Cmd) (int, error) {
	f.Spawned = append(f.Spawned, c)
	if f.SpawnFn != nil {
		return f.SpawnFn(c)
	}
	return 0, nil
}

// MkdirAll is a convenience for test setup.
func (f *Fake) MkdirAll(path string) error {
	return f.Fs.MkdirAll(path, 0755)
}

// WriteFile is a convenience for test setup.
func (f *Fake) WriteFile(path string, contents []byte) error {
	return afero.WriteFile(f.Fs, path, contents, 0755)
}
