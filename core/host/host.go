// Package host provides the capability surface the interpreter needs
// from the operating system: environment lookup, the working directory,
// file access and process creation. The OS implementation is a thin
// wrapper over the standard library; tests swap in the fake from
// hosttest instead.
package host

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// Host is the full capability set one interpreter instance runs against.
type Host interface {
	Env

	// FS returns the filesystem used for redirection destinations and
	// executable lookups.
	FS() afero.Fs

	// Getwd returns the process's current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory. It fails without
	// side effects if dir does not exist or is not a directory.
	Chdir(dir string) error

	// Spawn starts the described process and blocks until it
	// terminates, returning its exit status. A non-nil error means the
	// process could not be started at all.
	Spawn(cmd *Cmd) (int, error)
}

// Cmd describes one child process to spawn.
type Cmd struct {
	// Path is the path of the executable to run.
	Path string

	// Args holds command line arguments, including the command name as
	// Args[0].
	Args []string

	// Env specifies the environment of the process, each entry of the
	// form "key=value".
	Env []string

	// Stdin specifies the process's standard input.
	Stdin io.Reader

	// Stdout and Stderr specify the process's standard output and
	// error. Either may be a redirection destination rather than the
	// interpreter's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// OS is the Host backed by the real operating system.
type OS struct {
	OSEnv
	fs afero.Fs
}

var _ Host = (*OS)(nil)

func NewOS() *OS {
	return &OS{fs: afero.NewOsFs()}
}

func (o *OS) FS() afero.Fs {
	return o.fs
}

func (o *OS) Getwd() (string, error) {
	return os.Getwd()
}

func (o *OS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (o *OS) Spawn(c *Cmd) (int, error) {
	cmd := &exec.Cmd{
		Path:   c.Path,
		Args:   c.Args,
		Env:    c.Env,
		Stdin:  c.Stdin,
		Stdout: c.Stdout,
		Stderr: c.Stderr,
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		// The child ran and failed; that is its business, not ours.
		return exitErr.ExitCode(), nil
	default:
		return 0, err
	}
}
