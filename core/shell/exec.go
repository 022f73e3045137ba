package shell

import (
	"path/filepath"
	"strings"

	"gosh/core/host"
)

// searchPath returns the ordered directory list consulted for external
// executables. PATH is re-read on every resolution; the configured
// default applies only when PATH is unset entirely.
func (s *Shell) searchPath() string {
	if path, ok := s.host.LookupEnv(envPath); ok {
		return path
	}
	return s.cfg.DefaultPath
}

// lookPath searches the search-path directories in order for a regular
// file named exactly name. A name containing a path separator is tried
// directly and the search path is not consulted.
func (s *Shell) lookPath(name string) (string, error) {
	if strings.Contains(name, string(filepath.Separator)) {
		if s.isRegular(name) {
			return name, nil
		}
		return "", &NotFoundError{Name: name}
	}

	for _, dir := range filepath.SplitList(s.searchPath()) {
		if dir == "" {
			// Unix shell semantics: path element "" means ".".
			dir = "."
		}
		full := filepath.Join(dir, name)
		if s.isRegular(full) {
			return full, nil
		}
	}
	return "", &NotFoundError{Name: name}
}

func (s *Shell) isRegular(path string) bool {
	fi, err := s.host.FS().Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// execute resolves the command word and spawns it as a child process,
// blocking until it terminates. Stdout and stderr connect to the
// redirection destinations when present, otherwise to the
// interpreter's own streams. Resolution and spawn failures both report
// command-not-found; no partial output is produced in either case.
func (s *Shell) execute(req *Request) error {
	path, err := s.lookPath(req.Name)
	if err != nil {
		return err
	}

	// The child may share the interpreter's output file descriptors;
	// anything buffered has to land first to keep ordering.
	if err := s.flush(); err != nil {
		return err
	}

	status, err := s.host.Spawn(&host.Cmd{
		Path:   path,
		Args:   append([]string{req.Name}, req.Args...),
		Env:    s.host.Environ(),
		Stdin:  s.stdin,
		Stdout: req.stdout(s.stdout),
		Stderr: req.stderr(s.stderr),
	})
	if err != nil {
		s.log.Debug("spawn failed", "cmd", req.Name, "path", path, "err", err)
		return &NotFoundError{Name: req.Name}
	}

	s.log.Debug("process finished", "cmd", req.Name, "status", status)
	s.lastStatus = status
	return nil
}
