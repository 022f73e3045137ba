package shell

import (
	"errors"
	"fmt"
)

// ErrNoArguments is reported when a builtin that requires arguments is
// invoked without any.
var ErrNoArguments = errors.New("arguments are required")

// NotFoundError is reported when a command word resolves to neither a
// builtin nor an executable on the search path, or when spawning the
// executable fails.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: not found", e.Name)
}

// EnvVarError is reported when a required environment variable is unset.
type EnvVarError struct {
	Key string
}

func (e *EnvVarError) Error() string {
	return fmt.Sprintf("$%s not found", e.Key)
}

// ChdirError is reported when a cd target does not resolve to a
// directory. The working directory is left unchanged.
type ChdirError struct {
	Path string
}

func (e *ChdirError) Error() string {
	return fmt.Sprintf("cd: %s: No such file or directory", e.Path)
}

// ExitCodeError is reported when the exit builtin receives a
// non-integer argument. The interpreter keeps running.
type ExitCodeError struct {
	Err error
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code: %v", e.Err)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// RedirectError wraps a failure to open a redirection destination.
type RedirectError struct {
	Err error
}

func (e *RedirectError) Error() string {
	return e.Err.Error()
}

func (e *RedirectError) Unwrap() error {
	return e.Err
}

// ExitRequest is the distinguished control-flow result produced by the
// exit builtin. It travels up to the REPL driver as an error so the
// actual process termination happens at the top level, keeping the core
// testable.
type ExitRequest struct {
	Code int
}

func (e *ExitRequest) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}
