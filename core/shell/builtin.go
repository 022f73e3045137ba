package shell

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Builtin enumerates the commands implemented inside the interpreter.
// The set is closed and static for the process lifetime; dispatch over
// it is an exhaustive switch rather than string comparisons scattered
// around.
type Builtin int

const (
	BuiltinCd Builtin = iota
	BuiltinEcho
	BuiltinExit
	BuiltinPwd
	BuiltinType
)

var builtinNames = map[string]Builtin{
	"cd":   BuiltinCd,
	"echo": BuiltinEcho,
	"exit": BuiltinExit,
	"pwd":  BuiltinPwd,
	"type": BuiltinType,
}

// LookupBuiltin resolves a command word to a builtin. The match is
// exact and case-sensitive.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

func (b Builtin) String() string {
	for name, builtin := range builtinNames {
		if builtin == b {
			return name
		}
	}
	return fmt.Sprintf("Builtin(%d)", int(b))
}

func (s *Shell) runBuiltin(b Builtin, req *Request) error {
	switch b {
	case BuiltinCd:
		return s.cd(req)
	case BuiltinEcho:
		return s.echo(req)
	case BuiltinExit:
		return s.exit(req)
	case BuiltinPwd:
		return s.pwd(req)
	case BuiltinType:
		return s.typeOf(req)
	default:
		return fmt.Errorf("unhandled builtin %v", b)
	}
}

// exit terminates the interpreter with the given status, 0 if absent.
// Termination is signalled with an ExitRequest rather than performed
// here.
func (s *Shell) exit(req *Request) error {
	if len(req.Args) == 0 {
		return &ExitRequest{Code: 0}
	}

	code, err := strconv.Atoi(req.Args[0])
	if err != nil {
		return &ExitCodeError{Err: err}
	}
	return &ExitRequest{Code: code}
}

// echo writes its arguments joined by single spaces plus a newline.
func (s *Shell) echo(req *Request) error {
	_, err := fmt.Fprintln(req.stdout(s.stdout), strings.Join(req.Args, " "))
	return err
}

// typeOf reports whether its argument is a builtin or an executable on
// the search path.
func (s *Shell) typeOf(req *Request) error {
	if len(req.Args) == 0 {
		return ErrNoArguments
	}
	name := req.Args[0]

	if _, ok := LookupBuiltin(name); ok {
		_, err := fmt.Fprintf(req.stdout(s.stdout), "%s is a shell builtin\n", name)
		return err
	}

	path, err := s.lookPath(name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(req.stdout(s.stdout), "%s is %s\n", name, path)
	return err
}

// pwd writes the current working directory.
func (s *Shell) pwd(req *Request) error {
	wd, err := s.host.Getwd()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(req.stdout(s.stdout), wd)
	return err
}

// cd resolves its target and changes the working directory. With no
// argument the target is $HOME; a leading ~ is replaced by $HOME;
// relative paths resolve against the current directory. On failure the
// working directory is left unchanged.
func (s *Shell) cd(req *Request) error {
	var target string
	if len(req.Args) > 0 {
		target = req.Args[0]
	}

	switch {
	case target == "":
		home, ok := s.host.LookupEnv(envHome)
		if !ok {
			return &EnvVarError{Key: envHome}
		}
		target = home

	case strings.HasPrefix(target, "~"):
		home, ok := s.host.LookupEnv(envHome)
		if !ok {
			return &EnvVarError{Key: envHome}
		}
		target = filepath.Join(home, strings.TrimPrefix(target, "~"))

	case filepath.IsAbs(target):
		// Used as-is.

	default:
		wd, err := s.host.Getwd()
		if err != nil {
			return err
		}
		target = filepath.Join(wd, target)
	}

	if err := s.host.Chdir(target); err != nil {
		return &ChdirError{Path: target}
	}
	return nil
}
