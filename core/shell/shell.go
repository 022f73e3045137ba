// Package shell implements the line interpreter: tokenizing one input
// line, extracting output redirections, and dispatching to a builtin
// or an external executable.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"gosh/core/config"
	"gosh/core/host"
)

const (
	envHome = "HOME"
	envPath = "PATH"
)

var promptColor = color.New(color.FgGreen, color.Bold)

// Shell is one interpreter instance. It owns its buffered output
// streams and flushes them deterministically after every turn. All
// execution is synchronous: a turn runs to completion, external
// commands included, before the next line is read.
type Shell struct {
	host host.Host
	cfg  *config.Config
	log  *log.Logger

	stdin  io.ReadCloser
	stdout *bufio.Writer
	stderr *bufio.Writer

	// rawOut and rawErr are the unbuffered streams underneath stdout
	// and stderr. Readline renders through these: the prompt and line
	// editing must reach the terminal while Readline blocks, not wait
	// for the end-of-turn flush.
	rawOut io.Writer
	rawErr io.Writer

	rl         *readline.Instance
	lastStatus int
}

// Options configures a new Shell. Host and Config are required; a nil
// Logger discards debug output.
type Options struct {
	Host   host.Host
	Config *config.Config
	Logger *log.Logger

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer
}

func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Shell{
		host:   opts.Host,
		cfg:    opts.Config,
		log:    logger,
		stdin:  opts.Stdin,
		stdout: bufio.NewWriter(opts.Stdout),
		stderr: bufio.NewWriter(opts.Stderr),
		rawOut: opts.Stdout,
		rawErr: opts.Stderr,
	}
}

// Request carries one dispatched command: the command word, the clean
// arguments left after redirection extraction, and the open
// redirection destinations. It lives for a single turn.
type Request struct {
	Name  string
	Args  []string
	Redir *Redirections
}

func (r *Request) stdout(fallback io.Writer) io.Writer {
	if r.Redir != nil && r.Redir.Stdout != nil {
		return r.Redir.Stdout
	}
	return fallback
}

func (r *Request) stderr(fallback io.Writer) io.Writer {
	if r.Redir != nil && r.Redir.Stderr != nil {
		return r.Redir.Stderr
	}
	return fallback
}

// readlineConfig wires readline to the unbuffered streams so its
// rendering is visible immediately; command output keeps going through
// the turn-buffered writers.
func (s *Shell) readlineConfig() *readline.Config {
	return &readline.Config{
		Stdin:       readline.NewCancelableStdin(s.stdin),
		Stdout:      s.rawOut,
		Stderr:      s.rawErr,
		HistoryFile: s.cfg.HistoryFile,
	}
}

// Run reads and executes lines until EOF or an exit request, returning
// the interpreter's exit status. Only a failure of the output stream
// machinery itself is returned as an error; it is unrecoverable.
func (s *Shell) Run() (int, error) {
	cfg := s.readlineConfig()
	if err := cfg.Init(); err != nil {
		return 1, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return 1, err
	}
	s.rl = rl
	defer rl.Close()

	for {
		s.rl.SetPrompt(s.prompt())
		if err := s.flush(); err != nil {
			return 1, err
		}

		line, err := s.rl.Readline()
		switch {
		case err == io.EOF:
			return s.lastStatus, nil
		case err == readline.ErrInterrupt:
			// Interrupt clears the line.
			continue
		case err != nil:
			return 1, err
		}

		code, done, err := s.RunCommand(line)
		if err != nil {
			return 1, err
		}
		if done {
			return code, nil
		}
	}
}

// RunCommand executes a single line. It is the one place an error
// becomes a user-visible diagnostic: every failure from the turn is
// printed to the diagnostic stream and the interpreter resumes. The
// returned flag reports an exit request, with the requested status.
// The error return is reserved for output-machinery failures.
func (s *Shell) RunCommand(line string) (code int, done bool, err error) {
	runErr := s.runLine(line)

	var exit *ExitRequest
	switch {
	case runErr == nil:
	case errors.As(runErr, &exit):
		if err := s.flush(); err != nil {
			return 1, true, err
		}
		return exit.Code, true, nil
	default:
		s.lastStatus = 1
		if _, err := fmt.Fprintln(s.stderr, runErr); err != nil {
			return 1, true, err
		}
	}

	if err := s.flush(); err != nil {
		return 1, true, err
	}
	return s.lastStatus, false, nil
}

// runLine is one full turn: tokenize, extract redirections, dispatch.
func (s *Shell) runLine(line string) error {
	words := Tokenize(strings.TrimSpace(line))
	if len(words) == 0 {
		return nil
	}
	name := words[0].Text

	clean, redir, err := ExtractRedirections(s.host.FS(), words[1:], s.cfg.Redirection.ClobberTruncates)
	if err != nil {
		return err
	}
	defer redir.Close()

	req := &Request{Name: name, Args: clean, Redir: redir}
	s.log.Debug("dispatching", "cmd", name, "args", clean)

	if builtin, ok := LookupBuiltin(name); ok {
		if err := s.runBuiltin(builtin, req); err != nil {
			return err
		}
		s.lastStatus = 0
		return nil
	}
	return s.execute(req)
}

// prompt renders the configured prompt, substituting \w with the
// working directory ($HOME abbreviated to ~).
func (s *Shell) prompt() string {
	prompt := s.cfg.Prompt.Format

	if strings.Contains(prompt, `\w`) {
		wd, err := s.host.Getwd()
		if err == nil {
			// Abbreviate $HOME to ~ only on a path boundary, so
			// /home/user2 is not ~2 for HOME=/home/user.
			if home := s.host.Getenv(envHome); home != "" {
				switch {
				case wd == home:
					wd = "~"
				case strings.HasPrefix(wd, home+"/"):
					wd = "~" + strings.TrimPrefix(wd, home)
				}
			}
			prompt = strings.ReplaceAll(prompt, `\w`, wd)
		}
	}

	if s.cfg.Prompt.Color {
		prompt = promptColor.Sprint(prompt)
	}
	return prompt
}

// LastStatus returns the exit status of the most recent command.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

func (s *Shell) flush() error {
	if err := s.stdout.Flush(); err != nil {
		return err
	}
	return s.stderr.Flush()
}
