package shell

import (
	"os"

	"github.com/spf13/afero"
)

// stream selects which output stream a redirection operator diverts.
type stream int

const (
	streamStdout stream = iota
	streamStderr
)

// redirectOps maps the literal operator words to the stream they divert
// and whether the operator is the appending form.
var redirectOps = map[string]struct {
	stream    stream
	appending bool
}{
	">":   {streamStdout, false},
	"1>":  {streamStdout, false},
	">>":  {streamStdout, true},
	"1>>": {streamStdout, true},
	"2>":  {streamStderr, false},
	"2>>": {streamStderr, true},
}

// Redirections holds the open destination files for one command's
// execution. Either or both may be nil. Closed when the turn completes.
type Redirections struct {
	Stdout afero.File
	Stderr afero.File
}

// Close releases both destinations. Safe on a nil receiver.
func (r *Redirections) Close() {
	if r == nil {
		return
	}
	if r.Stdout != nil {
		r.Stdout.Close()
	}
	if r.Stderr != nil {
		r.Stderr.Close()
	}
}

// ExtractRedirections scans the argument words that follow the command
// word and splits them into clean arguments and at most one destination
// per stream. An operator consumes the immediately following word as
// its destination path; an operator at the end of the line, with
// nothing following, records no destination and is not an error. A
// quoted word is never treated as an operator.
//
// Destinations open write-only, created if absent. By default every
// operator opens in append mode, the nominally truncating ones
// included; clobberTruncates switches > 1> and 2> to truncation.
func ExtractRedirections(fs afero.Fs, words []Word, clobberTruncates bool) ([]string, *Redirections, error) {
	var clean []string
	redir := &Redirections{}

	for i := 0; i < len(words); i++ {
		w := words[i]

		op, ok := redirectOps[w.Text]
		if !ok || w.Quoted {
			clean = append(clean, w.Text)
			continue
		}

		i++
		if i >= len(words) {
			break
		}

		flags := os.O_WRONLY | os.O_CREATE
		if op.appending || !clobberTruncates {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}

		f, err := fs.OpenFile(words[i].Text, flags, 0644)
		if err != nil {
			redir.Close()
			return nil, nil, &RedirectError{Err: err}
		}

		switch op.stream {
		case streamStdout:
			if redir.Stdout != nil {
				redir.Stdout.Close()
			}
			redir.Stdout = f
		case streamStderr:
			if redir.Stderr != nil {
				redir.Stderr.Close()
			}
			redir.Stderr = f
		}
	}

	return clean, redir, nil
}
