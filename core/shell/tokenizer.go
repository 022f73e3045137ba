package shell

import "strings"

// Word is one token produced by the tokenizer, with quoting and
// escaping already resolved. Quoted records whether any part of the
// word was quoted or escaped; redirection operators are only
// recognized in unquoted words.
type Word struct {
	Text   string
	Quoted bool
}

// lexState is the tokenizer's finite-state machine. Exactly one state
// is active at a time, so the illegal combination of being inside both
// quote kinds at once cannot be represented.
type lexState int

const (
	// stateNormal is unquoted scanning.
	stateNormal lexState = iota
	// stateSingle is inside single quotes: everything is literal,
	// including backslashes.
	stateSingle
	// stateDouble is inside double quotes.
	stateDouble
	// stateEscape is an unquoted backslash awaiting the character it
	// escapes.
	stateEscape
	// stateDoubleEscape is a backslash inside double quotes, where only
	// \ $ " and newline are actually escapable.
	stateDoubleEscape
)

// Tokenize splits a trimmed input line into an ordered sequence of
// non-empty words, applying shell-style quoting and escaping in a
// single left-to-right scan. The first word is the command, the rest
// are candidate arguments and redirection tokens.
//
// Unterminated quotes and a trailing backslash are treated
// permissively: whatever accumulated is emitted as-is. Input is
// line-based with no continuation, so there is nothing better to do.
func Tokenize(line string) []Word {
	var words []Word
	var cur strings.Builder
	quoted := false

	emit := func() {
		if cur.Len() > 0 {
			words = append(words, Word{Text: cur.String(), Quoted: quoted})
			cur.Reset()
		}
		quoted = false
	}

	state := stateNormal
	for _, r := range line {
		switch state {
		case stateNormal:
			switch r {
			case '\'':
				state = stateSingle
				quoted = true
			case '"':
				state = stateDouble
				quoted = true
			case '\\':
				state = stateEscape
				quoted = true
			case ' ':
				// Word boundary; consecutive separators collapse.
				emit()
			default:
				cur.WriteRune(r)
			}

		case stateSingle:
			if r == '\'' {
				state = stateNormal
			} else {
				cur.WriteRune(r)
			}

		case stateDouble:
			switch r {
			case '"':
				state = stateNormal
			case '\\':
				state = stateDoubleEscape
			default:
				cur.WriteRune(r)
			}

		case stateEscape:
			// Outside quotes a backslash escapes exactly the next
			// character, inserted literally.
			cur.WriteRune(r)
			state = stateNormal

		case stateDoubleEscape:
			switch r {
			case '\\', '$', '"', '\n':
				// Collapsed to just the escaped character.
			default:
				// Backslash is literal before anything else.
				cur.WriteRune('\\')
			}
			cur.WriteRune(r)
			state = stateDouble
		}
	}

	emit()
	return words
}
