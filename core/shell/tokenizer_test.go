package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func texts(words []Word) []string {
	var out []string
	for _, w := range words {
		out = append(out, w.Text)
	}
	return out
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain words",
			line: "echo hello world",
			want: []string{"echo", "hello", "world"},
		},
		{
			name: "consecutive separators collapse",
			line: "echo  a   b",
			want: []string{"echo", "a", "b"},
		},
		{
			name: "single quotes preserve spaces",
			line: "echo 'b   c'",
			want: []string{"echo", "b   c"},
		},
		{
			name: "single quotes are literal inside",
			line: `echo 'a\$"b'`,
			want: []string{"echo", `a\$"b`},
		},
		{
			name: "double quotes preserve spaces",
			line: `echo "b   c"`,
			want: []string{"echo", "b   c"},
		},
		{
			name: "escaped double quote inside double quotes",
			line: `echo "d\"e"`,
			want: []string{"echo", `d"e`},
		},
		{
			name: "backslash collapses before backslash and dollar in double quotes",
			line: `echo "a\\b" "c\$d"`,
			want: []string{"echo", `a\b`, "c$d"},
		},
		{
			name: "backslash is literal before other characters in double quotes",
			line: `echo "a\xb"`,
			want: []string{"echo", `a\xb`},
		},
		{
			name: "unquoted backslash escapes the next character",
			line: `echo a\ b \x`,
			want: []string{"echo", "a b", "x"},
		},
		{
			name: "single quote escapable outside quotes",
			line: `echo \'`,
			want: []string{"echo", "'"},
		},
		{
			name: "adjacent quoted parts join into one word",
			line: `echo 'a'b"c"`,
			want: []string{"echo", "abc"},
		},
		{
			name: "full mixed line",
			line: `echo  a   'b c'  "d\"e"`,
			want: []string{"echo", "a", "b c", `d"e`},
		},
		{
			name: "empty quotes emit nothing",
			line: `echo '' ""`,
			want: []string{"echo"},
		},
		{
			name: "unterminated single quote is permissive",
			line: "echo 'abc",
			want: []string{"echo", "abc"},
		},
		{
			name: "unterminated double quote is permissive",
			line: `echo "a b`,
			want: []string{"echo", "a b"},
		},
		{
			name: "trailing backslash is dropped",
			line: `echo abc\`,
			want: []string{"echo", "abc"},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, texts(Tokenize(tc.line)))
		})
	}
}

func TestTokenizeQuotedFlag(t *testing.T) {
	cases := []struct {
		line string
		want []Word
	}{
		{">", []Word{{Text: ">", Quoted: false}}},
		{"'>'", []Word{{Text: ">", Quoted: true}}},
		{`">"`, []Word{{Text: ">", Quoted: true}}},
		{`\>`, []Word{{Text: ">", Quoted: true}}},
		{"2>> log", []Word{{Text: "2>>"}, {Text: "log"}}},
		// Quoting resets per word.
		{"'a' b", []Word{{Text: "a", Quoted: true}, {Text: "b"}}},
	}

	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			assert.Equal(t, tc.want, Tokenize(tc.line))
		})
	}
}
