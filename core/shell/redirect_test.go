package shell

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unquoted(texts ...string) []Word {
	words := make([]Word, 0, len(texts))
	for _, t := range texts {
		words = append(words, Word{Text: t})
	}
	return words
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	contents, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(contents)
}

func TestExtractRedirections(t *testing.T) {
	fs := afero.NewMemMapFs()

	clean, redir, err := ExtractRedirections(fs, unquoted("-l", "1>", "out.txt", "2>", "err.txt"), false)
	require.NoError(t, err)
	defer redir.Close()

	assert.Equal(t, []string{"-l"}, clean)
	require.NotNil(t, redir.Stdout)
	require.NotNil(t, redir.Stderr)

	io.WriteString(redir.Stdout, "to stdout\n")
	io.WriteString(redir.Stderr, "to stderr\n")
	redir.Close()

	assert.Equal(t, "to stdout\n", readFile(t, fs, "out.txt"))
	assert.Equal(t, "to stderr\n", readFile(t, fs, "err.txt"))
}

func TestExtractRedirections_appendIsTheDefault(t *testing.T) {
	for _, op := range []string{">", "1>", ">>", "1>>"} {
		t.Run(op, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "out.txt", []byte("old\n"), 0644))

			_, redir, err := ExtractRedirections(fs, unquoted(op, "out.txt"), false)
			require.NoError(t, err)
			io.WriteString(redir.Stdout, "new\n")
			redir.Close()

			assert.Equal(t, "old\nnew\n", readFile(t, fs, "out.txt"))
		})
	}
}

func TestExtractRedirections_clobberTruncates(t *testing.T) {
	cases := []struct {
		op   string
		want string
	}{
		{">", "new\n"},
		{"1>", "new\n"},
		{">>", "old\nnew\n"},
		{"1>>", "old\nnew\n"},
	}

	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "out.txt", []byte("old\n"), 0644))

			_, redir, err := ExtractRedirections(fs, unquoted(tc.op, "out.txt"), true)
			require.NoError(t, err)
			io.WriteString(redir.Stdout, "new\n")
			redir.Close()

			assert.Equal(t, tc.want, readFile(t, fs, "out.txt"))
		})
	}
}

func TestExtractRedirections_trailingOperatorIsSilent(t *testing.T) {
	fs := afero.NewMemMapFs()

	clean, redir, err := ExtractRedirections(fs, unquoted("a", ">"), false)
	require.NoError(t, err)
	defer redir.Close()

	assert.Equal(t, []string{"a"}, clean)
	assert.Nil(t, redir.Stdout)
	assert.Nil(t, redir.Stderr)
}

func TestExtractRedirections_quotedOperatorIsAnArgument(t *testing.T) {
	fs := afero.NewMemMapFs()

	words := []Word{{Text: ">", Quoted: true}, {Text: "file"}}
	clean, redir, err := ExtractRedirections(fs, words, false)
	require.NoError(t, err)
	defer redir.Close()

	assert.Equal(t, []string{">", "file"}, clean)
	assert.Nil(t, redir.Stdout)

	exists, _ := afero.Exists(fs, "file")
	assert.False(t, exists, "no destination should have been opened")
}

func TestExtractRedirections_lastOperatorWins(t *testing.T) {
	fs := afero.NewMemMapFs()

	clean, redir, err := ExtractRedirections(fs, unquoted(">", "first.txt", ">", "second.txt"), false)
	require.NoError(t, err)
	assert.Empty(t, clean)

	io.WriteString(redir.Stdout, "x\n")
	redir.Close()

	assert.Equal(t, "x\n", readFile(t, fs, "second.txt"))
	assert.Equal(t, "", readFile(t, fs, "first.txt"))
}

func TestExtractRedirections_openError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, _, err := ExtractRedirections(fs, unquoted(">", "out.txt"), false)
	require.Error(t, err)

	var redirErr *RedirectError
	assert.ErrorAs(t, err, &redirErr)
}
