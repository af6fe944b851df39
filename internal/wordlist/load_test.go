package wordlist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "german.dic")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_FirstFieldOfEachRow(t *testing.T) {
	path := writeDict(t, "apple 12 noun\ngrub\nbarby x y z\nxyz123\n")

	words, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "grub", "barby", "xyz123"}, words)
}

func TestRead_QuotedFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"quoted with delimiter", "|bar by| rest\n", []string{"bar by"}},
		{"escaped pipe", "|a||b| rest\n", []string{"a|b"}},
		{"double quote is literal", "a\"b c\n", []string{"a\"b"}},
		{"quoted newline", "|a\nb| c\n", []string{"a\nb"}},
		{"crlf", "foo x\r\nbar\r\n", []string{"foo", "bar"}},
		{"empty lines skipped", "foo\n\n\nbar\n", []string{"foo", "bar"}},
		{"leading delimiter gives empty word", " foo\n", []string{""}},
		{"no trailing newline", "Straße", []string{"Straße"}},
		{"bare pipe kept", "ab|c d\nbaby\n", []string{"ab|c", "baby"}},
		{"text after closing quote appended", "|ab|c d\nbaby\n", []string{"abc", "baby"}},
		{"closing quote at end of input", "|ab|", []string{"ab"}},
		{"quoted field spans lines later in row", "foo |x\ny| z\nbar\n", []string{"foo", "bar"}},
		{"trailing delimiter", "foo \nbar\n", []string{"foo", "bar"}},
		{"cr line endings", "foo\rbar\r", []string{"foo", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, err := Read(strings.NewReader(tt.input), LoadOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, words)
		})
	}
}

func TestRead_SkipHeader(t *testing.T) {
	words, err := Read(strings.NewReader("12345\nbaby\nboy\n"), LoadOptions{SkipHeader: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"baby", "boy"}, words)

	words, err = Read(strings.NewReader("12345\nbaby\n"), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"12345", "baby"}, words)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeDict(t, "")

	words, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dic"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrParse))
}

func TestLoad_Directory(t *testing.T) {
	_, err := Load(t.TempDir(), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileAccess))
}

func TestRead_UnterminatedQuote(t *testing.T) {
	_, err := Read(strings.NewReader("good\n|broken word\n"), LoadOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.True(t, errors.Is(err, ErrUnterminatedQuote))
	assert.False(t, errors.Is(err, ErrFileAccess))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 1, pe.Column)
	assert.Equal(t, "line 2, column 1: unterminated | quoted field", pe.Error())
}

func TestRead_UnterminatedQuoteInLaterField(t *testing.T) {
	_, err := Read(strings.NewReader("baby x |open\nhobby\n"), LoadOptions{})
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 8, pe.Column)
}
