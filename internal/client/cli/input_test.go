package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTTY
		readPassword = origRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultiline_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("only line"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "only line", got)

	_, err = GetMultiline(rdr(""), "Enter text", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("admin123"), nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "admin123", got)
	assert.Equal(t, "Password\n> \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	got, err := GetPassword(rdr("user123\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "user123", got)
}

func TestForm_KeepsCurrentOnEmpty(t *testing.T) {
	var out bytes.Buffer
	f := &form{reader: rdr("\nNew title\n"), w: &out}

	v, err := f.text("Title", "Old title")
	require.NoError(t, err)
	assert.Equal(t, "Old title", v)
	assert.Contains(t, out.String(), "Title [Old title]")

	v, err = f.text("Title", "Old title")
	require.NoError(t, err)
	assert.Equal(t, "New title", v)
}

func TestForm_OwnerAndYesNo(t *testing.T) {
	f := &form{reader: rdr("3\nabc\n\ny\nmaybe\n"), w: io.Discard}

	id, err := f.owner("Author", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	_, err = f.owner("Author", 0)
	require.Error(t, err)

	done, err := f.yesNo("Completed", true)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = f.yesNo("Completed", false)
	require.NoError(t, err)
	assert.True(t, done)

	_, err = f.yesNo("Completed", false)
	require.Error(t, err)
}
