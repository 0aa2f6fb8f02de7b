package go_aerotable

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMediaFailure = errors.New("media failure")

//encodeHalf writes the beginning of the report and then fails
func encodeHalf(w io.Writer, table Table) error {
	if _, err := io.WriteString(w, ReportHeader+"\n0.000,"); err != nil {
		return err
	}
	return errMediaFailure
}

func TestWriteReportFailureLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.csv")

	err := writeReport(Table{{1, 2, 3, 4, 5}}, path, encodeHalf)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.ErrorIs(t, err, errMediaFailure)

	_, err = os.Lstat(path)
	assert.True(t, os.IsNotExist(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteReportFailureKeepsExistingReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sweep.csv")
	require.NoError(t, WriteReport(Table{{0.5, 0.4, 0.25, 0, 17}}, path))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = writeReport(Table{{1, 2, 3, 4, 5}}, path, encodeHalf)
	require.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteReportFailureKeepsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "reports", "alpha.csv")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target, []byte("previous\n"), 0600))
	link := filepath.Join(dir, "sweep.csv")
	require.NoError(t, os.Symlink(target, link))

	err := writeReport(Table{{1, 2, 3, 4, 5}}, link, encodeHalf)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))

	require.NoError(t, WriteReport(Table{{1, 2, 3, 4, 5}}, link))
	info, err = os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink, "the link is followed, not replaced")
	info, err = os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.000,2.000000,3.000000,4.000000,5.000000")
}
