package go_aerotable_test

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gehtsoft-usa/go_aerotable"
)

func TestEncodeReportFormat(t *testing.T) {
	table := go_aerotable.Table{
		{0.5, 0.123456789, 0.25, 0, 17.2},
		{1.25, 0.4, 0.2519980889, -0.0000004, 9},
	}

	var buf bytes.Buffer
	require.NoError(t, go_aerotable.EncodeReport(&buf, table))

	want := "# Mach, CD, CP [meters, 0=nosecone], CN, CNa\n" +
		"0.500,0.123457,0.250000,0.000000,17.200000\n" +
		"1.250,0.400000,0.251998,-0.000000,9.000000\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeReportEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, go_aerotable.EncodeReport(&buf, nil))
	assert.Equal(t, go_aerotable.ReportHeader+"\n", buf.String())
}

func TestReportRoundTrip(t *testing.T) {
	table, err := go_aerotable.BuildTable(context.Background(), testConfiguration(), go_aerotable.CreateBarrowmanCalculator(),
		0, 3.01, 0.01, zeroAOA())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, go_aerotable.WriteReport(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, len(table)+1)
	assert.Equal(t, go_aerotable.ReportHeader, lines[0])

	back, err := go_aerotable.ReadReport(path)
	require.NoError(t, err)
	require.Len(t, back, len(table))
	for i := range table {
		assert.InDelta(t, table[i].Mach(), back[i].Mach(), 0.0005)
		for c := go_aerotable.ColumnCD; c < go_aerotable.ColumnCount; c++ {
			assert.InDelta(t, table[i][c], back[i][c], 0.0000005)
		}
	}
}

func TestWriteReportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale line\n", 100)), 0644))

	table := go_aerotable.Table{{1, 2, 3, 4, 5}}
	require.NoError(t, go_aerotable.WriteReport(table, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, go_aerotable.ReportHeader+"\n1.000,2.000000,3.000000,4.000000,5.000000\n", string(data))
}

func TestWriteReportCreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sweep.csv")
	err := go_aerotable.WriteReport(go_aerotable.Table{{1, 2, 3, 4, 5}}, path)

	var ioErr *go_aerotable.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "create", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errDiskFull
}

func TestEncodeReportWriteFailure(t *testing.T) {
	err := go_aerotable.EncodeReport(failingWriter{}, go_aerotable.Table{{1, 2, 3, 4, 5}})

	var ioErr *go_aerotable.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.ErrorIs(t, err, errDiskFull)
}

func TestDecodeReport(t *testing.T) {
	src := "# reference data\n" +
		"0.100, 0.45, 0.25, 0, 17.1\n" +
		"# a comment in the middle\n" +
		"0.200,0.46,0.25,0,17.2\n"

	table, err := go_aerotable.DecodeReport(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, go_aerotable.Table{
		{0.1, 0.45, 0.25, 0, 17.1},
		{0.2, 0.46, 0.25, 0, 17.2},
	}, table)
}

func TestDecodeReportErrors(t *testing.T) {
	tests := []struct {
		name, src, op string
	}{
		{"not a number", "0.1,abc,0,0,0\n", "parse"},
		{"too few fields", "0.1,0.2,0.3\n", "read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := go_aerotable.DecodeReport(strings.NewReader(tt.src))

			var ioErr *go_aerotable.IOError
			require.True(t, errors.As(err, &ioErr))
			assert.Equal(t, tt.op, ioErr.Op)
		})
	}
}

func TestReadReportMissingFile(t *testing.T) {
	_, err := go_aerotable.ReadReport(filepath.Join(t.TempDir(), "none.csv"))

	var ioErr *go_aerotable.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "open", ioErr.Op)
}

func TestWriteReportDeviceIsNotRemoved(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full is not available")
	}
	link := filepath.Join(t.TempDir(), "sweep.csv")
	require.NoError(t, os.Symlink("/dev/full", link))

	err := go_aerotable.WriteReport(go_aerotable.Table{{1, 2, 3, 4, 5}}, link)
	var ioErr *go_aerotable.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, link, ioErr.Path)

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode()&os.ModeSymlink)
	info, err = os.Stat("/dev/full")
	require.NoError(t, err)
	assert.Equal(t, os.ModeDevice, info.Mode()&os.ModeDevice)
}
