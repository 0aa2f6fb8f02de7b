package go_aerotable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

//ReportHeader is the first line of a report
const ReportHeader = "# Mach, CD, CP [meters, 0=nosecone], CN, CNa"

//machPrecision and valuePrecision are the number of decimals written for
//the Mach column and for all the other columns
const machPrecision = 3
const valuePrecision = 6

const reportMode os.FileMode = 0644

//WriteReport writes the table to the file specified.
//
//A regular file is written to a temporary file in the same directory and
//renamed over the target when complete; symbolic links are followed. On
//failure the temporary file is removed and the target stays untouched.
//Devices and pipes are written in place and never removed.
//
//Errors returned are *IOError.
func WriteReport(table Table, path string) error {
	return writeReport(table, path, encodeReport)
}

func writeReport(table Table, path string, encode func(io.Writer, Table) error) error {
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}
	mode := reportMode
	if info, err := os.Stat(target); err == nil {
		if !info.Mode().IsRegular() {
			return writeReportInPlace(table, path, target, encode)
		}
		mode = info.Mode().Perm()
	}
	return replaceReport(table, path, target, mode, encode)
}

func replaceReport(table Table, path, target string, mode os.FileMode, encode func(io.Writer, Table) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	closed := false
	defer func() {
		if !closed {
			_ = f.Close()
		}
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := f.Chmod(mode); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err := encode(f, table); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	closed = true
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func writeReportInPlace(table Table, path, target string, encode func(io.Writer, Table) error) (err error) {
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := encode(f, table); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

//EncodeReport writes the header and the rows of the table to w.
//
//Mach is written with 3 decimals, the other columns with 6.
func EncodeReport(w io.Writer, table Table) error {
	if err := encodeReport(w, table); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func encodeReport(w io.Writer, table Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(ReportHeader + "\n"); err != nil {
		return err
	}

	cw := csv.NewWriter(bw)
	record := make([]string, ColumnCount)
	for _, row := range table {
		record[ColumnMach] = strconv.FormatFloat(row[ColumnMach], 'f', machPrecision, 64)
		for i := ColumnCD; i < ColumnCount; i++ {
			record[i] = strconv.FormatFloat(row[i], 'f', valuePrecision, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

//ReadReport reads a table written by WriteReport, or any comma separated
//file with the same five columns and '#' comment lines
func ReadReport(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	table, err := DecodeReport(f)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return nil, err
	}
	return table, nil
}

//DecodeReport parses a report
func DecodeReport(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = ColumnCount
	reader.TrimLeadingSpace = true

	var table Table
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		var row Row
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				line, _ := reader.FieldPos(i)
				return nil, &IOError{Op: "parse", Err: fmt.Errorf("line %d column %d: %w", line, i+1, err)}
			}
			row[i] = v
		}
		table = append(table, row)
	}
	return table, nil
}
