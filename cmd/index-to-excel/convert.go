package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	diffpatch "github.com/sourcegraph/go-diff-patch"
	"kastelo.dev/bookindex"
	"kastelo.dev/bookindex/excel"
)

type format struct {
	write func(rows []bookindex.Row, sheet string) ([]byte, error)
	read  func(path string) ([]bookindex.Row, error)
}

var formats = map[string]format{
	bookindex.FormatXLSX: {write: excel.IndexXLSX, read: excel.ReadRows},
	bookindex.FormatCSV:  {write: indexCSV, read: readCSV},
}

// convert parses the index at input and writes it to output. With diff
// set, changes relative to an existing output file are written to
// report before it is overwritten.
func convert(input, output string, opts bookindex.Options, diff bool, report io.Writer) error {
	opts = opts.WithDefaults()
	f, ok := formats[opts.Format]
	if !ok {
		return &bookindex.MissingDependencyError{Capability: "writer", Name: opts.Format}
	}
	if err := opts.CheckEncoding(); err != nil {
		return err
	}

	rows, err := bookindex.ParseFile(input, opts)
	if err != nil {
		return err
	}
	slog.Debug("Parsed index", "input", input, "rows", len(rows))

	bs, err := f.write(rows, opts.Sheet)
	if err != nil {
		return err
	}

	if diff {
		if err := writeDiff(report, output, f, rows); err != nil {
			return err
		}
	}

	if err := os.WriteFile(output, bs, 0o644); err != nil {
		return &bookindex.FileAccessError{Op: "write", Path: output, Err: err}
	}
	slog.Debug("Wrote index", "output", output, "format", opts.Format, "bytes", len(bs))
	return nil
}

func writeDiff(w io.Writer, output string, f format, rows []bookindex.Row) error {
	old, err := f.read(output)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Unable to read existing output, diffing against empty", "output", output, "error", err)
	}

	patch := diffpatch.GeneratePatch(output, rowsText(old), rowsText(rows))
	_, err = io.WriteString(w, patch)
	return err
}

func rowsText(rows []bookindex.Row) string {
	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(strings.Join(r.Strings(), "\t"))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func indexCSV(rows []bookindex.Row, _ string) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(bookindex.Header)
	for _, r := range rows {
		_ = cw.Write(r.Strings())
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readCSV(path string) ([]bookindex.Row, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	cr := csv.NewReader(fd)
	cr.FieldsPerRecord = len(bookindex.Header)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	rows := make([]bookindex.Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		rows = append(rows, bookindex.Row{Topic: rec[0], Description: rec[1], Page: rec[2], Book: rec[3]})
	}
	return rows, nil
}
