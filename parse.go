package bookindex

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"
)

const maxLineLength = 1 << 20

// ParseLine parses one index line into rows. Lines are either
//
//	topic: 3, 5, 7
//	topic: 1(3, 5) | 2(7)
//
// where the last colon on the line separates the topic from the pages.
// Lines without a colon and malformed book chunks yield no rows.
func ParseLine(line string) []Row {
	topic, rawPages, ok := cutLast(line, ":")
	if !ok {
		return nil
	}
	topic = strings.TrimSpace(topic)
	rawPages = strings.TrimSpace(rawPages)

	var rows []Row

	if !strings.Contains(rawPages, "(") {
		for _, page := range splitPages(rawPages) {
			rows = append(rows, Row{Topic: topic, Page: page, Book: DefaultBook})
		}
		return rows
	}

	for _, chunk := range strings.Split(rawPages, "|") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		book, pages, ok := splitBookChunk(chunk)
		if !ok {
			continue
		}
		for _, page := range splitPages(pages) {
			rows = append(rows, Row{Topic: topic, Page: page, Book: book})
		}
	}
	return rows
}

// Parse reads an index from r, decoded per opts.Encoding, and returns
// the rows of all lines in input order.
func Parse(r io.Reader, opts Options) ([]Row, error) {
	opts = opts.WithDefaults()
	dec, err := opts.decoder()
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 64<<10), maxLineLength)

	var rows []Row
	for sc.Scan() {
		rows = append(rows, ParseLine(sc.Text())...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ParseFile parses the index file at path. Failing to open or read the
// file gives a *FileAccessError.
func ParseFile(path string, opts Options) ([]Row, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	defer fd.Close()

	rows, err := Parse(fd, opts)
	if err != nil {
		var missing *MissingDependencyError
		if errors.As(err, &missing) {
			return nil, err
		}
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return rows, nil
}
