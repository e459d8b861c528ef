package bookindex

import (
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// Options controls how an index is read and written. Zero fields take
// their value from DefaultOptions.
type Options struct {
	// Encoding is the character set of the input, as a WHATWG name
	// ("utf-8", "windows-1252", "ibm866", ...). A byte order mark in the
	// input overrides it.
	Encoding string
	// Sheet is the name of the single output sheet.
	Sheet string
	// Format is the output format, FormatXLSX or FormatCSV.
	Format string
}

var DefaultOptions = Options{
	Encoding: "utf-8",
	Sheet:    "Sheet",
	Format:   FormatXLSX,
}

// WithDefaults returns a copy of o with zero fields set from
// DefaultOptions.
func (o Options) WithDefaults() Options {
	_ = mergo.Merge(&o, DefaultOptions)
	return o
}

// FormatFor returns the output format implied by the file extension of
// path, FormatXLSX unless it is ".csv".
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return FormatCSV
	}
	return FormatXLSX
}

// CheckEncoding verifies that the configured input encoding is known.
func (o Options) CheckEncoding() error {
	_, err := o.WithDefaults().decoder()
	return err
}

func (o Options) decoder() (transform.Transformer, error) {
	enc, err := htmlindex.Get(o.Encoding)
	if err != nil {
		return nil, &MissingDependencyError{Capability: "encoding", Name: o.Encoding}
	}
	return unicode.BOMOverride(enc.NewDecoder()), nil
}
