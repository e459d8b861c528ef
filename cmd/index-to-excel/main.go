package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	"kastelo.dev/bookindex"
)

func main() {
	input := kingpin.Arg("input_file", "Index text file to convert").Required().String()
	output := kingpin.Arg("output_file", "Spreadsheet file to create").Required().String()
	encoding := kingpin.Flag("encoding", "Character set of the input file").Envar("INDEX_ENCODING").Default(bookindex.DefaultOptions.Encoding).String()
	sheet := kingpin.Flag("sheet", "Name of the output sheet").Envar("INDEX_SHEET").Default(bookindex.DefaultOptions.Sheet).String()
	outFormat := kingpin.Flag("format", "Output format (xlsx, csv); default from output file extension").Envar("INDEX_FORMAT").String()
	diff := kingpin.Flag("diff", "Print changes relative to the existing output file").Bool()
	verbose := kingpin.Flag("verbose", "Enable debug logging").Short('v').Bool()
	kingpin.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := bookindex.Options{
		Encoding: *encoding,
		Sheet:    *sheet,
		Format:   *outFormat,
	}
	if opts.Format == "" {
		opts.Format = bookindex.FormatFor(*output)
	}

	if err := convert(*input, *output, opts, *diff, os.Stdout); err != nil {
		slog.Error("Error converting index", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Written Excel index to %s\n", *output)
}
