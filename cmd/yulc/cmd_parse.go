// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"yulc/internal/dialect"
	"yulc/internal/errors"
	"yulc/internal/parser"
	"yulc/internal/scanner"
	"yulc/internal/source"
)

type parseOptions struct {
	reuseScanner bool
	dialectPath  string
	sources      []string
	maxDepth     int
}

func newParseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <file.yul>",
		Short: "Parse a Yul block and print the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.reuseScanner, "reuse-scanner", false, "stop after the block instead of requiring end of input")
	cmd.Flags().StringVar(&opts.dialectPath, "dialect", "", "YAML dialect description (default: built-in EVM dialect)")
	cmd.Flags().StringArrayVar(&opts.sources, "source", nil, "register an original source unit for @src as INDEX=PATH")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth")

	return cmd
}

// runParse parses path and writes either the tree or its diagnostics to w.
// Diagnostics always point into the parsed file. The --source units only
// form the namespace @src annotations refer to; without any, source
// indices are not checked.
func runParse(w io.Writer, path string, opts parseOptions) error {
	startTime := time.Now()

	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	d := dialect.EVM()
	if opts.dialectPath != "" {
		if d, err = dialect.LoadFile(opts.dialectPath); err != nil {
			return err
		}
	}

	parserOpts := []parser.Option{parser.WithMaxDepth(opts.maxDepth)}
	if len(opts.sources) > 0 {
		streams := make(map[int]*source.CharStream, len(opts.sources))
		for _, arg := range opts.sources {
			index, cs, err := loadSource(arg)
			if err != nil {
				return err
			}
			streams[index] = cs
		}
		parserOpts = append(parserOpts, parser.WithSourceResolver(func(index int) (*source.CharStream, bool) {
			cs, ok := streams[index]
			return cs, ok
		}))
	}

	stream := source.NewCharStream(path, string(text))
	reporter := errors.NewErrorReporter(stream)

	var collector errors.Collector
	block := parser.New(&collector, d, parserOpts...).Parse(scanner.New(stream, 0), opts.reuseScanner)

	fmt.Fprint(w, reporter.FormatAll(collector.Errors))

	formattedDuration := formatDuration(time.Since(startTime))

	if block == nil || collector.HasErrors() {
		color.New(color.FgRed).Fprintf(w, "Parsing failed after %s\n", formattedDuration)
		return fmt.Errorf("%s: %d problem(s)", path, len(collector.Errors))
	}

	fmt.Fprintln(w, block.String())
	color.New(color.FgGreen).Fprintf(w, "Successfully parsed %s in %s\n", path, formattedDuration)
	return nil
}

// loadSource reads an INDEX=PATH pair given with --source.
func loadSource(arg string) (int, *source.CharStream, error) {
	indexText, path, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, nil, fmt.Errorf("invalid --source %q: expected INDEX=PATH", arg)
	}
	index, err := strconv.Atoi(indexText)
	if err != nil || index < 0 {
		return 0, nil, fmt.Errorf("invalid --source %q: bad index", arg)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read source %d: %w", index, err)
	}
	return index, source.NewCharStream(path, string(text)), nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
