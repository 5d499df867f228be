// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"

	"yulc/internal/errors"
	"yulc/internal/parser"
	"yulc/internal/source"
)

const PROMPT = ">> "

// Start reads one block per line from in and prints either the parsed tree
// or the diagnostics for it. It returns when in is exhausted.
func Start(in io.Reader, out io.Writer, d parser.Dialect) error {
	scanner := bufio.NewScanner(in)

	for n := 1; ; n++ {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		stream := source.NewCharStream(fmt.Sprintf("<repl:%d>", n), line)
		block, errs := parser.ParseSource(stream, d)
		if len(errs) > 0 {
			fmt.Fprint(out, errors.NewErrorReporter(stream).FormatAll(errs))
		}
		if block == nil {
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", block.String())
	}
}
