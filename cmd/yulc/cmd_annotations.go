// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"yulc/internal/annotation"
	"yulc/internal/scanner"
	"yulc/internal/source"
	"yulc/token"
)

func newAnnotationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotations <file.yul>",
		Short: "List the @key value annotations of every doc comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			return listAnnotations(cmd.OutOrStdout(), source.NewCharStream(args[0], string(text)))
		},
	}
}

// listAnnotations prints the annotations attached to each token, one per
// line, prefixed with the location of the token they document.
func listAnnotations(w io.Writer, cs *source.CharStream) error {
	s := scanner.New(cs, 0)
	key := color.New(color.FgCyan).SprintFunc()

	for {
		if doc := s.CurrentCommentLiteral(); doc != "" {
			line, column := cs.LineColumn(s.CurrentLocation().Start)
			for k, v := range annotation.All(doc) {
				fmt.Fprintf(w, "%s:%d:%d: %s %s\n", cs.Name, line, column, key("@"+k), v)
			}
		}
		if s.CurrentToken() == token.EOS {
			break
		}
		s.Advance()
	}

	return s.Err()
}
