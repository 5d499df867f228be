// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"yulc/internal/errors"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Describe a diagnostic code such as E0600",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return explain(cmd.OutOrStdout(), args[0])
		},
	}
}

func explain(w io.Writer, code string) error {
	code = strings.ToUpper(code)
	description := errors.GetErrorDescription(code)
	if description == "Unknown error code" {
		return fmt.Errorf("unknown diagnostic code %q", code)
	}

	kind := "error"
	if errors.IsWarning(code) {
		kind = "warning"
	}
	fmt.Fprintf(w, "%s (%s, %s)\n%s\n", code, errors.GetErrorCategory(code), kind, description)
	return nil
}
