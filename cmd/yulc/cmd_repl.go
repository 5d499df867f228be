// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"yulc/internal/dialect"
	"yulc/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse blocks typed on standard input, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "there"
			if currentUser, err := user.Current(); err == nil {
				name = currentUser.Username
			}

			fmt.Printf("Welcome to the yulc REPL, %s!\n", name)
			return repl.Start(os.Stdin, os.Stdout, dialect.EVM())
		},
	}
}
