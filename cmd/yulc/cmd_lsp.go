// SPDX-License-Identifier: Apache-2.0
package main

import (
	"github.com/spf13/cobra"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"yulc/internal/dialect"
	"yulc/internal/lsp"
)

const lsName = "yulc"

func newLSPCmd() *cobra.Command {
	var dialectPath string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dialect.EVM()
			if dialectPath != "" {
				var err error
				if d, err = dialect.LoadFile(dialectPath); err != nil {
					return err
				}
			}

			h := lsp.NewHandler(d)
			handler := protocol.Handler{
				Initialize:                     h.Initialize,
				Initialized:                    h.Initialized,
				Shutdown:                       h.Shutdown,
				SetTrace:                       h.SetTrace,
				TextDocumentDidOpen:            h.TextDocumentDidOpen,
				TextDocumentDidClose:           h.TextDocumentDidClose,
				TextDocumentDidChange:          h.TextDocumentDidChange,
				TextDocumentCompletion:         h.TextDocumentCompletion,
				TextDocumentHover:              h.TextDocumentHover,
				TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
			}

			s := server.NewServer(&handler, lsName, false)
			return s.RunStdio()
		},
	}

	cmd.Flags().StringVar(&dialectPath, "dialect", "", "YAML dialect description (default: built-in EVM dialect)")

	return cmd
}
