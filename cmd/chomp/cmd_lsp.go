package main

import (
	"fmt"

	"github.com/dhamidi/chomp/config"
	"github.com/dhamidi/chomp/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cfg.Env()
			if err != nil {
				return fmt.Errorf("config bindings: %w", err)
			}
			server := lsp.NewServer(version, env)
			return server.RunStdio()
		},
	}
}
