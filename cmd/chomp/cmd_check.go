package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/chomp/calc"
	"github.com/dhamidi/chomp/config"
	"github.com/dhamidi/chomp/format"
	"github.com/spf13/cobra"
)

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a file and report syntax errors without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read program: %w", err)
			}
			enc, err := out.encoder(cmd, cfg)
			if err != nil {
				return err
			}

			report := format.Report{File: filename, Source: string(data)}
			tree, err := calc.Parse(report.Source)
			if err != nil {
				report.Diagnostics = format.Diagnose(err)
			} else {
				report.Tree = tree
			}
			log.Infof("checked %s: %d problems", filename, len(report.Diagnostics))
			return emit(enc, report)
		},
	}

	out.register(cmd)
	return cmd
}
