package main

import (
	"os"

	"github.com/dhamidi/chomp/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if _, reported := err.(reportedError); !reported {
			os.Stderr.WriteString("chomp: " + err.Error() + "\n")
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:           "chomp",
		Short:         "Evaluate and check calc programs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			*cfg = *loaded
			configureLogging(cfg.Log)
			return nil
		},
	}

	rootCmd.AddCommand(newEvalCmd(cfg))
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newLSPCmd(cfg))
	return rootCmd
}

func configureLogging(c config.LogConfig) {
	if c.File == "" {
		commonlog.Configure(c.Verbosity, nil)
		return
	}
	path := c.File
	commonlog.Configure(c.Verbosity, &path)
}

// reportedError marks a failure whose diagnostics were already written.
type reportedError struct{}

func (reportedError) Error() string { return "diagnostics reported" }
