package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/chomp/calc"
	"github.com/dhamidi/chomp/config"
	"github.com/dhamidi/chomp/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("chomp")

type outputFlags struct {
	format string
	color  bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "output", "o", "", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&o.color, "color", false, "Colorize text output")
}

func (o *outputFlags) encoder(cmd *cobra.Command, cfg *config.Config) (format.Encoder, error) {
	name := cfg.Format
	if o.format != "" {
		name = o.format
	}
	color := cfg.Color
	if cmd.Flags().Changed("color") {
		color = o.color
	}
	return format.New(name, format.Options{Writer: cmd.OutOrStdout(), Color: color})
}

func newEvalCmd(cfg *config.Config) *cobra.Command {
	var file string
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "eval [expr...]",
		Short: "Evaluate an expression or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(file, args)
			if err != nil {
				return err
			}
			enc, err := out.encoder(cmd, cfg)
			if err != nil {
				return err
			}
			env, err := cfg.Env()
			if err != nil {
				return fmt.Errorf("config bindings: %w", err)
			}

			report := format.Report{File: name, Source: source}
			if err := evaluate(&report, env); err != nil {
				log.Debugf("eval %s: %s", name, err)
				report.Diagnostics = format.Diagnose(err)
			}
			return emit(enc, report)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the program from a file")
	out.register(cmd)
	return cmd
}

func evaluate(report *format.Report, env calc.Env) error {
	tree, err := calc.Parse(report.Source)
	if err != nil {
		return err
	}
	report.Tree = tree
	v, err := calc.Eval(tree, env)
	if err != nil {
		return err
	}
	report.Value = v.String()
	return nil
}

// readSource returns the program text from a file or the joined args.
func readSource(file string, args []string) (string, string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("cannot combine --file with an expression")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("read program: %w", err)
		}
		return file, string(data), nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("no expression given")
	}
	return "<expr>", strings.Join(args, " "), nil
}

func emit(enc format.Encoder, report format.Report) error {
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if !report.OK() {
		return reportedError{}
	}
	return nil
}
