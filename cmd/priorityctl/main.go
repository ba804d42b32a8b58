package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	rulesPath string
	logLevel  string
	noColor   bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "priorityctl",
		Short:         "Classify helpdesk tickets and check priority rule files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.rulesPath, "rules", os.Getenv("PRIORITY_RULES_PATH"), "rules YAML file (default: embedded rules)")
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level written to stderr")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newClassifyCmd(opts), newValidateCmd(opts))
	return root
}

var severityColors = map[string]*color.Color{
	"critical": color.New(color.FgRed, color.Bold),
	"high":     color.New(color.FgYellow, color.Bold),
	"medium":   color.New(color.FgCyan),
	"low":      color.New(color.FgGreen),
}

func colorize(severity string) string {
	if c, ok := severityColors[severity]; ok {
		return c.Sprint(severity)
	}
	return severity
}
