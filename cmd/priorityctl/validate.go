package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/spec-kit/helpdesk-priority/internal/priority"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a rules file for errors and data-quality warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := priority.LoadRuleSet(root.rulesPath)
			if err != nil {
				return err
			}
			report := priority.Validate(rs)

			out := cmd.OutOrStdout()
			warn := color.New(color.FgYellow)
			fail := color.New(color.FgRed, color.Bold)
			for _, issue := range report.Issues {
				label := warn.Sprint(issue.Level)
				if issue.Level == priority.LevelError {
					label = fail.Sprint(issue.Level)
				}
				fmt.Fprintf(out, "%s %s: %s\n", label, issue.Code, issue.Message)
			}

			errs, warnings := len(report.Errors()), len(report.Warnings())
			fmt.Fprintf(out, "%d patterns, %d synonym entries: %d errors, %d warnings\n",
				len(rs.Patterns), len(rs.Synonyms), errs, warnings)

			if errs > 0 {
				return fmt.Errorf("rules invalid: %d errors", errs)
			}
			if strict && warnings > 0 {
				return fmt.Errorf("rules rejected in strict mode: %d warnings", warnings)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as errors")
	return cmd
}
