package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/helpdesk-priority/internal/api/dto"
	"github.com/spec-kit/helpdesk-priority/internal/config"
	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
	"github.com/spec-kit/helpdesk-priority/internal/service"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	var (
		category  string
		issueType string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "classify [DESCRIPTION...]",
		Short: "Print the priority for a problem category and description",
		Example: `  priorityctl classify --category "hardware error" the dispenser is completely down
  priorityctl classify --category security --issue-type "cybersecurity incident" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := observability.NewCLILogger(root.logLevel)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			classifier, _, err := service.LoadClassifier(config.PriorityConfig{RulesPath: root.rulesPath}, logger)
			if err != nil {
				return err
			}

			d := service.NewPriorityService(classifier, nil, logger).Classify(service.ClassifyInput{
				IssueType:       issueType,
				ProblemCategory: category,
				Description:     strings.Join(args, " "),
			})

			out := cmd.OutOrStdout()
			if asJSON {
				matched := d.MatchedPattern
				if matched == nil {
					matched = []string{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ClassifyResponse{
					Priority:       d.Severity,
					Source:         d.Source,
					MatchedPattern: matched,
					Scores:         d.Scores,
				})
			}

			fmt.Fprintf(out, "%s (%s", colorize(string(d.Severity)), d.Source)
			if len(d.MatchedPattern) > 0 {
				fmt.Fprintf(out, ": %s", strings.Join(d.MatchedPattern, " "))
			}
			fmt.Fprintln(out, ")")
			fmt.Fprintf(out, "scores:")
			for _, level := range domain.Severities {
				fmt.Fprintf(out, " %s=%d", level, d.Scores[level])
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "problem category")
	cmd.Flags().StringVarP(&issueType, "issue-type", "i", "", "issue type, enables the issue default matrix")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decision as JSON")
	return cmd
}
