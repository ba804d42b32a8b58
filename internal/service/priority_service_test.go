package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
	"github.com/spec-kit/helpdesk-priority/internal/priority"
)

func TestPriorityService_Classify(t *testing.T) {
	svc := NewPriorityService(priority.Default(), observability.NewMetrics(), nil)

	d := svc.Classify(ClassifyInput{ProblemCategory: "security", Description: "please help"})
	assert.Equal(t, domain.SeverityHigh, d.Severity)
	assert.Equal(t, priority.SourceCategoryDefault, d.Source)

	d = svc.Classify(ClassifyInput{IssueType: "cybersecurity incident", ProblemCategory: "security", Description: "please help"})
	assert.Equal(t, domain.SeverityCritical, d.Severity)
	assert.Equal(t, priority.SourceIssueDefault, d.Source)

	d = svc.Classify(ClassifyInput{ProblemCategory: "other", Description: "Ransomware!"})
	assert.Equal(t, domain.SeverityCritical, d.Severity)
	assert.Equal(t, []string{"ransomware"}, d.MatchedPattern)
}

func TestPriorityService_Rules(t *testing.T) {
	summary := NewPriorityService(priority.Default(), nil, nil).Rules()

	assert.Equal(t, domain.SeverityLow, summary.Fallback)
	assert.Equal(t, map[domain.Severity]int{
		domain.SeverityCritical: 10,
		domain.SeverityHigh:     36,
		domain.SeverityMedium:   29,
		domain.SeverityLow:      9,
	}, summary.PatternCounts)
	assert.Contains(t, summary.Categories, "other")
	assert.Contains(t, summary.IssueTypes, "sla breach")
	assert.False(t, summary.Report.HasErrors())
	assert.NotEmpty(t, summary.Report.Warnings())
	assert.IsIncreasing(t, summary.Categories)
}
