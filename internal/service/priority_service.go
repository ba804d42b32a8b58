package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/observability"
	"github.com/spec-kit/helpdesk-priority/internal/priority"
)

// PriorityService exposes classification to transports and records outcomes.
type PriorityService struct {
	classifier *priority.Classifier
	report     priority.Report
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// ClassifyInput describes a classification request.
type ClassifyInput struct {
	IssueType       string
	ProblemCategory string
	Description     string
}

// RulesSummary describes the loaded rule tables.
type RulesSummary struct {
	Fallback      domain.Severity
	PatternCounts map[domain.Severity]int
	SynonymCount  int
	Categories    []string
	IssueTypes    []string
	Report        priority.Report
}

// NewPriorityService constructs the service. metrics may be nil.
func NewPriorityService(classifier *priority.Classifier, metrics *observability.Metrics, logger *zap.Logger) *PriorityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriorityService{
		classifier: classifier,
		report:     priority.Validate(classifier.Rules()),
		metrics:    metrics,
		logger:     logger,
	}
}

// Classify decides a priority. Without an issue type only the flat category
// defaults are consulted.
func (s *PriorityService) Classify(input ClassifyInput) priority.Decision {
	var d priority.Decision
	if strings.TrimSpace(input.IssueType) == "" {
		d = s.classifier.Evaluate(input.ProblemCategory, input.Description)
	} else {
		d = s.classifier.EvaluateTicket(input.IssueType, input.ProblemCategory, input.Description)
	}
	s.metrics.RecordClassification(string(d.Severity), string(d.Source))
	s.logger.Debug("priority classified",
		zap.String("priority", string(d.Severity)),
		zap.String("source", string(d.Source)),
		zap.Strings("matched_pattern", d.MatchedPattern))
	return d
}

// Rules summarizes the active rule set.
func (s *PriorityService) Rules() RulesSummary {
	rs := s.classifier.Rules()
	summary := RulesSummary{
		Fallback:      rs.Fallback,
		PatternCounts: make(map[domain.Severity]int, len(domain.Severities)),
		SynonymCount:  len(rs.Synonyms),
		Categories:    keys(rs.CategoryDefaults),
		IssueTypes:    keys(rs.IssueDefaults),
		Report:        s.report,
	}
	if summary.Fallback == "" {
		summary.Fallback = domain.SeverityLow
	}
	for _, level := range domain.Severities {
		summary.PatternCounts[level] = len(rs.PatternsFor(level))
	}
	return summary
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
