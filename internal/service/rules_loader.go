package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-priority/internal/config"
	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/priority"
)

// LoadClassifier reads the configured rules, logs every validation finding and
// compiles them. In strict mode warnings are fatal as well.
func LoadClassifier(cfg config.PriorityConfig, logger *zap.Logger) (*priority.Classifier, priority.Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	source := cfg.RulesPath
	if source == "" {
		source = "embedded"
	}

	rs, err := priority.LoadRuleSet(cfg.RulesPath)
	if err != nil {
		return nil, priority.Report{}, err
	}

	report := priority.Validate(rs)
	for _, issue := range report.Issues {
		fields := []zap.Field{zap.String("code", issue.Code), zap.String("rules", source)}
		if issue.Level == priority.LevelError {
			logger.Error(issue.Message, fields...)
		} else {
			logger.Warn(issue.Message, fields...)
		}
	}
	if err := report.Err(); err != nil {
		return nil, report, err
	}
	if cfg.StrictRules && len(report.Warnings()) > 0 {
		return nil, report, fmt.Errorf("priority rules %s: %d warnings in strict mode", source, len(report.Warnings()))
	}

	classifier, err := priority.NewClassifier(rs)
	if err != nil {
		return nil, report, err
	}
	logger.Info("priority rules loaded",
		zap.String("rules", source),
		zap.Int("critical_patterns", len(rs.PatternsFor(domain.SeverityCritical))),
		zap.Int("high_patterns", len(rs.PatternsFor(domain.SeverityHigh))),
		zap.Int("medium_patterns", len(rs.PatternsFor(domain.SeverityMedium))),
		zap.Int("low_patterns", len(rs.PatternsFor(domain.SeverityLow))),
		zap.Int("synonyms", len(rs.Synonyms)),
		zap.Int("warnings", len(report.Warnings())))
	return classifier, report, nil
}
