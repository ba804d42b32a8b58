package priority

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

// IssueLevel grades a validation finding.
type IssueLevel string

const (
	LevelError   IssueLevel = "error"
	LevelWarning IssueLevel = "warning"
)

// Issue codes reported by Validate.
const (
	CodeEmptyPattern     = "empty_pattern"
	CodeEmptyToken       = "empty_token"
	CodeUnknownSeverity  = "unknown_severity"
	CodeDuplicatePattern = "duplicate_pattern"
	CodeDuplicateToken   = "duplicate_token"
	CodeMissingOther     = "missing_other_default"
	CodeDeadSynonym      = "dead_synonym"
	CodeUnmatchableToken = "unmatchable_token"
	CodeDuplicateSynonym = "duplicate_synonym"
	CodeEmptySynonymKey  = "empty_synonym_key"
	CodeNilRules         = "nil_rules"
	CodeKeyCollision     = "key_collision"
)

// Issue is one data-quality finding in a rule set.
type Issue struct {
	Level   IssueLevel `json:"level"`
	Code    string     `json:"code"`
	Message string     `json:"message"`
}

// Report collects validation findings.
type Report struct {
	Issues []Issue `json:"issues"`
}

func (r *Report) add(level IssueLevel, code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Level: level, Code: code, Message: fmt.Sprintf(format, args...)})
}

// Errors returns error-level findings.
func (r Report) Errors() []Issue { return r.filter(LevelError) }

// Warnings returns warning-level findings.
func (r Report) Warnings() []Issue { return r.filter(LevelWarning) }

// HasErrors reports whether the rule set is unusable.
func (r Report) HasErrors() bool { return len(r.Errors()) > 0 }

// Err joins the error-level findings, or returns nil.
func (r Report) Err() error {
	issues := r.Errors()
	if len(issues) == 0 {
		return nil
	}
	errs := make([]error, 0, len(issues))
	for _, is := range issues {
		errs = append(errs, fmt.Errorf("%s: %s", is.Code, is.Message))
	}
	return fmt.Errorf("invalid priority rules: %w", errors.Join(errs...))
}

func (r Report) filter(level IssueLevel) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Level == level {
			out = append(out, is)
		}
	}
	return out
}

// Validate checks a rule set for mistakes that would make rules silently
// unreachable or the bucket assignment ambiguous.
func Validate(rs *RuleSet) Report {
	var report Report
	if rs == nil {
		report.add(LevelError, CodeNilRules, "no rule set")
		return report
	}

	for _, c := range rs.collisions {
		report.add(LevelError, CodeKeyCollision, "%s", c)
	}
	if rs.Fallback != "" && !rs.Fallback.Valid() {
		report.add(LevelError, CodeUnknownSeverity, "fallback %q is not a severity", rs.Fallback)
	}
	if _, ok := rs.CategoryDefaults[OtherCategory]; !ok && rs.fallback() != domain.SeverityLow {
		report.add(LevelError, CodeMissingOther, "category defaults have no %q entry and fallback is %q", OtherCategory, rs.fallback())
	}

	validateSynonyms(&report, rs.Synonyms)
	validatePatterns(&report, rs)

	for _, category := range sortedKeys(rs.CategoryDefaults) {
		if sev := rs.CategoryDefaults[category]; !sev.Valid() {
			report.add(LevelError, CodeUnknownSeverity, "category default %q has severity %q", category, sev)
		}
	}
	for _, issue := range sortedKeys(rs.IssueDefaults) {
		row := rs.IssueDefaults[issue]
		for _, category := range sortedKeys(row) {
			if sev := row[category]; !sev.Valid() {
				report.add(LevelError, CodeUnknownSeverity, "issue default %q/%q has severity %q", issue, category, sev)
			}
		}
	}
	return report
}

func validateSynonyms(report *Report, table SynonymTable) {
	for _, key := range sortedKeys(table) {
		if strings.TrimSpace(key) == "" {
			report.add(LevelError, CodeEmptySynonymKey, "synonym table has an empty key")
			continue
		}
		seen := map[string]struct{}{}
		for _, form := range table[key] {
			if _, dup := seen[form]; dup {
				report.add(LevelWarning, CodeDuplicateSynonym, "synonym %q listed twice under %q", form, key)
				continue
			}
			seen[form] = struct{}{}
			if !survivesNormalization(form) {
				report.add(LevelWarning, CodeDeadSynonym, "synonym %q of %q can never match a normalized token", form, key)
			}
		}
	}
}

func validatePatterns(report *Report, rs *RuleSet) {
	owners := map[string]domain.Severity{}
	positions := map[domain.Severity]int{}
	for _, p := range rs.Patterns {
		positions[p.Level]++
		where := fmt.Sprintf("%s pattern #%d", p.Level, positions[p.Level])

		if !p.Level.Valid() {
			report.add(LevelError, CodeUnknownSeverity, "%s: %q is not a severity", where, p.Level)
			continue
		}
		if len(p.Tokens) == 0 {
			report.add(LevelError, CodeEmptyPattern, "%s has no tokens", where)
			continue
		}

		seen := map[string]struct{}{}
		for _, tok := range p.Tokens {
			if tok == "" {
				report.add(LevelError, CodeEmptyToken, "%s contains an empty token", where)
				continue
			}
			if _, dup := seen[tok]; dup {
				report.add(LevelWarning, CodeDuplicateToken, "%s repeats token %q", where, tok)
				continue
			}
			seen[tok] = struct{}{}
			if !tokenReachable(rs.Synonyms, tok) {
				report.add(LevelWarning, CodeUnmatchableToken, "%s: token %q can never be satisfied, the pattern cannot fully match", where, tok)
			}
		}

		key := p.Key()
		if owner, dup := owners[key]; dup {
			// a repeat inside one level adds to that level's score; across levels it is ambiguous
			if owner == p.Level {
				report.add(LevelWarning, CodeDuplicatePattern, "%s {%s} repeats a pattern of the same level", where, key)
			} else {
				report.add(LevelError, CodeDuplicatePattern, "%s {%s} is already registered under %s", where, key, owner)
			}
			continue
		}
		owners[key] = p.Level
	}
}

func tokenReachable(table SynonymTable, token string) bool {
	for _, form := range table.alternatives(token) {
		if survivesNormalization(form) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
