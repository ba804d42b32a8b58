package priority

import (
	"sort"
	"strings"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

// OtherCategory is the catch-all key of the category default matrix.
const OtherCategory = "other"

// Pattern is a set of required tokens registered under one severity level.
type Pattern struct {
	Level  domain.Severity
	Tokens []string
}

// Unique returns the distinct tokens of the pattern in declaration order.
func (p Pattern) Unique() []string {
	seen := make(map[string]struct{}, len(p.Tokens))
	out := make([]string, 0, len(p.Tokens))
	for _, tok := range p.Tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

// Key identifies the token set independent of order and repetition.
func (p Pattern) Key() string {
	tokens := p.Unique()
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// RuleSet holds the static classification tables.
type RuleSet struct {
	Fallback         domain.Severity
	Synonyms         SynonymTable
	Patterns         []Pattern
	CategoryDefaults map[string]domain.Severity
	IssueDefaults    map[string]map[string]domain.Severity

	// collisions lists keys of a parsed file that normalize to the same value.
	collisions []string
}

// PatternsFor returns the patterns of one level in declaration order.
func (rs *RuleSet) PatternsFor(level domain.Severity) []Pattern {
	var out []Pattern
	for _, p := range rs.Patterns {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

func (rs *RuleSet) fallback() domain.Severity {
	if rs.Fallback == "" {
		return domain.SeverityLow
	}
	return rs.Fallback
}

func normalizeKey(raw string) string {
	return lower(strings.TrimSpace(raw))
}
