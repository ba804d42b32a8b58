package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

func codes(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, is := range issues {
		out = append(out, is.Code)
	}
	return out
}

func TestValidate_DefaultRules(t *testing.T) {
	rs, err := LoadRuleSet("")
	require.NoError(t, err)

	report := Validate(rs)
	require.False(t, report.HasErrors(), "embedded rules: %v", report.Err())
	require.NoError(t, report.Err())

	warnings := report.Warnings()
	dead := 0
	unmatchable := 0
	repeated := 0
	for _, w := range warnings {
		switch w.Code {
		case CodeDeadSynonym:
			dead++
		case CodeUnmatchableToken:
			unmatchable++
		case CodeDuplicatePattern:
			repeated++
		}
	}
	// "can't", "doesn’t", "isn’t", "sign in", "log in"
	assert.Equal(t, 5, dead)
	// "2.0"
	assert.Equal(t, 1, unmatchable)
	// {printer, faulty} and {terminal, configuration} are listed twice in medium
	assert.Equal(t, 2, repeated)
}

func TestValidate_Errors(t *testing.T) {
	rs := &RuleSet{
		Fallback: domain.SeverityHigh,
		Patterns: []Pattern{
			{Level: domain.SeverityCritical, Tokens: []string{"disk", "failure"}},
			{Level: domain.SeverityMedium, Tokens: []string{"failure", "disk"}},
			{Level: domain.SeverityHigh, Tokens: nil},
			{Level: domain.SeverityLow, Tokens: []string{"ok", ""}},
			{Level: "urgent", Tokens: []string{"fire"}},
		},
		CategoryDefaults: map[string]domain.Severity{"software": "blocker"},
		IssueDefaults: map[string]map[string]domain.Severity{
			"technical outage": {"software": "sev1"},
		},
	}

	report := Validate(rs)
	require.True(t, report.HasErrors())
	got := codes(report.Errors())
	assert.Contains(t, got, CodeDuplicatePattern)
	assert.Contains(t, got, CodeEmptyPattern)
	assert.Contains(t, got, CodeEmptyToken)
	assert.Contains(t, got, CodeUnknownSeverity)
	assert.Contains(t, got, CodeMissingOther)

	err := report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid priority rules")
}

func TestValidate_Warnings(t *testing.T) {
	rs := &RuleSet{
		Synonyms: SynonymTable{
			"login": {"login", "sign in", "login"},
		},
		Patterns: []Pattern{
			{Level: domain.SeverityMedium, Tokens: []string{"jam", "jam"}},
			{Level: domain.SeverityLow, Tokens: []string{"v1.2"}},
		},
	}

	report := Validate(rs)
	assert.False(t, report.HasErrors())
	assert.ElementsMatch(t, []string{
		CodeDeadSynonym,
		CodeDuplicateSynonym,
		CodeDuplicateToken,
		CodeUnmatchableToken,
	}, codes(report.Warnings()))
}

func TestValidate_SynonymRescuesPunctuatedToken(t *testing.T) {
	rs := &RuleSet{
		Synonyms: SynonymTable{"2.0": {"v2"}},
		Patterns: []Pattern{{Level: domain.SeverityLow, Tokens: []string{"2.0"}}},
	}
	assert.Empty(t, Validate(rs).Issues)
}

func TestValidate_NilRuleSet(t *testing.T) {
	report := Validate(nil)
	assert.True(t, report.HasErrors())
	assert.Equal(t, []string{CodeNilRules}, codes(report.Errors()))
}

func TestValidate_DuplicatePatternLevels(t *testing.T) {
	rs := &RuleSet{
		Patterns: []Pattern{
			{Level: domain.SeverityMedium, Tokens: []string{"printer", "faulty"}},
			{Level: domain.SeverityMedium, Tokens: []string{"faulty", "printer"}},
		},
	}
	report := Validate(rs)
	assert.False(t, report.HasErrors())
	assert.Equal(t, []string{CodeDuplicatePattern}, codes(report.Warnings()))

	rs.Patterns = append(rs.Patterns, Pattern{Level: domain.SeverityHigh, Tokens: []string{"printer", "faulty"}})
	report = Validate(rs)
	assert.Equal(t, []string{CodeDuplicatePattern}, codes(report.Errors()))
}
