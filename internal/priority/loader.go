package priority

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

//go:embed rules/default.yaml
var defaultRules []byte

// ruleFile mirrors the YAML layout of a rules file.
type ruleFile struct {
	Fallback         string                       `yaml:"fallback"`
	Synonyms         map[string][]string          `yaml:"synonyms"`
	Patterns         map[string][][]string        `yaml:"patterns"`
	CategoryDefaults map[string]string            `yaml:"category_defaults"`
	IssueDefaults    map[string]map[string]string `yaml:"issue_defaults"`
}

// ParseRuleSet decodes a YAML rules document. Keys and tokens are lowercased;
// the result is not validated. Keys that collide after lowercasing are kept
// in sorted source order, first wins, and reported by Validate.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode priority rules: %w", err)
	}

	rs := &RuleSet{
		Fallback:      domain.Severity(normalizeKey(file.Fallback)),
		Synonyms:      make(SynonymTable, len(file.Synonyms)),
		IssueDefaults: make(map[string]map[string]domain.Severity, len(file.IssueDefaults)),
	}
	for _, key := range sortedKeys(file.Synonyms) {
		norm := normalizeKey(key)
		if _, dup := rs.Synonyms[norm]; dup {
			rs.collide("synonyms", key, norm)
			continue
		}
		lowered := make([]string, 0, len(file.Synonyms[key]))
		for _, form := range file.Synonyms[key] {
			lowered = append(lowered, normalizeKey(form))
		}
		rs.Synonyms[norm] = lowered
	}

	for _, level := range patternLevels(rs, file.Patterns) {
		for _, tokens := range file.Patterns[level.label] {
			p := Pattern{Level: level.severity, Tokens: make([]string, 0, len(tokens))}
			for _, tok := range tokens {
				p.Tokens = append(p.Tokens, normalizeKey(tok))
			}
			rs.Patterns = append(rs.Patterns, p)
		}
	}

	rs.CategoryDefaults = rs.severityRow("category_defaults", file.CategoryDefaults)
	for _, issue := range sortedKeys(file.IssueDefaults) {
		norm := normalizeKey(issue)
		if _, dup := rs.IssueDefaults[norm]; dup {
			rs.collide("issue_defaults", issue, norm)
			continue
		}
		rs.IssueDefaults[norm] = rs.severityRow("issue_defaults."+norm, file.IssueDefaults[issue])
	}
	return rs, nil
}

func (rs *RuleSet) severityRow(section string, raw map[string]string) map[string]domain.Severity {
	row := make(map[string]domain.Severity, len(raw))
	for _, key := range sortedKeys(raw) {
		norm := normalizeKey(key)
		if _, dup := row[norm]; dup {
			rs.collide(section, key, norm)
			continue
		}
		row[norm] = domain.Severity(normalizeKey(raw[key]))
	}
	return row
}

func (rs *RuleSet) collide(section, key, norm string) {
	rs.collisions = append(rs.collisions, fmt.Sprintf("%s: key %q collides with another key normalized to %q", section, key, norm))
}

type patternLevel struct {
	label    string
	severity domain.Severity
}

// patternLevels orders the pattern buckets: known severities first in scan
// order, anything else after, sorted. Labels that normalize to the same level
// are merged in sorted label order and reported as collisions.
func patternLevels(rs *RuleSet, patterns map[string][][]string) []patternLevel {
	byLevel := map[domain.Severity][]string{}
	for _, label := range sortedKeys(patterns) {
		sev := domain.Severity(normalizeKey(label))
		if len(byLevel[sev]) > 0 {
			rs.collide("patterns", label, string(sev))
		}
		byLevel[sev] = append(byLevel[sev], label)
	}

	var rest []domain.Severity
	for sev := range byLevel {
		if !sev.Valid() {
			rest = append(rest, sev)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	var out []patternLevel
	for _, sev := range append(append([]domain.Severity{}, domain.Severities...), rest...) {
		for _, label := range byLevel[sev] {
			out = append(out, patternLevel{label: label, severity: sev})
		}
	}
	return out
}

// LoadRuleSet reads a rules file from disk. An empty path selects the embedded defaults.
func LoadRuleSet(path string) (*RuleSet, error) {
	if path == "" {
		return ParseRuleSet(defaultRules)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read priority rules %s: %w", path, err)
	}
	return ParseRuleSet(data)
}

var defaultClassifier = sync.OnceValues(func() (*Classifier, error) {
	rs, err := ParseRuleSet(defaultRules)
	if err != nil {
		return nil, err
	}
	return NewClassifier(rs)
})

// Default returns the classifier built from the embedded rules.
func Default() *Classifier {
	c, err := defaultClassifier()
	if err != nil {
		panic(fmt.Sprintf("embedded priority rules: %v", err))
	}
	return c
}

// Classify runs the default classifier.
func Classify(category, description string) domain.Severity {
	return Default().Classify(category, description)
}
