package priority

import (
	"fmt"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

// Source names the rule that produced a decision.
type Source string

const (
	SourcePattern         Source = "pattern"
	SourceScore           Source = "score"
	SourceIssueDefault    Source = "issue_default"
	SourceCategoryDefault Source = "category_default"
	SourceFallback        Source = "fallback"
)

// Decision explains a classification.
type Decision struct {
	Severity       domain.Severity
	Source         Source
	MatchedPattern []string
	Scores         map[domain.Severity]int
}

type compiledPattern struct {
	level        domain.Severity
	tokens       []string
	alternatives [][]string
}

// hits counts the pattern tokens satisfied by words. Each token counts once.
func (p compiledPattern) hits(words map[string]struct{}) int {
	n := 0
	for _, forms := range p.alternatives {
		for _, form := range forms {
			if _, ok := words[form]; ok {
				n++
				break
			}
		}
	}
	return n
}

// Classifier evaluates a RuleSet. It holds no mutable state and is safe for
// concurrent use.
type Classifier struct {
	patterns         []compiledPattern
	categoryDefaults map[string]domain.Severity
	issueDefaults    map[string]map[string]domain.Severity
	fallback         domain.Severity
	rules            *RuleSet
}

// NewClassifier validates rs and compiles it. Rule sets with validation errors are rejected.
func NewClassifier(rs *RuleSet) (*Classifier, error) {
	if rs == nil {
		return nil, fmt.Errorf("nil rule set")
	}
	if err := Validate(rs).Err(); err != nil {
		return nil, err
	}

	c := &Classifier{
		categoryDefaults: make(map[string]domain.Severity, len(rs.CategoryDefaults)),
		issueDefaults:    make(map[string]map[string]domain.Severity, len(rs.IssueDefaults)),
		fallback:         rs.fallback(),
		rules:            rs,
	}
	for _, level := range domain.Severities {
		for _, p := range rs.PatternsFor(level) {
			tokens := p.Unique()
			cp := compiledPattern{level: level, tokens: tokens, alternatives: make([][]string, 0, len(tokens))}
			for _, tok := range tokens {
				cp.alternatives = append(cp.alternatives, rs.Synonyms.alternatives(tok))
			}
			c.patterns = append(c.patterns, cp)
		}
	}
	for category, sev := range rs.CategoryDefaults {
		c.categoryDefaults[normalizeKey(category)] = sev
	}
	for issue, row := range rs.IssueDefaults {
		compiled := make(map[string]domain.Severity, len(row))
		for category, sev := range row {
			compiled[normalizeKey(category)] = sev
		}
		c.issueDefaults[normalizeKey(issue)] = compiled
	}
	return c, nil
}

// Rules returns the rule set the classifier was built from.
func (c *Classifier) Rules() *RuleSet {
	return c.rules
}

// Classify maps a problem category and description to a severity. It never fails.
func (c *Classifier) Classify(category, description string) domain.Severity {
	return c.Evaluate(category, description).Severity
}

// ClassifyTicket is Classify with the issue type consulted before the flat
// category defaults when nothing in the description matches.
func (c *Classifier) ClassifyTicket(issueType, category, description string) domain.Severity {
	return c.EvaluateTicket(issueType, category, description).Severity
}

// Evaluate is Classify with the reasoning attached.
func (c *Classifier) Evaluate(category, description string) Decision {
	d := c.match(description)
	if d.Severity != "" {
		return d
	}
	d.Severity, d.Source = c.categoryDefault(category)
	return d
}

// EvaluateTicket is ClassifyTicket with the reasoning attached.
func (c *Classifier) EvaluateTicket(issueType, category, description string) Decision {
	d := c.match(description)
	if d.Severity != "" {
		return d
	}
	if row, ok := c.issueDefaults[normalizeKey(issueType)]; ok {
		if sev, ok := row[normalizeKey(category)]; ok {
			d.Severity, d.Source = sev, SourceIssueDefault
			return d
		}
	}
	d.Severity, d.Source = c.categoryDefault(category)
	return d
}

// match runs the pattern scan. A zero Severity in the result means no token
// matched anywhere.
func (c *Classifier) match(description string) Decision {
	words := tokenSet(Normalize(description))
	scores := make(map[domain.Severity]int, len(domain.Severities))
	for _, level := range domain.Severities {
		scores[level] = 0
	}

	for _, p := range c.patterns {
		n := p.hits(words)
		scores[p.level] += n
		if n == len(p.alternatives) {
			return Decision{
				Severity:       p.level,
				Source:         SourcePattern,
				MatchedPattern: append([]string(nil), p.tokens...),
				Scores:         scores,
			}
		}
	}

	best, bestScore := domain.Severity(""), 0
	for _, level := range domain.Severities {
		if scores[level] > bestScore {
			best, bestScore = level, scores[level]
		}
	}
	if bestScore == 0 {
		return Decision{Scores: scores}
	}
	return Decision{Severity: best, Source: SourceScore, Scores: scores}
}

func (c *Classifier) categoryDefault(category string) (domain.Severity, Source) {
	if sev, ok := c.categoryDefaults[normalizeKey(category)]; ok {
		return sev, SourceCategoryDefault
	}
	return c.fallback, SourceFallback
}
