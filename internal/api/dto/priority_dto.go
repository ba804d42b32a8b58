package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/priority"
)

// ClassifyRequest payload.
type ClassifyRequest struct {
	ProblemCategory string `json:"problem_category"`
	Description     string `json:"description"`
	IssueType       string `json:"issue_type"`
}

// ClassifyResponse explains a priority decision.
type ClassifyResponse struct {
	Priority       domain.Severity         `json:"priority"`
	Source         priority.Source         `json:"source"`
	MatchedPattern []string                `json:"matched_pattern"`
	Scores         map[domain.Severity]int `json:"scores"`
}

// TriageRequest payload.
type TriageRequest struct {
	Title           string  `json:"title"`
	IssueType       string  `json:"issue_type"`
	ProblemCategory string  `json:"problem_category"`
	Description     string  `json:"description"`
	TerminalID      *string `json:"terminal_id"`
}

// TicketDraftResponse is a triaged ticket.
type TicketDraftResponse struct {
	ExternalKey     string              `json:"external_key"`
	Title           string              `json:"title"`
	IssueType       domain.IssueType    `json:"issue_type"`
	ProblemCategory string              `json:"problem_category"`
	Description     string              `json:"description"`
	TerminalID      *string             `json:"terminal_id"`
	Status          domain.TicketStatus `json:"status"`
	Priority        domain.Severity     `json:"priority"`
	PrioritySource  string              `json:"priority_source"`
	CreatedAt       time.Time           `json:"created_at"`
}

// RulesResponse summarizes the active rule tables.
type RulesResponse struct {
	Fallback      domain.Severity         `json:"fallback"`
	PatternCounts map[domain.Severity]int `json:"pattern_counts"`
	SynonymCount  int                     `json:"synonym_count"`
	Categories    []string                `json:"categories"`
	IssueTypes    []string                `json:"issue_types"`
	Validation    ValidationReport        `json:"validation"`
}

// ValidationReport splits rule findings by level.
type ValidationReport struct {
	Errors   []priority.Issue `json:"errors"`
	Warnings []priority.Issue `json:"warnings"`
}
