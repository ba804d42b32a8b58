package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketPriorityAssigned EventType = "ticket_priority_assigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketKey string      `json:"ticket_key"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current UTC time.
func NewEvent(eventType EventType, ticketKey string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TicketKey: ticketKey,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// PriorityAssignedPayload describes how a triaged ticket got its priority.
type PriorityAssignedPayload struct {
	IssueType       domain.IssueType        `json:"issue_type"`
	ProblemCategory string                  `json:"problem_category"`
	Priority        domain.Severity         `json:"priority"`
	Source          string                  `json:"source"`
	MatchedPattern  []string                `json:"matched_pattern,omitempty"`
	Scores          map[domain.Severity]int `json:"scores"`
	TerminalID      *string                 `json:"terminal_id,omitempty"`
}
