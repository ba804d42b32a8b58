package domain

import "time"

// IssueType enumerates the ticket intake classes offered by the helpdesk form.
type IssueType string

const (
	IssueTypeTechnicalOutage       IssueType = "technical outage"
	IssueTypeCybersecurityIncident IssueType = "cybersecurity incident"
	IssueTypeClientComplaint       IssueType = "client complaint"
	IssueTypeSLABreach             IssueType = "sla breach"
)

// DefaultProblemCategory is used when a ticket arrives without a category.
const DefaultProblemCategory = "other"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketDraft is a ticket prepared for creation, before it is persisted by the helpdesk.
type TicketDraft struct {
	ExternalKey     string
	Title           string
	IssueType       IssueType
	ProblemCategory string
	Description     string
	TerminalID      *string
	Status          TicketStatus
	Priority        Severity
	PrioritySource  string
	CreatedAt       time.Time
}
