package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/events"
	"github.com/spec-kit/helpdesk-priority/pkg/util/errorutil"
)

// TriageService prepares incoming tickets: it assigns a key and a priority and
// announces the decision.
type TriageService struct {
	priorities *PriorityService
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// TriageInput describes a ticket submitted for triage.
type TriageInput struct {
	Title           string
	IssueType       string
	ProblemCategory string
	Description     string
	TerminalID      *string
}

// NewTriageService constructs the service. dispatcher may be nil.
func NewTriageService(priorities *PriorityService, dispatcher events.Dispatcher, logger *zap.Logger) *TriageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TriageService{
		priorities: priorities,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Triage builds a ticket draft with its priority decided from the description.
func (s *TriageService) Triage(ctx context.Context, input TriageInput) (*domain.TicketDraft, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" && description == "" {
		return nil, errorutil.NewValidationError("title or description is required", map[string]any{
			"fields": []string{"title", "description"},
		})
	}

	category := strings.ToLower(strings.TrimSpace(input.ProblemCategory))
	if category == "" {
		category = domain.DefaultProblemCategory
	}
	issueType := domain.IssueType(strings.ToLower(strings.TrimSpace(input.IssueType)))
	if issueType == "" {
		issueType = domain.IssueTypeTechnicalOutage
	}

	var terminalID *string
	if input.TerminalID != nil {
		if trimmed := strings.TrimSpace(*input.TerminalID); trimmed != "" {
			terminalID = &trimmed
		}
	}

	decision := s.priorities.Classify(ClassifyInput{
		IssueType:       string(issueType),
		ProblemCategory: category,
		Description:     description,
	})

	draft := &domain.TicketDraft{
		ExternalKey:     generateTicketKey(),
		Title:           title,
		IssueType:       issueType,
		ProblemCategory: category,
		Description:     description,
		TerminalID:      terminalID,
		Status:          domain.TicketStatusOpen,
		Priority:        decision.Severity,
		PrioritySource:  string(decision.Source),
		CreatedAt:       s.now(),
	}

	s.publishEvent(ctx, events.NewEvent(events.EventTicketPriorityAssigned, draft.ExternalKey, events.PriorityAssignedPayload{
		IssueType:       issueType,
		ProblemCategory: category,
		Priority:        decision.Severity,
		Source:          string(decision.Source),
		MatchedPattern:  decision.MatchedPattern,
		Scores:          decision.Scores,
		TerminalID:      terminalID,
	}))

	s.logger.Info("ticket triaged",
		zap.String("ticket_key", draft.ExternalKey),
		zap.String("issue_type", string(issueType)),
		zap.String("problem_category", category),
		zap.String("priority", string(draft.Priority)),
		zap.String("source", draft.PrioritySource))
	return draft, nil
}

func generateTicketKey() string {
	return "TCK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *TriageService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
