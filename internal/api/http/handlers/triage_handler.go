package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-priority/internal/api/dto"
	"github.com/spec-kit/helpdesk-priority/internal/domain"
	"github.com/spec-kit/helpdesk-priority/internal/service"
	"github.com/spec-kit/helpdesk-priority/pkg/util/errorutil"
)

// TriageHandler prepares tickets for the helpdesk.
type TriageHandler struct {
	service *service.TriageService
}

// NewTriageHandler constructs handler.
func NewTriageHandler(triageService *service.TriageService) *TriageHandler {
	return &TriageHandler{service: triageService}
}

// Triage POST /v1/tickets/triage.
func (h *TriageHandler) Triage(c *fiber.Ctx) error {
	var req dto.TriageRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	draft, err := h.service.Triage(c.UserContext(), service.TriageInput{
		Title:           req.Title,
		IssueType:       req.IssueType,
		ProblemCategory: req.ProblemCategory,
		Description:     req.Description,
		TerminalID:      req.TerminalID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDraft(draft)})
}

func ticketDraft(d *domain.TicketDraft) dto.TicketDraftResponse {
	return dto.TicketDraftResponse{
		ExternalKey:     d.ExternalKey,
		Title:           d.Title,
		IssueType:       d.IssueType,
		ProblemCategory: d.ProblemCategory,
		Description:     d.Description,
		TerminalID:      d.TerminalID,
		Status:          d.Status,
		Priority:        d.Priority,
		PrioritySource:  d.PrioritySource,
		CreatedAt:       d.CreatedAt,
	}
}
