package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-priority/internal/api/dto"
	"github.com/spec-kit/helpdesk-priority/internal/priority"
	"github.com/spec-kit/helpdesk-priority/internal/service"
	"github.com/spec-kit/helpdesk-priority/pkg/util/errorutil"
)

// PriorityHandler serves classification endpoints.
type PriorityHandler struct {
	service *service.PriorityService
}

// NewPriorityHandler constructs handler.
func NewPriorityHandler(priorityService *service.PriorityService) *PriorityHandler {
	return &PriorityHandler{service: priorityService}
}

// Classify POST /v1/priority/classify.
func (h *PriorityHandler) Classify(c *fiber.Ctx) error {
	var req dto.ClassifyRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	decision := h.service.Classify(service.ClassifyInput{
		IssueType:       req.IssueType,
		ProblemCategory: req.ProblemCategory,
		Description:     req.Description,
	})
	return c.JSON(fiber.Map{"data": classifyResponse(decision)})
}

// Rules GET /v1/priority/rules.
func (h *PriorityHandler) Rules(c *fiber.Ctx) error {
	summary := h.service.Rules()
	return c.JSON(fiber.Map{"data": dto.RulesResponse{
		Fallback:      summary.Fallback,
		PatternCounts: summary.PatternCounts,
		SynonymCount:  summary.SynonymCount,
		Categories:    summary.Categories,
		IssueTypes:    summary.IssueTypes,
		Validation: dto.ValidationReport{
			Errors:   nonNil(summary.Report.Errors()),
			Warnings: nonNil(summary.Report.Warnings()),
		},
	}})
}

func classifyResponse(d priority.Decision) dto.ClassifyResponse {
	matched := d.MatchedPattern
	if matched == nil {
		matched = []string{}
	}
	return dto.ClassifyResponse{
		Priority:       d.Severity,
		Source:         d.Source,
		MatchedPattern: matched,
		Scores:         d.Scores,
	}
}

func nonNil(issues []priority.Issue) []priority.Issue {
	if issues == nil {
		return []priority.Issue{}
	}
	return issues
}
