package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noetic-labs/thesisd/internal/thesis"
)

// ExportRequest is the body of POST /api/v1/thesis/export. The template
// is sent as a full object; only its id is trusted, the registry copy is
// what gets rendered.
type ExportRequest struct {
	Format     thesis.Format        `json:"format"`
	Selections []thesis.Selection   `json:"selections"`
	Template   *thesis.Template     `json:"template"`
	Options    *thesis.OptionsPatch `json:"options"`
}

// PlanRequest is the body of POST /api/v1/thesis/plan.
type PlanRequest struct {
	Selections []thesis.Selection   `json:"selections"`
	Template   *thesis.Template     `json:"template"`
	Options    *thesis.OptionsPatch `json:"options"`
}

// PlanResponse carries a built page plan.
type PlanResponse struct {
	Pages          []thesis.Page `json:"pages"`
	EstimatedPages int           `json:"estimated_pages"`
}

// ScoreRequest is the body of POST /api/v1/thesis/score.
type ScoreRequest struct {
	Selections []thesis.Selection `json:"selections"`
	Template   *thesis.Template   `json:"template"`
}

// ScoreResponse carries a template compatibility score.
type ScoreResponse struct {
	TemplateID    string               `json:"template_id"`
	Compatibility thesis.Compatibility `json:"compatibility"`
}

// CatalogResponse lists catalog items with their selection state.
type CatalogResponse struct {
	Items []thesis.Selection `json:"items"`
}

// TemplatesResponse lists the template registry.
type TemplatesResponse struct {
	Templates []thesis.Template `json:"templates"`
}

// ErrorResponse is the JSON error body for all failure responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func errorResponse(c *fiber.Ctx, status int, msg, details string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg, Details: details})
}
