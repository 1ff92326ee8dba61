package httpapi

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
	"github.com/noetic-labs/thesisd/internal/export"
	"github.com/noetic-labs/thesisd/internal/health"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Handlers holds dependencies for HTTP handlers.
type Handlers struct {
	exporter      *export.Exporter
	catalog       *thesis.Catalog
	builder       *thesis.PlanBuilder
	checker       *health.Checker
	exportTimeout time.Duration
	logger        zerolog.Logger
	startTime     time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	exporter *export.Exporter,
	catalog *thesis.Catalog,
	builder *thesis.PlanBuilder,
	checker *health.Checker,
	exportTimeout time.Duration,
	logger zerolog.Logger,
) *Handlers {
	return &Handlers{
		exporter:      exporter,
		catalog:       catalog,
		builder:       builder,
		checker:       checker,
		exportTimeout: exportTimeout,
		logger:        logger.With().Str("component", "handlers").Logger(),
		startTime:     time.Now(),
	}
}

// Export handles POST /api/v1/thesis/export. On success the rendered
// artifact is returned as a binary attachment; every failure is JSON.
func (h *Handlers) Export(c *fiber.Ctx) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"invalid request body", err.Error())
	}

	if !req.Format.Valid() {
		return errorResponse(c, fiber.StatusBadRequest,
			"unknown format", "format must be \"document\" or \"slide-deck\"")
	}
	if len(req.Selections) == 0 {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing selections", "at least one selection is required")
	}

	if req.Template == nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing template", "a template is required")
	}
	tpl, ok := thesis.TemplateByID(req.Template.ID)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest,
			"unknown template", "no template with id "+strconv.Quote(req.Template.ID))
	}
	if req.Options == nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing options", "export options are required")
	}
	opts := thesis.DefaultOptions().Apply(*req.Options)

	ctx, cancel := context.WithTimeout(c.Context(), h.exportTimeout)
	defer cancel()

	artifact, err := h.exporter.Export(ctx, export.Request{
		Format:     req.Format,
		Selections: req.Selections,
		Template:   &tpl,
		Options:    &opts,
	})
	if err != nil {
		if apperrors.IsValidation(err) {
			return errorResponse(c, fiber.StatusBadRequest,
				"invalid export request", err.Error())
		}
		h.logger.Error().Err(err).Str("format", string(req.Format)).Msg("export failed")
		return errorResponse(c, fiber.StatusInternalServerError,
			"failed to export thesis", err.Error())
	}

	c.Set(fiber.HeaderContentType, artifact.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+artifact.Filename+`"`)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(len(artifact.Data)))
	return c.Send(artifact.Data)
}

// Plan handles POST /api/v1/thesis/plan. It returns the deterministic
// page plan an export of the same request would render.
func (h *Handlers) Plan(c *fiber.Ctx) error {
	var req PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"invalid request body", err.Error())
	}
	if len(req.Selections) == 0 {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing selections", "at least one selection is required")
	}

	if req.Template == nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing template", "a template is required")
	}
	tpl, ok := thesis.TemplateByID(req.Template.ID)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest,
			"unknown template", "no template with id "+strconv.Quote(req.Template.ID))
	}

	opts := thesis.DefaultOptions()
	if req.Options != nil {
		opts = opts.Apply(*req.Options)
	}

	plan := h.builder.Build(req.Selections, tpl, opts)
	return c.JSON(PlanResponse{
		Pages:          plan,
		EstimatedPages: thesis.EstimatePages(plan, opts),
	})
}

// Score handles POST /api/v1/thesis/score.
func (h *Handlers) Score(c *fiber.Ctx) error {
	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"invalid request body", err.Error())
	}

	if req.Template == nil {
		return errorResponse(c, fiber.StatusBadRequest,
			"missing template", "a template is required")
	}
	tpl, ok := thesis.TemplateByID(req.Template.ID)
	if !ok {
		return errorResponse(c, fiber.StatusBadRequest,
			"unknown template", "no template with id "+strconv.Quote(req.Template.ID))
	}

	return c.JSON(ScoreResponse{
		TemplateID:    tpl.ID,
		Compatibility: thesis.Score(tpl, req.Selections),
	})
}

// Catalog handles GET /api/v1/thesis/catalog. Category and free-text filters
// come from query parameters.
func (h *Handlers) Catalog(c *fiber.Ctx) error {
	f := thesis.Filter{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	items := h.catalog.ListAvailable(f, nil)
	return c.JSON(CatalogResponse{Items: items})
}

// Templates handles GET /api/v1/thesis/templates.
func (h *Handlers) Templates(c *fiber.Ctx) error {
	return c.JSON(TemplatesResponse{Templates: thesis.Templates()})
}

// Liveness handles GET /healthz.
func (h *Handlers) Liveness(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(h.startTime).String(),
	})
}

// Readiness handles GET /readyz.
func (h *Handlers) Readiness(c *fiber.Ctx) error {
	results := h.checker.RunAll(c.Context())

	ready := true
	for _, s := range results {
		if s == health.StatusDown {
			ready = false
			break
		}
	}

	status := "ready"
	code := fiber.StatusOK
	if !ready {
		status = "not_ready"
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": results,
	})
}
