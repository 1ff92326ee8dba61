package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
	"github.com/noetic-labs/thesisd/internal/lru"
	"github.com/noetic-labs/thesisd/internal/metrics"
	"github.com/noetic-labs/thesisd/internal/thesis"
)

// Artifact is a rendered export ready to be served as an attachment.
type Artifact struct {
	ContentType string
	Filename    string
	Data        []byte
}

// Request carries everything an export needs. Selections must be
// non-empty and Template and Options must be set.
type Request struct {
	Format     thesis.Format         `json:"format"`
	Selections []thesis.Selection    `json:"selections"`
	Template   *thesis.Template      `json:"template"`
	Options    *thesis.ExportOptions `json:"options"`
}

// Renderer is a format back-end.
type Renderer interface {
	Render(deck Deck, opts thesis.ExportOptions) (Artifact, error)
}

// Exporter runs the export pipeline. Renders are serialized: concurrent
// calls queue rather than interleave, so a burst of requests cannot
// amplify memory use by the number of callers.
type Exporter struct {
	mu        sync.Mutex
	builder   *thesis.PlanBuilder
	composer  *Composer
	renderers map[thesis.Format]Renderer
	cache     *lru.Cache[string, Artifact]
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewExporter wires the pipeline. cacheSize bounds the artifact cache;
// metrics may be nil in tests.
func NewExporter(builder *thesis.PlanBuilder, composer *Composer, m *metrics.Metrics, cacheSize int, logger zerolog.Logger) *Exporter {
	return &Exporter{
		builder:  builder,
		composer: composer,
		renderers: map[thesis.Format]Renderer{
			thesis.FormatDocument:  NewPDFRenderer(logger),
			thesis.FormatSlideDeck: NewDeckRenderer(logger),
		},
		cache:   lru.New[string, Artifact](cacheSize, lru.WithTTL[string, Artifact](15*time.Minute)),
		metrics: m,
		logger:  logger.With().Str("component", "exporter").Logger(),
	}
}

// Export validates the request, builds the plan, composes the layout
// tree and renders it. Identical requests within the cache TTL are
// served from the artifact cache without re-rendering.
func (e *Exporter) Export(ctx context.Context, req Request) (Artifact, error) {
	if err := e.validate(req); err != nil {
		e.recordError("validation")
		return Artifact{}, err
	}

	digest := requestDigest(req)
	if artifact, ok := e.cache.Get(digest); ok {
		e.recordCache("hit")
		e.recordExport(string(req.Format), "cached")
		return artifact, nil
	}
	e.recordCache("miss")

	e.mu.Lock()
	defer e.mu.Unlock()

	// A queued caller may find its artifact rendered by the request it
	// waited behind.
	if artifact, ok := e.cache.Get(digest); ok {
		e.recordExport(string(req.Format), "cached")
		return artifact, nil
	}

	if e.metrics != nil {
		e.metrics.ExportsInFlight.Inc()
		defer e.metrics.ExportsInFlight.Dec()
	}

	start := time.Now()
	artifact, err := e.render(ctx, req)
	if err != nil {
		e.recordExport(string(req.Format), "error")
		e.recordError(errorType(err))
		return Artifact{}, err
	}

	e.cache.Add(digest, artifact)
	e.recordExport(string(req.Format), "ok")
	if e.metrics != nil {
		e.metrics.ObserveExportDuration(string(req.Format), time.Since(start).Seconds())
		e.metrics.ObserveArtifactBytes(string(req.Format), len(artifact.Data))
	}

	e.logger.Info().
		Str("format", string(req.Format)).
		Str("template", req.Template.ID).
		Int("selections", len(req.Selections)).
		Int("bytes", len(artifact.Data)).
		Dur("elapsed", time.Since(start)).
		Msg("export complete")

	return artifact, nil
}

func (e *Exporter) render(ctx context.Context, req Request) (Artifact, error) {
	plan := e.builder.Build(req.Selections, *req.Template, *req.Options)
	if e.metrics != nil {
		e.metrics.ObservePlanPages(len(plan))
	}

	if err := ctx.Err(); err != nil {
		return Artifact{}, apperrors.NewExportError(string(req.Format), "plan",
			fmt.Errorf("%w: %v", apperrors.ErrTimeout, err))
	}

	deck, err := e.composer.Compose(plan)
	if err != nil {
		return Artifact{}, err
	}

	if err := ctx.Err(); err != nil {
		return Artifact{}, apperrors.NewExportError(string(req.Format), "compose",
			fmt.Errorf("%w: %v", apperrors.ErrTimeout, err))
	}

	renderer := e.renderers[req.Format]
	return renderer.Render(deck, *req.Options)
}

func (e *Exporter) validate(req Request) error {
	if !req.Format.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownFormat, req.Format)
	}
	if len(req.Selections) == 0 {
		return fmt.Errorf("%w: selections", apperrors.ErrMissingField)
	}
	if req.Template == nil {
		return fmt.Errorf("%w: template", apperrors.ErrMissingField)
	}
	if req.Options == nil {
		return fmt.Errorf("%w: options", apperrors.ErrMissingField)
	}
	return nil
}

func (e *Exporter) recordExport(format, status string) {
	if e.metrics != nil {
		e.metrics.RecordExport(format, status)
	}
}

func (e *Exporter) recordError(errType string) {
	if e.metrics != nil {
		e.metrics.RecordError("exporter", errType)
	}
}

func (e *Exporter) recordCache(outcome string) {
	if e.metrics != nil {
		e.metrics.RecordCacheLookup(outcome)
	}
}

func errorType(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return "validation"
	case apperrors.IsRetryable(err):
		return "timeout"
	default:
		return "render"
	}
}

// requestDigest returns a stable key for the request. Selections carry
// explicit order so JSON encoding is canonical for equal requests.
func requestDigest(req Request) string {
	raw, err := json.Marshal(req)
	if err != nil {
		// Request structs are plain data; Marshal cannot fail on them.
		return fmt.Sprintf("unkeyed-%p", &req)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
