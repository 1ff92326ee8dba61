package thesis

import (
	"sync"

	apperrors "github.com/noetic-labs/thesisd/internal/errors"
)

// Step is a wizard stage. Later steps are gated on the state the
// earlier steps produce; an unmet precondition is not an error, the
// step is simply unreachable.
type Step string

const (
	StepSelect   Step = "select"
	StepTemplate Step = "template"
	StepPreview  Step = "preview"
	StepExport   Step = "export"
)

// Session is the process-local builder state for one thesis document:
// the current selections, chosen template, export options and wizard
// step. Sessions are created fresh and torn down with their owner;
// nothing is persisted.
type Session struct {
	mu sync.Mutex

	catalog *Catalog
	builder *PlanBuilder

	selections []Selection
	template   *Template
	options    ExportOptions
	step       Step

	exporting bool
}

// NewSession creates a session with default options at the select
// step.
func NewSession(catalog *Catalog, builder *PlanBuilder) *Session {
	return &Session{
		catalog: catalog,
		builder: builder,
		options: DefaultOptions(),
		step:    StepSelect,
	}
}

// Selections returns a copy of the current selection list.
func (s *Session) Selections() []Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Selection, len(s.selections))
	copy(out, s.selections)
	return out
}

// Toggle adds or removes the item with the given id.
func (s *Session) Toggle(id string) []Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = s.catalog.Toggle(s.selections, id)
	return s.selections
}

// Reorder moves a selection and renumbers display orders.
func (s *Session) Reorder(from, to int) []Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = Reorder(s.selections, from, to)
	return s.selections
}

// Template returns the chosen template, or nil before the template
// step completes.
func (s *Session) Template() *Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SetTemplate chooses a template by id.
func (s *Session) SetTemplate(id string) bool {
	tpl, ok := TemplateByID(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = &tpl
	return true
}

// Options returns the current export options.
func (s *Session) Options() ExportOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options
}

// PatchOptions merges a partial update into the export options.
func (s *Session) PatchOptions(p OptionsPatch) ExportOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = s.options.Apply(p)
	return s.options
}

// Step returns the current wizard step.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Advance moves to the given step if its precondition is met. The
// template step needs at least one selection; preview and export also
// need a chosen template.
func (s *Session) Advance(to Step) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch to {
	case StepSelect:
	case StepTemplate:
		if len(s.selections) == 0 {
			return false
		}
	case StepPreview, StepExport:
		if len(s.selections) == 0 || s.template == nil {
			return false
		}
	default:
		return false
	}
	s.step = to
	return true
}

// Plan builds the current page plan, or nil when no template is
// chosen yet.
func (s *Session) Plan() []Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.template == nil {
		return nil
	}
	return s.builder.Build(s.selections, *s.template, s.options)
}

// BeginExport claims the session's single export slot. A second export
// while one is pending is rejected with ErrExportInFlight.
func (s *Session) BeginExport() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exporting {
		return apperrors.ErrExportInFlight
	}
	s.exporting = true
	return nil
}

// EndExport releases the export slot.
func (s *Session) EndExport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exporting = false
}
