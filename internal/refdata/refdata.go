// Package refdata provides the read-only metrics dataset backing the
// thesis builder: market series, capital plan, phase metrics and the
// risk register. The dataset is loaded once at process start and never
// mutated afterwards.
package refdata

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// RiskLevel buckets a risk entry by severity.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Series is a titled label/value sequence used by the chart providers.
type Series struct {
	Title  string    `yaml:"title"`
	Labels []string  `yaml:"labels"`
	Values []float64 `yaml:"values"`
}

// DualSeries carries two aligned value tracks over the same labels
// (revenue vs. margin, current vs. target).
type DualSeries struct {
	Title     string    `yaml:"title"`
	Labels    []string  `yaml:"labels"`
	Primary   []float64 `yaml:"primary"`
	Secondary []float64 `yaml:"secondary"`
}

// Phase describes one roadmap phase with its duration and metric rows.
type Phase struct {
	ID       string  `yaml:"id"`
	Title    string  `yaml:"title"`
	Duration string  `yaml:"duration"`
	Metrics  Entries `yaml:"metrics"`
}

// Risk is a single named risk with a severity level.
type Risk struct {
	Level RiskLevel `yaml:"level"`
	Name  string    `yaml:"name"`
}

// Entry is one key/value row. Entries preserve document order, which a
// plain map would lose.
type Entry struct {
	Key   string
	Value string
}

// Entries is an ordered key/value list decoded from a YAML mapping.
type Entries []Entry

// UnmarshalYAML decodes a mapping node preserving key order.
func (e *Entries) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("refdata: expected mapping, got %v at line %d", node.Kind, node.Line)
	}
	out := make(Entries, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, Entry{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*e = out
	return nil
}

// Get returns the value for key and whether it exists.
func (e Entries) Get(key string) (string, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Dataset is the full reference dataset. All fields are read-only after
// Load.
type Dataset struct {
	Market          Series     `yaml:"market"`
	Capital         Series     `yaml:"capital"`
	PlatformOS      Series     `yaml:"platform_os"`
	PlatformKPIs    DualSeries `yaml:"platform_kpis"`
	ValueCreation   DualSeries `yaml:"value_creation"`
	ReturnScenarios Series     `yaml:"return_scenarios"`
	Phases          []Phase    `yaml:"phases"`
	CapitalPlan     Entries    `yaml:"capital_plan"`
	Risks           []Risk     `yaml:"risks"`
}

// Phase returns the phase with the given id.
func (d *Dataset) Phase(id string) (Phase, bool) {
	for _, p := range d.Phases {
		if p.ID == id {
			return p, true
		}
	}
	return Phase{}, false
}

// RisksByLevel returns the risks in the given severity bucket, in
// declared order.
func (d *Dataset) RisksByLevel(level RiskLevel) []Risk {
	var out []Risk
	for _, r := range d.Risks {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks structural invariants: unique phase ids and known
// risk levels.
func (d *Dataset) Validate() error {
	seen := make(map[string]struct{}, len(d.Phases))
	for _, p := range d.Phases {
		if p.ID == "" {
			return fmt.Errorf("refdata: phase with empty id")
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("refdata: duplicate phase id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	for _, r := range d.Risks {
		switch r.Level {
		case RiskHigh, RiskMedium, RiskLow:
		default:
			return fmt.Errorf("refdata: unknown risk level %q for %q", r.Level, r.Name)
		}
	}
	return nil
}

// Load reads a dataset from a YAML file.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("refdata: read %s: %w", path, err)
	}
	return LoadBytes(raw)
}

// LoadBytes parses a dataset from YAML bytes.
func LoadBytes(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("refdata: parse: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Default returns the embedded dataset. Panics if the embedded data is
// malformed, which is a build defect rather than a runtime condition.
func Default() *Dataset {
	d, err := LoadBytes(embeddedDataset)
	if err != nil {
		panic("refdata: embedded dataset invalid: " + err.Error())
	}
	return d
}
