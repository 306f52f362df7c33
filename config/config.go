package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/chainctx/assemble"
	"github.com/hupe1980/chainctx/budget"
	"github.com/hupe1980/chainctx/chain"
	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/logging"
	"github.com/hupe1980/chainctx/model"
	"github.com/hupe1980/chainctx/summarize"
	"github.com/hupe1980/chainctx/truncate"
)

// ContextSettings controls the compaction pipeline.
type ContextSettings struct {
	// Enabled toggles compaction of prior step outputs.
	Enabled bool `yaml:"enabled"`

	// Strategy: "intelligent_truncation" (default) | "simple_truncation" |
	// "summarization_only". Unknown values fall back to the default with a
	// warning.
	Strategy string `yaml:"strategy"`

	// HistoryShare is the fraction of post-overhead window capacity spent
	// on history. 0 means the default (0.6).
	HistoryShare float64 `yaml:"history_share"`

	// Tier caps as fractions of the history budget; 0 means the default.
	MostRecentShare   float64 `yaml:"most_recent_share"`
	SecondRecentShare float64 `yaml:"second_recent_share"`
	OlderShare        float64 `yaml:"older_share"`
}

// SummarizerSettings tunes the extractive summarizer.
type SummarizerSettings struct {
	// Indicators overrides the importance indicator word list.
	Indicators []string `yaml:"indicators"`

	// Scoring weights; 0 means the default.
	IndicatorWeight int `yaml:"indicator_weight"`
	NumericWeight   int `yaml:"numeric_weight"`
	PositionWeight  int `yaml:"position_weight"`
}

// TruncationSettings tunes the truncation marker.
type TruncationSettings struct {
	// MarkerFormat is the fmt string for the truncation marker; it must
	// contain exactly one %d verb.
	MarkerFormat string `yaml:"marker_format"`
}

// StepSettings declares one chain step. Provider and Model name the backing
// model; Instructions may carry {{...}} template markers.
type StepSettings struct {
	ID           string `yaml:"id"`
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	Instructions string `yaml:"instructions"`
}

// Settings is the root configuration document.
type Settings struct {
	Context    ContextSettings               `yaml:"context"`
	Summarizer SummarizerSettings            `yaml:"summarizer"`
	Truncation TruncationSettings            `yaml:"truncation"`
	Windows    map[string]core.WindowProfile `yaml:"windows"`
	Steps      []StepSettings                `yaml:"steps"`
}

// Default returns settings with compaction enabled under the default
// strategy and no declared steps or window overrides.
func Default() *Settings {
	return &Settings{Context: ContextSettings{Enabled: true}}
}

// Load reads and parses a settings file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes settings from YAML bytes.
func Parse(data []byte) (*Settings, error) {
	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return settings, nil
}

// CompactionConfig resolves the per-run compaction config. An unknown
// strategy value is logged as a warning and replaced with the fallback.
func (s *Settings) CompactionConfig(logger logging.Logger) assemble.Config {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	strategy, err := core.ParseStrategy(s.Context.Strategy)
	if err != nil {
		logger.Warn("unknown compaction strategy, falling back",
			"configured", s.Context.Strategy,
			"fallback", strategy.String(),
		)
	}
	return assemble.Config{Enabled: s.Context.Enabled, Strategy: strategy}
}

// NewAssembler builds an assembler wired from these settings. A non-nil
// estimator replaces the default character heuristic throughout the pipeline:
// the assembler's own estimates, the truncator and the summarizer.
func (s *Settings) NewAssembler(logger logging.Logger, estimator core.TokenEstimator) *assemble.Assembler {
	return assemble.New(func(o *assemble.Options) {
		o.Logger = logger
		o.Estimator = estimator
		o.Planner = budget.NewPlanner(func(po *budget.PlannerOptions) {
			if s.Context.HistoryShare > 0 {
				po.HistoryShare = s.Context.HistoryShare
			}
		})
		o.Allocator = budget.NewAllocator(func(ao *budget.AllocatorOptions) {
			if s.Context.MostRecentShare > 0 {
				ao.MostRecentShare = s.Context.MostRecentShare
			}
			if s.Context.SecondRecentShare > 0 {
				ao.SecondRecentShare = s.Context.SecondRecentShare
			}
			if s.Context.OlderShare > 0 {
				ao.OlderShare = s.Context.OlderShare
			}
		})
		o.Summarizer = summarize.New(func(so *summarize.Options) {
			so.Indicators = s.Summarizer.Indicators
			if s.Summarizer.IndicatorWeight > 0 {
				so.IndicatorWeight = s.Summarizer.IndicatorWeight
			}
			if s.Summarizer.NumericWeight > 0 {
				so.NumericWeight = s.Summarizer.NumericWeight
			}
			if s.Summarizer.PositionWeight > 0 {
				so.PositionWeight = s.Summarizer.PositionWeight
			}
			so.Estimator = estimator
			so.MarkerFormat = s.Truncation.MarkerFormat
		})
		o.Truncator = truncate.New(func(to *truncate.Options) {
			to.Estimator = estimator
			to.MarkerFormat = s.Truncation.MarkerFormat
		})
	})
}

// Window returns the configured window profile for a model name.
func (s *Settings) Window(modelName string) (core.WindowProfile, bool) {
	w, ok := s.Windows[modelName]
	return w, ok
}

// ModelFactory constructs a model from a step's provider and model name.
// Implementations typically dispatch to the anthropic/openai adapters or a
// mock; keeping construction behind a factory keeps API keys and SDK wiring
// out of this package.
type ModelFactory func(provider, modelName string) (model.Model, error)

// BuildSteps materializes the declared steps using the supplied factory.
func (s *Settings) BuildSteps(factory ModelFactory) ([]chain.Step, error) {
	if factory == nil {
		return nil, fmt.Errorf("model factory is required")
	}
	steps := make([]chain.Step, 0, len(s.Steps))
	for _, sc := range s.Steps {
		m, err := factory(sc.Provider, sc.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to build model for step %q: %w", sc.ID, err)
		}
		steps = append(steps, chain.Step{ID: sc.ID, Instructions: sc.Instructions, Model: m})
	}
	return steps, nil
}
