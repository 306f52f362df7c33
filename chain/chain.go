package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/chainctx/assemble"
	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/internal/util"
	"github.com/hupe1980/chainctx/logging"
	"github.com/hupe1980/chainctx/model"
	"github.com/hupe1980/chainctx/prompt"
	"github.com/hupe1980/chainctx/session"
)

// Step is one agent invocation in a chain. Instructions may contain
// {{.Input}}, {{.RunID}} and {{.Outputs.<step_id>}} template markers that
// are expanded against the run state before each call.
type Step struct {
	// ID identifies the step and attributes its output in downstream
	// prompts. Must be unique within a chain.
	ID string
	// Instructions is the system prompt for the step's model call.
	Instructions string
	// Model drives the step's generation.
	Model model.Model
}

// StepResult captures one completed step: the bounded history it saw and the
// response it produced.
type StepResult struct {
	StepID   string
	Segments []core.BoundedSegment
	Response core.AgentResponse
}

// Result is the outcome of a full chain run. Final is the last step's output.
type Result struct {
	RunID    string
	Steps    []StepResult
	Final    string
	Duration time.Duration
}

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Assembler bounds each step's history. Defaults to a fresh default
	// assembler.
	Assembler *assemble.Assembler
	// Builder renders bounded segments into model requests.
	Builder *prompt.Builder
	// Store persists run transcripts.
	Store core.TranscriptStore
	// Config controls compaction per run.
	Config assemble.Config
	// Logger receives structured run/step logs.
	Logger logging.Logger
	// OnStep, when set, is invoked after every completed step.
	OnStep func(StepResult)
}

// Chain coordinates the sequential execution of steps with compacted shared
// history. Public methods are safe for concurrent use; each run keeps its
// own transcript keyed by a fresh run ID.
type Chain struct {
	steps     []Step
	assembler *assemble.Assembler
	builder   *prompt.Builder
	store     core.TranscriptStore
	config    assemble.Config
	logger    logging.Logger
	onStep    func(StepResult)
}

// New constructs a Chain from ordered steps with optional overrides. Steps
// must be non-empty, carry unique non-empty IDs and a model each.
func New(steps []Step, optFns ...func(o *Options)) (*Chain, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("chain requires at least one step")
	}
	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.ID == "" {
			return nil, fmt.Errorf("step %d has no id", i)
		}
		if seen[step.ID] {
			return nil, fmt.Errorf("duplicate step id %q", step.ID)
		}
		if step.Model == nil {
			return nil, fmt.Errorf("step %q has no model", step.ID)
		}
		seen[step.ID] = true
	}

	opts := Options{
		Config: assemble.Config{Enabled: true, Strategy: core.StrategyIntelligent},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Assembler == nil {
		opts.Assembler = assemble.New()
	}
	if opts.Builder == nil {
		opts.Builder = prompt.NewBuilder()
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Chain{
		steps:     steps,
		assembler: opts.Assembler,
		builder:   opts.Builder,
		store:     opts.Store,
		config:    opts.Config,
		logger:    opts.Logger,
		onStep:    opts.OnStep,
	}, nil
}

// Run executes all steps in order against the given user input. Each step
// receives the bounded history of all prior step outputs; errors stop
// further processing immediately. The context is checked between steps and
// passed to every model call.
func (c *Chain) Run(ctx context.Context, input string) (*Result, error) {
	runID := core.NewID()
	started := time.Now()
	logger := c.logger

	if _, err := c.store.Create(runID); err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}

	outputs := make(map[string]string, len(c.steps))
	result := &Result{RunID: runID, Steps: make([]StepResult, 0, len(c.steps))}

	for _, step := range c.steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stepResult, err := c.runStep(ctx, runID, step, input, outputs)
		if err != nil {
			logger.Error("chain run aborted", "run_id", runID, "step", step.ID, "error", err)
			return nil, fmt.Errorf("chain run %s failed at step %s: %w", runID, step.ID, err)
		}

		outputs[step.ID] = stepResult.Response.Text
		result.Steps = append(result.Steps, stepResult)
		result.Final = stepResult.Response.Text

		if c.onStep != nil {
			c.onStep(stepResult)
		}
	}

	result.Duration = time.Since(started)
	logger.Info("chain run completed", "run_id", runID, "steps", len(c.steps), "duration", result.Duration)
	return result, nil
}

// runStep bounds the prior history, builds the step prompt and invokes the
// step's model, recording its output on the run transcript.
func (c *Chain) runStep(ctx context.Context, runID string, step Step, input string, outputs map[string]string) (StepResult, error) {
	transcript, err := c.store.Get(runID)
	if err != nil {
		return StepResult{}, fmt.Errorf("failed to load transcript: %w", err)
	}

	window := step.Model.Info().WindowProfile()
	segments, err := c.assembler.Process(transcript.History(), window, c.config)
	if err != nil {
		return StepResult{}, fmt.Errorf("failed to bound history: %w", err)
	}

	instructions, err := util.RenderTemplate(step.Instructions, map[string]any{
		"Input":   input,
		"RunID":   runID,
		"Outputs": outputs,
	})
	if err != nil {
		return StepResult{}, fmt.Errorf("failed to render instructions: %w", err)
	}

	req := c.builder.Build(instructions, segments, input)

	started := time.Now()
	resp, err := step.Model.Generate(ctx, req)
	if err != nil {
		c.logger.Error("model call failed", "run_id", runID, "step", step.ID, "model", step.Model.Info().Name, "error", err)
		return StepResult{}, fmt.Errorf("model call failed: %w", err)
	}
	c.logger.Debug("model call completed",
		"run_id", runID,
		"step", step.ID,
		"model", step.Model.Info().Name,
		"duration", time.Since(started),
		"history_segments", len(segments),
	)

	recorded, err := c.store.AppendResponse(runID, step.ID, resp.Text)
	if err != nil {
		return StepResult{}, fmt.Errorf("failed to record response: %w", err)
	}

	return StepResult{StepID: step.ID, Segments: segments, Response: recorded}, nil
}
