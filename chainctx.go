// Package chainctx provides a high-level façade over the context budgeting
// pipeline (planning, allocation, truncation, summarization) and the
// sequential chain runner. Most applications interact with this package by:
//  1. Creating a ChainCtx via New() (optionally overriding the transcript
//     store, token estimator, compaction config or logger)
//  2. Building a chain of model-backed steps via NewChain()
//  3. Running the chain; each step's prompt carries the compacted outputs of
//     all prior steps
//
// The façade delegates compaction to assemble.Assembler and execution to
// chain.Chain while keeping setup ergonomics concise. All defaults are safe
// for local development and testing; production deployments typically supply
// a durable transcript store, a provider-accurate token estimator and a
// structured logger.
package chainctx

import (
	"github.com/hupe1980/chainctx/assemble"
	"github.com/hupe1980/chainctx/chain"
	"github.com/hupe1980/chainctx/config"
	"github.com/hupe1980/chainctx/core"
	"github.com/hupe1980/chainctx/logging"
	"github.com/hupe1980/chainctx/prompt"
	"github.com/hupe1980/chainctx/session"
)

// Options configures the ChainCtx instance.
type Options struct {
	// Config controls compaction for chains built from this instance.
	Config assemble.Config

	// Estimator approximates token counts during compaction. Defaults to the
	// character heuristic if nil.
	Estimator core.TokenEstimator

	// Store persists run transcripts (defaults to in-memory if not provided).
	Store core.TranscriptStore

	// Builder renders bounded history into model requests.
	Builder *prompt.Builder

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ChainCtx is the high-level façade aggregating the compaction pipeline and
// the services shared by chains built from it.
type ChainCtx struct {
	opts      Options
	assembler *assemble.Assembler
}

// New creates a new ChainCtx instance with optional overrides. Any unset
// service is initialized with a default implementation.
func New(optFns ...func(o *Options)) *ChainCtx {
	opts := Options{
		Config: assemble.Config{Enabled: true, Strategy: core.StrategyIntelligent},
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Builder == nil {
		opts.Builder = prompt.NewBuilder()
	}

	a := assemble.New(func(o *assemble.Options) {
		o.Estimator = opts.Estimator
		o.Logger = opts.Logger
	})

	return &ChainCtx{opts: opts, assembler: a}
}

// FromSettings creates a ChainCtx wired from loaded configuration. The
// settings drive the compaction config and the assembler's budget shares,
// summarizer tuning and truncation marker; an Options.Estimator override is
// threaded through the whole pipeline.
func FromSettings(settings *config.Settings, optFns ...func(o *Options)) *ChainCtx {
	opts := Options{
		Store:  session.NewInMemoryStore(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	opts.Config = settings.CompactionConfig(opts.Logger)
	if opts.Builder == nil {
		opts.Builder = prompt.NewBuilder()
	}

	return &ChainCtx{opts: opts, assembler: settings.NewAssembler(opts.Logger, opts.Estimator)}
}

// NewChain builds a chain of ordered steps sharing this instance's services.
func (c *ChainCtx) NewChain(steps []chain.Step, optFns ...func(o *chain.Options)) (*chain.Chain, error) {
	base := func(o *chain.Options) {
		o.Assembler = c.assembler
		o.Builder = c.opts.Builder
		o.Store = c.opts.Store
		o.Config = c.opts.Config
		o.Logger = c.opts.Logger
	}
	return chain.New(steps, append([]func(o *chain.Options){base}, optFns...)...)
}

// Compact bounds an ordered response history for the given window using this
// instance's pipeline and config. It is the direct entry point for callers
// that manage their own model calls.
func (c *ChainCtx) Compact(responses []core.AgentResponse, window core.WindowProfile) ([]core.BoundedSegment, error) {
	return c.assembler.Process(responses, window, c.opts.Config)
}
