package pipeline

import (
	"context"
	"log/slog"

	"github.com/exportscout/exportscout/internal/model"
)

// Step defines the interface that all pipeline steps implement.
// Steps run in sequence, each filling in its section of the report.
//
// Design decision: an interface rather than function types because steps
// carry configuration state (sources, limits) and a Name() method keeps
// logging and the report's stage trail consistent.
type Step interface {
	// Do executes the step, mutating the report in place.
	// A returned error is fatal to the run; degradable failures must be
	// recorded on the report and return nil instead.
	Do(ctx context.Context, report *model.ResearchReport) error

	// Name returns the step's name for logging and the stage trail.
	Name() string
}

// Pipeline executes research steps in order for a single brand URL.
type Pipeline struct {
	// steps is the ordered step list.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline. Add steps with AddSteps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps; they execute in the order added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all steps in sequence.
//
// The pipeline stops on the first step error: only the scrape step
// returns errors, and a failed scrape means no downstream stage has
// anything to work with. Degradable failures never reach here; steps
// record them on the report and return nil.
//
// Cancellation is checked between steps. Steps bound their own network
// calls via the context and client timeouts.
func (p *Pipeline) Execute(ctx context.Context, report *model.ResearchReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("research cancelled",
				"step", step.Name(),
				"brandURL", report.BrandURL,
				"reason", ctx.Err(),
			)
			report.TimedOut = true
			return ctx.Err()
		default:
		}

		p.logger.Info("executing step",
			"step", step.Name(),
			"brandURL", report.BrandURL,
		)

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"brandURL", report.BrandURL,
				"error", err,
			)

			report.Error = err
			report.ErrorMessage = err.Error()
			return err
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"brandURL", report.BrandURL,
		)

		report.PerformedStages = append(report.PerformedStages, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
