package batch

import (
	"context"
	"sync"
	"time"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
	"github.com/reusedev/mockup-hub/internal/modules/logs"
	"github.com/reusedev/mockup-hub/internal/modules/store"
)

// Spec is one invocation of the orchestration loop. Retries are ordinary
// specs over a subset of mediums.
type Spec struct {
	BatchID     string
	SourceImage []byte
	Mediums     []consts.Medium
	AspectRatio consts.AspectRatio
	Sampling    image.SamplingConfig
}

// Outcome is the terminal state of one medium inside a batch.
type Outcome struct {
	Medium consts.Medium
	Result *store.Result // nil on failure
	Kind   consts.FailureKind
	Reason string
}

func (o Outcome) Succeed() bool {
	return o.Result != nil
}

// Generator produces one mockup for one medium. Implementations classify
// their own failures.
type Generator interface {
	Generate(ctx context.Context, spec Spec, medium consts.Medium) Outcome
}

type Runner struct {
	store        *store.Store
	generator    Generator
	tickInterval time.Duration
	displayDelay time.Duration
}

type Option func(*Runner)

func WithTickInterval(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.tickInterval = d
		}
	}
}

func WithDisplayDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.displayDelay = d
		}
	}
}

func NewRunner(st *store.Store, generator Generator, opts ...Option) *Runner {
	r := &Runner{
		store:        st,
		generator:    generator,
		tickInterval: 800 * time.Millisecond,
		displayDelay: 1500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives one batch to completion and returns every medium's outcome.
// A nil, nil return means the spec was a no-op (missing source image or
// empty medium set). Mediums already in flight are rejected, not queued.
func (r *Runner) Run(ctx context.Context, spec Spec) ([]Outcome, error) {
	if len(spec.SourceImage) == 0 || len(spec.Mediums) == 0 {
		return nil, nil
	}
	accepted, epochs, rejected := r.store.Begin(spec.Mediums, startPercent, "Preparing your design")
	for _, m := range rejected {
		logs.Logger.Warn().
			Str("batch_id", spec.BatchID).
			Str("medium", m.String()).
			Msg("medium already in flight, rejecting")
	}
	if len(accepted) == 0 {
		return nil, nil
	}
	// A retry is indistinguishable from a fresh batch except that prior
	// failure entries for its mediums are cleared up front.
	r.store.ClearFailures(accepted)

	outcomes := make([]Outcome, len(accepted))
	wg := &sync.WaitGroup{}
	for i, medium := range accepted {
		wg.Add(1)
		go func(i int, medium consts.Medium) {
			defer wg.Done()
			outcomes[i] = r.runOne(ctx, spec, medium, epochs[medium])
		}(i, medium)
	}
	wg.Wait()

	r.aggregate(spec, outcomes)
	return outcomes, nil
}

func (r *Runner) runOne(ctx context.Context, spec Spec, medium consts.Medium, epoch uint64) Outcome {
	simCtx, stopSim := context.WithCancel(ctx)
	go r.simulateProgress(simCtx, r.store, medium, epoch)

	outcome := r.generator.Generate(ctx, spec, medium)
	outcome.Medium = medium
	stopSim()

	if outcome.Succeed() {
		r.store.UpdateProgress(medium, epoch, 100, consts.PhaseSuccess, "Done")
	} else {
		r.store.UpdateProgress(medium, epoch, 0, consts.PhaseError, outcome.Reason)
	}
	// Keep the terminal state visible briefly, then drop the entry.
	time.AfterFunc(r.displayDelay, func() {
		r.store.RemoveProgress(medium, epoch)
	})
	return outcome
}

// aggregate applies the settled batch to the store in one pass: successes
// prepended to history, failures replacing stale entries, successful mediums
// dropped from the selection.
func (r *Runner) aggregate(spec Spec, outcomes []Outcome) {
	var results []store.Result
	var failures []store.Failure
	var succeeded []consts.Medium
	for _, o := range outcomes {
		if o.Succeed() {
			results = append(results, *o.Result)
			succeeded = append(succeeded, o.Medium)
			continue
		}
		failures = append(failures, store.Failure{
			Medium: o.Medium,
			Reason: o.Reason,
			Kind:   o.Kind,
			At:     time.Now(),
		})
	}
	if len(results) > 0 {
		r.store.AddResults(results...)
	}
	if len(failures) > 0 {
		r.store.RecordFailures(failures)
	}
	if len(succeeded) > 0 {
		r.store.DropFromSelection(succeeded)
	}
	logs.Logger.Info().
		Str("batch_id", spec.BatchID).
		Int("requested", len(outcomes)).
		Int("succeeded", len(results)).
		Int("failed", len(failures)).
		Msg("batch settled")
}
