package batch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/store"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	mu       sync.Mutex
	delay    time.Duration
	failWith map[consts.Medium]consts.FailureKind
	calls    []consts.Medium
}

func (f *fakeGenerator) Generate(ctx context.Context, spec Spec, medium consts.Medium) Outcome {
	f.mu.Lock()
	f.calls = append(f.calls, medium)
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if kind, ok := f.failWith[medium]; ok {
		return Outcome{Medium: medium, Kind: kind, Reason: "supplier rejected"}
	}
	return Outcome{Medium: medium, Result: &store.Result{
		Id:        uuid.New().String(),
		Medium:    medium,
		CreatedAt: time.Now(),
	}}
}

func (f *fakeGenerator) mediums() []consts.Medium {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]consts.Medium(nil), f.calls...)
}

func newTestRunner(st *store.Store, gen Generator) *Runner {
	return NewRunner(st, gen, WithTickInterval(5*time.Millisecond), WithDisplayDelay(10*time.Millisecond))
}

func spec(mediums ...consts.Medium) Spec {
	return Spec{
		BatchID:     uuid.New().String(),
		SourceImage: []byte{0x89, 'P', 'N', 'G'},
		Mediums:     mediums,
		AspectRatio: consts.AspectSquare,
	}
}

func TestRunNoOpWithoutSourceImage(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{}
	r := newTestRunner(st, gen)

	s := spec(consts.MediumMug)
	s.SourceImage = nil
	outcomes, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	require.Nil(t, outcomes)
	require.Empty(t, gen.mediums())
}

func TestRunNoOpWithEmptyMediums(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{}
	r := newTestRunner(st, gen)

	outcomes, err := r.Run(context.Background(), spec())
	require.NoError(t, err)
	require.Nil(t, outcomes)
}

func TestRunAllSucceed(t *testing.T) {
	st := store.New()
	st.SetSelection([]consts.Medium{consts.MediumMug, consts.MediumPoster})
	gen := &fakeGenerator{delay: 20 * time.Millisecond}
	r := newTestRunner(st, gen)

	outcomes, err := r.Run(context.Background(), spec(consts.MediumMug, consts.MediumPoster))
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		require.True(t, o.Succeed())
	}
	require.Len(t, st.Results(), 2)
	require.Empty(t, st.Failures())
	require.Empty(t, st.Selection())
}

func TestRunPartialFailure(t *testing.T) {
	st := store.New()
	st.SetSelection([]consts.Medium{consts.MediumMug, consts.MediumPoster})
	gen := &fakeGenerator{
		delay:    20 * time.Millisecond,
		failWith: map[consts.Medium]consts.FailureKind{consts.MediumPoster: consts.FailureRateLimit},
	}
	r := newTestRunner(st, gen)

	outcomes, err := r.Run(context.Background(), spec(consts.MediumMug, consts.MediumPoster))
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	require.Len(t, st.Results(), 1)
	require.Equal(t, consts.MediumMug, st.Results()[0].Medium)

	failures := st.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, consts.MediumPoster, failures[0].Medium)
	require.Equal(t, consts.FailureRateLimit, failures[0].Kind)

	// failed mediums stay selected for easy retry
	require.Equal(t, []consts.Medium{consts.MediumPoster}, st.Selection())

	// a medium in the failure list is never simultaneously in flight
	for _, p := range st.Progress() {
		require.NotEqual(t, consts.MediumPoster, p.Medium)
	}
}

func TestEveryMediumSettles(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{
		delay: 15 * time.Millisecond,
		failWith: map[consts.Medium]consts.FailureKind{
			consts.MediumTruck: consts.FailureServer,
		},
	}
	r := newTestRunner(st, gen)

	mediums := []consts.Medium{consts.MediumMug, consts.MediumPoster, consts.MediumTruck, consts.MediumTShirt}
	outcomes, err := r.Run(context.Background(), spec(mediums...))
	require.NoError(t, err)
	require.Len(t, outcomes, len(mediums))

	succeeded, failed := 0, 0
	for _, o := range outcomes {
		if o.Succeed() {
			succeeded++
		} else {
			failed++
		}
	}
	require.Equal(t, len(mediums), succeeded+failed)

	// no medium is left pending once the display window passes
	require.Eventually(t, func() bool {
		return len(st.Progress()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRetryClearsOnlyRetriedFailure(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{
		delay: 10 * time.Millisecond,
		failWith: map[consts.Medium]consts.FailureKind{
			consts.MediumMug:    consts.FailureRateLimit,
			consts.MediumPoster: consts.FailureServer,
		},
	}
	r := newTestRunner(st, gen)

	_, err := r.Run(context.Background(), spec(consts.MediumMug, consts.MediumPoster))
	require.NoError(t, err)
	require.Len(t, st.Failures(), 2)

	// retry only the mug, this time it succeeds
	gen.mu.Lock()
	delete(gen.failWith, consts.MediumMug)
	gen.mu.Unlock()
	_, err = r.Run(context.Background(), spec(consts.MediumMug))
	require.NoError(t, err)

	failures := st.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, consts.MediumPoster, failures[0].Medium)
	require.Len(t, st.Results(), 1)
}

func TestOverlappingMediumRejected(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{delay: 80 * time.Millisecond}
	r := newTestRunner(st, gen)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = r.Run(context.Background(), spec(consts.MediumMug))
	}()
	require.Eventually(t, func() bool {
		return st.InFlight(consts.MediumMug)
	}, time.Second, 5*time.Millisecond)

	// second invocation for the same medium is rejected outright
	outcomes, err := r.Run(context.Background(), spec(consts.MediumMug))
	require.NoError(t, err)
	require.Nil(t, outcomes)
	<-done
	require.Len(t, gen.mediums(), 1)
}

func TestProgressReachesTerminalState(t *testing.T) {
	st := store.New()
	gen := &fakeGenerator{delay: 40 * time.Millisecond}
	r := NewRunner(st, gen, WithTickInterval(5*time.Millisecond), WithDisplayDelay(200*time.Millisecond))

	_, err := r.Run(context.Background(), spec(consts.MediumMug))
	require.NoError(t, err)

	progress := st.Progress()
	require.Len(t, progress, 1)
	require.Equal(t, consts.PhaseSuccess, progress[0].Phase)
	require.Equal(t, 100, progress[0].Percent)
}
