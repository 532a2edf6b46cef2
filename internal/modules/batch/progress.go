package batch

import (
	"context"
	"time"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/store"
)

const (
	startPercent = 5
	capPercent   = 95
	tickStep     = 7
)

// phaseMessages is the fixed ordered list a tick picks from by percentage.
// Cosmetic only, the real call's progress is opaque.
var phaseMessages = []struct {
	below   int
	phase   consts.Phase
	message string
}{
	{25, consts.PhasePreparing, "Preparing your design"},
	{55, consts.PhaseGenerating, "Compositing the scene"},
	{80, consts.PhaseGenerating, "Rendering details"},
	{101, consts.PhaseFinalizing, "Finishing touches"},
}

func phaseFor(percent int) (consts.Phase, string) {
	for _, p := range phaseMessages {
		if percent < p.below {
			return p.phase, p.message
		}
	}
	last := phaseMessages[len(phaseMessages)-1]
	return last.phase, last.message
}

// simulateProgress advances the medium's progress entry on a timer until the
// context is cancelled. Monotonic, capped below completion; the real settle
// overwrites it.
func (r *Runner) simulateProgress(ctx context.Context, st *store.Store, medium consts.Medium, epoch uint64) {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()
	percent := startPercent
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			percent += tickStep
			if percent > capPercent {
				percent = capPercent
			}
			phase, message := phaseFor(percent)
			if !st.UpdateProgress(medium, epoch, percent, phase, message) {
				return
			}
		}
	}
}
