package store

import (
	"testing"
	"time"

	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/stretchr/testify/require"
)

func TestSelectionOverwrite(t *testing.T) {
	s := New()
	s.SetSelection([]consts.Medium{consts.MediumMug})
	s.SetSelection([]consts.Medium{consts.MediumTShirt, consts.MediumTruck})
	require.Equal(t, []consts.Medium{consts.MediumTShirt, consts.MediumTruck}, s.Selection())
}

func TestDropFromSelection(t *testing.T) {
	s := New()
	s.SetSelection([]consts.Medium{consts.MediumMug, consts.MediumPoster, consts.MediumTruck})
	s.DropFromSelection([]consts.Medium{consts.MediumMug, consts.MediumTruck})
	require.Equal(t, []consts.Medium{consts.MediumPoster}, s.Selection())
}

func TestBeginRejectsInFlight(t *testing.T) {
	s := New()
	accepted, _, rejected := s.Begin([]consts.Medium{consts.MediumMug, consts.MediumPoster}, 5, "start")
	require.Len(t, accepted, 2)
	require.Empty(t, rejected)

	accepted, _, rejected = s.Begin([]consts.Medium{consts.MediumMug, consts.MediumTruck}, 5, "start")
	require.Equal(t, []consts.Medium{consts.MediumTruck}, accepted)
	require.Equal(t, []consts.Medium{consts.MediumMug}, rejected)
}

func TestBeginAcceptsSettledMedium(t *testing.T) {
	s := New()
	_, epochs, _ := s.Begin([]consts.Medium{consts.MediumMug}, 5, "start")
	s.UpdateProgress(consts.MediumMug, epochs[consts.MediumMug], 0, consts.PhaseError, "boom")

	accepted, _, rejected := s.Begin([]consts.Medium{consts.MediumMug}, 5, "start")
	require.Equal(t, []consts.Medium{consts.MediumMug}, accepted)
	require.Empty(t, rejected)
}

func TestUpdateProgressStaleEpoch(t *testing.T) {
	s := New()
	_, epochs, _ := s.Begin([]consts.Medium{consts.MediumMug}, 5, "start")
	old := epochs[consts.MediumMug]
	s.RemoveProgress(consts.MediumMug, old)
	_, epochs, _ = s.Begin([]consts.Medium{consts.MediumMug}, 5, "start")

	require.False(t, s.UpdateProgress(consts.MediumMug, old, 50, consts.PhaseGenerating, "stale"))
	require.True(t, s.UpdateProgress(consts.MediumMug, epochs[consts.MediumMug], 50, consts.PhaseGenerating, "fresh"))
}

func TestUpdateProgressAfterTerminal(t *testing.T) {
	s := New()
	_, epochs, _ := s.Begin([]consts.Medium{consts.MediumMug}, 5, "start")
	epoch := epochs[consts.MediumMug]
	require.True(t, s.UpdateProgress(consts.MediumMug, epoch, 100, consts.PhaseSuccess, "done"))
	require.False(t, s.UpdateProgress(consts.MediumMug, epoch, 60, consts.PhaseGenerating, "late tick"))
}

func TestAddResultsPrepends(t *testing.T) {
	s := New()
	s.AddResults(Result{Id: "first", Medium: consts.MediumMug})
	s.AddResults(Result{Id: "second", Medium: consts.MediumPoster})
	results := s.Results()
	require.Len(t, results, 2)
	require.Equal(t, "second", results[0].Id)
	require.Equal(t, "first", results[1].Id)
}

func TestRecordFailuresReplacesAndDropsProgress(t *testing.T) {
	s := New()
	s.RecordFailures([]Failure{{Medium: consts.MediumPoster, Kind: consts.FailureServer, Reason: "503", At: time.Now()}})

	_, epochs, _ := s.Begin([]consts.Medium{consts.MediumPoster}, 5, "start")
	s.UpdateProgress(consts.MediumPoster, epochs[consts.MediumPoster], 0, consts.PhaseError, "429")
	s.RecordFailures([]Failure{{Medium: consts.MediumPoster, Kind: consts.FailureRateLimit, Reason: "429", At: time.Now()}})

	failures := s.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, consts.FailureRateLimit, failures[0].Kind)
	// the failed medium never lingers in the progress set
	for _, p := range s.Progress() {
		require.NotEqual(t, consts.MediumPoster, p.Medium)
	}
}

func TestClearFailuresOnlyTouchesGivenMediums(t *testing.T) {
	s := New()
	s.RecordFailures([]Failure{
		{Medium: consts.MediumMug, Kind: consts.FailureRateLimit},
		{Medium: consts.MediumPoster, Kind: consts.FailureServer},
	})
	s.ClearFailures([]consts.Medium{consts.MediumMug})
	failures := s.Failures()
	require.Len(t, failures, 1)
	require.Equal(t, consts.MediumPoster, failures[0].Medium)
}

func TestClearResults(t *testing.T) {
	s := New()
	s.AddResults(Result{Id: "a"}, Result{Id: "b"})
	cleared := s.ClearResults()
	require.Len(t, cleared, 2)
	require.Empty(t, s.Results())
}

func TestSnapshotIsDetached(t *testing.T) {
	s := New()
	s.SetSelection([]consts.Medium{consts.MediumMug})
	s.AddResults(Result{Id: "a", Medium: consts.MediumMug})
	snap := s.Snapshot()
	snap.Results[0].Id = "mutated"
	require.Equal(t, "a", s.Results()[0].Id)
}
