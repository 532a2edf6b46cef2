package store

import (
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/reusedev/mockup-hub/internal/consts"
	"github.com/reusedev/mockup-hub/internal/modules/ai/image"
)

// Result is one successful mockup. Append-only until an explicit clear.
type Result struct {
	Id          string             `json:"id"`
	Medium      consts.Medium      `json:"medium"`
	URL         string             `json:"url"`
	Key         string             `json:"key"`
	AspectRatio consts.AspectRatio `json:"aspect_ratio"`
	Supplier    string             `json:"supplier"`
	Model       string             `json:"model"`
	CreatedAt   time.Time          `json:"created_at"`
}

type Failure struct {
	Medium consts.Medium      `json:"medium"`
	Reason string             `json:"reason"`
	Kind   consts.FailureKind `json:"kind"`
	At     time.Time          `json:"at"`
}

// ItemProgress exists only while the medium's request is in flight, plus a
// short display window after it settles.
type ItemProgress struct {
	Medium  consts.Medium `json:"medium"`
	Percent int           `json:"percent"`
	Phase   consts.Phase  `json:"phase"`
	Message string        `json:"message"`

	epoch uint64
}

type Snapshot struct {
	SourceImageId int                  `json:"source_image_id"`
	Selection     []consts.Medium      `json:"selection"`
	AspectRatio   consts.AspectRatio   `json:"aspect_ratio"`
	Sampling      image.SamplingConfig `json:"sampling"`
	Results       []Result             `json:"results"`
	Failures      []Failure            `json:"failures"`
	Progress      []ItemProgress       `json:"progress"`
}

// Store holds the whole studio state behind one mutex. Every mutation is a
// whole-entry replacement so concurrent settles cannot lose updates.
type Store struct {
	mu        sync.Mutex
	sourceId  int
	selection []consts.Medium
	aspect    consts.AspectRatio
	sampling  image.SamplingConfig
	results   []Result
	failures  []Failure
	progress  map[consts.Medium]*ItemProgress
	epoch     uint64
}

func New() *Store {
	return &Store{
		aspect:   consts.AspectSquare,
		progress: make(map[consts.Medium]*ItemProgress),
	}
}

func (s *Store) SetSourceImage(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sourceId = id
}

func (s *Store) SourceImage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sourceId
}

func (s *Store) SetSelection(mediums []consts.Medium) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = dedup(mediums)
}

func (s *Store) Selection() []consts.Medium {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]consts.Medium(nil), s.selection...)
}

// DropFromSelection removes the given mediums, leaving the rest selected.
func (s *Store) DropFromSelection(mediums []consts.Medium) {
	s.mu.Lock()
	defer s.mu.Unlock()
	drop := make(map[consts.Medium]struct{}, len(mediums))
	for _, m := range mediums {
		drop[m] = struct{}{}
	}
	kept := s.selection[:0]
	for _, m := range s.selection {
		if _, ok := drop[m]; !ok {
			kept = append(kept, m)
		}
	}
	s.selection = kept
}

func (s *Store) SetAspectRatio(a consts.AspectRatio) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aspect = a
}

func (s *Store) AspectRatio() consts.AspectRatio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aspect
}

func (s *Store) SetSampling(c image.SamplingConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sampling = c
}

func (s *Store) Sampling() image.SamplingConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampling
}

// Begin registers progress entries for the mediums not already in flight and
// returns them with their epochs. In-flight mediums are rejected, overlapping
// invocations for the same medium are not queued.
func (s *Store) Begin(mediums []consts.Medium, startPercent int, message string) (accepted []consts.Medium, epochs map[consts.Medium]uint64, rejected []consts.Medium) {
	s.mu.Lock()
	defer s.mu.Unlock()
	epochs = make(map[consts.Medium]uint64)
	for _, m := range dedup(mediums) {
		if p, ok := s.progress[m]; ok && !p.Phase.Terminal() {
			rejected = append(rejected, m)
			continue
		}
		s.epoch++
		s.progress[m] = &ItemProgress{
			Medium:  m,
			Percent: startPercent,
			Phase:   consts.PhasePreparing,
			Message: message,
			epoch:   s.epoch,
		}
		accepted = append(accepted, m)
		epochs[m] = s.epoch
	}
	return
}

// UpdateProgress replaces the medium's progress entry. Stale epochs are
// dropped so a finished batch cannot touch a newer one's entry.
func (s *Store) UpdateProgress(medium consts.Medium, epoch uint64, percent int, phase consts.Phase, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[medium]
	if !ok || p.epoch != epoch {
		return false
	}
	if p.Phase.Terminal() {
		return false
	}
	s.progress[medium] = &ItemProgress{
		Medium:  medium,
		Percent: percent,
		Phase:   phase,
		Message: message,
		epoch:   epoch,
	}
	return true
}

func (s *Store) RemoveProgress(medium consts.Medium, epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.progress[medium]; ok && p.epoch == epoch {
		delete(s.progress, medium)
	}
}

func (s *Store) Progress() []ItemProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	ret := make([]ItemProgress, 0, len(s.progress))
	for _, p := range s.progress {
		ret = append(ret, *p)
	}
	return ret
}

func (s *Store) InFlight(medium consts.Medium) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.progress[medium]
	return ok && !p.Phase.Terminal()
}

// AddResults prepends, newest first.
func (s *Store) AddResults(results ...Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(append([]Result(nil), results...), s.results...)
}

func (s *Store) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Result(nil), s.results...)
}

func (s *Store) ClearResults() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := s.results
	s.results = nil
	return cleared
}

// ClearFailures drops failure entries for the given mediums. Called before a
// retry batch starts.
func (s *Store) ClearFailures(mediums []consts.Medium) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFailuresLocked(mediums)
}

// RecordFailures replaces any prior failure entries for the same mediums and
// drops their progress entries, a failed medium never stays in flight.
func (s *Store) RecordFailures(failures []Failure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mediums := make([]consts.Medium, 0, len(failures))
	for _, f := range failures {
		mediums = append(mediums, f.Medium)
	}
	s.removeFailuresLocked(mediums)
	s.failures = append(s.failures, failures...)
	for _, m := range mediums {
		// A retry may already own a fresh entry for this medium, only settled
		// entries are dropped.
		if p, ok := s.progress[m]; ok && p.Phase.Terminal() {
			delete(s.progress, m)
		}
	}
}

func (s *Store) Failures() []Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Failure(nil), s.failures...)
}

func (s *Store) removeFailuresLocked(mediums []consts.Medium) {
	drop := make(map[consts.Medium]struct{}, len(mediums))
	for _, m := range mediums {
		drop[m] = struct{}{}
	}
	kept := s.failures[:0]
	for _, f := range s.failures {
		if _, ok := drop[f.Medium]; !ok {
			kept = append(kept, f)
		}
	}
	s.failures = kept
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		SourceImageId: s.sourceId,
		Selection:     append([]consts.Medium(nil), s.selection...),
		AspectRatio:   s.aspect,
		Sampling:      s.sampling,
		Progress:      make([]ItemProgress, 0, len(s.progress)),
	}
	copier.CopyWithOption(&snap.Results, &s.results, copier.Option{DeepCopy: true})
	copier.CopyWithOption(&snap.Failures, &s.failures, copier.Option{DeepCopy: true})
	for _, p := range s.progress {
		snap.Progress = append(snap.Progress, *p)
	}
	return snap
}

func dedup(mediums []consts.Medium) []consts.Medium {
	seen := make(map[consts.Medium]struct{}, len(mediums))
	ret := make([]consts.Medium, 0, len(mediums))
	for _, m := range mediums {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		ret = append(ret, m)
	}
	return ret
}
