package normalize

import "sync"

// Sequence owns the run-wide surrogate-key counters. Counters are
// process-lifetime monotonic and shared across all documents in a run;
// they are never reset or reused. A single mutex makes the generator the
// sole owner of the counters even if callers misbehave and normalize
// concurrently.
type Sequence struct {
	mu        sync.Mutex
	asset     int
	relative  int
	submitter int
	spouse    int
}

// NewSequence starts all counters at 1.
func NewSequence() *Sequence {
	return &Sequence{asset: 1, relative: 1, submitter: 1, spouse: 1}
}

// NextAsset returns the next asset_id.
func (s *Sequence) NextAsset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.asset
	s.asset++
	return id
}

// NextRelative returns the next relative_id.
func (s *Sequence) NextRelative() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.relative
	s.relative++
	return id
}

// NextSubmitter returns the next submitter_id.
func (s *Sequence) NextSubmitter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.submitter
	s.submitter++
	return id
}

// NextSpouse returns the next spouse_id.
func (s *Sequence) NextSpouse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.spouse
	s.spouse++
	return id
}
