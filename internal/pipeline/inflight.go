package processor

import "sync"

// inflightSet tracks filenames currently moving through the pipeline. The
// duplicate check against the store and the eventual write are not atomic,
// so without this a second concurrent request for the same file could slip
// between them and write twice.
type inflightSet struct {
	mu    sync.Mutex
	files map[string]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{files: make(map[string]struct{})}
}

// TryAcquire claims filename. Returns false when another pipeline already
// holds it.
func (s *inflightSet) TryAcquire(filename string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.files[filename]; busy {
		return false
	}
	s.files[filename] = struct{}{}
	return true
}

func (s *inflightSet) Release(filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, filename)
}
