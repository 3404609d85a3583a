package api

import "sync"

// archiveStore holds packed zips by portfolio id until process exit. Each
// entry is the artifact of one generation cycle; nothing else is shared
// across requests.
type archiveStore struct {
	mu       sync.Mutex
	archives map[string][]byte
}

func newArchiveStore() *archiveStore {
	return &archiveStore{archives: make(map[string][]byte)}
}

func (s *archiveStore) set(id string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archives[id] = data
}

func (s *archiveStore) get(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.archives[id]
	return data, ok
}
