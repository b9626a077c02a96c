package meter

import "sync"

// SyncStore guards a Store with a mutex so that it can be shared by goroutines
type SyncStore struct {
	mu    sync.Mutex
	store *Store
}

// NewSyncStore create SyncStore with store
func NewSyncStore(store *Store) *SyncStore {
	return &SyncStore{store: store}
}

// Increment implements Store.Increment
func (p *SyncStore) Increment(name string, amount int64) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Increment(name, amount)
}

// Incr implements Store.Incr
func (p *SyncStore) Incr(name string) (int64, error) {
	return p.Increment(name, 1)
}

// Read implements Store.Read
func (p *SyncStore) Read(name string) (int64, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Read(name)
}

// Len implements Store.Len
func (p *SyncStore) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Len()
}

// Entries implements Store.Entries
func (p *SyncStore) Entries() []Entry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Entries()
}

// Clear implements Store.Clear
func (p *SyncStore) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.store.Clear()
}

// Load implements Store.Load
func (p *SyncStore) Load(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Load(path)
}

// Persist implements Store.Persist
func (p *SyncStore) Persist(path string, clearAfter bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.store.Persist(path, clearAfter)
}
