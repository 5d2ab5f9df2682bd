package settings

import (
	"sort"
	"sync"
)

// Change sources reported to observers.
const (
	SourceAPI  = "api"
	SourceUI   = "ui"
	SourceFile = "file"
)

// Change describes one effective settings update.
type Change struct {
	Old    Settings
	New    Settings
	Source string
}

// Observer is called after the store changed. It runs on the goroutine
// that made the change, outside the store lock.
type Observer func(Change)

// Store is a concurrency-safe, mutable holder of Settings.
type Store struct {
	mu        sync.RWMutex
	cur       Settings
	nextID    uint64
	observers map[uint64]Observer
}

var defaultStore = NewStore(Defaults())

// Default returns the process-wide store.
func Default() *Store { return defaultStore }

func NewStore(initial Settings) *Store {
	return &Store{
		cur:       initial.Sanitized(),
		observers: make(map[uint64]Observer),
	}
}

func (st *Store) Get() Settings {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.cur
}

// Set replaces the settings. It reports whether anything changed.
func (st *Store) Set(s Settings) bool {
	return st.apply(func(Settings) Settings { return s }, SourceAPI)
}

func (st *Store) SetUseTab(useTab bool) bool {
	return st.apply(func(cur Settings) Settings {
		cur.UseTab = useTab
		return cur
	}, SourceAPI)
}

func (st *Store) SetSpaceCount(n int) bool {
	return st.apply(func(cur Settings) Settings {
		cur.SpaceCount = n
		return cur
	}, SourceAPI)
}

// Subscribe registers fn for future changes and returns a function that
// removes it.
func (st *Store) Subscribe(fn Observer) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	st.mu.Lock()
	st.nextID++
	id := st.nextID
	st.observers[id] = fn
	st.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			st.mu.Lock()
			delete(st.observers, id)
			st.mu.Unlock()
		})
	}
}

func (st *Store) apply(update func(Settings) Settings, source string) bool {
	st.mu.Lock()
	old := st.cur
	next := update(old).Sanitized()
	if next == old {
		st.mu.Unlock()
		return false
	}
	st.cur = next
	observers := st.snapshotObservers()
	st.mu.Unlock()

	ch := Change{Old: old, New: next, Source: source}
	for _, fn := range observers {
		fn(ch)
	}
	return true
}

// snapshotObservers returns observers in subscription order. Callers hold mu.
func (st *Store) snapshotObservers() []Observer {
	ids := make([]uint64, 0, len(st.observers))
	for id := range st.observers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Observer, 0, len(ids))
	for _, id := range ids {
		out = append(out, st.observers[id])
	}
	return out
}
