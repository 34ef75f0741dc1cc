// Package favourites keeps the user's bookmarked vocabulary entries.
//
// The set is keyed by entities.VocabularyEntry.Key, loaded once from the
// key-value port when the store is built, and written back in full after
// every change. Display order is always by term.
package favourites

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mrlokans/signbook/internal/entities"
	"github.com/mrlokans/signbook/internal/kvstore"
	"github.com/mrlokans/signbook/internal/logger"
)

type ChangeOp string

const (
	OpAdd      ChangeOp = "add"
	OpRemove   ChangeOp = "remove"
	OpRemoveAt ChangeOp = "remove_at"
	OpImport   ChangeOp = "import"
)

// Change is delivered to subscribers after a mutation has been persisted.
type Change struct {
	Op    ChangeOp
	Count int
}

type Store struct {
	kv  kvstore.Store
	log *logger.Logger

	mu        sync.RWMutex
	entries   map[string]entities.VocabularyEntry
	observers map[int]func(Change)
	nextObsID int
}

// NewStore loads the persisted favourites. A missing slot starts an empty
// set. Unreadable or corrupt data is logged and also starts empty.
func NewStore(kv kvstore.Store, log *logger.Logger) *Store {
	s := &Store{
		kv:        kv,
		log:       log,
		entries:   make(map[string]entities.VocabularyEntry),
		observers: make(map[int]func(Change)),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := s.kv.Get(entities.SettingKeyFavoriteEntries)
	if errors.Is(err, kvstore.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("favourites: could not read stored favourites, starting empty", "error", err)
		return
	}

	entries, err := Decode(data)
	if err != nil {
		s.log.Warn("favourites: stored favourites are corrupt, starting empty", "error", err)
		return
	}
	for _, e := range entries {
		s.entries[e.Key()] = e
	}
	s.log.Debug("favourites: loaded", "count", len(s.entries))
}

func (s *Store) IsFavorite(e entities.VocabularyEntry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[e.Key()]
	return ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Add bookmarks e. Adding an entry that is already a favourite changes
// nothing and writes nothing.
func (s *Store) Add(e entities.VocabularyEntry) error {
	return s.mutate(func() (ChangeOp, bool) {
		if _, ok := s.entries[e.Key()]; ok {
			return OpAdd, false
		}
		s.entries[e.Key()] = e
		return OpAdd, true
	})
}

// Remove drops e. Removing an entry that is not a favourite is a no-op.
func (s *Store) Remove(e entities.VocabularyEntry) error {
	return s.mutate(func() (ChangeOp, bool) {
		if _, ok := s.entries[e.Key()]; !ok {
			return OpRemove, false
		}
		delete(s.entries, e.Key())
		return OpRemove, true
	})
}

// Toggle flips the favourite state of e and returns the new state.
func (s *Store) Toggle(e entities.VocabularyEntry) (bool, error) {
	var added bool
	err := s.mutate(func() (ChangeOp, bool) {
		if _, ok := s.entries[e.Key()]; ok {
			delete(s.entries, e.Key())
			return OpRemove, true
		}
		s.entries[e.Key()] = e
		added = true
		return OpAdd, true
	})
	return added, err
}

// Sorted returns the favourites in display order.
func (s *Store) Sorted() []entities.VocabularyEntry {
	s.mu.RLock()
	out := make([]entities.VocabularyEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return entities.LessByTerm(out[i], out[j])
	})
	return out
}

// RemoveAt removes the entries shown at the given positions of view, the
// exact list the caller displayed. Positions outside view are ignored.
func (s *Store) RemoveAt(positions []int, view []entities.VocabularyEntry) error {
	keys := make([]string, 0, len(positions))
	for _, pos := range positions {
		if pos < 0 || pos >= len(view) {
			continue
		}
		keys = append(keys, view[pos].Key())
	}

	return s.mutate(func() (ChangeOp, bool) {
		changed := false
		for _, key := range keys {
			if _, ok := s.entries[key]; ok {
				delete(s.entries, key)
				changed = true
			}
		}
		return OpRemoveAt, changed
	})
}

// merge adds every entry not yet present and reports how many were new.
func (s *Store) merge(entries []entities.VocabularyEntry) (int, error) {
	added := 0
	err := s.mutate(func() (ChangeOp, bool) {
		for _, e := range entries {
			if _, ok := s.entries[e.Key()]; ok {
				continue
			}
			s.entries[e.Key()] = e
			added++
		}
		return OpImport, added > 0
	})
	return added, err
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// mutate applies change under the write lock and, when it reports a change,
// persists the whole set before notifying subscribers outside the lock.
// A failed write keeps the in-memory change.
func (s *Store) mutate(change func() (ChangeOp, bool)) error {
	s.mu.Lock()
	op, changed := change()
	if !changed {
		s.mu.Unlock()
		return nil
	}
	err := s.persistLocked()
	count := len(s.entries)
	observers := make([]func(Change), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error("favourites: persist failed", "op", op, "error", err)
	}
	for _, fn := range observers {
		fn(Change{Op: op, Count: count})
	}
	return err
}

func (s *Store) persistLocked() error {
	entries := make([]entities.VocabularyEntry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := s.kv.Set(entities.SettingKeyFavoriteEntries, data); err != nil {
		return fmt.Errorf("persist favourites: %w", err)
	}
	return nil
}
