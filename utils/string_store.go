package utils

import (
	"strings"
	"sync"
	"sync/atomic"
)

// StringStore interns lowercased strings. Keyword terms, token lower forms
// and lemmas all come from the same store, so the matcher compares words by
// pointer and keys the keyword index by *string.
type StringStore interface {
	// GetPointer returns the shared pointer for strings.ToLower(s). After Lock
	// a word the store has never seen gets a private pointer, which is equal
	// to no keyword.
	GetPointer(s string) *string
	GetPointers(ss []string) []*string
	// Lock stops the store from growing once every keyword index is loaded.
	// Request text after that point cannot leak memory into the store.
	Lock()
}

var (
	globalStore     *internStore
	globalStoreOnce sync.Once
)

type internStore struct {
	words  sync.Map // lowercase word -> *string
	locked atomic.Bool
}

func newStringStore() *internStore {
	return &internStore{}
}

func (store *internStore) GetPointer(s string) *string {
	lower := strings.ToLower(s)
	if store.locked.Load() {
		if ptr, ok := store.words.Load(lower); ok {
			return ptr.(*string)
		}
		return &lower
	}
	ptr, _ := store.words.LoadOrStore(lower, &lower)
	return ptr.(*string)
}

func (store *internStore) GetPointers(ss []string) []*string {
	ptrs := make([]*string, len(ss))
	for i, s := range ss {
		ptrs[i] = store.GetPointer(s)
	}
	return ptrs
}

func (store *internStore) Lock() {
	store.locked.Store(true)
}

// GlobalStringStore is the store shared by dictionaries, lemmatizers and the
// keyword matcher.
func GlobalStringStore() StringStore {
	globalStoreOnce.Do(func() {
		globalStore = newStringStore()
	})
	return globalStore
}
