package knowledge

import (
	"errors"
	"fmt"
)

// Sentinel errors for knowledge-base operations.
var (
	// ErrNotFound indicates the topic key has no entry.
	// Recoverable: callers treat it as an empty result.
	ErrNotFound = errors.New("topic not found")

	// ErrMalformedEntry indicates an entry failed load-time validation.
	// Fatal: construction aborts and startup should too.
	ErrMalformedEntry = errors.New("malformed knowledge entry")
)

// Store is an immutable topic_key → Entry mapping.
// Read-only after construction; safe for concurrent use.
type Store struct {
	entries map[string]Entry
	order   []string
}

// New builds a Store from the given entries, validating each one.
//
// An entry is malformed when it has an empty topic key, no answer, no
// sources, or a document whose Topic names a different owning entry.
// Documents with an empty Topic inherit the entry's key.
func New(entries []Entry) (*Store, error) {
	s := &Store{
		entries: make(map[string]Entry, len(entries)),
		order:   make([]string, 0, len(entries)),
	}

	for i, e := range entries {
		if e.Topic == "" {
			return nil, fmt.Errorf("%w: entry %d has empty topic key", ErrMalformedEntry, i)
		}
		if _, dup := s.entries[e.Topic]; dup {
			return nil, fmt.Errorf("%w: duplicate topic key %q", ErrMalformedEntry, e.Topic)
		}
		if e.Answer == "" {
			return nil, fmt.Errorf("%w: topic %q has no answer", ErrMalformedEntry, e.Topic)
		}
		if len(e.Sources) == 0 {
			return nil, fmt.Errorf("%w: topic %q has empty sources", ErrMalformedEntry, e.Topic)
		}
		if len(e.Keywords) == 0 {
			return nil, fmt.Errorf("%w: topic %q has no keywords", ErrMalformedEntry, e.Topic)
		}

		// Copy documents so callers can't alias into the store,
		// and pin each document to its owning entry.
		docs := make([]Document, len(e.Documents))
		for j, d := range e.Documents {
			if d.Topic == "" {
				d.Topic = e.Topic
			}
			if d.Topic != e.Topic {
				return nil, fmt.Errorf("%w: document %d of topic %q claims topic %q",
					ErrMalformedEntry, j, e.Topic, d.Topic)
			}
			docs[j] = d
		}
		e.Documents = docs

		s.entries[e.Topic] = e
		s.order = append(s.order, e.Topic)
	}

	return s, nil
}

// Lookup returns the entry for the given topic key.
// Returns ErrNotFound when the key has no entry.
func (s *Store) Lookup(topic string) (Entry, error) {
	e, ok := s.entries[topic]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, topic)
	}
	return e, nil
}

// Keys returns all topic keys in insertion order.
// The returned slice is a copy; mutating it does not affect the store.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	return len(s.order)
}
