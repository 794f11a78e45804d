package knowledge

import (
	"errors"
	"testing"
)

func validEntry() Entry {
	return Entry{
		Topic:    "scoring",
		Keywords: []string{"scored", "points"},
		Answer:   "Each problem is worth 1 point.",
		Sources:  []string{"moems_scoring"},
		Documents: []Document{
			{Content: "Each problem is worth 1 point.", Source: "moems_scoring"},
		},
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Entry)
	}{
		{
			name:   "empty topic key",
			mutate: func(e *Entry) { e.Topic = "" },
		},
		{
			name:   "missing answer",
			mutate: func(e *Entry) { e.Answer = "" },
		},
		{
			name:   "empty sources",
			mutate: func(e *Entry) { e.Sources = nil },
		},
		{
			name:   "no keywords",
			mutate: func(e *Entry) { e.Keywords = nil },
		},
		{
			name:   "document claims foreign topic",
			mutate: func(e *Entry) { e.Documents[0].Topic = "other_topic" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			_, err := New([]Entry{entry})
			if !errors.Is(err, ErrMalformedEntry) {
				t.Errorf("New() error = %v, want ErrMalformedEntry", err)
			}
		})
	}
}

func TestNew_DuplicateTopic(t *testing.T) {
	_, err := New([]Entry{validEntry(), validEntry()})
	if !errors.Is(err, ErrMalformedEntry) {
		t.Errorf("New() with duplicate topics error = %v, want ErrMalformedEntry", err)
	}
}

func TestNew_AssignsDocumentTopic(t *testing.T) {
	store, err := New([]Entry{validEntry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	entry, err := store.Lookup("scoring")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got := entry.Documents[0].Topic; got != "scoring" {
		t.Errorf("document topic = %q, want %q", got, "scoring")
	}
}

func TestLookup_NotFound(t *testing.T) {
	store, err := New([]Entry{validEntry()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = store.Lookup("no_such_topic")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup() error = %v, want ErrNotFound", err)
	}
}

func TestKeys_PreservesInsertionOrder(t *testing.T) {
	entries := []Entry{
		{Topic: "b", Keywords: []string{"b"}, Answer: "b", Sources: []string{"s"}},
		{Topic: "a", Keywords: []string{"a"}, Answer: "a", Sources: []string{"s"}},
		{Topic: "c", Keywords: []string{"c"}, Answer: "c", Sources: []string{"s"}},
	}

	store, err := New(entries)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []string{"b", "a", "c"}
	got := store.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuiltin_LoadsClean(t *testing.T) {
	store, err := New(Builtin())
	if err != nil {
		t.Fatalf("New(Builtin()) error = %v", err)
	}
	if store.Len() == 0 {
		t.Fatal("builtin knowledge base is empty")
	}

	// Every document must be pinned to its owning entry.
	for _, key := range store.Keys() {
		entry, err := store.Lookup(key)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", key, err)
		}
		for _, doc := range entry.Documents {
			if doc.Topic != key {
				t.Errorf("topic %q owns document claiming %q", key, doc.Topic)
			}
		}
	}
}
