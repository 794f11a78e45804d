// Package knowledge provides the static knowledge base backing the
// MOEMS question-answering agent.
//
// The knowledge base maps a topic key to one entry: a reference answer,
// the source labels behind it, the supporting document snippets, and the
// keyword set the lexical matcher scores against. Entries are validated
// once at construction and the store is read-only afterwards, so it is
// safe to share across any number of concurrent readers without locking.
//
// # Construction and validation
//
//	store, err := knowledge.New(knowledge.Builtin())
//	if err != nil {
//	    // ErrMalformedEntry: bad data, abort startup
//	}
//
// Validation is fail-fast: an entry without an answer, without sources,
// or with a document claiming a different owning topic aborts the whole
// load. There is no mutation API; editing the knowledge base means
// rebuilding the store, which keeps hot-editing during development free
// of runtime mutation hazards.
//
// # Lookup
//
//	entry, err := store.Lookup("moems_overview")
//	if errors.Is(err, knowledge.ErrNotFound) {
//	    // recoverable: treat as an empty result upstream
//	}
//
// Keys() preserves the insertion order of entries, which the matcher
// relies on for stable tie-breaking.
package knowledge
