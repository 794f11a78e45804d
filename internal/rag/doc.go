// Package rag implements the retrieval half of the question-answering
// pipeline: matching a free-text query against the knowledge base and
// assembling the context documents for generation.
//
// # Matching
//
// The Matcher interface has one production implementation,
// LexicalMatcher, which scores each topic by token overlap between the
// normalized query and the topic's keyword set, with a bonus for exact
// multi-word phrase containment. A production system would swap in an
// embedding-based matcher here; Retriever and the agent are written
// against the interface, so nothing above this package changes.
//
// # Retrieval
//
// Retriever wraps a Matcher and the knowledge store. A query whose top
// match falls below the configured relevance threshold yields an empty
// Result with no matched topic, a valid "I don't know" outcome rather
// than an error. Matching and retrieval are deterministic: the same query
// always produces the same Result.
package rag
