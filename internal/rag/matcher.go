package rag

import (
	"sort"
	"strings"
	"unicode"

	"github.com/deepthibiotune-hash/moems-agent/internal/knowledge"
)

// DefaultPhraseBonus is the score bonus applied when the query contains
// a topic's full multi-word keyword phrase verbatim.
const DefaultPhraseBonus = 0.25

// Match is one scored candidate topic.
type Match struct {
	Topic string
	Score float64 // In [0,1], monotone in lexical overlap
}

// Matcher selects candidate topics for a free-text query.
//
// Implementations return matches ordered descending by score and never
// fail: an empty slice means "no confident match" and callers must treat
// it as such rather than as an error.
type Matcher interface {
	Match(query string) []Match
}

// LexicalMatcher scores topics by keyword token overlap.
//
// For each topic: score = |tokens(query) ∩ keywords| / |keywords|,
// plus a phrase bonus when the normalized query contains the full
// multi-word keyword phrase, clamped to 1. Ties keep the knowledge
// base's insertion order.
type LexicalMatcher struct {
	topics      []scoredTopic
	phraseBonus float64
}

type scoredTopic struct {
	key      string
	keywords map[string]struct{}
	phrase   string // Joined keyword phrase; empty for single-keyword topics
	size     int
}

var _ Matcher = (*LexicalMatcher)(nil)

// NewLexicalMatcher builds a matcher over the store's entries.
// A phraseBonus <= 0 falls back to DefaultPhraseBonus.
func NewLexicalMatcher(store *knowledge.Store, phraseBonus float64) *LexicalMatcher {
	if phraseBonus <= 0 {
		phraseBonus = DefaultPhraseBonus
	}

	m := &LexicalMatcher{phraseBonus: phraseBonus}
	for _, key := range store.Keys() {
		entry, err := store.Lookup(key)
		if err != nil {
			continue // Unreachable: Keys() only returns stored keys
		}

		kw := make(map[string]struct{}, len(entry.Keywords))
		for _, k := range entry.Keywords {
			kw[normalize(k)] = struct{}{}
		}

		st := scoredTopic{key: key, keywords: kw, size: len(kw)}
		if len(entry.Keywords) > 1 {
			st.phrase = normalize(strings.Join(entry.Keywords, " "))
		}
		m.topics = append(m.topics, st)
	}
	return m
}

// Match scores every topic against the query and returns the non-zero
// candidates ordered descending by score. Never fails; an empty slice
// means no token of the query overlaps any topic's keywords.
func (m *LexicalMatcher) Match(query string) []Match {
	norm := normalize(query)
	queryTokens := tokenSet(norm)
	if len(queryTokens) == 0 {
		return nil
	}

	var matches []Match
	for _, topic := range m.topics {
		overlap := 0
		for token := range topic.keywords {
			if _, ok := queryTokens[token]; ok {
				overlap++
			}
		}
		if overlap == 0 {
			continue
		}

		score := float64(overlap) / float64(topic.size)
		if topic.phrase != "" && strings.Contains(norm, topic.phrase) {
			score += m.phraseBonus
		}
		if score > 1 {
			score = 1
		}
		matches = append(matches, Match{Topic: topic.key, Score: score})
	}

	// Stable sort keeps insertion order on equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// normalize lowercases s and strips punctuation, collapsing runs of
// non-alphanumeric characters to single spaces.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// Tokens normalizes s and splits it into lowercase tokens.
// Exported for the evaluators, which score answer text the same way the
// matcher scores queries.
func Tokens(s string) []string {
	norm := normalize(s)
	if norm == "" {
		return nil
	}
	return strings.Fields(norm)
}

func tokenSet(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}
