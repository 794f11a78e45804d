package knowledge

// Document is one supporting snippet owned by exactly one entry.
// Documents are referenced, never mutated, by retrieval output.
type Document struct {
	Content string // Verbatim snippet text
	Source  string // Source label (e.g., "moems_structure")
	Topic   string // Owning entry's topic key
}

// Entry is one knowledge-base record. Immutable after load.
type Entry struct {
	Topic     string     // Unique topic key
	Keywords  []string   // Tokens the lexical matcher scores against
	Answer    string     // Reference answer text
	Sources   []string   // Source labels, in citation order
	Documents []Document // Supporting snippets, in retrieval order
}
