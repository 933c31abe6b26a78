package histodiff

// Interner deduplicates tokenized input into a dense set of Token ids. It
// is a collaborator of the core diff engine: the engine only ever sees
// already-interned TokenSequences, never the original strings or bytes.
//
// This mirrors the addLine/Index bookkeeping used elsewhere in the corpus
// for deduplicating lines before diffing: a single map from the raw bytes
// to the id assigned the first time they were seen.
type Interner struct {
	ids   map[string]Token
	count uint32
}

// NewInterner returns an Interner with enough initial capacity for a file
// of roughly sizeHint lines.
func NewInterner(sizeHint int) *Interner {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Interner{ids: make(map[string]Token, sizeHint)}
}

// InternString returns the Token for s, assigning a new id the first time
// s is seen.
func (in *Interner) InternString(s string) Token {
	if id, ok := in.ids[s]; ok {
		return id
	}
	id := Token(in.count)
	in.ids[s] = id
	in.count++
	return id
}

// InternBytes returns the Token for b, assigning a new id the first time
// the byte sequence is seen. b is never retained.
func (in *Interner) InternBytes(b []byte) Token {
	return in.InternString(string(b))
}

// NumTokens returns the number of distinct tokens interned so far. Every
// Token handed out by this Interner satisfies id < NumTokens().
func (in *Interner) NumTokens() uint32 {
	return in.count
}

// InternLines interns every token produced by t in order and returns the
// resulting TokenSequence.
func InternLines(in *Interner, t *LineTokenizer) TokenSequence {
	seq := make(TokenSequence, 0, int(t.EstimateTokens()))
	for t.Next() {
		seq = append(seq, in.InternString(t.Line()))
	}
	return seq
}

// InternByteLines interns every token produced by t in order and returns
// the resulting TokenSequence.
func InternByteLines(in *Interner, t *ByteLineTokenizer) TokenSequence {
	seq := make(TokenSequence, 0, int(t.EstimateTokens()))
	for t.Next() {
		seq = append(seq, in.InternBytes(t.Line()))
	}
	return seq
}
