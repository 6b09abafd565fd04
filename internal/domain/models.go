package domain

import "time"

// AnswerSource identifies where an answer came from. The set is closed:
// callers can branch on it exhaustively.
type AnswerSource string

const (
	// SourceCache marks an answer reused from a previously cached record.
	SourceCache AnswerSource = "cache"

	// SourceLLM marks a freshly generated answer.
	SourceLLM AnswerSource = "llm"
)

// Record is one cached question-answer unit. All fields except HitCount are
// immutable after creation.
type Record struct {
	ID               string    `json:"id"`
	Question         string    `json:"question"`
	Embedding        []float64 `json:"embedding"`
	Answer           string    `json:"answer"`
	CreatedAt        time.Time `json:"created_at"`
	HitCount         int64     `json:"hit_count"`
	EmbeddingVersion string    `json:"embedding_version"`
}

// Match is the nearest neighbor found by a vector index search.
type Match struct {
	ID         string
	Similarity float64
}

// QueryResult is the outcome of answering one question. Similarity is nil
// when no prior record was compared (empty cache); on a miss with a
// below-threshold best match it carries that match's score.
type QueryResult struct {
	Answer          string       `json:"answer"`
	Source          AnswerSource `json:"source"`
	MatchedQuestion string       `json:"matched_question,omitempty"`
	Similarity      *float64     `json:"similarity,omitempty"`
	CachedAt        *time.Time   `json:"cached_at,omitempty"`
}
