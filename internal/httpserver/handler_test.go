package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/markl/internal/domain"
	"github.com/davidbz/markl/internal/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockEmbedder, *mocks.MockAnswerer, *mocks.MockVectorIndex, *mocks.MockCacheStore) {
	t.Helper()

	mockEmbedder := mocks.NewMockEmbedder(t)
	mockAnswerer := mocks.NewMockAnswerer(t)
	mockIndex := mocks.NewMockVectorIndex(t)
	mockStore := mocks.NewMockCacheStore(t)

	cache, err := domain.NewSemanticCacheService(mockEmbedder, mockAnswerer, mockIndex, mockStore, 0.92)
	require.NoError(t, err)

	return NewHandler(cache), mockEmbedder, mockAnswerer, mockIndex, mockStore
}

func askBody(t *testing.T, question string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{"question": question})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestHandleAsk_CacheHit_SetsHeaders(t *testing.T) {
	handler, mockEmbedder, _, mockIndex, mockStore := newTestHandler(t)

	embedding := []float64{0.1, 0.2}
	mockEmbedder.EXPECT().
		Embed(mock.Anything, "How many oceans are there in the world?").
		Return(embedding, nil)

	mockIndex.EXPECT().
		SearchNearest(mock.Anything, embedding).
		Return(&domain.Match{ID: "rec-1", Similarity: 0.96}, nil)

	cachedAt := time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)
	mockStore.EXPECT().
		Get(mock.Anything, "rec-1").
		Return(&domain.Record{
			ID:        "rec-1",
			Question:  "How many oceans exist?",
			Answer:    "Five.",
			CreatedAt: cachedAt,
		}, nil)
	mockStore.EXPECT().
		IncrementHit(mock.Anything, "rec-1").
		Return(nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/ask", askBody(t, "How many oceans are there in the world?"))
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "HIT", w.Header().Get("X-Markl-Cache"))
	require.Equal(t, "0.9600", w.Header().Get("X-Markl-Cache-Similarity"))
	require.Equal(t, cachedAt.Format(time.RFC3339), w.Header().Get("X-Markl-Cache-Timestamp"))

	var result domain.QueryResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	require.Equal(t, domain.SourceCache, result.Source)
	require.Equal(t, "Five.", result.Answer)
	require.Equal(t, "How many oceans exist?", result.MatchedQuestion)
}

func TestHandleAsk_CacheMiss_SetsHeaders(t *testing.T) {
	handler, mockEmbedder, mockAnswerer, mockIndex, mockStore := newTestHandler(t)

	embedding := []float64{0.7, 0.3}
	mockEmbedder.EXPECT().
		Embed(mock.Anything, "What are the symptoms of flu?").
		Return(embedding, nil)
	mockEmbedder.EXPECT().Version().Return("openai/text-embedding-3-small")

	mockIndex.EXPECT().
		SearchNearest(mock.Anything, embedding).
		Return(nil, nil)

	mockAnswerer.EXPECT().
		Generate(mock.Anything, "What are the symptoms of flu?").
		Return("Fever and cough.", nil)
	mockAnswerer.EXPECT().Name().Return("openai")

	mockStore.EXPECT().Put(mock.Anything, mock.Anything).Return(nil)
	mockIndex.EXPECT().Insert(mock.Anything, mock.Anything, embedding, mock.Anything).Return(nil)

	httpReq := httptest.NewRequest(http.MethodPost, "/ask", askBody(t, "What are the symptoms of flu?"))
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "MISS", w.Header().Get("X-Markl-Cache"))
	require.Empty(t, w.Header().Get("X-Markl-Cache-Similarity"))

	var result domain.QueryResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	require.Equal(t, domain.SourceLLM, result.Source)
	require.Equal(t, "Fever and cough.", result.Answer)
	require.Nil(t, result.Similarity)
}

func TestHandleAsk_MethodNotAllowed(t *testing.T) {
	handler, _, _, _, _ := newTestHandler(t)

	httpReq := httptest.NewRequest(http.MethodGet, "/ask", nil)
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleAsk_InvalidBody(t *testing.T) {
	handler, _, _, _, _ := newTestHandler(t)

	httpReq := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAsk_EmptyQuestion(t *testing.T) {
	handler, _, _, _, _ := newTestHandler(t)

	httpReq := httptest.NewRequest(http.MethodPost, "/ask", askBody(t, ""))
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleAsk_EmbeddingFailureIsBadGateway(t *testing.T) {
	handler, mockEmbedder, _, _, _ := newTestHandler(t)

	mockEmbedder.EXPECT().
		Embed(mock.Anything, "a question").
		Return(nil, errors.New("provider down"))

	httpReq := httptest.NewRequest(http.MethodPost, "/ask", askBody(t, "a question"))
	w := httptest.NewRecorder()

	handler.HandleAsk(w, httpReq)

	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandleHealth(t *testing.T) {
	handler, _, _, _, _ := newTestHandler(t)

	httpReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HandleHealth(w, httpReq)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Equal(t, "healthy", body["status"])
}
