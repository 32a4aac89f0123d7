package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeNotConfigured(t *testing.T) {
	s := NewHTTPSummarizer("", "", "modelo")
	_, err := s.Summarize(context.Background(), "qualquer texto")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSummarizeHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer chave", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "modelo", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Contains(t, req.Messages[0].Content, "closet da suíte")

		_ = json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message chatMessage `json:"message"`
			}{
				{Message: chatMessage{Role: "assistant", Content: "Resumo curto."}},
			},
		})
	}))
	defer srv.Close()

	s := NewHTTPSummarizer(srv.URL, "chave", "modelo")
	got, err := s.Summarize(context.Background(), "Visita longa no closet da suíte...")
	require.NoError(t, err)
	assert.Equal(t, "Resumo curto.", got)
}

func TestSummarizeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTPSummarizer(srv.URL, "", "modelo")
	_, err := s.Summarize(context.Background(), "texto")
	assert.Error(t, err)
}
