package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mauriciodioniziodev/app-personal-organizer-sub000/internal/httperr"
)

var ErrNotConfigured = httperr.ErrBusiness("summary_not_configured")

// Summarizer condensa o texto livre de uma visita em um resumo
// curto. Função opaca texto -> texto; o resto do sistema não sabe
// nem precisa saber quem está do outro lado.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// HTTPSummarizer chama uma API de chat-completions compatível com o
// formato da OpenAI. Sem URL configurada, o recurso fica desligado.
type HTTPSummarizer struct {
	url    string
	apiKey string
	model  string
	hc     *http.Client
}

func NewHTTPSummarizer(url, apiKey, model string) *HTTPSummarizer {
	return &HTTPSummarizer{
		url:    url,
		apiKey: apiKey,
		model:  model,
		hc:     &http.Client{Timeout: 30 * time.Second},
	}
}

const prompt = "Resuma o relato de visita abaixo em um parágrafo objetivo, " +
	"mantendo medidas, ambientes e pendências citadas:\n\n"

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (s *HTTPSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.url == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt + text},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary api returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("summary api returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ Summarizer = (*HTTPSummarizer)(nil)
