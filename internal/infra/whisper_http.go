package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/Vovarama1992/voxboard/internal/ports"
	"github.com/Vovarama1992/voxboard/internal/textutil"
)

// WhisperHTTPService talks to a whisper server over HTTP. Both the whisper.cpp
// /inference endpoint and OpenAI-style /v1/audio/transcriptions accept the same
// multipart form and answer with {"text": ...}.
type WhisperHTTPService struct {
	url      string
	model    string
	language string
	apiKey   string
	client   *http.Client
}

func NewWhisperHTTPService(cfg config.STTConfig, client *http.Client) ports.STTService {
	if client == nil {
		client = http.DefaultClient
	}
	return &WhisperHTTPService{
		url:      cfg.URL,
		model:    cfg.Model,
		language: cfg.Language,
		apiKey:   cfg.APIKey,
		client:   client,
	}
}

type whisperResponse struct {
	Text  string `json:"text"`
	Error any    `json:"error"`
}

func (s *WhisperHTTPService) Recognize(ctx context.Context, wav []byte) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	part, err := mw.CreateFormFile("file", "command.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(wav); err != nil {
		return "", err
	}

	fields := map[string]string{
		"response_format": "json",
		"model":           s.model,
		"language":        s.language,
	}
	for k, v := range fields {
		if v == "" {
			continue
		}
		if err := mw.WriteField(k, v); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("whisper request: %w", err)
	}
	defer resp.Body.Close()

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("whisper read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("whisper http %d: %s", resp.StatusCode, textutil.Trim(string(rawResp), 180))
	}

	var parsed whisperResponse
	if err := json.Unmarshal(rawResp, &parsed); err != nil {
		return "", fmt.Errorf("whisper decode: %w", err)
	}

	if parsed.Error != nil {
		return "", fmt.Errorf("whisper error: %v", parsed.Error)
	}

	return strings.TrimSpace(parsed.Text), nil
}

func (s *WhisperHTTPService) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
