package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kindwall/errors"

	"github.com/stretchr/testify/require"
)

func geminiAnswer(text string) string {
	body := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	raw, _ := json.Marshal(body)
	return string(raw)
}

func TestGeminiClassifier_Classify(t *testing.T) {
	tests := []struct {
		description  string
		answer       string
		wantPositive bool
		wantReason   string
	}{
		{
			"Should parse a positive verdict",
			`{"isPositive": true}`,
			true,
			"",
		},
		{
			"Should parse a negative verdict with reason",
			`{"isPositive": false, "reason": "self-centered statement"}`,
			false,
			"self-centered statement",
		},
		{
			"Should strip markdown fences around the JSON",
			"```json\n{\"isPositive\": true}\n```",
			true,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				req.Equal(http.MethodPost, r.Method)
				req.NotEmpty(r.Header.Get("x-goog-api-key"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(geminiAnswer(tt.answer)))
			}))
			defer server.Close()

			c := NewGeminiClassifier("test-key", "gemini-2.5-flash", server.URL, 5*time.Second)
			verdict, err := c.Classify(context.Background(), "You are wonderful")
			req.NoError(err)
			req.Equal(tt.wantPositive, verdict.IsPositive)
			req.Equal(tt.wantReason, verdict.Reason)
		})
	}
}

func TestGeminiClassifier_Failures(t *testing.T) {
	tests := []struct {
		description string
		handler     http.HandlerFunc
		wantErr     error
	}{
		{
			"Should fail on non-200 status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
			errors.ErrClassifier,
		},
		{
			"Should fail on an empty candidate list",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates": []}`))
			},
			errors.ErrMalformedVerdict,
		},
		{
			"Should fail when the answer holds no JSON object",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(geminiAnswer("I cannot classify this")))
			},
			errors.ErrMalformedVerdict,
		},
		{
			"Should fail on a non-JSON body",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>gateway error</html>"))
			},
			errors.ErrMalformedVerdict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewGeminiClassifier("test-key", "gemini-2.5-flash", server.URL, 5*time.Second)
			_, err := c.Classify(context.Background(), "hello")
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestGeminiClassifier_Timeout(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte(geminiAnswer(`{"isPositive": true}`)))
	}))
	defer server.Close()

	c := NewGeminiClassifier("test-key", "gemini-2.5-flash", server.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Classify(ctx, "hello")
	req.ErrorIs(err, errors.ErrClassifier)
}

func TestGeminiClassifier_MissingAPIKey(t *testing.T) {
	req := require.New(t)
	c := NewGeminiClassifier("", "gemini-2.5-flash", "http://localhost:1", time.Second)

	_, err := c.Classify(context.Background(), "hello")
	req.ErrorIs(err, errors.ErrClassifier)
}
