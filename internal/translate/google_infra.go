package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

type GoogleClient struct {
	endpoint string
	client   *http.Client
}

func NewGoogleClient() *GoogleClient {
	return &GoogleClient{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

// NewGoogleClientWithEndpoint — для тестов.
func NewGoogleClientWithEndpoint(endpoint string, client *http.Client) *GoogleClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &GoogleClient{endpoint: endpoint, client: client}
}

func (c *GoogleClient) Translate(ctx context.Context, text, targetLang string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto") // исходный язык всегда авто
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("translate error: %s", body)
	}

	// Ответ — вложенный массив: [[["перевод","оригинал",...],...],...]
	var parsed []json.RawMessage
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode translate: %w", err)
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("empty translation")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(parsed[0], &segments); err != nil {
		return "", fmt.Errorf("decode translate segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("empty translation")
	}
	return sb.String(), nil
}
