// Package xai is a minimal client for the xAI chat-completion and
// image-generation REST endpoints. One blocking round trip per call, no
// retries, no streaming.
package xai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"grokcli/internal/config"
)

// ErrNoImageEndpoint is returned by GenerateImage when the config has no
// image endpoint; no network call is attempted.
var ErrNoImageEndpoint = errors.New("image generation requires " + config.KeyImageEndpoint + " in " + config.Path)

// Client talks to the configured endpoints. Safe for reuse across calls.
type Client struct {
	cfg  config.Config
	http *http.Client
}

// New returns a Client using the default HTTP client's transport and
// timeout behavior.
func New(cfg config.Config) *Client {
	return &Client{cfg: cfg, http: http.DefaultClient}
}

// CompleteChat sends prompt to the chat endpoint and returns the assistant's
// reply text.
func (c *Client) CompleteChat(ctx context.Context, prompt string) (string, error) {
	body, status, err := c.post(ctx, c.cfg.Endpoint, newChatRequest(prompt))
	if err != nil {
		return "", err
	}

	content := gjson.GetBytes(body, "choices.0.message.content")
	if content.Type != gjson.String {
		return "", fmt.Errorf("parse response (HTTP %s): missing choices[0].message.content", status)
	}
	return content.String(), nil
}

// GenerateImage sends prompt to the image endpoint and returns the hosted
// image URL. The endpoint must be configured.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	if c.cfg.ImageEndpoint == "" {
		return Image{}, ErrNoImageEndpoint
	}

	body, status, err := c.post(ctx, c.cfg.ImageEndpoint, newImageRequest(prompt))
	if err != nil {
		return Image{}, err
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsArray() || len(data.Array()) == 0 {
		return Image{}, fmt.Errorf("parse response (HTTP %s): no image data", status)
	}
	url := data.Get("0.url")
	if url.Type != gjson.String {
		return Image{}, fmt.Errorf("parse response (HTTP %s): missing data[0].url", status)
	}
	return Image{
		URL:           url.String(),
		RevisedPrompt: data.Get("0.revised_prompt").String(),
	}, nil
}

// post marshals payload, performs one round trip with the API key header,
// and returns the raw response body plus the HTTP status. The API reports
// failures in the body, so a bad status is not an error by itself; callers
// fold the status into their message when field extraction fails.
func (c *Client) post(ctx context.Context, url string, payload any) ([]byte, string, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.cfg.Key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("send request (check %s): %w", config.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, "", fmt.Errorf("parse response (HTTP %s): invalid JSON", resp.Status)
	}
	return body, resp.Status, nil
}
