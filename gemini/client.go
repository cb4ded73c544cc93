// Package gemini is a minimal client for the Gemini generateContent API. It
// turns a prompt into the text of the first candidate.
package gemini

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// completionPath locates the first candidate's first text part.
const completionPath = "candidates.0.content.parts.0.text"

// ErrMalformedResponse is returned when a successful response does not carry
// completion text where it is expected.
var ErrMalformedResponse = errors.New("malformed generateContent response")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("generateContent returned %d: %s", e.StatusCode, e.Body)
}

// Request is the generateContent request envelope.
type Request struct {
	Contents []Content `json:"contents"`
}

// Content is one turn of a Request.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a text fragment of a Content.
type Part struct {
	Text string `json:"text"`
}

// NewRequest wraps a single prompt into the request envelope.
func NewRequest(prompt string) Request {
	return Request{Contents: []Content{{Parts: []Part{{Text: prompt}}}}}
}

// Client calls generateContent for a fixed model. It is safe for concurrent
// use.
type Client struct {
	http   *resty.Client
	model  string
	apiKey string
}

// NewClient returns a client for the API rooted at endpoint, e.g.
// https://generativelanguage.googleapis.com/v1beta. No timeout or retries are
// configured; the caller's context bounds each call.
func NewClient(endpoint, model, apiKey string) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(endpoint, "/")).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:   rc,
		model:  model,
		apiKey: apiKey,
	}
}

// GenerateText sends prompt to the model and returns the completion text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetQueryParam("key", c.apiKey).
		SetBody(NewRequest(prompt)).
		Post("/models/{model}:generateContent")
	if err != nil {
		// url.Error carries the request url, and with it the key
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return "", errors.Wrapf(err, "failed calling generateContent for %s", c.model)
	}

	if !resp.IsSuccess() {
		return "", &StatusError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	return ExtractText(resp.Body())
}

// ExtractText returns the first candidate's first text part from a
// generateContent response body.
func ExtractText(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errors.Wrap(ErrMalformedResponse, "body is not json")
	}

	text := gjson.GetBytes(body, completionPath)
	if !text.Exists() || text.Type != gjson.String {
		return "", errors.Wrapf(ErrMalformedResponse, "no text at %s", completionPath)
	}

	return text.String(), nil
}
