package proxy

import (
	"bytes"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON returns a response with v encoded as the body. HTML characters are
// left unescaped so bodies are forwarded as produced.
func JSON(status int, v interface{}) (events.APIGatewayProxyResponse, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "failed encoding response body")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bytes.TrimRight(buf.Bytes(), "\n")),
	}, nil
}

// Error returns a JSON error response with the given message.
func Error(status int, message string) events.APIGatewayProxyResponse {
	response, err := JSON(status, ErrorBody{Error: message})
	if err != nil {
		// a struct of one string always encodes
		panic(err)
	}

	return response
}
