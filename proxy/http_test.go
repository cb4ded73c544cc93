package proxy

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestEvent(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/campaign?debug=1", strings.NewReader(`{"seedContent":"hi"}`))
	r.Header.Set("Content-Type", "application/json")

	request, err := NewRequestEvent(r)

	require.NoError(t, err)
	assert.Equal(t, "POST", request.RequestContext.HTTP.Method)
	assert.Equal(t, "/campaign", request.RawPath)
	assert.Equal(t, "debug=1", request.RawQueryString)
	assert.Equal(t, "application/json", request.Headers["content-type"])
	assert.Equal(t, `{"seedContent":"hi"}`, request.Body)
	assert.False(t, request.IsBase64Encoded)
}

func TestNewRequestEvent_binary(t *testing.T) {
	body := []byte{0xff, 0xfe, 0x00}
	r := httptest.NewRequest(http.MethodPost, "/campaign", strings.NewReader(string(body)))

	request, err := NewRequestEvent(r)

	require.NoError(t, err)
	assert.True(t, request.IsBase64Encoded)
	assert.Equal(t, base64.StdEncoding.EncodeToString(body), request.Body)
}

func TestNewHTTPHandler(t *testing.T) {
	router := &Router{}
	router.POST("/campaign", func(ctx *RouteContext) (events.APIGatewayProxyResponse, error) {
		body, err := ctx.Body()
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return JSON(200, map[string]string{"echo": string(body)})
	})

	server := httptest.NewServer(NewHTTPHandler(router.Route))
	defer server.Close()

	resp, err := http.Post(server.URL+"/campaign", "application/json", strings.NewReader("hello"))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"echo":"hello"}`, string(b))
}

func TestNewHTTPHandler_error(t *testing.T) {
	fn := func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("boom")
	}

	w := httptest.NewRecorder()
	NewHTTPHandler(fn).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
