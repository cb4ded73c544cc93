package proxy

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler is the signature lambda.Start accepts for api gateway v2 (http)
// integrations.
type LambdaHandler func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error)

// NewHTTPHandler serves a LambdaHandler over net/http. Each request is
// translated into the event api gateway would have delivered. Used to run the
// function locally.
func NewHTTPHandler(fn LambdaHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request, err := NewRequestEvent(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		response, err := fn(r.Context(), request)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
			return
		}

		WriteResponse(w, response)
	})
}

// NewRequestEvent translates an *http.Request into an
// events.APIGatewayV2HTTPRequest. Bodies that are not valid utf8 are base64
// encoded the same way api gateway does.
func NewRequestEvent(r *http.Request) (events.APIGatewayV2HTTPRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return events.APIGatewayV2HTTPRequest{}, err
	}

	headers := make(map[string]string, len(r.Header))
	for k, v := range r.Header {
		headers[strings.ToLower(k)] = strings.Join(v, ",")
	}

	request := events.APIGatewayV2HTTPRequest{
		RawPath:        r.URL.Path,
		RawQueryString: r.URL.RawQuery,
		Headers:        headers,
		RequestContext: events.APIGatewayV2HTTPRequestContext{
			HTTP: events.APIGatewayV2HTTPRequestContextHTTPDescription{
				Method:    r.Method,
				Path:      r.URL.Path,
				Protocol:  r.Proto,
				SourceIP:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
			},
		},
	}

	if utf8.Valid(body) {
		request.Body = string(body)
	} else {
		request.Body = base64.StdEncoding.EncodeToString(body)
		request.IsBase64Encoded = true
	}

	return request, nil
}

// WriteResponse writes an events.APIGatewayProxyResponse to w.
func WriteResponse(w http.ResponseWriter, response events.APIGatewayProxyResponse) {
	for k, v := range response.Headers {
		w.Header().Set(k, v)
	}
	for k, values := range response.MultiValueHeaders {
		for _, v := range values {
			w.Header().Add(k, v)
		}
	}

	body := []byte(response.Body)
	if response.IsBase64Encoded {
		if b, err := base64.StdEncoding.DecodeString(response.Body); err == nil {
			body = b
		}
	}

	w.WriteHeader(response.StatusCode)
	w.Write(body)
}
