package proxy

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Valid(t *testing.T) {
	r := &Router{}
	assert.True(t, r.Valid())

	r.AddBuildError(errors.New("some error"))
	assert.False(t, r.Valid())
}

func TestRouter_BuildErrors(t *testing.T) {
	r := &Router{}

	r.AddBuildError(errors.New("some error"))
	r.AddBuildError(errors.New("some other error"))

	assert.Equal(t, "some other error: some error: failed building router", r.BuildErrors().Error())
}

func TestRouter_Handle(t *testing.T) {
	r := &Router{}

	r.POST("/campaign", testHandler)
	r.Handle(OPTIONS, "/campaign", testHandler)
	r.POST("asom (?<in-invalid>.*)", testHandler)

	assert.Len(t, r.Routes, 2)
	assert.Equal(t, "POST ^/campaign/?$", r.Routes[0].String())
	assert.Equal(t, "OPTIONS ^/campaign/?$", r.Routes[1].String())
	assert.False(t, r.Valid())
}

func TestRouter_Allowed(t *testing.T) {
	r := &Router{}
	r.POST("/campaign", testHandler)
	r.Handle(OPTIONS, "/campaign", testHandler)
	r.POST(".*", testHandler)
	r.Handle(GET, "/health", testHandler)

	assert.Equal(t, []string{"POST", "OPTIONS"}, r.Allowed("/campaign"))
	assert.Equal(t, []string{"POST"}, r.Allowed("/other"))
	assert.Equal(t, []string{"POST", "GET"}, r.Allowed("/health"))
}

func TestRouter_Route(t *testing.T) {
	r := &Router{}
	r.POST("/campaign", testHandler)

	response, err := r.Route(context.Background(), testRequest(POST, "/campaign"))

	assert.NoError(t, err)
	assert.Equal(t, 200, response.StatusCode)
}

func TestRouter_Route_notFound(t *testing.T) {
	r := &Router{}
	r.POST("/campaign", testHandler)

	_, err := r.Route(context.Background(), testRequest(GET, "/campaign"))

	assert.EqualError(t, err, "'GET /campaign' not found")
}

func TestRouter_Route_catchAll(t *testing.T) {
	r := &Router{}
	r.POST("/campaign", testHandler)
	r.AddCatchAllHandler(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{StatusCode: 405}, nil
	})

	response, err := r.Route(context.Background(), testRequest(PUT, "/campaign"))

	assert.NoError(t, err)
	assert.Equal(t, 405, response.StatusCode)
}

func TestRouter_Route_catchError(t *testing.T) {
	failing := func(ctx *RouteContext) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("boom")
	}

	var caught error
	r := &Router{}
	r.POST("/campaign", failing)
	r.AddErrorHandler(func(ctx context.Context, request events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
		caught = err
		return events.APIGatewayProxyResponse{StatusCode: 500}, nil
	})

	response, err := r.Route(context.Background(), testRequest(POST, "/campaign"))

	assert.NoError(t, err)
	assert.Equal(t, 500, response.StatusCode)
	assert.EqualError(t, caught, "boom")
}

func TestRouter_Route_catchErrorFromCatchAll(t *testing.T) {
	r := &Router{}
	r.AddCatchAllHandler(func(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
		return events.APIGatewayProxyResponse{}, errors.New("not allowed")
	})
	r.AddErrorHandler(func(ctx context.Context, request events.APIGatewayV2HTTPRequest, err error) (events.APIGatewayProxyResponse, error) {
		return Error(405, err.Error()), nil
	})

	response, err := r.Route(context.Background(), testRequest(GET, "/campaign"))

	assert.NoError(t, err)
	assert.Equal(t, 405, response.StatusCode)
	assert.Equal(t, `{"error":"not allowed"}`, response.Body)
}
