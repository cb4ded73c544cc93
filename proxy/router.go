package proxy

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// ErrorHandler defines the function interface the router uses to handle any
// error that occurs while processing routes.
type ErrorHandler func(context.Context, events.APIGatewayV2HTTPRequest, error) (events.APIGatewayProxyResponse, error)

// CatchAllHandler defines the function interface the router uses to handle any
// request that doesn't match a route.
type CatchAllHandler func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error)

// Router routes an incoming events.APIGatewayV2HTTPRequest to the first route
// that matches it, in the order the routes were added.
//
// If the CatchAll handler is set any request that doesn't match a route will be
// handled by it.
//
// If the CatchError handler is set any error returned while routing is passed
// to it and its result is returned instead.
//
// Example:
//
//	router := &proxy.Router{}
//	router.POST("/campaigns", generate)
//	router.AddErrorHandler(mapError)
//
//	if !router.Valid() {
//		return events.APIGatewayProxyResponse{}, router.BuildErrors()
//	}
//
//	return router.Route(ctx, request)
type Router struct {
	Routes     []*Route
	CatchAll   CatchAllHandler
	CatchError ErrorHandler

	errors []error
}

// Valid returns true if the routers' routes have all been built successfully.
func (router *Router) Valid() bool {
	return len(router.errors) == 0
}

// AddRoute appends route to the list of routes used for request matching.
func (router *Router) AddRoute(route *Route) {
	router.Routes = append(router.Routes, route)
}

// AddBuildError appends an error to the list of router errors.
func (router *Router) AddBuildError(err error) {
	router.errors = append(router.errors, err)
}

// BuildErrors returns a single error that encapsulates all the route errors
// found during router construction.
func (router *Router) BuildErrors() error {
	topError := errors.New("failed building router")

	for _, err := range router.errors {
		topError = errors.Wrap(topError, err.Error())
	}

	return topError
}

// AddRouteIfNoError appends the provided route if no error is present.
// Otherwise it adds the error to the build errors.
func (router *Router) AddRouteIfNoError(route *Route, err error) {
	if err != nil {
		router.AddBuildError(err)
		return
	}

	router.AddRoute(route)
}

// Handle adds a new route for the method with the specified pattern and handler.
func (router *Router) Handle(method HttpMethod, pattern string, handler RouteHandler) {
	router.AddRouteIfNoError(NewRoute(method, pattern, handler))
}

// POST adds a new POST route with the specified pattern and handler.
func (router *Router) POST(pattern string, handler RouteHandler) {
	router.Handle(POST, pattern, handler)
}

// AddCatchAllHandler attaches a catchall handler to the router.
func (router *Router) AddCatchAllHandler(handler CatchAllHandler) {
	router.CatchAll = handler
}

// AddErrorHandler attaches a error handler to the router.
func (router *Router) AddErrorHandler(handler ErrorHandler) {
	router.CatchError = handler
}

// Allowed returns the methods of every route whose pattern matches path,
// without duplicates and in the order the routes were added.
func (router *Router) Allowed(path string) []string {
	var methods []string
	seen := make(map[HttpMethod]bool)

	for _, route := range router.Routes {
		if seen[route.Method] || !route.Regex.MatchString(path) {
			continue
		}

		seen[route.Method] = true
		methods = append(methods, route.Method.String())
	}

	return methods
}

func (router *Router) routeInternal(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	for _, route := range router.Routes {
		if matched, _ := route.IsMatch(request); !matched {
			continue
		}

		return route.Follow(ctx, request)
	}

	if router.CatchAll != nil {
		return router.CatchAll(ctx, request)
	}

	return events.APIGatewayProxyResponse{}, fmt.Errorf("'%s %s' not found", request.RequestContext.HTTP.Method, request.RawPath)
}

// Route executes the handler of the first matching route, falling back to the
// catch all handler. Errors from either are passed through the error handler
// when one is set.
func (router *Router) Route(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	response, err := router.routeInternal(ctx, request)
	if err != nil && router.CatchError != nil {
		return router.CatchError(ctx, request, err)
	}

	return response, err
}
