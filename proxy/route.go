package proxy

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteHandler defines the function interface the route uses to execute a
// request when the route is matched.
type RouteHandler func(*RouteContext) (events.APIGatewayProxyResponse, error)

// Route pairs a HttpMethod with a path regex. When both match an incoming
// request the configured handler is called.
type Route struct {
	Method  HttpMethod
	Regex   *regexp.Regexp
	Handler RouteHandler
}

// NewRoute returns a Route for the specified method, pattern and handler. The
// pattern is anchored and tolerates a trailing slash.
func NewRoute(method HttpMethod, pattern string, handler RouteHandler) (*Route, error) {
	rx, err := regexp.Compile("^" + pattern + "/?$")
	if err != nil {
		return nil, errors.Wrapf(err, "failed compiling regex pattern '%s'", pattern)
	}

	return &Route{
		Method:  method,
		Regex:   rx,
		Handler: handler,
	}, nil
}

func (route *Route) String() string {
	return fmt.Sprintf("%s %s", route.Method, route.Regex)
}

// IsMatch reports whether the request matches the route and returns the regex
// match groups.
func (route *Route) IsMatch(request events.APIGatewayV2HTTPRequest) (bool, []string) {
	method, ok := ParseHttpMethod(request.RequestContext.HTTP.Method)
	if !ok || method != route.Method {
		return false, nil
	}

	groups := route.Regex.FindStringSubmatch(request.RawPath)
	if len(groups) == 0 {
		return false, nil
	}

	return true, groups
}

// Follow builds the RouteContext for the matched request and executes the
// route's handler.
func (route *Route) Follow(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayProxyResponse, error) {
	return route.Handler(&RouteContext{
		Context: ctx,
		Request: request,
	})
}
