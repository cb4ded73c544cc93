package proxy

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/events"
	"github.com/pkg/errors"
)

// RouteContext contains all the request information for a route when matched.
type RouteContext struct {
	Context context.Context
	Request events.APIGatewayV2HTTPRequest
}

// Body returns the request body, decoding it first when api gateway delivered
// it base64 encoded.
func (ctx *RouteContext) Body() ([]byte, error) {
	if ctx.Request.IsBase64Encoded {
		b, err := base64.StdEncoding.DecodeString(ctx.Request.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to decode request body for %s %s", ctx.Request.RequestContext.HTTP.Method, ctx.Request.RawPath)
		}

		return b, nil
	}

	return []byte(ctx.Request.Body), nil
}
