// Package proxy provides the plumbing for a lambda function acting as an aws
// api gateway v2 (http) integration. It routes events.APIGatewayV2HTTPRequest
// values to handlers, builds events.APIGatewayProxyResponse values and can
// serve the same handler over net/http for local runs.
//
// The router is designed to be as simplistic as possible and is not feature
// rich.
package proxy
