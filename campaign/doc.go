// Package campaign implements the generate-campaign function: it validates a
// seed, asks the generation model for a three post social media campaign and
// returns the posts as JSON.
//
// Failures are reported as *Error values whose Kind decides the HTTP status
// and whether the detail may be shown to the caller.
package campaign
