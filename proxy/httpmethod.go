package proxy

import "fmt"

// HttpMethod is an enum of the standard Http Methods.
type HttpMethod int

const (
	GET HttpMethod = iota
	HEAD
	POST
	PUT
	DELETE
	CONNECT
	OPTIONS
	TRACE
	PATCH
)

var httpMethodNames = []string{
	"GET",
	"HEAD",
	"POST",
	"PUT",
	"DELETE",
	"CONNECT",
	"OPTIONS",
	"TRACE",
	"PATCH",
}

func (m HttpMethod) String() string {
	if m < 0 || int(m) >= len(httpMethodNames) {
		return fmt.Sprintf("HttpMethod(%d)", int(m))
	}

	return httpMethodNames[m]
}

// ParseHttpMethod returns the HttpMethod for the given name. Method names are
// case sensitive.
func ParseHttpMethod(name string) (HttpMethod, bool) {
	for i, n := range httpMethodNames {
		if n == name {
			return HttpMethod(i), true
		}
	}

	return 0, false
}
