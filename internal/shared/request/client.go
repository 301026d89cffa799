package request

import "strings"

const (
	ClientWeb    = "web"
	ClientMobile = "mobile"
	ClientAPI    = "api"

	ClientTypeHeader = "X-Client-Type"
)

// ResolveClientType picks the client kind from the explicit header, falling
// back to a browser check on the user agent.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}
	if strings.Contains(strings.ToLower(userAgent), "mozilla") {
		return ClientWeb
	}
	return ClientAPI
}

func IsWebClient(header, userAgent string) bool {
	return ResolveClientType(header, userAgent) == ClientWeb
}
