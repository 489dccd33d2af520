package pathtable

import "strings"

// Path extracts the in-app path from an incoming URL. Bare paths starting
// with "/" are accepted as-is; other URLs must start with one of the accepted
// prefixes, otherwise they are not deep links into this app.
func (c LinkingConfig) Path(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "/") {
		return rawURL, true
	}

	for _, prefix := range c.Prefixes {
		rest, ok := stripPrefix(rawURL, prefix)
		if !ok {
			continue
		}
		if rest == "" || rest[0] == '?' || rest[0] == '#' {
			return "/" + rest, true
		}
		if rest[0] != '/' {
			if strings.HasSuffix(prefix, "/") {
				return "/" + rest, true
			}
			// "https://app.example.comx" is not under "https://app.example.com"
			continue
		}
		return rest, true
	}

	return "", false
}

func stripPrefix(rawURL, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	if strings.HasPrefix(rawURL, prefix) {
		return rawURL[len(prefix):], true
	}
	// a bare host prefix accepts both http and https URLs
	if !strings.Contains(prefix, "://") {
		for _, scheme := range []string{"https://", "http://"} {
			if strings.HasPrefix(rawURL, scheme+prefix) {
				return rawURL[len(scheme+prefix):], true
			}
		}
	}
	return "", false
}
