package edit

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether s is a syntactically valid absolute URL. It is
// the default validator behind the embed-URL-on-paste escalation.
func IsValidURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}
