package rules

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/validation/pkg/shape"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Email accepts a bare RFC 5322 address whose domain has at least one dot.
func Email() shape.RuleFunc[string] {
	return New(isEmail, "Value must be a valid email address!")
}

func isEmail(v string) bool {
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return false
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL accepts absolute URLs with a scheme and a host. When schemes are
// given, the URL scheme must be one of them.
func URL(schemes ...string) shape.RuleFunc[string] {
	message := "Value must be a valid URL!"
	if len(schemes) > 0 {
		message = "Value must be a valid URL with scheme " + strings.Join(schemes, ", ") + "!"
	}
	return New(func(v string) bool {
		u, err := url.ParseRequestURI(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	}, message)
}

// Slug accepts lowercase letters and digits separated by single hyphens.
func Slug() shape.RuleFunc[string] {
	return New(slugRegex.MatchString, "Value must be a valid slug!")
}

// IP accepts IPv4 and IPv6 addresses.
func IP() shape.RuleFunc[string] {
	return New(func(v string) bool {
		return net.ParseIP(v) != nil
	}, "Value must be a valid IP address!")
}
