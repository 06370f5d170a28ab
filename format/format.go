// Package format implements the draft-03 "format" keyword registry.
//
// Draft-03 defines format as an annotation with optional enforcement:
// validators MAY check values against formats they know and MUST accept
// formats they do not. Check follows that rule; callers that want strict
// registries can gate on Known first.
package format

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strconv"
	"time"
)

var (
	// RFC 1034 preferred name syntax, case-insensitive, no trailing dot.
	hostnameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

	// Loose international phone syntax; draft-03 points at E.123, which is
	// about presentation, so digits, separators and an optional + is as
	// strict as is useful.
	phoneRe = regexp.MustCompile(`^\+?[0-9]([0-9 ().-]*[0-9])?$`)

	// CSS 2.1 color: #rgb, #rrggbb, or a color name.
	colorRe = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)
)

var checkers = map[string]func(string) bool{
	"date-time":    isDateTime,
	"date":         isDate,
	"time":         isTime,
	"utc-millisec": isUTCMillisec,
	"regex":        isRegex,
	"uri":          isURI,
	"email":        isEmail,
	"ip-address":   isIPv4,
	"ipv6":         isIPv6,
	"host-name":    func(s string) bool { return hostnameRe.MatchString(s) },
	"phone":        func(s string) bool { return phoneRe.MatchString(s) },
	"color":        func(s string) bool { return colorRe.MatchString(s) },
	// style is free-form CSS text; nothing useful to enforce.
	"style": func(string) bool { return true },
}

// Known reports whether name is a format this package can enforce.
func Known(name string) bool {
	_, ok := checkers[name]
	return ok
}

// Names returns the enforceable format names, unordered.
func Names() []string {
	out := make([]string, 0, len(checkers))
	for name := range checkers {
		out = append(out, name)
	}
	return out
}

// Check validates value against a named format. Unknown format names are
// annotations per draft-03 and always pass.
func Check(name, value string) bool {
	fn, ok := checkers[name]
	if !ok {
		return true
	}
	return fn(value)
}

func isDateTime(s string) bool {
	// Draft-03 asks for YYYY-MM-DDThh:mm:ssZ; accept RFC 3339 generally,
	// which the accounting API emits (offsets and fractional seconds).
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(s string) bool {
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

func isUTCMillisec(s string) bool {
	// Milliseconds since epoch. The draft allows any number; as a string
	// value that means a plain decimal.
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isRegex(s string) bool {
	_, err := regexp.Compile(s)
	return err == nil
}

func isURI(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func isEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	// reject the "Name <addr>" form; the documents hold bare addresses
	return err == nil && a.Address == s
}

func isIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

func isIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil
}
