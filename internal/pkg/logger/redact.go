package logger

import (
	"net/url"
	"strings"
)

// RedactToken masks a bearer token or similar secret for safe logging,
// keeping any scheme prefix and the last 4 characters.
// "Bearer abcdef123456" → "Bearer ***3456"
func RedactToken(value string) string {
	if value == "" {
		return ""
	}
	scheme := ""
	token := value
	if i := strings.IndexByte(value, ' '); i > 0 {
		scheme = value[:i+1]
		token = value[i+1:]
	}
	if len(token) <= 8 {
		return scheme + "***"
	}
	return scheme + "***" + token[len(token)-4:]
}

// RedactDSN masks the password inside a connection URL.
// "postgres://shell:secret@db:5432/sales" → "postgres://shell:***@db:5432/sales"
func RedactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "***"
	}
	if u.User != nil {
		if _, has := u.User.Password(); has {
			u.User = url.UserPassword(u.User.Username(), "***")
		}
	}
	return u.String()
}
