package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders are the lowercase header names whose values never reach
// the log, whether logged as attributes or by the request logger.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

var (
	sensitiveFields = []string{"password", "secret", "token", "dsn", "jwt_secret", "access_key"}
	sensitivePrefix = []string{"secret_", "api_key"}

	// Values that leak through free-form attributes.
	leakPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; 10+ characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// user:password@ in connection URLs.
		regexp.MustCompile(`[a-z][a-z0-9+\-.]*://[^:/\s]+:[^@/\s]+@`),
	}
)

func redactor() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefix {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range leakPatterns {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
