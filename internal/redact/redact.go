// Package redact removes credentials from strings before they reach logs or
// error responses. The server logs its database DSN at startup and during
// migrations; these helpers keep the password out of those lines.
package redact

import (
	"net/url"
	"regexp"
)

// Placeholder substituted for redacted credential material.
const Placeholder = "[REDACTED]"

var (
	// userinfo in URL-style connection strings, e.g. postgres://u:pw@host
	dsnUserinfoRegex = regexp.MustCompile(`(?i)([a-z][a-z0-9+.-]*://)[^/@\s]+@`)

	// key=value password forms, e.g. "password=hunter2" in keyword DSNs
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)(\s*[=:]\s*)[^\s&'"]+`)
)

// URL masks the password component of a connection URL while keeping the
// scheme, user, host, and database visible for diagnostics. Strings that do
// not parse as URLs fall back to pattern-based redaction.
func URL(dsn string) string {
	if dsn == "" {
		return dsn
	}

	parsed, err := url.Parse(dsn)
	if err != nil || parsed.Host == "" {
		return String(dsn)
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
		}
	}
	return parsed.String()
}

// String redacts credential material from an arbitrary string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dsnUserinfoRegex.ReplaceAllString(input, "${1}"+Placeholder+"@")
	result = passwordRegex.ReplaceAllString(result, "${1}${2}"+Placeholder)
	return result
}

// Error redacts credential material from an error's message. Connection
// errors often echo the DSN they failed to dial.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
