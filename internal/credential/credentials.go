// Copyright (c) 2026 The stratum authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package credential hides sensitive values before they are written to logs or explanations.
package credential

import (
	"fmt"
	"regexp"
)

const mask = "******"

// Blur returns the printable form of value under the given path,
// or a mask if the path names a credential or the value looks like a known secret.
func Blur(path string, value any) string {
	if namePattern.MatchString(path) {
		return mask
	}

	var formatted string
	switch v := value.(type) {
	case string:
		formatted = v
	case []byte:
		formatted = string(v)
	default:
		formatted = fmt.Sprint(value)
	}

	for _, secret := range secretPatterns {
		if secret.pattern.MatchString(formatted) {
			return secret.name
		}
	}

	return formatted
}

//nolint:gochecknoglobals,lll
var (
	namePattern    = regexp.MustCompile(`(?i)password|passwd|pass|pwd|secret|token|api_?key|bearer|cred|private_?key|dsn`)
	secretPatterns = []struct {
		name    string
		pattern *regexp.Regexp
	}{
		{"private key", regexp.MustCompile(`-----BEGIN ((RSA|DSA|EC|OPENSSH|PGP) )?PRIVATE KEY( BLOCK)?-----`)},
		{"AWS API Key", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
		{"GitHub token", regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{36}|github_pat_[a-zA-Z0-9]{22}_[a-zA-Z0-9]{59}`)},
		{"Google API Key", regexp.MustCompile(`AIza[0-9A-Za-z\-_]{35}`)},
		{"Google OAuth Access Token", regexp.MustCompile(`ya29\.[0-9A-Za-z\-_]+`)},
		{"Slack Token", regexp.MustCompile(`xox[pborsa]-[0-9]{12}-[0-9]{12}-[0-9]{12}-[a-z0-9]{32}`)},
		{"Stripe API Key", regexp.MustCompile(`[sr]k_live_[0-9a-zA-Z]{24}`)},
		{"Password in URL", regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]{1,20}://[^/\s:@]{1,64}:[^/\s:@]{1,64}@`)},
	}
)
