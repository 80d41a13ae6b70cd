package logging

import (
	"net/url"
	"regexp"
	"strings"
)

const redactedValue = "[REDACTED]"

var keySeparators = regexp.MustCompile(`[^a-z0-9]+`)

// redactor hides the gateway subscription key, session cookies and similar
// values before a line reaches the log file.
type redactor struct {
	words map[string]bool
}

func newRedactor() *redactor {
	r := &redactor{words: make(map[string]bool)}
	for _, w := range []string{"secret", "password", "token", "key", "auth", "credential", "cookie", "session"} {
		r.words[w] = true
	}
	return r
}

// redact returns a copy of the key-value pairs in which the value of every
// sensitive key is replaced, as is every sensitive query parameter of a URL
// value. pairs itself is not modified.
func (r *redactor) redact(pairs []any) []any {
	out := make([]any, len(pairs))
	copy(out, pairs)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		if r.sensitive(key) {
			out[i+1] = redactedValue
			continue
		}
		if s, ok := out[i+1].(string); ok {
			out[i+1] = r.scrubURL(s)
		}
	}
	return out
}

// sensitive reports whether one of the words is a whole segment of key, so
// that "subscription_key" matches and "keyboard" does not.
func (r *redactor) sensitive(key string) bool {
	for _, part := range keySeparators.Split(strings.ToLower(key), -1) {
		if r.words[part] {
			return true
		}
	}
	return false
}

// scrubURL masks sensitive query parameters such as subscription-key=... in
// an absolute URL. Anything else is returned unchanged.
func (r *redactor) scrubURL(s string) string {
	if !strings.Contains(s, "?") || !strings.Contains(s, "://") {
		return s
	}
	u, err := url.Parse(s)
	if err != nil || u.RawQuery == "" {
		return s
	}
	q := u.Query()
	changed := false
	for name := range q {
		if r.sensitive(name) {
			q.Set(name, redactedValue)
			changed = true
		}
	}
	if !changed {
		return s
	}
	u.RawQuery = q.Encode()
	return u.String()
}
