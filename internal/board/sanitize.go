package board

import (
	"regexp"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AllowedTags is the only inline markup a message may carry, both in
// storage and on display.
var AllowedTags = map[string]bool{"b": true, "i": true, "s": true}

var policy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("b", "i", "s")
	return p
}()

// Sanitize strips every element outside the allow-list, including all
// attributes on allowed elements. Deterministic and side-effect free;
// already-clean input passes through unchanged.
func Sanitize(raw string) string {
	return policy.Sanitize(raw)
}

var startTagRe = regexp.MustCompile(`(?i)<([a-z][a-z0-9]*)\b[^>]*>`)

// DisallowedTags scans raw for start tags outside the allow-list and
// returns their lowercase names, deduplicated and sorted. The validator
// uses this as a strict pre-check: offending markup is rejected outright
// rather than silently stripped by Sanitize later.
func DisallowedTags(raw string) []string {
	seen := map[string]bool{}
	for _, m := range startTagRe.FindAllStringSubmatch(raw, -1) {
		name := strings.ToLower(m[1])
		if !AllowedTags[name] {
			seen[name] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
