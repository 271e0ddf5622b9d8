/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import (
	"regexp"
	"strings"
)

// LiveURLsLabel marks the start of the live URL section of a body.
const LiveURLsLabel = "Live URLs:"

// hostPattern is a link category found anywhere in the body. The scheme,
// the "www." prefix and the host match case-insensitively; the path does not.
type hostPattern struct {
	host string
	re   *regexp.Regexp
}

func newHostPattern(host, path string) hostPattern {
	return hostPattern{
		host: host,
		re:   regexp.MustCompile(`(?i:https?://)?(?i:www\.)?(?i:` + regexp.QuoteMeta(host) + `)` + path),
	}
}

var (
	featureFlagPattern = newHostPattern("codehs.com", `/internal/feature_flag/\d+`)
	demoLinkPattern    = newHostPattern("loom.com", `/share/[a-zA-Z0-9]+`)
	imageURLPattern    = newHostPattern("github.com", `/user-attachments/assets/[a-zA-Z0-9-]+`)

	categoryPatterns = []hostPattern{featureFlagPattern, demoLinkPattern, imageURLPattern}

	// Live URLs are whitespace-delimited tokens starting with a scheme.
	secureURLPattern = regexp.MustCompile(`(?:^|\s)(https://\S+)`)
	anyURLPattern    = regexp.MustCompile(`(?i)(?:^|\s)(https?://\S+)`)
)

// LinkOption configures ExtractLinks.
type LinkOption func(*linkOptions)

type linkOptions struct {
	livePolicy LiveURLPolicy
}

// WithLiveURLPolicy selects how insecure live URLs are handled.
func WithLiveURLPolicy(p LiveURLPolicy) LinkOption {
	return func(o *linkOptions) {
		if p != "" {
			o.livePolicy = p
		}
	}
}

// ExtractLinks returns the deduplicated links of each category found in body.
// Every returned list is non-nil.
func ExtractLinks(body string, opts ...LinkOption) LinkBundle {
	o := linkOptions{livePolicy: DefaultLiveURLPolicy}
	for _, opt := range opts {
		opt(&o)
	}

	return LinkBundle{
		FeatureFlags: featureFlagPattern.findAll(body),
		DemoLinks:    demoLinkPattern.findAll(body),
		LiveURLs:     extractLiveURLs(body, o.livePolicy),
		ImageURLs:    imageURLPattern.findAll(body),
	}
}

// findAll returns every match of p in body normalized to https://host/path.
func (p hostPattern) findAll(body string) []string {
	var s orderedSet
	for _, match := range p.re.FindAllString(body, -1) {
		s.add(p.normalize(match))
	}
	return s.list()
}

func (p hostPattern) normalize(match string) string {
	rest := stripScheme(match)
	if len(rest) >= 4 && strings.EqualFold(rest[:4], "www.") {
		rest = rest[4:]
	}
	// The pattern guarantees rest starts with the host in some casing.
	return "https://" + p.host + rest[len(p.host):]
}

// extractLiveURLs scans the text after the line holding LiveURLsLabel.
// Tokens that belong to another link category are left to that category.
func extractLiveURLs(body string, policy LiveURLPolicy) []string {
	var s orderedSet

	idx := strings.Index(body, LiveURLsLabel)
	if idx == -1 {
		return s.list()
	}
	nl := strings.IndexByte(body[idx:], '\n')
	if nl == -1 {
		return s.list()
	}
	section := body[idx+nl+1:]

	re := anyURLPattern
	if policy == LiveURLFilter {
		re = secureURLPattern
	}
	for _, m := range re.FindAllStringSubmatch(section, -1) {
		u := m[1]
		if inCategory(u) {
			continue
		}
		s.add("https://" + stripScheme(u))
	}
	return s.list()
}

func inCategory(u string) bool {
	for _, p := range categoryPatterns {
		if p.re.MatchString(u) {
			return true
		}
	}
	return false
}

// stripScheme removes a leading http:// or https:// in any casing.
func stripScheme(u string) string {
	for _, scheme := range []string{"https://", "http://"} {
		if len(u) >= len(scheme) && strings.EqualFold(u[:len(scheme)], scheme) {
			return u[len(scheme):]
		}
	}
	return u
}

// orderedSet keeps strings in first-seen order without duplicates.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func (s *orderedSet) add(v string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) list() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}
