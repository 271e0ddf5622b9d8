/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import "strings"

// DescriptionLabel introduces the description line. A colon directly after
// the label is optional.
const DescriptionLabel = "Description"

// DescriptionOption configures ExtractDescription.
type DescriptionOption func(*descriptionOptions)

type descriptionOptions struct {
	fallback DescriptionFallback
	title    string
}

// WithDescriptionFallback selects the policy applied when no label is found.
func WithDescriptionFallback(f DescriptionFallback) DescriptionOption {
	return func(o *descriptionOptions) {
		if f != "" {
			o.fallback = f
		}
	}
}

// WithTitle sets the title returned under FallbackTitle.
func WithTitle(title string) DescriptionOption {
	return func(o *descriptionOptions) {
		o.title = title
	}
}

// ExtractDescription returns the single trimmed line that describes the pull
// request. The result never contains a newline and may be empty.
func ExtractDescription(body string, opts ...DescriptionOption) string {
	o := descriptionOptions{fallback: DefaultDescriptionFallback}
	for _, opt := range opts {
		opt(&o)
	}

	idx := strings.Index(body, DescriptionLabel)
	if idx == -1 {
		if o.fallback == FallbackTitle {
			return strings.TrimSpace(o.title)
		}
		return firstLine(body)
	}

	rest := body[idx+len(DescriptionLabel):]
	rest = strings.TrimPrefix(rest, ":")
	desc := firstLine(rest)
	if desc == "" && o.fallback == FallbackTitle {
		return strings.TrimSpace(o.title)
	}
	return desc
}

// firstLine skips leading blank characters and returns the trimmed text up
// to the next newline.
func firstLine(s string) string {
	s = strings.TrimLeft(s, " \r\n")
	if nl := strings.IndexByte(s, '\n'); nl != -1 {
		s = s[:nl]
	}
	return strings.TrimSpace(s)
}
