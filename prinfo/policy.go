/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import "fmt"

// DescriptionFallback selects what ExtractDescription returns when the body
// has no "Description" label.
type DescriptionFallback string

const (
	// FallbackFirstLine uses the first non-empty line of the body.
	FallbackFirstLine DescriptionFallback = "first-non-empty-line"
	// FallbackTitle uses the item title. An empty labelled description
	// also falls back to the title under this policy.
	FallbackTitle DescriptionFallback = "use-title"
)

// DefaultDescriptionFallback is the policy used when none is configured.
const DefaultDescriptionFallback = FallbackFirstLine

// ParseDescriptionFallback parses a policy name. The empty string selects
// DefaultDescriptionFallback.
func ParseDescriptionFallback(s string) (DescriptionFallback, error) {
	switch DescriptionFallback(s) {
	case "":
		return DefaultDescriptionFallback, nil
	case FallbackFirstLine, FallbackTitle:
		return DescriptionFallback(s), nil
	default:
		return "", fmt.Errorf("unknown description fallback %q (expected %q or %q)", s, FallbackFirstLine, FallbackTitle)
	}
}

// EnvDecode implements envconfig.Decoder.
func (f *DescriptionFallback) EnvDecode(val string) error {
	return f.Set(val)
}

// Set implements pflag.Value.
func (f *DescriptionFallback) Set(val string) error {
	parsed, err := ParseDescriptionFallback(val)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// String implements pflag.Value.
func (f *DescriptionFallback) String() string {
	if f == nil || *f == "" {
		return string(DefaultDescriptionFallback)
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *DescriptionFallback) Type() string {
	return "fallback"
}

// LiveURLPolicy selects how URLs listed under "Live URLs:" that lack the
// https scheme are handled.
type LiveURLPolicy string

const (
	// LiveURLUpgrade rewrites http:// live URLs to https://.
	LiveURLUpgrade LiveURLPolicy = "upgrade"
	// LiveURLFilter drops live URLs that are not already https://.
	LiveURLFilter LiveURLPolicy = "filter"
)

// DefaultLiveURLPolicy matches the normalization applied to the other link
// categories.
const DefaultLiveURLPolicy = LiveURLUpgrade

// ParseLiveURLPolicy parses a policy name. The empty string selects
// DefaultLiveURLPolicy.
func ParseLiveURLPolicy(s string) (LiveURLPolicy, error) {
	switch LiveURLPolicy(s) {
	case "":
		return DefaultLiveURLPolicy, nil
	case LiveURLUpgrade, LiveURLFilter:
		return LiveURLPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown live URL policy %q (expected %q or %q)", s, LiveURLUpgrade, LiveURLFilter)
	}
}

// EnvDecode implements envconfig.Decoder.
func (p *LiveURLPolicy) EnvDecode(val string) error {
	return p.Set(val)
}

// Set implements pflag.Value.
func (p *LiveURLPolicy) Set(val string) error {
	parsed, err := ParseLiveURLPolicy(val)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// String implements pflag.Value.
func (p *LiveURLPolicy) String() string {
	if p == nil || *p == "" {
		return string(DefaultLiveURLPolicy)
	}
	return string(*p)
}

// Type implements pflag.Value.
func (p *LiveURLPolicy) Type() string {
	return "policy"
}
