/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

// Item is the pull request being summarized.
// It is the source of truth for a single scrape and is never mutated.
type Item struct {
	// Number is the pull request number within its repository.
	Number int `json:"number"`
	// Title is the pull request title as authored.
	Title string `json:"title"`
	// Body is the free-form description text. It may be empty.
	Body string `json:"body"`
	// Author is the login of the pull request author.
	Author string `json:"author"`
	// URL is the canonical HTML URL of the pull request.
	URL string `json:"url"`
}

// LinkBundle holds the URLs extracted from a pull request body.
// Each list is ordered by first appearance and contains no duplicates.
// The JSON field names are the ones shown to the completeness model.
type LinkBundle struct {
	FeatureFlags []string `json:"feature_flags" yaml:"feature_flags"`
	DemoLinks    []string `json:"loom_links" yaml:"loom_links"`
	LiveURLs     []string `json:"live_urls" yaml:"live_urls"`
	ImageURLs    []string `json:"image_urls" yaml:"image_urls"`
}

// Empty reports whether no links of any category were found.
func (b LinkBundle) Empty() bool {
	return len(b.FeatureFlags) == 0 && len(b.DemoLinks) == 0 && len(b.LiveURLs) == 0 && len(b.ImageURLs) == 0
}
