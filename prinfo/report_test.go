/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReportMarkdown(t *testing.T) {
	links := LinkBundle{
		FeatureFlags: []string{"https://codehs.com/internal/feature_flag/42"},
		DemoLinks:    []string{},
		LiveURLs:     []string{"https://staging.example.com/a", "https://staging.example.com/b"},
		ImageURLs:    []string{},
	}
	r := Compose("#42 Add dashboard", "Adds the dashboard", links, "No missing or incorrect info")

	want := `# What Owlcast Scraped

## #42 Add dashboard
Description: Adds the dashboard

Feature Flags:
- https://codehs.com/internal/feature_flag/42

Loom Links:

Live URLs:
- https://staging.example.com/a
- https://staging.example.com/b

Image URLs:

Missing Info:
No missing or incorrect info
`
	if diff := cmp.Diff(want, r.Markdown()); diff != "" {
		t.Errorf("Markdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestReportMarkdownEmptyCategories(t *testing.T) {
	body := "Description: nothing linked here"
	r := Compose(FormatTitle(1, "Chore"), ExtractDescription(body), ExtractLinks(body), "Unable to determine missing info")
	md := r.Markdown()

	for _, header := range []string{"Feature Flags:", "Loom Links:", "Live URLs:", "Image URLs:", "Missing Info:"} {
		if !strings.Contains(md, header+"\n") {
			t.Errorf("Markdown() missing header %q in:\n%s", header, md)
		}
	}
	if strings.Contains(md, "- ") {
		t.Errorf("Markdown() has bullets, wanted none:\n%s", md)
	}
}

func TestReportMarkdownSectionOrder(t *testing.T) {
	md := Compose("#1 T", "d", LinkBundle{}, "v").Markdown()

	last := -1
	for _, section := range []string{ReportHeading, "## #1 T", "Description: d", "Feature Flags:", "Loom Links:", "Live URLs:", "Image URLs:", "Missing Info:\nv"} {
		idx := strings.Index(md, section)
		if idx <= last {
			t.Fatalf("section %q: got index %d, wanted after %d in:\n%s", section, idx, last, md)
		}
		last = idx
	}
}

func TestReportMarkdownPure(t *testing.T) {
	r := Compose("#2 Same", "desc", LinkBundle{DemoLinks: []string{"https://loom.com/share/a"}}, "ok")
	if first, second := r.Markdown(), r.Markdown(); first != second {
		t.Errorf("Markdown() not stable: got = %q then %q", first, second)
	}
}
