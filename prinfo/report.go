/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import "strings"

// ReportHeading is the first line of every rendered report.
const ReportHeading = "# What Owlcast Scraped"

// Report is the summary posted on a pull request.
type Report struct {
	// Title is the formatted title, see FormatTitle.
	Title string `json:"title" yaml:"title"`
	// Description is the extracted description line.
	Description string `json:"description" yaml:"description"`
	// Links are the extracted links.
	Links LinkBundle `json:"links" yaml:"links"`
	// MissingInfo is the completeness verdict text.
	MissingInfo string `json:"missing_info" yaml:"missing_info"`
}

// Compose assembles a Report from the outputs of the individual extractors
// and the completeness verdict.
func Compose(title, description string, links LinkBundle, verdict string) *Report {
	return &Report{
		Title:       title,
		Description: description,
		Links:       links,
		MissingInfo: verdict,
	}
}

// Markdown renders the report. Every section is always present; an empty
// link category renders as its header with no bullets.
func (r *Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString(ReportHeading)
	sb.WriteString("\n\n## ")
	sb.WriteString(r.Title)
	sb.WriteString("\nDescription: ")
	sb.WriteString(r.Description)
	sb.WriteString("\n\n")

	writeLinks(&sb, "Feature Flags:", r.Links.FeatureFlags)
	writeLinks(&sb, "Loom Links:", r.Links.DemoLinks)
	writeLinks(&sb, "Live URLs:", r.Links.LiveURLs)
	writeLinks(&sb, "Image URLs:", r.Links.ImageURLs)

	sb.WriteString("Missing Info:\n")
	sb.WriteString(r.MissingInfo)
	sb.WriteString("\n")
	return sb.String()
}

func writeLinks(sb *strings.Builder, header string, links []string) {
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, link := range links {
		sb.WriteString("- ")
		sb.WriteString(link)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}
