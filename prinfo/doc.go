/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package prinfo extracts structured metadata from free-form pull request
// descriptions and renders it as a summary report.
//
// Every function in this package is pure over its input text: there is no
// shared state and nothing here performs I/O. Missing structure is never an
// error. An empty body yields an empty description and an empty LinkBundle.
//
// # Links
//
// ExtractLinks returns four categories of URL:
//
//   - feature flags: codehs.com/internal/feature_flag/<digits>
//   - demo videos: loom.com/share/<alphanumeric>
//   - live URLs: every URL listed after the "Live URLs:" label
//   - images: github.com/user-attachments/assets/<token>
//
// Feature flag, demo and image links are found anywhere in the body and are
// normalized to https with a lower-case host and no "www." prefix. Live URLs
// are scoped to the labelled section; how insecure live URLs are handled is
// controlled by a LiveURLPolicy.
//
// # Description
//
// ExtractDescription reads the line following a "Description" label. When no
// label is present the DescriptionFallback decides between the first
// non-empty line of the body (the default) and the item title.
//
// # Report
//
//	report := prinfo.Compose(prinfo.FormatTitle(42, title), desc, links, verdict)
//	fmt.Println(report.Markdown())
package prinfo
