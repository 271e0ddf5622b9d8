/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package completeness

import "chainguard.dev/owlcast/agents/promptbuilder"

var assessmentPrompt = mustBindAnswers(promptbuilder.MustNewPrompt(`Our PR expects a short description, and if they are required,
a list of feature flags (codehs specific), a list of loom links (demo videos),
a list of live urls (links to the live site), and a list of image urls (screenshots).
Given the description and links, determine if anything needs to be added to the body to make it more complete.

Rules:
- The feature flags are optional
- The loom links and image urls serve the same purpose, and are not needed for things that do not affect the frontend
- The live urls are not needed for things that do not affect the frontend
- The description is required, and should be a short description of the PR

Examples of incorrect info:
- The description is too short
- The description is not the correct selection because of the way the body is formatted
- The PR seems to add or edit a page and there is no image url or loom link
- The PR seems to add or edit a page and there is no live url, or the live url is just the base site url

Return JUST a short description of what is missing or incorrect, if anything, and why it is needed.
Otherwise return "{{no_missing_info}}".

The values below are JSON encoded.

Description: {{description}}
Links: {{links}}
Body: {{body}}
`))

// mustBindAnswers fills in the fixed answers the model is asked to give.
func mustBindAnswers(p *promptbuilder.Prompt) *promptbuilder.Prompt {
	bound, err := p.BindStringLiteral("no_missing_info", NoMissingInfo)
	if err != nil {
		panic(err)
	}
	return bound
}
