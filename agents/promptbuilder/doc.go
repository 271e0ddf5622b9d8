/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds text-model prompts from developer-owned
templates and request data, keeping the two apart the way prepared
statements keep SQL apart from parameters.

Templates contain {{name}} placeholders. A name starts with a letter and
continues with letters, digits or underscores. Placeholders are filled in a
single pass, so a bound value that itself contains "{{x}}" is never expanded.

	var p = promptbuilder.MustNewPrompt(`Rules: {{rules}}

	Body: {{body}}`)

	bound, err := p.BindStringLiteral("rules", "be brief")
	...
	bound, err = bound.BindJSON("body", pr.Body)
	...
	text, err := bound.Build()

BindStringLiteral only accepts untyped string constants, so text from a pull
request can only enter a prompt through BindJSON.

Prompts are immutable: every Bind method returns a new Prompt and leaves the
receiver untouched, so package-level templates are safe to share.

Request types implement Bindable to attach their fields to a template.
*/
package promptbuilder
