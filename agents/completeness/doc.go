/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package completeness asks a text model whether a pull request description
carries everything reviewers expect: a description, and where the change
is user-facing, demo videos or screenshots and live URLs.

An assessor is chosen by model name:

	a, err := completeness.New(ctx,
		completeness.WithModel("gpt-4"),
		completeness.WithAPIKey(os.Getenv("OPENAI_API_KEY")))

Models starting with "claude-" use the Anthropic Messages API (directly, or
through Vertex AI with WithVertex), models starting with "gemini-" use the
Google Gen AI SDK, and "gpt-" or "o" models use OpenAI Chat Completions.

Assess never fails. A backend error is reported on the returned Verdict,
whose String method then yields Unavailable so the report can still be
rendered.
*/
package completeness
