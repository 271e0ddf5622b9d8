/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

// Bindable is implemented by request types that fill a prompt template with
// their own fields.
type Bindable interface {
	Bind(prompt *Prompt) (*Prompt, error)
}
