/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// stringLiteral can only be produced from untyped string constants by
// callers outside this package.
type stringLiteral string

// Prompt is a template together with the values bound to its placeholders.
type Prompt struct {
	template string
	values   map[string]value
}

// value renders a bound placeholder. A nil value marks an unbound one.
type value func() (string, error)

// NewPrompt parses template and records its placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	values := make(map[string]value)
	if _, err := expand(string(template), func(name string) (string, error) {
		values[name] = nil
		return "", nil
	}); err != nil {
		return nil, err
	}
	return &Prompt{template: string(template), values: values}, nil
}

// MustNewPrompt is NewPrompt for package-level templates. It panics on a
// malformed template.
func MustNewPrompt(template stringLiteral) *Prompt {
	p, err := NewPrompt(template)
	if err != nil {
		panic(err)
	}
	return p
}

// BindStringLiteral binds a developer-supplied constant.
func (p *Prompt) BindStringLiteral(name string, s stringLiteral) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		return string(s), nil
	})
}

// BindJSON binds data encoded as indented JSON. Strings become quoted JSON
// strings, which keeps untrusted text from escaping its placeholder.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	return p.bind(name, func() (string, error) {
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling %s as JSON: %w", name, err)
		}
		return string(b), nil
	})
}

func (p *Prompt) bind(name string, v value) (*Prompt, error) {
	current, ok := p.values[name]
	switch {
	case !ok:
		return nil, fmt.Errorf("placeholder %q not found in template", name)
	case current != nil:
		return nil, fmt.Errorf("placeholder %q already bound", name)
	}
	values := maps.Clone(p.values)
	values[name] = v
	return &Prompt{template: p.template, values: values}, nil
}

// Build renders the prompt. Every placeholder must be bound.
func (p *Prompt) Build() (string, error) {
	rendered := make(map[string]string, len(p.values))
	for name, v := range p.values {
		if v == nil {
			return "", fmt.Errorf("unbound placeholder: %s", name)
		}
		s, err := v()
		if err != nil {
			return "", err
		}
		rendered[name] = s
	}
	return expand(p.template, func(name string) (string, error) {
		return rendered[name], nil
	})
}

// expand replaces each {{name}} in template with resolve(name) in one pass.
func expand(template string, resolve func(name string) (string, error)) (string, error) {
	var sb strings.Builder
	for {
		start := strings.Index(template, "{{")
		if start == -1 {
			sb.WriteString(template)
			return sb.String(), nil
		}
		sb.WriteString(template[:start])

		end := strings.Index(template[start:], "}}")
		if end == -1 {
			return "", errors.New("unclosed placeholder: missing '}}'")
		}
		name := strings.TrimSpace(template[start+2 : start+end])
		if !validName(name) {
			return "", fmt.Errorf("invalid placeholder name %q", name)
		}
		s, err := resolve(name)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
		template = template[start+end+2:]
	}
}

func validName(name string) bool {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r):
		case i > 0 && (unicode.IsDigit(r) || r == '_'):
		default:
			return false
		}
	}
	return name != ""
}
