/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"strings"
	"testing"
)

func TestRepeatedPlaceholder(t *testing.T) {
	p, err := NewPrompt("Hello {{name}}, see {{ link_1 }} and {{name}} again")
	if err != nil {
		t.Fatalf("NewPrompt: got = %v, wanted = nil", err)
	}
	bound, err := p.BindStringLiteral("name", "owl")
	if err != nil {
		t.Fatalf("BindStringLiteral: %v", err)
	}
	if bound, err = bound.BindStringLiteral("link_1", "here"); err != nil {
		t.Fatalf("BindStringLiteral: %v", err)
	}
	got, err := bound.Build()
	if err != nil {
		t.Fatalf("Build: got = %v, wanted = nil", err)
	}
	if want := "Hello owl, see here and owl again"; got != want {
		t.Errorf("Build: got = %q, wanted = %q", got, want)
	}
}

func TestNewPromptErrors(t *testing.T) {
	tests := []struct {
		name     string
		template stringLiteral
	}{
		{name: "unclosed", template: "Hello {{name"},
		{name: "empty name", template: "Hello {{}}"},
		{name: "leading digit", template: "{{1name}}"},
		{name: "punctuation", template: "{{na-me}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPrompt(tt.template); err == nil {
				t.Errorf("NewPrompt(%q): got = nil, wanted = error", tt.template)
			}
		})
	}
}

func TestMustNewPromptPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNewPrompt: got no panic, wanted panic")
		}
	}()
	MustNewPrompt("{{broken")
}

func TestBuild(t *testing.T) {
	p := MustNewPrompt("Rules: {{rules}}\nBody: {{body}}")

	bound, err := p.BindStringLiteral("rules", "be brief")
	if err != nil {
		t.Fatalf("BindStringLiteral: %v", err)
	}
	bound, err = bound.BindJSON("body", "line one\n{{rules}}")
	if err != nil {
		t.Fatalf("BindJSON: %v", err)
	}

	got, err := bound.Build()
	if err != nil {
		t.Fatalf("Build: got = %v, wanted = nil", err)
	}
	want := "Rules: be brief\nBody: \"line one\\n{{rules}}\""
	if got != want {
		t.Errorf("Build: got = %q, wanted = %q", got, want)
	}
}

func TestBindErrors(t *testing.T) {
	p := MustNewPrompt("{{a}} {{b}}")

	if _, err := p.BindStringLiteral("missing", "x"); err == nil {
		t.Error("bind unknown placeholder: got = nil, wanted = error")
	}

	bound, err := p.BindStringLiteral("a", "x")
	if err != nil {
		t.Fatalf("BindStringLiteral: %v", err)
	}
	if _, err := bound.BindStringLiteral("a", "y"); err == nil {
		t.Error("rebind placeholder: got = nil, wanted = error")
	}

	if _, err := bound.Build(); err == nil || !strings.Contains(err.Error(), "b") {
		t.Errorf("Build with unbound b: got = %v, wanted unbound error", err)
	}
}

func TestBindDoesNotMutate(t *testing.T) {
	p := MustNewPrompt("{{a}}")
	if _, err := p.BindStringLiteral("a", "x"); err != nil {
		t.Fatalf("BindStringLiteral: %v", err)
	}
	if _, err := p.Build(); err == nil {
		t.Error("original prompt Build: got = nil, wanted unbound error")
	}
	if _, err := p.BindStringLiteral("a", "y"); err != nil {
		t.Errorf("binding original again: got = %v, wanted = nil", err)
	}
}

func TestBindJSONError(t *testing.T) {
	bound, err := MustNewPrompt("{{a}}").BindJSON("a", make(chan int))
	if err != nil {
		t.Fatalf("BindJSON: %v", err)
	}
	if _, err := bound.Build(); err == nil {
		t.Error("Build with unmarshalable value: got = nil, wanted = error")
	}
}
