/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import "testing"

func TestParseDescriptionFallback(t *testing.T) {
	tests := []struct {
		in      string
		want    DescriptionFallback
		wantErr bool
	}{
		{in: "", want: FallbackFirstLine},
		{in: "first-non-empty-line", want: FallbackFirstLine},
		{in: "use-title", want: FallbackTitle},
		{in: "title", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDescriptionFallback(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDescriptionFallback(%q) error: got = %v, wanted error = %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDescriptionFallback(%q): got = %q, wanted = %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLiveURLPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    LiveURLPolicy
		wantErr bool
	}{
		{in: "", want: LiveURLUpgrade},
		{in: "upgrade", want: LiveURLUpgrade},
		{in: "filter", want: LiveURLFilter},
		{in: "drop", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLiveURLPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLiveURLPolicy(%q) error: got = %v, wanted error = %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLiveURLPolicy(%q): got = %q, wanted = %q", tt.in, got, tt.want)
		}
	}
}

func TestPolicyDecoders(t *testing.T) {
	var f DescriptionFallback
	if got := f.String(); got != string(FallbackFirstLine) {
		t.Errorf("zero DescriptionFallback.String(): got = %q, wanted = %q", got, FallbackFirstLine)
	}
	if err := f.EnvDecode("use-title"); err != nil {
		t.Fatalf("EnvDecode: got = %v, wanted = nil", err)
	}
	if f != FallbackTitle {
		t.Errorf("DescriptionFallback: got = %q, wanted = %q", f, FallbackTitle)
	}
	if err := f.Set("bogus"); err == nil {
		t.Error("Set(bogus): got = nil, wanted = error")
	}

	var p LiveURLPolicy
	if got := p.String(); got != string(LiveURLUpgrade) {
		t.Errorf("zero LiveURLPolicy.String(): got = %q, wanted = %q", got, LiveURLUpgrade)
	}
	if err := p.EnvDecode("filter"); err != nil {
		t.Fatalf("EnvDecode: got = %v, wanted = nil", err)
	}
	if p != LiveURLFilter {
		t.Errorf("LiveURLPolicy: got = %q, wanted = %q", p, LiveURLFilter)
	}
}
