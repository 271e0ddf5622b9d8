/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import "testing"

func TestFormatTitle(t *testing.T) {
	tests := []struct {
		name   string
		number int
		title  string
		want   string
	}{{
		name:   "progress marker stripped",
		number: 42,
		title:  "Add dashboard [50%]",
		want:   "#42 Add dashboard",
	}, {
		name:   "no marker kept verbatim",
		number: 7,
		title:  "Fix typo in footer",
		want:   "#7 Fix typo in footer",
	}, {
		name:   "trailing space without marker kept",
		number: 5,
		title:  "Trailing space  ",
		want:   "#5 Trailing space  ",
	}, {
		name:   "truncates at first bracket",
		number: 1,
		title:  "Fix [WIP] thing [2/3]",
		want:   "#1 Fix",
	}, {
		name:   "tabs before marker trimmed",
		number: 9,
		title:  "Refactor grader\t [done]",
		want:   "#9 Refactor grader",
	}, {
		name:   "marker at start leaves empty title",
		number: 3,
		title:  "[WIP]",
		want:   "#3 ",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTitle(tt.number, tt.title); got != tt.want {
				t.Errorf("FormatTitle(%d, %q): got = %q, wanted = %q", tt.number, tt.title, got, tt.want)
			}
		})
	}
}
