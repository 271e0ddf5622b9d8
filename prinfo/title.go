/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package prinfo

import (
	"strconv"
	"strings"
	"unicode"
)

// FormatTitle prefixes the title with "#<number>". A bracketed status marker
// such as "[50%]" is removed by truncating at the first '['.
func FormatTitle(number int, title string) string {
	if i := strings.IndexByte(title, '['); i != -1 {
		title = strings.TrimRightFunc(title[:i], unicode.IsSpace)
	}
	return "#" + strconv.Itoa(number) + " " + title
}
