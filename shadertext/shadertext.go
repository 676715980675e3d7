// Package shadertext edits GLSL source text.
package shadertext

import (
	"regexp"
)

var versionLine = regexp.MustCompile(`#version \d+(\s+es)?\s*\n`)

// InsertAfterVersion returns src with block inserted right after the first
// #version directive line, or prepended when src has none.
func InsertAfterVersion(src, block string) string {
	loc := versionLine.FindStringIndex(src)
	if loc == nil {
		return block + src
	}
	return src[:loc[1]] + block + src[loc[1]:]
}
