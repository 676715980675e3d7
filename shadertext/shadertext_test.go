package shadertext

import (
	"strings"
	"testing"
)

func TestInsertAfterVersion(t *testing.T) {
	const block = "\n#define INJECTED 1\n"

	testCases := map[string]struct {
		src      string
		expected string
		version  string
	}{
		"NoVersion": {
			src:      "attribute vec2 position;\nvoid main() {}\n",
			expected: block + "attribute vec2 position;\nvoid main() {}\n",
		},
		"Version300es": {
			src:      "#version 300 es\nin vec2 position;\n",
			expected: "#version 300 es\n" + block + "in vec2 position;\n",
			version:  "#version 300 es",
		},
		"Version100": {
			src:      "#version 100\nattribute vec2 position;\n",
			expected: "#version 100\n" + block + "attribute vec2 position;\n",
			version:  "#version 100",
		},
		"IndentedVersion": {
			src:      "\n\t#version 300 es\n\tin vec2 position;\n",
			expected: "\n\t#version 300 es\n" + block + "\tin vec2 position;\n",
			version:  "#version 300 es",
		},
		"TrailingSpaces": {
			src:      "#version 300 es  \nin vec2 position;\n",
			expected: "#version 300 es  \n" + block + "in vec2 position;\n",
			version:  "#version 300 es",
		},
		"VersionWithoutNewline": {
			src:      "#version 300 es",
			expected: block + "#version 300 es",
		},
		"Empty": {
			src:      "",
			expected: block,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := InsertAfterVersion(tt.src, block)
			if out != tt.expected {
				t.Errorf("expected:\n%q\ngot:\n%q", tt.expected, out)
			}
			if len(out) != len(tt.src)+len(block) {
				t.Errorf("length expected to be %d, got %d", len(tt.src)+len(block), len(out))
			}
			if tt.version != "" {
				if i, j := strings.Index(out, tt.version), strings.Index(out, block); i < 0 || j < i {
					t.Error("version line must precede the inserted block")
				}
			}
		})
	}
}

func TestInsertAfterVersionNotDeduplicated(t *testing.T) {
	const block = "#define INJECTED 1\n"
	src := "#version 300 es\nvoid main() {}\n"

	out := InsertAfterVersion(InsertAfterVersion(src, block), block)
	if n := strings.Count(out, block); n != 2 {
		t.Errorf("block expected to appear twice, got %d", n)
	}
}
