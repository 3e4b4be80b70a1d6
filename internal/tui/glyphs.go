package tui

import (
	"os"
	"strings"
)

// Terminal apps can't change the user's actual font. Instead, we choose
// between Unicode and ASCII glyph sets for the tree affordances (twisties).
// This helps on terminals/fonts that don't render some glyphs cleanly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var currentGlyphs = glyphSetUnicode

func applyGlyphPreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JSONLENS_GLYPHS"))) {
	case "", "unicode", "utf8":
		currentGlyphs = glyphSetUnicode
	case "ascii":
		currentGlyphs = glyphSetASCII
	default:
		// Unknown value: ignore.
	}
}

func glyphTwistyCollapsed() string {
	if currentGlyphs == glyphSetASCII {
		return ">"
	}
	return "▸"
}

func glyphTwistyExpanded() string {
	if currentGlyphs == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphTwistyLeaf() string {
	return " "
}

func glyphEllipsis() string {
	if currentGlyphs == glyphSetASCII {
		return "..."
	}
	return "…"
}
