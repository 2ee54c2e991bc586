// Package layout decides which source form a Fortran file uses.
package layout

import (
	"github.com/go-enry/go-enry/v2"

	"github.com/donaldgifford/fortfmt/internal/parser"
)

// Detect returns the layout for a file name, judged by its extension.
// The reported ok is false when the extension gives no verdict; the
// layout then defaults to fixed, the form every line parses under.
func Detect(name string) (parser.Layout, bool) {
	for _, lang := range enry.GetLanguagesByExtension(name, nil, nil) {
		switch lang {
		case "Fortran Free Form":
			return parser.LayoutFree, true
		case "Fortran":
			return parser.LayoutFixed, true
		}
	}
	return parser.LayoutFixed, false
}

// Resolve maps a configured layout name to a parse layout, falling back to
// extension detection in "auto" mode.
func Resolve(configured, name string) parser.Layout {
	switch configured {
	case "fixed":
		return parser.LayoutFixed
	case "free":
		return parser.LayoutFree
	}
	lay, _ := Detect(name)
	return lay
}
