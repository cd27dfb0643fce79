// Package fonts holds the compiled-in font tables.
package fonts

//go:generate go run ../../cmd/fontgen --face basic7x13 --emit bdf -o ../../fonts
//go:generate go run ../../cmd/fontgen --face basic7x13 --scale 2 --emit bdf -o ../../fonts
//go:generate go run ../../cmd/fontgen --face basic7x13 --scale 8 --last : --emit bdf -o ../../fonts
//go:generate go run ../../cmd/fontgen -o . ../../fonts/basic7x13.bdf ../../fonts/basic7x13x2.bdf ../../fonts/basic7x13x8.bdf

import (
	"sort"

	"litclock/internal/font"
)

var registry = map[string]*font.BdfFont{
	Basic7x13.Name:   Basic7x13,
	Basic7x13x2.Name: Basic7x13x2,
	Basic7x13x8.Name: Basic7x13x8,
}

// ByName returns the compiled font with the given tag.
func ByName(name string) (*font.BdfFont, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names lists every compiled font tag in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
