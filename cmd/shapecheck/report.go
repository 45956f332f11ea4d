package main

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/fatih/color"

	"github.com/dmitrymomot/validation/pkg/shape"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type report struct {
	File    string               `json:"file"`
	Valid   bool                 `json:"valid"`
	Invalid *shape.InvalidFields `json:"errors,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func (r report) print(w io.Writer) {
	switch {
	case r.Error != "":
		printStatus(w, "!", color.FgYellow, fmt.Sprintf("%s: %s", r.File, r.Error))
	case r.Valid:
		printStatus(w, "✓", color.FgGreen, r.File)
	default:
		printStatus(w, "✗", color.FgRed, r.File)
		flat := r.Invalid.Flatten()
		for _, path := range slices.Sorted(maps.Keys(flat)) {
			label := path
			if label == "" {
				label = "(root)"
			}
			for _, msg := range flat[path] {
				fmt.Fprintf(w, "    %s: %s\n", color.CyanString(label), msg)
			}
		}
	}
}

// printStatus prints a status line with a colored symbol.
func printStatus(w io.Writer, symbol string, attr color.Attribute, message string) {
	fmt.Fprintf(w, "%s %s\n", color.New(attr).Sprint(symbol), message)
}
