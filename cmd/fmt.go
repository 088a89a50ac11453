package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. When rendering fails
// (no TTY, odd TERM) the raw markdown is still perfectly readable, so it is
// printed as-is.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}
