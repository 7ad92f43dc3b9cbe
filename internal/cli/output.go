package cli

import (
	"io"

	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats numbers with English digit grouping.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
