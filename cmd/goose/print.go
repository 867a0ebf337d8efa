package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/goose"
)

// previewLength bounds the article text shown without --full.
const previewLength = 500

// printRecord writes a human-readable summary of rec. Unless full is set
// the text is truncated to previewLength runes.
func printRecord(w io.Writer, rec *goose.Record, full bool) {
	fmt.Fprintf(w, "Title:     %s\n", rec.Title)
	fmt.Fprintf(w, "URL:       %s\n", rec.URL)
	if len(rec.Authors) > 0 {
		fmt.Fprintf(w, "Authors:   %s\n", strings.Join(rec.Authors, ", "))
	}
	if rec.PublishDate != nil {
		fmt.Fprintf(w, "Published: %s\n", rec.PublishDate.Format(time.RFC3339))
	}
	if len(rec.Tags) > 0 {
		fmt.Fprintf(w, "Tags:      %s\n", strings.Join(rec.Tags, ", "))
	}
	if rec.TopImage != "" {
		fmt.Fprintf(w, "Image:     %s\n", rec.TopImage)
	}
	if rec.SubArticles > 0 {
		fmt.Fprintf(w, "Parts:     %d\n", rec.SubArticles)
	}

	text := rec.Content
	if !full {
		if runes := []rune(text); len(runes) > previewLength {
			text = string(runes[:previewLength]) + "..."
		}
	}
	if text != "" {
		fmt.Fprintf(w, "\n%s\n", text)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
