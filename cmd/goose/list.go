package main

import (
	"fmt"

	"github.com/fwojciec/goose"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := goose.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Domain != "" {
		filter.Domain = &c.Domain
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", goose.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'goose extract --save' to store one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.CrawledAt.Format("2006-01-02"), r.Domain, r.Title)
	}

	return nil
}
