package main

import (
	"fmt"

	"github.com/fwojciec/goose"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rec, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if goose.ErrorCode(err) == goose.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'goose list' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", goose.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, rec)
	}
	fmt.Fprintf(deps.Stdout, "ID:        %s\n", rec.ID)
	printRecord(deps.Stdout, rec, c.Full)
	return nil
}
