package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/goose"
)

// input is one article to extract.
type input struct {
	label string
	cand  goose.CrawlCandidate
}

// Run executes the extract command. Each input is crawled once; failures
// are reported and the remaining inputs are still processed.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	inputs, err := c.inputs()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", goose.ErrorMessage(err))
		return err
	}
	if len(inputs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: provide at least one URL or --file")
		return goose.Errorf(goose.EINVALID, "no input")
	}

	failed := 0
	for i, in := range inputs {
		if deps.Seen != nil && deps.Seen.Seen(in.cand.URL) {
			fmt.Fprintf(deps.Stderr, "skipping duplicate %s\n", in.label)
			continue
		}
		if i > 0 && !c.JSON {
			fmt.Fprintln(deps.Stdout)
		}
		if err := c.extract(deps, in); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", in.label, goose.ErrorMessage(err))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d articles failed", failed, len(inputs))
	}
	return nil
}

func (c *ExtractCmd) inputs() ([]input, error) {
	var inputs []input
	for _, u := range c.URLs {
		inputs = append(inputs, input{label: u, cand: goose.CrawlCandidate{URL: u}})
	}
	for _, path := range c.File {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, goose.Errorf(goose.EINVALID, "cannot read %s: %v", path, err)
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{
			label: path,
			cand: goose.CrawlCandidate{
				URL:     "file://" + filepath.ToSlash(abs),
				RawHTML: string(data),
			},
		})
	}
	return inputs, nil
}

func (c *ExtractCmd) extract(deps *Dependencies, in input) error {
	a, err := deps.Crawler.Crawl(deps.Ctx, in.cand, c.Sub)
	if err != nil {
		return err
	}

	rec := goose.NewRecord(a)
	if rec.URL == "" {
		rec.URL = in.cand.URL
	}
	rec.CrawledAt = time.Now().UTC()

	if c.Save {
		if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
			return err
		}
	}

	var written string
	if deps.Writer != nil {
		if written, err = deps.Writer.WriteRecord(rec); err != nil {
			return err
		}
	}

	if c.JSON {
		return writeJSON(deps.Stdout, rec)
	}
	printRecord(deps.Stdout, rec, true)
	if rec.ID != "" {
		fmt.Fprintf(deps.Stderr, "Saved %s\n", rec.ID)
	}
	if written != "" {
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", written)
	}
	return nil
}
