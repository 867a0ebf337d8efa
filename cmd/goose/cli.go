package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/bloom"
	"github.com/fwojciec/goose/crawl"
	"github.com/fwojciec/goose/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Records goose.RecordService
	Crawler *crawl.Crawler
	Writer  *fs.Writer
	Seen    *bloom.Filter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log pipeline activity to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract articles from URLs or local HTML files"`
	List    ListCmd    `cmd:"" help:"List stored articles"`
	Show    ShowCmd    `cmd:"" help:"Show a stored article"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored article"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URLs   []string `arg:"" optional:"" name:"url" help:"Article URLs"`
	File   []string `short:"f" help:"Local HTML file to extract (repeatable)"`
	Format string   `default:"text" enum:"text,markdown" help:"Article text format (text, markdown)"`
	Scorer string   `default:"goose" enum:"goose,trafilatura,readability" help:"Content scorer (goose, trafilatura, readability)"`
	Render bool     `short:"r" help:"Render pages in headless Chrome before extracting"`
	Config string   `short:"c" help:"YAML config file"`
	Images bool     `help:"Download images to pick the top image"`
	Sub    bool     `default:"true" negatable:"" help:"Crawl and merge sub-articles"`
	RPS    float64  `default:"1" help:"Requests per second per domain (0 disables limiting)"`
	Save   bool     `short:"s" help:"Store extracted articles in the database"`
	Out    string   `short:"o" type:"path" help:"Write Markdown files with frontmatter under this directory"`
	JSON   bool     `help:"Print articles as JSON"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Domain string `help:"Only list articles from this domain"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of articles to list"`
	Offset int    `help:"Number of articles to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article ID"`
	Full bool   `help:"Show the full article text"`
	JSON bool   `help:"Print the article as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
