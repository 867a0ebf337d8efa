// Package goose extracts structured articles from arbitrary HTML documents.
// It locates the primary content region of a page, suppresses template
// noise, and gathers metadata such as title, authors and publish date from
// the many places publishers put them.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/).
package goose
