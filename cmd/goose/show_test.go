package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/goose"
	main "github.com/fwojciec/goose/cmd/goose"
	"github.com/fwojciec/goose/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	stored := func(content string) *mock.RecordService {
		return &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, id string) (*goose.Record, error) {
				if id != "rec-1" {
					return nil, goose.Errorf(goose.ENOTFOUND, "record %q not found", id)
				}
				return &goose.Record{
					ID:          "rec-1",
					URL:         "https://example.com/story",
					Title:       "Hello World",
					Authors:     []string{"Lois Lane", "Clark Kent"},
					PublishDate: &published,
					Content:     content,
				}, nil
			},
		}
	}

	t.Run("prints the article", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: stored("Short story."),
		}

		err := (&main.ShowCmd{ID: "rec-1"}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "rec-1")
		assert.Contains(t, output, "Hello World")
		assert.Contains(t, output, "Lois Lane, Clark Kent")
		assert.Contains(t, output, "2024-03-05T08:00:00Z")
		assert.Contains(t, output, "Short story.")
	})

	t.Run("truncates long text unless full", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 200) + "THE END"

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: stored(long),
		}
		require.NoError(t, (&main.ShowCmd{ID: "rec-1"}).Run(deps))
		assert.NotContains(t, stdout.String(), "THE END")
		assert.Contains(t, stdout.String(), "...")

		stdout.Reset()
		require.NoError(t, (&main.ShowCmd{ID: "rec-1", Full: true}).Run(deps))
		assert.Contains(t, stdout.String(), "THE END")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: stored("Short story."),
		}

		err := (&main.ShowCmd{ID: "rec-1", JSON: true}).Run(deps)

		require.NoError(t, err)
		var rec goose.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
		assert.Equal(t, "rec-1", rec.ID)
		assert.Equal(t, []string{"Lois Lane", "Clark Kent"}, rec.Authors)
	})

	t.Run("reports missing articles", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Records: stored(""),
		}

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, goose.ENOTFOUND, goose.ErrorCode(err))
		assert.Contains(t, stderr.String(), `article "nope" not found`)
	})
}
