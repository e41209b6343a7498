package cli

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/konkrer/hack-or-snooze/internal/models"
)

var (
	star    = color.New(color.FgYellow).SprintFunc()
	success = color.New(color.FgGreen).SprintFunc()
	failure = color.New(color.FgRed).SprintFunc()
	muted   = color.New(color.Faint).SprintFunc()
)

// newTable builds a borderless left-aligned table for story listings.
func newTable(w io.Writer, headers []string) *tablewriter.Table {
	t := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	t.Header(headers)
	return t
}

// renderStories writes one table row per story. The marker column carries a
// yellow star for stories in the user's favorites; edit/delete only apply
// to the user's own stories, so those get an "edit" hint. user may be nil.
func renderStories(w io.Writer, list []models.Story, user *models.User) {
	t := newTable(w, []string{"", "ID", "TITLE", "BY", "SITE", "POSTED BY"})

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		marker := " "
		if user != nil && user.IsFavorite(s.StoryID) {
			marker = star("*")
		}
		title := s.Title
		if user != nil && user.Owns(s) {
			title += muted(" (yours)")
		}
		rows = append(rows, []string{marker, s.StoryID, title, s.Author, hostname(s.URL), s.Username})
	}
	t.Bulk(rows)
	t.Render()
}

// hostname pulls the display host out of a story URL, dropping a leading
// "www." the way the original client did.
func hostname(rawURL string) string {
	host := rawURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.Index(host, "/"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
