/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"chainguard.dev/owlcast/prinfo"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTable renders report as a two-column markdown table.
func writeTable(w io.Writer, report *prinfo.Report) error {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Field", "Value"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)

	rows := [][]string{
		{"Title", report.Title},
		{"Description", report.Description},
		{"Feature Flags", strings.Join(report.Links.FeatureFlags, "\n")},
		{"Loom Links", strings.Join(report.Links.DemoLinks, "\n")},
		{"Live URLs", strings.Join(report.Links.LiveURLs, "\n")},
		{"Image URLs", strings.Join(report.Links.ImageURLs, "\n")},
		{"Missing Info", report.MissingInfo},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending row %s: %w", row[0], err)
		}
	}
	return table.Render()
}
