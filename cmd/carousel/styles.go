package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"carousel/internal/manifest"
	"carousel/internal/theme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(8)
	countStyle = lipgloss.NewStyle().Bold(true).Width(6).Align(lipgloss.Right)
	pathStyle  = lipgloss.NewStyle().Underline(true)

	lightBadge = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#0d1117")).Background(lipgloss.Color("#f5fff7"))
	darkBadge  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#f5fff7")).Background(lipgloss.Color("#0d1117"))
)

func renderManifest(m *manifest.Manifest, out string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Manifest generated: ") + pathStyle.Render(out) + "\n")

	rows := []struct {
		bucket manifest.Bucket
		count  int
	}{
		{manifest.Small, m.Stats.Small},
		{manifest.Medium, m.Stats.Medium},
		{manifest.Large, m.Stats.Large},
	}
	var total int64
	for _, r := range rows {
		size := m.Bytes[r.bucket]
		total += size
		fmt.Fprintf(&b, "%s%s  %s\n",
			labelStyle.Render(r.bucket.String()),
			countStyle.Render(fmt.Sprint(r.count)),
			humanize.IBytes(uint64(size)))
	}
	fmt.Fprintf(&b, "%s%s  %s\n",
		labelStyle.Render("total"),
		countStyle.Render(fmt.Sprint(m.Stats.Total)),
		humanize.IBytes(uint64(total)))
	b.WriteString(m.Summary() + "\n")
	return b.String()
}

func renderTheme(t theme.Theme, path string) string {
	badge := lightBadge
	if t == theme.Dark {
		badge = darkBadge
	}
	return fmt.Sprintf("%s %s\n", badge.Render(string(t)), labelStyle.UnsetWidth().Render(path))
}
