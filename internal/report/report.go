// Package report renders a finished research result into the export
// formats: Markdown, plain text, HTML, JSON, and PDF. All transforms are
// pure; the generation time is passed in so output stays deterministic.
package report

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/jkorri/wikiresearch/internal/pipeline"
	"github.com/jkorri/wikiresearch/internal/textutil"
)

// overviewMaxChars bounds the overview section of the text reports.
const overviewMaxChars = 1000

// Markdown renders the full report document.
func Markdown(topic string, res *pipeline.ResearchResult, generated time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Research Report: %s\n\n", topic)
	fmt.Fprintf(&sb, "**Generated:** %s\n\n", generated.Format("2006-01-02 15:04:05"))
	sb.WriteString("## Overview\n")
	sb.WriteString(textutil.Truncate(res.Summary, overviewMaxChars))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "## Sources (%d)\n", len(res.Sources))
	for i, src := range res.Sources {
		fmt.Fprintf(&sb, "\n### %d. %s\n", i+1, src.Title)
		fmt.Fprintf(&sb, "**URL:** %s\n\n", src.URL)
		sb.WriteString(src.Snippet)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// Text strips the Markdown emphasis and heading markers from a report.
// Heading markers are removed only at the start of a line, so '#' inside
// body text (say, a topic like "C# programming") survives.
func Text(markdown string) string {
	s := strings.ReplaceAll(markdown, "**", "")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "#")
		if trimmed != line && strings.HasPrefix(trimmed, " ") {
			lines[i] = strings.TrimPrefix(trimmed, " ")
		}
	}
	return strings.Join(lines, "\n")
}

// HTML wraps the report in a minimal preformatted page.
func HTML(markdown string) string {
	return "<html><body><pre>" + html.EscapeString(markdown) + "</pre></body></html>"
}

// JSON pretty-prints the full research result.
func JSON(res *pipeline.ResearchResult) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}

