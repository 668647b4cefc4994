package topics

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/nfrund/shopdocs/internal/catalog"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	cyan  = color.New(color.FgCyan)
)

// TopicDisplay is the list view of a unit; the payload is left out.
type TopicDisplay struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Source string `json:"source,omitempty"`
}

// DisplayTopicsTable writes units as an aligned table in catalog order.
func DisplayTopicsTable(w io.Writer, units []catalog.Unit) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "KEY\tTITLE\tSOURCE\tSIZE")
	fmt.Fprintln(tw, "---\t-----\t------\t----")

	if len(units) == 0 {
		fmt.Fprintln(tw, "No topics found")
		return
	}
	for _, u := range units {
		source := u.Source
		if source == "" {
			source = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			u.Key,
			truncateString(u.Title, 40),
			source,
			len(u.Payload))
	}
}

// DisplayTopicsJSON writes units as {"topics": [...], "count": n}.
func DisplayTopicsJSON(w io.Writer, units []catalog.Unit) error {
	displays := make([]TopicDisplay, len(units))
	for i, u := range units {
		displays[i] = TopicDisplay{Key: u.Key, Title: u.Title, Source: u.Source}
	}

	output := struct {
		Topics []TopicDisplay `json:"topics"`
		Count  int            `json:"count"`
	}{
		Topics: displays,
		Count:  len(displays),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// DisplayTopicDetails writes a single unit in the requested format.
func DisplayTopicDetails(w io.Writer, u catalog.Unit, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(u)
	case "raw":
		_, err := io.WriteString(w, u.Payload)
		return err
	case "table", "":
		fmt.Fprintf(w, "Key:     %s\n", u.Key)
		fmt.Fprintf(w, "Title:   %s\n", u.Title)
		fmt.Fprintf(w, "Source:  %s\n", u.Source)
		fmt.Fprintf(w, "Payload: %d bytes\n", len(u.Payload))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or raw)", format)
	}
}

// DisplayValidationResult reports lint issues, or a success line when there
// are none.
func DisplayValidationResult(w io.Writer, reg *catalog.Registry, issues []catalog.Issue) {
	if len(issues) == 0 {
		green.Fprintf(w, "✅ Catalog is valid (%d topics)\n", reg.Len())
		return
	}

	red.Fprintf(w, "❌ %d issue(s) found in %d topics\n", len(issues), reg.Len())
	for _, issue := range issues {
		fmt.Fprintf(w, "   %s %s\n", cyan.Sprint(issue.Key), issue.Message)
	}
}

// ReportBuildFailure explains why the catalog could not be built.
func ReportBuildFailure(w io.Writer, err error) {
	red.Fprintf(w, "❌ Catalog construction failed\n\n")
	fmt.Fprintf(w, "%v\n", err)
	if catalog.IsDuplicateKey(err) {
		fmt.Fprintf(w, "\nEvery topic key must be unique across the embedded content and CONTENT_DIR.\n")
	}
}

// truncateString shortens s to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return "..."
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}
