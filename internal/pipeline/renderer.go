package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
)

// Renderer writes verification reports as JSON or Markdown
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON to the given path, or to
// stdout when path is "-"
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RenderMarkdown writes a human-readable report to the given path, or to
// stdout when path is "-"
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	if path == "-" {
		return r.writeMarkdown(os.Stdout, report)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.writeMarkdown(f, report)
}

func (r *Renderer) writeMarkdown(w io.Writer, report *model.Report) error {
	printf := func(format string, a ...any) {
		fmt.Fprintf(w, format, a...)
	}

	printf("# Document Verification Report\n\n")
	if report.Document != "" {
		printf("- **Document**: %s\n", report.Document)
	}
	printf("- **Verified at**: %s\n", report.VerifiedAt.Format("2006-01-02 15:04:05 UTC"))
	printf("- **Status**: %s\n\n", report.Status)

	printf("## Field Confidence\n\n")
	printf("| Field | Supplied | Confidence |\n")
	printf("|---|---|---|\n")
	for _, field := range model.Fields {
		supplied := "no"
		if report.Supplied[field] {
			supplied = "yes"
		}
		printf("| %s | %s | %d |\n", field, supplied, report.Confidence[field])
	}
	printf("\n")

	printf("## Issues\n\n")
	if len(report.Issues) == 0 {
		printf("None.\n\n")
	} else {
		for _, issue := range report.Issues {
			printf("- %s\n", issue)
		}
		printf("\n")
	}

	printf("## Extracted Entities\n\n")
	categories := make([]string, 0, len(report.Entities))
	for c := range report.Entities {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		printf("### %s\n\n", c)
		if len(report.Entities[c]) == 0 {
			printf("(none)\n\n")
			continue
		}
		for _, text := range report.Entities[c] {
			printf("- %s\n", text)
		}
		printf("\n")
	}
	return nil
}
