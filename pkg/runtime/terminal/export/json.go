package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/feed-atlas/pkg/models/domain"
)

type jsonDetail struct {
	Name        string      `json:"name"`
	Value       interface{} `json:"value"`
	Unit        string      `json:"unit,omitempty"`
	Description string      `json:"description,omitempty"`
}

type jsonSection struct {
	Title   string                 `json:"title"`
	Summary map[string]interface{} `json:"summary,omitempty"`
	Details []jsonDetail           `json:"details"`
}

type jsonReport struct {
	Title    string        `json:"title"`
	FeedType string        `json:"feedType,omitempty"`
	Total    string        `json:"total,omitempty"`
	Unit     string        `json:"unit,omitempty"`
	Sections []jsonSection `json:"sections"`
}

// JSONReporter writes reports as indented JSON documents
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (j *JSONReporter) Handle(report *domain.Report) error {
	out := jsonReport{
		Title:    report.Title,
		FeedType: report.FeedType,
		Total:    report.Total,
		Unit:     report.Unit,
		Sections: make([]jsonSection, 0, len(report.Sections)),
	}
	for _, s := range report.Sections {
		section := jsonSection{Title: s.Title, Summary: s.Summary, Details: make([]jsonDetail, 0, len(s.Details))}
		for _, d := range s.Details {
			section.Details = append(section.Details, jsonDetail(d))
		}
		out.Sections = append(out.Sections, section)
	}

	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
