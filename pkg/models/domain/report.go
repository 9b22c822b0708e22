package domain

// Report represents a complete calculation report
type Report struct {
	Title    string
	FeedType string
	Sections []ReportSection
	Total    string
	Unit     string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
