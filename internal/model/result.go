package model

import "time"

// ProcessedData is the full result of one pipeline run.
//
// TotalRows counts every decoded data row, including the blank rows that were
// dropped before extraction, so Cleaned length plus EmptyRows always equals
// TotalRows. Headers and Rows retain the decoded matrix for traceability.
type ProcessedData struct {
	Headers    []string  `json:"headers"`
	Rows       [][]Cell  `json:"rows"`
	TotalRows  int       `json:"total_rows"`
	Duplicates int       `json:"duplicates"`
	EmptyRows  int       `json:"empty_rows"`
	Cleaned    []Contact `json:"cleaned_data"`
}

// StatusCounts tallies the cleaned contacts by derived status.
func (p *ProcessedData) StatusCounts() (valid, warning, errored int) {
	for i := range p.Cleaned {
		switch p.Cleaned[i].Status() {
		case StatusValid:
			valid++
		case StatusWarning:
			warning++
		case StatusError:
			errored++
		}
	}
	return valid, warning, errored
}

// RunSummary is the persisted record of one pipeline run.
type RunSummary struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	TotalRows  int       `json:"total_rows"`
	EmptyRows  int       `json:"empty_rows"`
	Duplicates int       `json:"duplicates"`
	Valid      int       `json:"valid"`
	Warning    int       `json:"warning"`
	Errored    int       `json:"errored"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRunSummary builds a summary from a finished run. The ID is assigned by
// the store.
func NewRunSummary(source string, p *ProcessedData) RunSummary {
	valid, warning, errored := p.StatusCounts()
	return RunSummary{
		Source:     source,
		TotalRows:  p.TotalRows,
		EmptyRows:  p.EmptyRows,
		Duplicates: p.Duplicates,
		Valid:      valid,
		Warning:    warning,
		Errored:    errored,
	}
}
