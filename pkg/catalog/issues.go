package catalog

import "fmt"

// IssueKind classifies a data quality problem
type IssueKind string

const (
	IssueUnknownKind        IssueKind = "unknown_kind"
	IssueMissingCode        IssueKind = "missing_code"
	IssueDuplicateEntity    IssueKind = "duplicate_entity"
	IssueDuplicateAttribute IssueKind = "duplicate_attribute"
)

// Issue is a data quality problem found while building a Store. Line is the
// 1-based index of the record among the non-blank data records of the
// catalog source, header excluded. Blank lines are not counted, so it is
// not a text line number.
type Issue struct {
	Kind    IssueKind `json:"kind" yaml:"kind"`
	Key     string    `json:"key,omitempty" yaml:"key,omitempty"`
	Line    int       `json:"line" yaml:"line"`
	Message string    `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("row %d: %s", i.Line, i.Message)
}

// CountIssues groups issues by kind
func CountIssues(issues []Issue) map[IssueKind]int {
	counts := make(map[IssueKind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}
