package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Mark is one (subject, score) pair inside a result record.
type Mark struct {
	SubjectID string  `json:"subject_id"`
	Score     float64 `json:"score"`
}

// MarkList stores the ordered marks array as a single JSONB column. Edits
// replace the whole list; marks are never patched individually.
type MarkList []Mark

// Value serialises the marks for a JSONB column.
func (m MarkList) Value() (driver.Value, error) {
	if m == nil {
		m = MarkList{}
	}
	return json.Marshal(m)
}

// Scan reads the marks back from a JSONB column.
func (m *MarkList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = MarkList{}
		return nil
	default:
		return fmt.Errorf("unsupported mark list source %T", src)
	}
}

// Result is one exam outcome for a student.
type Result struct {
	ID        string    `db:"id" json:"id"`
	StudentID string    `db:"student_id" json:"student_id"`
	ExamName  string    `db:"exam_name" json:"exam_name"`
	Marks     MarkList  `db:"marks" json:"marks"`
	Remarks   string    `db:"remarks" json:"remarks,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ResultSummary is the reportable aggregate computed from a marks list.
// Percentage keeps the unrounded value used for grading; DisplayPercentage
// carries the two-decimal rendering shown to users.
type ResultSummary struct {
	TotalMarks        float64 `json:"total_marks"`
	Percentage        float64 `json:"-"`
	DisplayPercentage string  `json:"percentage"`
	Grade             string  `json:"grade"`
}

// LookupStatus tags the outcome of a roll-number lookup.
type LookupStatus string

const (
	LookupFound     LookupStatus = "found"
	LookupNoStudent LookupStatus = "no-student"
	LookupNoResult  LookupStatus = "no-result"
)

// ResultLookup is the three-way outcome of searching a result by roll
// number. Callers branch on Status; the pointers are populated only for the
// states that carry them.
type ResultLookup struct {
	Status  LookupStatus   `json:"status"`
	Student *Student       `json:"student,omitempty"`
	Result  *Result        `json:"result,omitempty"`
	Summary *ResultSummary `json:"summary,omitempty"`
}
