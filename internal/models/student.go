package models

import "time"

// StudentType distinguishes boarders from day students.
type StudentType string

const (
	StudentResidential    StudentType = "Residential"
	StudentNonResidential StudentType = "Non-Residential"
)

// Student represents an enrolled student. Roll numbers are unique within the
// active student set; the repository enforces this on create and update.
type Student struct {
	ID            string      `db:"id" json:"id"`
	RollNo        int         `db:"roll_no" json:"roll_no"`
	Name          string      `db:"name" json:"name"`
	Class         string      `db:"class" json:"class"`
	Section       string      `db:"section" json:"section"`
	GuardianName  string      `db:"guardian_name" json:"guardian_name"`
	AdmissionDate time.Time   `db:"admission_date" json:"admission_date"`
	Contact       string      `db:"contact" json:"contact"`
	Type          StudentType `db:"type" json:"type"`
	CreatedAt     time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at" json:"updated_at"`
}

// StudentFilter captures filtering criteria for listing students.
type StudentFilter struct {
	Class     string
	Type      StudentType
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
