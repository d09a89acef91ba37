package models

import "time"

// DefaultModuleID is used for grades whose source row names no module.
const DefaultModuleID = "M001"

// DefaultMaxGrade is the scale every ingested score is recorded against.
const DefaultMaxGrade = 100.0

type RawGrade struct {
	ID             int       `db:"id" json:"id"`
	StudentID      string    `db:"student_id" json:"student_id"`
	ModuleID       string    `db:"module_id" json:"module_id"`
	Grade          float64   `db:"grade" json:"grade"`
	MaxGrade       float64   `db:"max_grade" json:"max_grade"`
	SubmissionDate time.Time `db:"submission_date" json:"submission_date"`
	SyncedAt       time.Time `db:"synced_at" json:"synced_at"`
}
