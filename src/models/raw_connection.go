package models

import "time"

// RawConnection is one LMS session. SessionDuration has no fixed unit; it is
// stored as received.
type RawConnection struct {
	ID              int       `db:"id" json:"id"`
	StudentID       string    `db:"student_id" json:"student_id"`
	ConnectionTime  time.Time `db:"connection_time" json:"connection_time"`
	SessionDuration *int      `db:"session_duration" json:"session_duration"`
	PagesVisited    *int      `db:"pages_visited" json:"pages_visited"`
	SyncedAt        time.Time `db:"synced_at" json:"synced_at"`
}
