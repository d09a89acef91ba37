package schemas

import "time"

type CreateConnectionRequest struct {
	StudentID       string     `json:"student_id" validate:"required,max=50"`
	ConnectionTime  *time.Time `json:"connection_time" validate:"required"`
	SessionDuration *int       `json:"session_duration" validate:"omitempty,gte=0"`
	PagesVisited    *int       `json:"pages_visited" validate:"omitempty,gte=0"`
}
