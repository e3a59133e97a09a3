package dto

import (
	"github.com/yukikurage/project-manager-api/internal/scheduler"
)

// ScheduleTaskIn is one task of a schedule request
type ScheduleTaskIn struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"`
}

// ScheduleRequest is the body of POST /api/v1/projects/:id/schedule
type ScheduleRequest struct {
	Tasks     []ScheduleTaskIn `json:"tasks" binding:"required"`
	StartDate *scheduler.Date  `json:"startDate" binding:"required"`
}

// ScheduleTaskOut is one scheduled slot
type ScheduleTaskOut struct {
	Title string         `json:"title"`
	Start scheduler.Date `json:"start"`
	End   scheduler.Date `json:"end"`
}

// ScheduleResponse wraps the computed schedule
type ScheduleResponse struct {
	Schedule []ScheduleTaskOut `json:"schedule"`
}

// ToScheduleInputs converts request tasks to scheduler inputs
func (r ScheduleRequest) ToScheduleInputs() []scheduler.Input {
	inputs := make([]scheduler.Input, len(r.Tasks))
	for i, t := range r.Tasks {
		inputs[i] = scheduler.Input{Title: t.Title, Duration: t.Duration}
	}
	return inputs
}

// ToScheduleResponse converts scheduler slots
func ToScheduleResponse(slots []scheduler.Slot) ScheduleResponse {
	out := make([]ScheduleTaskOut, len(slots))
	for i, s := range slots {
		out[i] = ScheduleTaskOut{Title: s.Title, Start: s.Start, End: s.End}
	}
	return ScheduleResponse{Schedule: out}
}
