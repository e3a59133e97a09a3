package dto

// TrackerTaskRequest is the body accepted by the tracker service. Both
// fields are optional on update; create requires a description.
type TrackerTaskRequest struct {
	Description *string `json:"description"`
	IsCompleted *bool   `json:"isCompleted"`
}
