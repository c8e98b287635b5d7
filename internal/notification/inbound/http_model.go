package inbound

import "time"

type CreateRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Timing      string     `json:"timing"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type ScheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

type ScheduleResponse struct{}

func (ScheduleResponse) Message() string {
	return "Notification scheduled successfully."
}

type PreferenceUpdateRequest struct {
	OptedIn    bool     `json:"opted_in"`
	Categories []string `json:"categories"`
}

type PreferenceUpdateResponse struct{}

func (PreferenceUpdateResponse) Message() string {
	return "Notification preferences updated successfully."
}
