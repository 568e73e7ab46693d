package schedule

import (
	"time"

	"github.com/darasa-app/darasa/core"
)

// Schedule types
type Type string

const (
	TypeClass Type = "class"
	TypeExam  Type = "exam"
)

// Notification types
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationUrgent  NotificationType = "urgent"
)

type Schedule struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Date      time.Time `json:"date"`       // calendar day; time-of-day is ignored
	StartTime string    `json:"start_time"` // wall clock, "15:04"
	EndTime   string    `json:"end_time"`   // wall clock, "15:04"
	Type      Type      `json:"type"`
	Room      string    `json:"room,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// Notification is a notice-board entry. One is created for every new Schedule.
type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"` // creation time, UTC
	Type    NotificationType `json:"type"`
}

// NewSchedule contains information needed to create a new Schedule.
type NewSchedule struct {
	Subject   string    `json:"subject" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	StartTime string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string    `json:"end_time" validate:"required,datetime=15:04"`
	Type      Type      `json:"type" validate:"required,oneof=class exam"`
	Room      string    `json:"room"`
	Notes     string    `json:"notes"`
}

func (ns *NewSchedule) Validate() error {
	ns.Subject = core.CleanString(ns.Subject)
	ns.Room = core.CleanString(ns.Room)
	ns.Notes = core.CleanString(ns.Notes)
	return core.Validate.Struct(ns)
}

// NewNotification contains information needed to post a Notification.
type NewNotification struct {
	Title   string           `json:"title" validate:"required"`
	Message string           `json:"message" validate:"required"`
	Type    NotificationType `json:"type" validate:"required,oneof=info warning urgent"`
}

func (nn *NewNotification) Validate() error {
	nn.Title = core.CleanString(nn.Title)
	nn.Message = core.CleanString(nn.Message)
	return core.Validate.Struct(nn)
}
