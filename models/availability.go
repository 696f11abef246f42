package models

import "time"

// DaySchedule is one weekday's working window. Start/End use "HH:MM"
// 24-hour wall-clock times; they are only meaningful when IsWorking is true.
type DaySchedule struct {
	IsWorking bool   `bson:"isWorking" json:"isWorking"`
	Start     string `bson:"start" json:"start"`
	End       string `bson:"end" json:"end"`
}

// DateException overrides the weekly schedule for a single calendar date
// (holidays, one-off working Saturdays, and so on). Date wins over weekday.
type DateException struct {
	Date     string      `bson:"date" json:"date"` // "YYYY-MM-DD"
	Schedule DaySchedule `bson:"schedule" json:"schedule"`
}

// WeeklyAvailability is a host's recurring booking window: one DaySchedule
// per weekday plus date-level exceptions. Singleton per host.
type WeeklyAvailability struct {
	ID         string                 `bson:"id" json:"id"`
	HostID     string                 `bson:"host_id" json:"hostId"`
	Schedule   map[string]DaySchedule `bson:"schedule" json:"schedule"`
	Exceptions []DateException        `bson:"exceptions" json:"exceptions"`
	CreatedAt  time.Time              `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time              `bson:"updated_at" json:"updatedAt"`
}

// Weekdays lists the schedule keys in calendar order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}
