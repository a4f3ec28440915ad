package models

import "time"

// Session statuses.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
	SessionNoShow    = "no-show"
)

// Session is the durable record of one booked tutoring appointment.
// UID is assigned by the session repository at creation and written into
// the record so it is self-describing. Sessions are immutable history:
// there is no update or delete path.
type Session struct {
	UID         string    `bson:"uid" json:"uid"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime   string    `bson:"startTime" json:"startTime"` // "HH:MM", 24-hour
	EndTime     string    `bson:"endTime" json:"endTime"`
	Student     string    `bson:"student" json:"student"` // display name
	Tutor       string    `bson:"tutor" json:"tutor"`
	StudentRef  string    `bson:"studentRef" json:"studentRef"` // student UID
	TutorRef    string    `bson:"tutorRef" json:"tutorRef"`     // tutor UID
	Subject     string    `bson:"subject" json:"subject"`
	MeetURL     string    `bson:"meetURL" json:"meetURL,omitempty"`
	Description string    `bson:"description" json:"description,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// Selection is an ephemeral (date, time-label) pair chosen during booking.
// Time is either a published range's display label or a custom
// "h:mm AM/PM - h:mm AM/PM" label; it only becomes a Session on submit.
type Selection struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
