package models

// Tutor is the persisted tutor document.
//
// DatesAvailable is a derived index: it holds exactly the keys of TimeSlots
// that map to a non-empty slice. Both fields are written together by the
// tutor repository's SaveAvailability; nothing else mutates them.
type Tutor struct {
	UID            string              `bson:"uid" json:"uid"`
	Name           string              `bson:"name" json:"name"`
	Email          string              `bson:"email" json:"email"`
	PhotoURL       string              `bson:"photoURL" json:"photoURL,omitempty"`
	UserType       string              `bson:"userType" json:"userType"` // always "tutor"
	Subjects       []string            `bson:"subjects" json:"subjects"`
	DatesAvailable []string            `bson:"datesAvailable" json:"datesAvailable"`         // "YYYY-MM-DD"
	TimeSlots      map[string][]string `bson:"timeSlots" json:"timeSlots"`                   // date -> ["HH:MM-HH:MM", ...]
}

// NewTutor returns an empty tutor document for a fresh identity.
func NewTutor(uid, name, email, photoURL string) *Tutor {
	return &Tutor{
		UID:            uid,
		Name:           name,
		Email:          email,
		PhotoURL:       photoURL,
		UserType:       RoleTutor,
		Subjects:       []string{},
		DatesAvailable: []string{},
		TimeSlots:      map[string][]string{},
	}
}
