package models

// Student is the persisted student document. Tutors holds the UIDs of
// tutors the student is linked to; the booking picker is restricted to
// these tutors.
type Student struct {
	UID               string   `bson:"uid" json:"uid"`
	Name              string   `bson:"name" json:"name"`
	Email             string   `bson:"email" json:"email"`
	PhotoURL          string   `bson:"photoURL" json:"photoURL,omitempty"`
	UserType          string   `bson:"userType" json:"userType"` // always "student"
	ParentUID         string   `bson:"parentUid" json:"parentUid,omitempty"`
	Subjects          []string `bson:"subjects" json:"subjects"`
	Grade             string   `bson:"grade" json:"grade,omitempty"`
	Age               int      `bson:"age" json:"age,omitempty"`
	Tutors            []string `bson:"tutors" json:"tutors"`
	UpcomingClassDates []string `bson:"upcomingClassDates" json:"upcomingClassDates"` // "YYYY-MM-DD"
	PastClassDates     []string `bson:"pastClassDates" json:"pastClassDates"`
}

// NewStudent returns an empty student document for a fresh identity.
func NewStudent(uid, name, email, photoURL, parentUID string) *Student {
	return &Student{
		UID:                uid,
		Name:               name,
		Email:              email,
		PhotoURL:           photoURL,
		UserType:           RoleStudent,
		ParentUID:          parentUID,
		Subjects:           []string{},
		Tutors:             []string{},
		UpcomingClassDates: []string{},
		PastClassDates:     []string{},
	}
}
