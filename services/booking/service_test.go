package booking

import (
	"context"
	"fmt"
	"testing"

	"tutorlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTutorRepo struct {
	tutors map[string]*models.Tutor
}

func (f *fakeTutorRepo) GetByID(_ context.Context, uid string) (*models.Tutor, error) {
	return f.tutors[uid], nil
}

func (f *fakeTutorRepo) GetByIDs(_ context.Context, uids []string) ([]models.Tutor, error) {
	out := []models.Tutor{}
	for _, uid := range uids {
		if t, ok := f.tutors[uid]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTutorRepo) GetAll(_ context.Context) ([]models.Tutor, error) {
	out := []models.Tutor{}
	for _, t := range f.tutors {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTutorRepo) GetOrCreate(_ context.Context, id models.Identity) (*models.Tutor, error) {
	if t, ok := f.tutors[id.UID]; ok {
		return t, nil
	}
	t := models.NewTutor(id.UID, id.DisplayName, id.Email, id.PhotoURL)
	f.tutors[id.UID] = t
	return t, nil
}

func (f *fakeTutorRepo) Update(_ context.Context, tutor *models.Tutor) error {
	f.tutors[tutor.UID] = tutor
	return nil
}

func (f *fakeTutorRepo) SaveAvailability(_ context.Context, uid, date string, ranges []string) error {
	return nil
}

type fakeStudentRepo struct {
	students map[string]*models.Student
	dateErr  error
}

func (f *fakeStudentRepo) GetByID(_ context.Context, uid string) (*models.Student, error) {
	return f.students[uid], nil
}

func (f *fakeStudentRepo) GetByParent(_ context.Context, parentUID string) ([]models.Student, error) {
	out := []models.Student{}
	for _, s := range f.students {
		if s.ParentUID == parentUID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) GetOrCreate(_ context.Context, id models.Identity, parentUID string) (*models.Student, error) {
	if s, ok := f.students[id.UID]; ok {
		return s, nil
	}
	s := models.NewStudent(id.UID, id.DisplayName, id.Email, id.PhotoURL, parentUID)
	f.students[id.UID] = s
	return s, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	f.students[student.UID] = student
	return nil
}

func (f *fakeStudentRepo) AddUpcomingClassDate(_ context.Context, uid, date string) error {
	if f.dateErr != nil {
		return f.dateErr
	}
	s, ok := f.students[uid]
	if !ok {
		return fmt.Errorf("student %s not found", uid)
	}
	for _, d := range s.UpcomingClassDates {
		if d == date {
			return nil
		}
	}
	s.UpcomingClassDates = append(s.UpcomingClassDates, date)
	return nil
}

func (f *fakeStudentRepo) AddPastClassDate(_ context.Context, uid, date string) error {
	return nil
}

func (f *fakeStudentRepo) AddTutor(_ context.Context, uid, tutorUID string) error {
	s, ok := f.students[uid]
	if !ok {
		return fmt.Errorf("student %s not found", uid)
	}
	for _, t := range s.Tutors {
		if t == tutorUID {
			return nil
		}
	}
	s.Tutors = append(s.Tutors, tutorUID)
	return nil
}

type fakeSessionRepo struct {
	sessions  []*models.Session
	failAfter int // fail every Create once this many have succeeded; 0 = never
}

func (f *fakeSessionRepo) Create(_ context.Context, session *models.Session) (string, error) {
	if f.failAfter > 0 && len(f.sessions) >= f.failAfter {
		return "", fmt.Errorf("write failed")
	}
	session.UID = fmt.Sprintf("session-%d", len(f.sessions)+1)
	f.sessions = append(f.sessions, session)
	return session.UID, nil
}

func (f *fakeSessionRepo) GetByID(_ context.Context, uid string) (*models.Session, error) {
	for _, s := range f.sessions {
		if s.UID == uid {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) GetByStudent(_ context.Context, studentUID string) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range f.sessions {
		if s.StudentRef == studentUID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSessionRepo) GetByTutor(_ context.Context, tutorUID string) ([]models.Session, error) {
	out := []models.Session{}
	for _, s := range f.sessions {
		if s.TutorRef == tutorUID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func newBookingFixture() (*DefaultService, *fakeTutorRepo, *fakeStudentRepo, *fakeSessionRepo) {
	tutors := &fakeTutorRepo{tutors: map[string]*models.Tutor{
		"tutor-1": {
			UID:            "tutor-1",
			Name:           "Ada Lovelace",
			UserType:       models.RoleTutor,
			DatesAvailable: []string{"2026-09-01", "2026-09-03"},
			TimeSlots: map[string][]string{
				"2026-09-01": {"09:00-10:00", "14:00-15:00"},
				"2026-09-03": {"11:00-12:30"},
			},
		},
	}}
	students := &fakeStudentRepo{students: map[string]*models.Student{
		"student-1": models.NewStudent("student-1", "Grace Hopper", "grace@example.com", "", ""),
	}}
	sessions := &fakeSessionRepo{}
	svc := &DefaultService{
		TutorRepo:   tutors,
		StudentRepo: students,
		SessionRepo: sessions,
	}
	return svc, tutors, students, sessions
}

func TestAvailableDates(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	dates, err := svc.AvailableDates(context.Background(), "tutor-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01", "2026-09-03"}, dates)
}

func TestAvailableRangesForPublishedDate(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	ranges, err := svc.AvailableRangesFor(context.Background(), "tutor-1", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "14:00-15:00"}, ranges)
}

func TestAvailableRangesForUnpublishedDate(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	// A date outside the availability index is an empty list, not an error.
	ranges, err := svc.AvailableRangesFor(context.Background(), "tutor-1", "2026-12-25")
	require.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestAvailableDatesUnknownTutor(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, err := svc.AvailableDates(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestSubmitCreatesSessions(t *testing.T) {
	svc, _, students, sessions := newBookingFixture()

	outcomes, err := svc.Submit(context.Background(), Input{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		Subject:   "Mathematics",
		Selections: []models.Selection{
			{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"},
			{Date: "2026-09-03", Time: "11:00 AM - 12:30 PM"},
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	for _, o := range outcomes {
		assert.Empty(t, o.Error)
		require.NotNil(t, o.Session)
	}

	first := outcomes[0].Session
	assert.Equal(t, "2026-09-01", first.Date)
	assert.Equal(t, "09:00", first.StartTime)
	assert.Equal(t, "10:00", first.EndTime)
	assert.Equal(t, "Grace Hopper", first.Student)
	assert.Equal(t, "Ada Lovelace", first.Tutor)
	assert.Equal(t, "student-1", first.StudentRef)
	assert.Equal(t, "tutor-1", first.TutorRef)
	assert.Equal(t, "Mathematics", first.Subject)
	assert.Equal(t, models.SessionScheduled, first.Status)
	assert.NotEmpty(t, first.UID, "repository assigns the session id")

	assert.Len(t, sessions.sessions, 2)
	assert.Equal(t, []string{"2026-09-01", "2026-09-03"},
		students.students["student-1"].UpcomingClassDates)
}

func TestSubmitSameDateTwiceAddsDateOnce(t *testing.T) {
	svc, _, students, sessions := newBookingFixture()

	outcomes, err := svc.Submit(context.Background(), Input{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		Subject:   "Mathematics",
		Selections: []models.Selection{
			{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"},
			{Date: "2026-09-01", Time: "2:00 PM - 3:00 PM"},
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	// Two sessions, but the upcoming-class list holds the date once.
	assert.Len(t, sessions.sessions, 2)
	assert.Equal(t, []string{"2026-09-01"},
		students.students["student-1"].UpcomingClassDates)
}

func TestSubmitMissingFieldsWritesNothing(t *testing.T) {
	svc, _, students, sessions := newBookingFixture()

	cases := []Input{
		{StudentID: "student-1", Subject: "Math", Selections: []models.Selection{{Date: "2026-09-01", Time: "09:00-10:00"}}},
		{TutorID: "tutor-1", StudentID: "student-1", Selections: []models.Selection{{Date: "2026-09-01", Time: "09:00-10:00"}}},
		{TutorID: "tutor-1", StudentID: "student-1", Subject: "Math"},
	}
	for _, input := range cases {
		_, err := svc.Submit(context.Background(), input)
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Please fill in all required fields and select at least one session.", vErr.Message)
	}

	assert.Empty(t, sessions.sessions)
	assert.Empty(t, students.students["student-1"].UpcomingClassDates)
}

func TestSubmitUnknownTutor(t *testing.T) {
	svc, _, _, _ := newBookingFixture()

	_, err := svc.Submit(context.Background(), Input{
		TutorID:    "nobody",
		StudentID:  "student-1",
		Subject:    "Math",
		Selections: []models.Selection{{Date: "2026-09-01", Time: "09:00-10:00"}},
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSubmitPartialFailureKeepsEarlierSessions(t *testing.T) {
	svc, _, _, sessions := newBookingFixture()
	sessions.failAfter = 1

	outcomes, err := svc.Submit(context.Background(), Input{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		Subject:   "Mathematics",
		Selections: []models.Selection{
			{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"},
			{Date: "2026-09-03", Time: "11:00 AM - 12:30 PM"},
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Empty(t, outcomes[0].Error)
	assert.NotNil(t, outcomes[0].Session)
	assert.NotEmpty(t, outcomes[1].Error)
	assert.Nil(t, outcomes[1].Session)

	// The session created before the failure stays created.
	assert.Len(t, sessions.sessions, 1)
}

func TestSubmitBadTimeLabelReportedPerSelection(t *testing.T) {
	svc, _, _, sessions := newBookingFixture()

	outcomes, err := svc.Submit(context.Background(), Input{
		TutorID:   "tutor-1",
		StudentID: "student-1",
		Subject:   "Mathematics",
		Selections: []models.Selection{
			{Date: "2026-09-01", Time: "bogus"},
			{Date: "2026-09-01", Time: "9:00 AM - 10:00 AM"},
		},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.NotEmpty(t, outcomes[0].Error)
	assert.Empty(t, outcomes[1].Error)
	assert.Len(t, sessions.sessions, 1)
}
