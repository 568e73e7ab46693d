package echoapi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darasa-app/darasa/core"
	"github.com/darasa-app/darasa/core/attendance"
	"github.com/darasa-app/darasa/core/schedule"
	"github.com/darasa-app/darasa/core/syllabus"
	emailsvc "github.com/darasa-app/darasa/services/email"
	logsvc "github.com/darasa-app/darasa/services/logger"
	dummydb "github.com/darasa-app/darasa/storage/database/dummy"
)

func newTestServer(t *testing.T) Server {
	t.Helper()
	core.Conf.TestMode = true

	db, err := dummydb.Open()
	require.NoError(t, err)
	schedRepo := dummydb.NewScheduleRepository(db)

	logger := logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))
	return NewServer(&Options{
		Addr:           "127.0.0.1:0",
		DisableReqLogs: true,
		Logger:         logger,
		ScheduleSvc:    schedule.NewService(schedRepo, emailsvc.NewConsoleServiceMock()),
		SyllabusSvc:    syllabus.NewService(dummydb.NewSyllabusRepository(db)),
		AttendanceSvc:  attendance.NewService(dummydb.NewAttendanceRepository(db)),
	})
}

func request(t *testing.T, s Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestHome(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Darasa API!", rec.Body.String())
}

func TestScheduleCreateAndQuery(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/schedules", schedule.NewSchedule{
		Subject:   "Mathematics",
		Date:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      schedule.TypeClass,
		Room:      "A-101",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created schedule.Schedule
	decode(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Mathematics", created.Subject)

	rec = request(t, s, http.MethodPost, "/v1/schedules", schedule.NewSchedule{
		Subject:   "Physics",
		Date:      time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "16:00",
		Type:      schedule.TypeExam,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// query params narrow the collection down
	rec = request(t, s, http.MethodGet, "/v1/schedules?search=math&type=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var scheds []schedule.Schedule
	decode(t, rec, &scheds)
	require.Len(t, scheds, 1)
	assert.Equal(t, created.ID, scheds[0].ID)

	rec = request(t, s, http.MethodGet, "/v1/schedules?type=exam", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &scheds)
	require.Len(t, scheds, 1)
	assert.Equal(t, "Physics", scheds[0].Subject)

	// each creation posted a notification
	rec = request(t, s, http.MethodGet, "/v1/notifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notifs []schedule.Notification
	decode(t, rec, &notifs)
	assert.Len(t, notifs, 2)
}

func TestScheduleCreateValidationError(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/schedules", schedule.NewSchedule{
		Subject:   "", // missing
		Date:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      schedule.TypeClass,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "subject")
}

func TestScheduleRetrieveNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodGet, "/v1/schedules/gone", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleUpdateStaleIsNoOp(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPut, "/v1/schedules/gone", schedule.Schedule{
		Subject:   "Mathematics",
		Date:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      schedule.TypeClass,
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodGet, "/v1/schedules", nil)
	var scheds []schedule.Schedule
	decode(t, rec, &scheds)
	assert.Empty(t, scheds)
}

func TestSyllabusCreateAndSlipTest(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/syllabi", syllabus.NewSyllabus{
		Subject:  "Math",
		ExamType: syllabus.ExamMidterm,
		Units: []syllabus.Unit{
			{
				Title: "Algebra",
				Topics: []syllabus.Topic{
					{Title: "Linear Equations", Difficulty: syllabus.DifficultyEasy, Weightage: 8, Duration: 20},
					{Title: "Quadratics", Difficulty: syllabus.DifficultyHard, Weightage: 9, Duration: 40},
				},
			},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created syllabus.Syllabus
	decode(t, rec, &created)
	assert.Equal(t, 60, created.TotalDuration)

	rec = request(t, s, http.MethodPost, "/v1/syllabi/"+created.ID+"/slip-test", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	var slip syllabus.Syllabus
	decode(t, rec, &slip)
	assert.Equal(t, "Math - Slip Test", slip.Subject)
	assert.Equal(t, syllabus.ExamSlip, slip.ExamType)
	assert.Equal(t, 20, slip.TotalDuration)

	rec = request(t, s, http.MethodGet, "/v1/syllabi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var syllabi []syllabus.Syllabus
	decode(t, rec, &syllabi)
	assert.Len(t, syllabi, 2)
}

func TestSyllabusSlipTestNotFound(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/syllabi/gone/slip-test", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceReviewFlow(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/attendance-requests", attendance.NewRequest{
		StudentName: "Asha Mwangi",
		StudentID:   "CS-2021-042",
		Reason:      "Medical leave",
		StartDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created attendance.Request
	decode(t, rec, &created)
	assert.Equal(t, attendance.StatusPending, created.Status)

	rec = request(t, s, http.MethodPut, "/v1/attendance-requests/"+created.ID+"/review", attendance.StatusUpdate{
		Status:   attendance.StatusApproved,
		Comments: "Get well soon",
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = request(t, s, http.MethodGet, "/v1/attendance-requests/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got attendance.Request
	decode(t, rec, &got)
	assert.Equal(t, attendance.StatusApproved, got.Status)
	assert.Equal(t, "Get well soon", got.Comments)

	rec = request(t, s, http.MethodGet, "/v1/attendance-requests/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var counts attendance.StatusCounts
	decode(t, rec, &counts)
	assert.Equal(t, attendance.StatusCounts{Approved: 1}, counts)
}

func TestAttendanceCreateDateRangeValidation(t *testing.T) {
	s := newTestServer(t)

	rec := request(t, s, http.MethodPost, "/v1/attendance-requests", attendance.NewRequest{
		StudentName: "Asha Mwangi",
		StudentID:   "CS-2021-042",
		Reason:      "Medical leave",
		StartDate:   time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "end_date")
}
