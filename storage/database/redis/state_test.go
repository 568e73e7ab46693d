package redisdb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/darasa-app/darasa/core/attendance"
	"github.com/darasa-app/darasa/core/schedule"
	"github.com/darasa-app/darasa/core/syllabus"
)

// The durable records must survive an encode/decode cycle intact; a restored
// store has to be indistinguishable from the one that wrote the record.

func TestScheduleStateRoundTrip(t *testing.T) {
	state := scheduleState{
		Schedules: []schedule.Schedule{
			{
				ID:        "s1",
				Subject:   "Mathematics",
				Date:      time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				StartTime: "09:00",
				EndTime:   "10:00",
				Type:      schedule.TypeExam,
				Room:      "Main Hall",
				Notes:     "Closed book",
			},
		},
		Notifications: []schedule.Notification{
			{
				ID:      "n1",
				Title:   "New Schedule Added",
				Message: "Mathematics has been scheduled for March 15, 2024",
				Date:    time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC),
				Type:    schedule.NotificationInfo,
			},
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var got scheduleState
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, state, got)
}

func TestSyllabusStateRoundTrip(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC)
	state := syllabusState{
		Syllabi: []syllabus.Syllabus{
			{
				ID:          "sy1",
				Subject:     "Data Structures",
				Description: "Core data structures",
				ExamType:    syllabus.ExamMidterm,
				Units: []syllabus.Unit{
					{
						ID:    "u1",
						Title: "Trees",
						Topics: []syllabus.Topic{
							{ID: "t1", Title: "Binary Search Trees", Difficulty: syllabus.DifficultyMedium, Weightage: 9, Duration: 60, IsImportant: true},
							{ID: "t2", Title: "Red-Black Trees", Difficulty: syllabus.DifficultyHard, Weightage: 6, Duration: 90},
						},
					},
				},
				TotalDuration: 150,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var got syllabusState
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, state, got)
}

func TestAttendanceStateRoundTrip(t *testing.T) {
	now := time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC)
	state := attendanceState{
		Requests: []attendance.Request{
			{
				ID:          "r1",
				StudentName: "Asha Mwangi",
				StudentID:   "CS-2021-042",
				Reason:      "Medical leave",
				StartDate:   time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC),
				Status:      attendance.StatusApproved,
				Comments:    "Get well soon",
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var got attendanceState
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, state, got)
}

// A missing record must decode into a fresh, empty store.
func TestEmptyStateDecodes(t *testing.T) {
	var got scheduleState
	require.NoError(t, json.Unmarshal([]byte(`{}`), &got))
	require.Empty(t, got.Schedules)
	require.Empty(t, got.Notifications)
}
