package syllabus

import (
	"testing"
)

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name  string
		units []Unit
		want  int
	}{
		{name: "no units", want: 0},
		{name: "empty units", units: []Unit{{Title: "U1"}, {Title: "U2"}}, want: 0},
		{
			name: "single unit",
			units: []Unit{
				{Title: "U1", Topics: []Topic{{Duration: 20}, {Duration: 10}}},
			},
			want: 30,
		},
		{
			name: "multiple units",
			units: []Unit{
				{Title: "U1", Topics: []Topic{{Duration: 20}, {Duration: 10}}},
				{Title: "U2", Topics: []Topic{{Duration: 45}}},
				{Title: "U3"},
			},
			want: 75,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalDuration(tt.units); got != tt.want {
				t.Errorf("TotalDuration() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestImportantTopics(t *testing.T) {
	flagged := Topic{ID: "t1", Title: "Flagged", Difficulty: DifficultyEasy, Weightage: 3, Duration: 10, IsImportant: true}
	highWeight := Topic{ID: "t2", Title: "High weight", Difficulty: DifficultyMedium, Weightage: 8, Duration: 20}
	highWeightHard := Topic{ID: "t3", Title: "High weight but hard", Difficulty: DifficultyHard, Weightage: 9, Duration: 30}
	lowWeight := Topic{ID: "t4", Title: "Low weight", Difficulty: DifficultyEasy, Weightage: 4, Duration: 15}

	tests := []struct {
		name  string
		units []Unit
		want  []Unit
	}{
		{name: "no units", want: []Unit{}},
		{
			name:  "unit dropped when nothing retained",
			units: []Unit{{ID: "u1", Topics: []Topic{highWeightHard, lowWeight}}},
			want:  []Unit{},
		},
		{
			name:  "retained by flag and by weightage",
			units: []Unit{{ID: "u1", Topics: []Topic{highWeight, flagged}}},
			want:  []Unit{{ID: "u1", Topics: []Topic{highWeight, flagged}}},
		},
		{
			name: "order preserved across units",
			units: []Unit{
				{ID: "u1", Topics: []Topic{lowWeight, flagged}},
				{ID: "u2", Topics: []Topic{highWeightHard}},
				{ID: "u3", Topics: []Topic{highWeight, highWeightHard, flagged}},
			},
			want: []Unit{
				{ID: "u1", Topics: []Topic{flagged}},
				{ID: "u3", Topics: []Topic{highWeight, flagged}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ImportantTopics(tt.units)
			if len(got) != len(tt.want) {
				t.Fatalf("ImportantTopics() returned %d units, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i].ID {
					t.Errorf("unit[%d].ID = %s, want %s", i, got[i].ID, tt.want[i].ID)
				}
				if len(got[i].Topics) != len(tt.want[i].Topics) {
					t.Fatalf("unit[%d] has %d topics, want %d", i, len(got[i].Topics), len(tt.want[i].Topics))
				}
				for j := range got[i].Topics {
					if got[i].Topics[j].ID != tt.want[i].Topics[j].ID {
						t.Errorf("unit[%d].topic[%d].ID = %s, want %s", i, j, got[i].Topics[j].ID, tt.want[i].Topics[j].ID)
					}
				}
			}
		})
	}
}

func TestImportantTopicsDoesNotMutateInput(t *testing.T) {
	units := []Unit{
		{ID: "u1", Topics: []Topic{
			{ID: "t1", Weightage: 8, Difficulty: DifficultyMedium},
			{ID: "t2", Weightage: 2, Difficulty: DifficultyEasy},
		}},
	}
	_ = ImportantTopics(units)

	if len(units[0].Topics) != 2 {
		t.Errorf("input unit topics mutated: got %d, want 2", len(units[0].Topics))
	}
}
