package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/darasa-app/darasa/core/attendance"
	"github.com/darasa-app/darasa/core/schedule"
	"github.com/darasa-app/darasa/core/syllabus"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	schedRepo schedule.Repository
	sylRepo   syllabus.Repository
	attRepo   attendance.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed  - load demo schedules, syllabi and attendance requests")
	fmt.Println("  stats - print collection sizes and attendance tallies")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed()
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.stats()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) seed() error {
	schedSvc := schedule.NewService(cli.schedRepo, nil)
	sylSvc := syllabus.NewService(cli.sylRepo)
	attSvc := attendance.NewService(cli.attRepo)

	tomorrow := time.Now().AddDate(0, 0, 1)
	if _, err := schedSvc.Create(schedule.NewSchedule{
		Subject:   "Data Structures",
		Date:      tomorrow,
		StartTime: "09:00",
		EndTime:   "10:00",
		Type:      schedule.TypeClass,
		Room:      "B-204",
	}); err != nil {
		return err
	}
	if _, err := schedSvc.Create(schedule.NewSchedule{
		Subject:   "Operating Systems",
		Date:      tomorrow.AddDate(0, 0, 6),
		StartTime: "14:00",
		EndTime:   "16:00",
		Type:      schedule.TypeExam,
		Room:      "Main Hall",
		Notes:     "Closed book",
	}); err != nil {
		return err
	}

	if _, err := sylSvc.Create(syllabus.NewSyllabus{
		Subject:     "Data Structures",
		Description: "Core data structures and their complexities",
		ExamType:    syllabus.ExamMidterm,
		Units: []syllabus.Unit{
			{
				Title: "Linear Structures",
				Topics: []syllabus.Topic{
					{Title: "Arrays & Slices", Difficulty: syllabus.DifficultyEasy, Weightage: 5, Duration: 30},
					{Title: "Linked Lists", Difficulty: syllabus.DifficultyMedium, Weightage: 8, Duration: 45},
				},
			},
			{
				Title: "Trees",
				Topics: []syllabus.Topic{
					{Title: "Binary Search Trees", Difficulty: syllabus.DifficultyMedium, Weightage: 9, Duration: 60, IsImportant: true},
					{Title: "Red-Black Trees", Difficulty: syllabus.DifficultyHard, Weightage: 6, Duration: 90},
				},
			},
		},
	}); err != nil {
		return err
	}

	if _, err := attSvc.Create(attendance.NewRequest{
		StudentName: "Asha Mwangi",
		StudentID:   "CS-2021-042",
		Reason:      "Medical leave",
		StartDate:   tomorrow,
		EndDate:     tomorrow.AddDate(0, 0, 2),
	}); err != nil {
		return err
	}

	fmt.Println("demo data loaded")
	return nil
}

func (cli *commandLine) stats() error {
	scheds, err := cli.schedRepo.QueryAllSchedules()
	if err != nil {
		return err
	}
	notifs, err := cli.schedRepo.QueryAllNotifications()
	if err != nil {
		return err
	}
	syllabi, err := cli.sylRepo.QueryAllSyllabi()
	if err != nil {
		return err
	}
	requests, err := cli.attRepo.QueryAllRequests()
	if err != nil {
		return err
	}

	counts := attendance.CountByStatus(requests)
	fmt.Printf("schedules:     %d\n", len(scheds))
	fmt.Printf("notifications: %d\n", len(notifs))
	fmt.Printf("syllabi:       %d\n", len(syllabi))
	fmt.Printf("requests:      %d (pending %d / approved %d / rejected %d)\n",
		len(requests), counts.Pending, counts.Approved, counts.Rejected)
	return nil
}
