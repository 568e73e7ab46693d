package schedule

import (
	"errors"
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/darasa-app/darasa/core"
)

var ErrNotFound = errors.New("schedule not found")

// noticeDateFormat renders dates the way they read on the notice board.
const noticeDateFormat = "January 02, 2006"

type (
	Repository interface {
		CreateSchedule(sched Schedule) (Schedule, error)
		QueryAllSchedules() ([]Schedule, error)
		GetScheduleByID(id string) (Schedule, error)
		UpdateSchedule(sched Schedule) (Schedule, error) // ErrNotFound if absent
		DeleteSchedule(id string) error                  // no-op if absent
		CreateNotification(notif Notification) (Notification, error)
		QueryAllNotifications() ([]Notification, error)
		DeleteNotification(id string) error // no-op if absent
	}

	Service interface {
		// Create stores a new Schedule and, as a side effect, posts one
		// Notification announcing it. Exam schedules additionally email a
		// notice to the configured staff address.
		Create(ns NewSchedule) (Schedule, error)
		QueryAll() ([]Schedule, error)
		GetByID(id string) (Schedule, error)
		// Update replaces the schedule with matching ID; a stale ID is
		// silently ignored.
		Update(sched Schedule) error
		Delete(id string) error
		// Filter applies an AND operation on available QueryFilter fields.
		Filter(filter QueryFilter) ([]Schedule, error)
		// Today returns the schedules falling on the current calendar day.
		Today() ([]Schedule, error)
		Notify(nn NewNotification) (Notification, error)
		QueryNotifications() ([]Notification, error)
		DeleteNotification(id string) error
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) Service {
	return &service{
		repo:    repo,
		mailSvc: mailSvc,
	}
}

func (svc *service) Create(ns NewSchedule) (Schedule, error) {
	if err := ns.Validate(); err != nil {
		return Schedule{}, err
	}

	sched := Schedule{
		ID:        uuid.NewString(),
		Subject:   ns.Subject,
		Date:      ns.Date,
		StartTime: ns.StartTime,
		EndTime:   ns.EndTime,
		Type:      ns.Type,
		Room:      ns.Room,
		Notes:     ns.Notes,
	}
	sched, err := svc.repo.CreateSchedule(sched)
	if err != nil {
		return Schedule{}, err
	}

	// every new schedule announces itself on the notice board
	notif := Notification{
		ID:      uuid.NewString(),
		Title:   "New Schedule Added",
		Message: fmt.Sprintf("%s has been scheduled for %s", sched.Subject, sched.Date.Format(noticeDateFormat)),
		Date:    nowFunc().UTC(),
		Type:    NotificationInfo,
	}
	if _, err := svc.repo.CreateNotification(notif); err != nil {
		return Schedule{}, err
	}

	if sched.Type == TypeExam {
		svc.sendExamNotice(sched)
	}
	return sched, nil
}

func (svc *service) QueryAll() ([]Schedule, error) {
	return svc.repo.QueryAllSchedules()
}

func (svc *service) GetByID(id string) (Schedule, error) {
	return svc.repo.GetScheduleByID(id)
}

func (svc *service) Update(sched Schedule) error {
	if _, err := svc.repo.UpdateSchedule(sched); err != nil {
		if err == ErrNotFound { // stale reference; deliberately tolerated
			return nil
		}
		return err
	}
	return nil
}

func (svc *service) Delete(id string) error {
	return svc.repo.DeleteSchedule(id)
}

func (svc *service) Filter(filter QueryFilter) ([]Schedule, error) {
	scheds, err := svc.repo.QueryAllSchedules()
	if err != nil {
		return nil, err
	}
	return Apply(scheds, filter), nil
}

func (svc *service) Today() ([]Schedule, error) {
	scheds, err := svc.repo.QueryAllSchedules()
	if err != nil {
		return nil, err
	}
	return Todays(scheds), nil
}

func (svc *service) Notify(nn NewNotification) (Notification, error) {
	if err := nn.Validate(); err != nil {
		return Notification{}, err
	}
	notif := Notification{
		ID:      uuid.NewString(),
		Title:   nn.Title,
		Message: nn.Message,
		Date:    nowFunc().UTC(),
		Type:    nn.Type,
	}
	return svc.repo.CreateNotification(notif)
}

func (svc *service) QueryNotifications() ([]Notification, error) {
	return svc.repo.QueryAllNotifications()
}

func (svc *service) DeleteNotification(id string) error {
	return svc.repo.DeleteNotification(id)
}

func (svc *service) sendExamNotice(sched Schedule) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{core.Conf.NoticeEmail},
		Subject: "Exam scheduled: " + sched.Subject,
		BodyStr: fmt.Sprintf(
			"%s exam has been scheduled for %s, %s - %s.",
			sched.Subject, sched.Date.Format(noticeDateFormat), sched.StartTime, sched.EndTime,
		),
	})
}
