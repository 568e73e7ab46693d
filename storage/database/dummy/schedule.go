package dummydb

import (
	"github.com/darasa-app/darasa/core/schedule"
)

type scheduleRepository struct {
	db *DB
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db *DB) schedule.Repository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) CreateSchedule(sched schedule.Schedule) (schedule.Schedule, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.schedules = append(repo.db.schedules, sched)
	return sched, nil
}

func (repo *scheduleRepository) QueryAllSchedules() ([]schedule.Schedule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]schedule.Schedule(nil), repo.db.schedules...), nil
}

func (repo *scheduleRepository) GetScheduleByID(id string) (schedule.Schedule, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, sched := range repo.db.schedules {
		if sched.ID == id {
			return sched, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) UpdateSchedule(sched schedule.Schedule) (schedule.Schedule, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.schedules {
		if repo.db.schedules[i].ID == sched.ID {
			repo.db.schedules[i] = sched
			return sched, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) DeleteSchedule(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.schedules {
		if repo.db.schedules[i].ID == id {
			repo.db.schedules = append(repo.db.schedules[:i], repo.db.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (repo *scheduleRepository) CreateNotification(notif schedule.Notification) (schedule.Notification, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.notifications = append(repo.db.notifications, notif)
	return notif, nil
}

func (repo *scheduleRepository) QueryAllNotifications() ([]schedule.Notification, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]schedule.Notification(nil), repo.db.notifications...), nil
}

func (repo *scheduleRepository) DeleteNotification(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.notifications {
		if repo.db.notifications[i].ID == id {
			repo.db.notifications = append(repo.db.notifications[:i], repo.db.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}
