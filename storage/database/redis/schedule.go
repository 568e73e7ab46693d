package redisdb

import (
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/darasa-app/darasa/core"
	"github.com/darasa-app/darasa/core/schedule"
)

const scheduleKey = "darasa:schedule-storage"

// scheduleState is the durable record under scheduleKey. The schedule store
// owns both collections, so they persist as a single value.
type scheduleState struct {
	Schedules     []schedule.Schedule     `json:"schedules"`
	Notifications []schedule.Notification `json:"notifications"`
}

type scheduleRepository struct {
	client *redis.Client
	logger core.Logger
	mu     sync.RWMutex
	state  scheduleState
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(client *redis.Client, logger core.Logger) (schedule.Repository, error) {
	repo := &scheduleRepository{client: client, logger: logger}
	if err := loadState(client, scheduleKey, &repo.state); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *scheduleRepository) persist() {
	persistState(repo.client, repo.logger, scheduleKey, repo.state)
}

func (repo *scheduleRepository) CreateSchedule(sched schedule.Schedule) (schedule.Schedule, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.state.Schedules = append(repo.state.Schedules, sched)
	repo.persist()
	return sched, nil
}

func (repo *scheduleRepository) QueryAllSchedules() ([]schedule.Schedule, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return append([]schedule.Schedule(nil), repo.state.Schedules...), nil
}

func (repo *scheduleRepository) GetScheduleByID(id string) (schedule.Schedule, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, sched := range repo.state.Schedules {
		if sched.ID == id {
			return sched, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) UpdateSchedule(sched schedule.Schedule) (schedule.Schedule, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Schedules {
		if repo.state.Schedules[i].ID == sched.ID {
			repo.state.Schedules[i] = sched
			repo.persist()
			return sched, nil
		}
	}
	return schedule.Schedule{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) DeleteSchedule(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Schedules {
		if repo.state.Schedules[i].ID == id {
			repo.state.Schedules = append(repo.state.Schedules[:i], repo.state.Schedules[i+1:]...)
			repo.persist()
			return nil
		}
	}
	return nil
}

func (repo *scheduleRepository) CreateNotification(notif schedule.Notification) (schedule.Notification, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.state.Notifications = append(repo.state.Notifications, notif)
	repo.persist()
	return notif, nil
}

func (repo *scheduleRepository) QueryAllNotifications() ([]schedule.Notification, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return append([]schedule.Notification(nil), repo.state.Notifications...), nil
}

func (repo *scheduleRepository) DeleteNotification(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Notifications {
		if repo.state.Notifications[i].ID == id {
			repo.state.Notifications = append(repo.state.Notifications[:i], repo.state.Notifications[i+1:]...)
			repo.persist()
			return nil
		}
	}
	return nil
}
