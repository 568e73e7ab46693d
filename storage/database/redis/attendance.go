package redisdb

import (
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/darasa-app/darasa/core"
	"github.com/darasa-app/darasa/core/attendance"
)

const attendanceKey = "darasa:attendance-storage"

// attendanceState is the durable record under attendanceKey.
type attendanceState struct {
	Requests []attendance.Request `json:"requests"`
}

type attendanceRepository struct {
	client *redis.Client
	logger core.Logger
	mu     sync.RWMutex
	state  attendanceState
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(client *redis.Client, logger core.Logger) (attendance.Repository, error) {
	repo := &attendanceRepository{client: client, logger: logger}
	if err := loadState(client, attendanceKey, &repo.state); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *attendanceRepository) persist() {
	persistState(repo.client, repo.logger, attendanceKey, repo.state)
}

func (repo *attendanceRepository) CreateRequest(req attendance.Request) (attendance.Request, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.state.Requests = append(repo.state.Requests, req)
	repo.persist()
	return req, nil
}

func (repo *attendanceRepository) QueryAllRequests() ([]attendance.Request, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return append([]attendance.Request(nil), repo.state.Requests...), nil
}

func (repo *attendanceRepository) GetRequestByID(id string) (attendance.Request, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, req := range repo.state.Requests {
		if req.ID == id {
			return req, nil
		}
	}
	return attendance.Request{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) UpdateRequestStatus(id string, status attendance.Status, comments string, updatedAt time.Time) (attendance.Request, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Requests {
		if repo.state.Requests[i].ID == id {
			repo.state.Requests[i].Status = status
			repo.state.Requests[i].Comments = comments
			repo.state.Requests[i].UpdatedAt = updatedAt
			repo.persist()
			return repo.state.Requests[i], nil
		}
	}
	return attendance.Request{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) DeleteRequest(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Requests {
		if repo.state.Requests[i].ID == id {
			repo.state.Requests = append(repo.state.Requests[:i], repo.state.Requests[i+1:]...)
			repo.persist()
			return nil
		}
	}
	return nil
}
