package dummydb

import (
	"time"

	"github.com/darasa-app/darasa/core/attendance"
)

type attendanceRepository struct {
	db *DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) CreateRequest(req attendance.Request) (attendance.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.requests = append(repo.db.requests, req)
	return req, nil
}

func (repo *attendanceRepository) QueryAllRequests() ([]attendance.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]attendance.Request(nil), repo.db.requests...), nil
}

func (repo *attendanceRepository) GetRequestByID(id string) (attendance.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, req := range repo.db.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return attendance.Request{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) UpdateRequestStatus(id string, status attendance.Status, comments string, updatedAt time.Time) (attendance.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.requests {
		if repo.db.requests[i].ID == id {
			repo.db.requests[i].Status = status
			repo.db.requests[i].Comments = comments
			repo.db.requests[i].UpdatedAt = updatedAt
			return repo.db.requests[i], nil
		}
	}
	return attendance.Request{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) DeleteRequest(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.requests {
		if repo.db.requests[i].ID == id {
			repo.db.requests = append(repo.db.requests[:i], repo.db.requests[i+1:]...)
			return nil
		}
	}
	return nil
}
