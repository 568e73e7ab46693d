package attendance

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("attendance request not found")

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateRequest(req Request) (Request, error)
		QueryAllRequests() ([]Request, error)
		GetRequestByID(id string) (Request, error)
		// UpdateRequestStatus sets the request's status and reviewer comments.
		// ErrNotFound if absent.
		UpdateRequestStatus(id string, status Status, comments string, updatedAt time.Time) (Request, error)
		DeleteRequest(id string) error // no-op if absent
	}

	Service interface {
		Create(nr NewRequest) (Request, error)
		QueryAll() ([]Request, error)
		GetByID(id string) (Request, error)
		// UpdateStatus records a reviewer's decision. The store does not
		// re-check that the request is still pending; gating re-reviews is the
		// caller's job. A stale ID is silently ignored.
		UpdateStatus(id string, su StatusUpdate) error
		Delete(id string) error
		Stats() (StatusCounts, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(nr NewRequest) (Request, error) {
	if err := nr.Validate(); err != nil {
		return Request{}, err
	}

	now := nowFunc().UTC()
	req := Request{
		ID:             uuid.NewString(),
		StudentName:    nr.StudentName,
		StudentID:      nr.StudentID,
		Reason:         nr.Reason,
		StartDate:      nr.StartDate,
		EndDate:        nr.EndDate,
		SupportingDocs: nr.SupportingDocs,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateRequest(req)
}

func (svc *service) QueryAll() ([]Request, error) {
	return svc.repo.QueryAllRequests()
}

func (svc *service) GetByID(id string) (Request, error) {
	return svc.repo.GetRequestByID(id)
}

func (svc *service) UpdateStatus(id string, su StatusUpdate) error {
	if err := su.Validate(); err != nil {
		return err
	}
	if _, err := svc.repo.UpdateRequestStatus(id, su.Status, su.Comments, nowFunc().UTC()); err != nil {
		if err == ErrNotFound { // stale reference; deliberately tolerated
			return nil
		}
		return err
	}
	return nil
}

func (svc *service) Delete(id string) error {
	return svc.repo.DeleteRequest(id)
}

func (svc *service) Stats() (StatusCounts, error) {
	requests, err := svc.repo.QueryAllRequests()
	if err != nil {
		return StatusCounts{}, err
	}
	return CountByStatus(requests), nil
}
