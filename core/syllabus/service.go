package syllabus

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("syllabus not found")

var nowFunc = time.Now // mockable

type (
	Repository interface {
		CreateSyllabus(syl Syllabus) (Syllabus, error)
		QueryAllSyllabi() ([]Syllabus, error)
		GetSyllabusByID(id string) (Syllabus, error)
		UpdateSyllabus(syl Syllabus) (Syllabus, error) // ErrNotFound if absent
		DeleteSyllabus(id string) error                // no-op if absent
	}

	Service interface {
		Create(ns NewSyllabus) (Syllabus, error)
		QueryAll() ([]Syllabus, error)
		GetByID(id string) (Syllabus, error)
		// Update replaces the syllabus with matching ID, recomputing
		// TotalDuration from the supplied units and refreshing UpdatedAt.
		// A stale ID is silently ignored.
		Update(syl Syllabus) error
		Delete(id string) error
		// GenerateSlipTest derives a reduced "slip test" syllabus from the
		// important topics of the source syllabus and stores it as a regular
		// entity. Fails with ErrNotFound if the source does not exist.
		GenerateSlipTest(syllabusID string) (Syllabus, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ns NewSyllabus) (Syllabus, error) {
	if err := ns.Validate(); err != nil {
		return Syllabus{}, err
	}

	now := nowFunc().UTC()
	syl := Syllabus{
		ID:            uuid.NewString(),
		Subject:       ns.Subject,
		Description:   ns.Description,
		ExamType:      ns.ExamType,
		Units:         withIDs(ns.Units),
		TotalDuration: TotalDuration(ns.Units),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return svc.repo.CreateSyllabus(syl)
}

func (svc *service) QueryAll() ([]Syllabus, error) {
	return svc.repo.QueryAllSyllabi()
}

func (svc *service) GetByID(id string) (Syllabus, error) {
	return svc.repo.GetSyllabusByID(id)
}

func (svc *service) Update(syl Syllabus) error {
	syl.TotalDuration = TotalDuration(syl.Units) // derived; any caller value is ignored
	syl.UpdatedAt = nowFunc().UTC()
	if _, err := svc.repo.UpdateSyllabus(syl); err != nil {
		if err == ErrNotFound { // stale reference; deliberately tolerated
			return nil
		}
		return err
	}
	return nil
}

func (svc *service) Delete(id string) error {
	return svc.repo.DeleteSyllabus(id)
}

func (svc *service) GenerateSlipTest(syllabusID string) (Syllabus, error) {
	orig, err := svc.repo.GetSyllabusByID(syllabusID)
	if err != nil {
		return Syllabus{}, err
	}

	units := ImportantTopics(orig.Units)
	now := nowFunc().UTC()
	slip := Syllabus{
		ID:            uuid.NewString(),
		Subject:       orig.Subject + " - Slip Test",
		Description:   fmt.Sprintf("Generated from %s syllabus", orig.Subject),
		ExamType:      ExamSlip,
		Units:         units,
		TotalDuration: TotalDuration(units),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return svc.repo.CreateSyllabus(slip)
}

// withIDs assigns fresh ids to units and topics created without one.
func withIDs(units []Unit) []Unit {
	for i := range units {
		if units[i].ID == "" {
			units[i].ID = uuid.NewString()
		}
		for j := range units[i].Topics {
			if units[i].Topics[j].ID == "" {
				units[i].Topics[j].ID = uuid.NewString()
			}
		}
	}
	return units
}
