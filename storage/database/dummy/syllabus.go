package dummydb

import (
	"github.com/darasa-app/darasa/core/syllabus"
)

type syllabusRepository struct {
	db *DB
}

var _ syllabus.Repository = (*syllabusRepository)(nil) // interface compliance check

func NewSyllabusRepository(db *DB) syllabus.Repository {
	return &syllabusRepository{db: db}
}

func (repo *syllabusRepository) CreateSyllabus(syl syllabus.Syllabus) (syllabus.Syllabus, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.syllabi = append(repo.db.syllabi, syl)
	return syl, nil
}

func (repo *syllabusRepository) QueryAllSyllabi() ([]syllabus.Syllabus, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]syllabus.Syllabus(nil), repo.db.syllabi...), nil
}

func (repo *syllabusRepository) GetSyllabusByID(id string) (syllabus.Syllabus, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, syl := range repo.db.syllabi {
		if syl.ID == id {
			return syl, nil
		}
	}
	return syllabus.Syllabus{}, syllabus.ErrNotFound
}

func (repo *syllabusRepository) UpdateSyllabus(syl syllabus.Syllabus) (syllabus.Syllabus, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.syllabi {
		if repo.db.syllabi[i].ID == syl.ID {
			repo.db.syllabi[i] = syl
			return syl, nil
		}
	}
	return syllabus.Syllabus{}, syllabus.ErrNotFound
}

func (repo *syllabusRepository) DeleteSyllabus(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i := range repo.db.syllabi {
		if repo.db.syllabi[i].ID == id {
			repo.db.syllabi = append(repo.db.syllabi[:i], repo.db.syllabi[i+1:]...)
			return nil
		}
	}
	return nil
}
