package redisdb

import (
	"sync"

	"github.com/go-redis/redis/v8"

	"github.com/darasa-app/darasa/core"
	"github.com/darasa-app/darasa/core/syllabus"
)

const syllabusKey = "darasa:syllabus-storage"

// syllabusState is the durable record under syllabusKey.
type syllabusState struct {
	Syllabi []syllabus.Syllabus `json:"syllabi"`
}

type syllabusRepository struct {
	client *redis.Client
	logger core.Logger
	mu     sync.RWMutex
	state  syllabusState
}

var _ syllabus.Repository = (*syllabusRepository)(nil) // interface compliance check

func NewSyllabusRepository(client *redis.Client, logger core.Logger) (syllabus.Repository, error) {
	repo := &syllabusRepository{client: client, logger: logger}
	if err := loadState(client, syllabusKey, &repo.state); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *syllabusRepository) persist() {
	persistState(repo.client, repo.logger, syllabusKey, repo.state)
}

func (repo *syllabusRepository) CreateSyllabus(syl syllabus.Syllabus) (syllabus.Syllabus, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.state.Syllabi = append(repo.state.Syllabi, syl)
	repo.persist()
	return syl, nil
}

func (repo *syllabusRepository) QueryAllSyllabi() ([]syllabus.Syllabus, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return append([]syllabus.Syllabus(nil), repo.state.Syllabi...), nil
}

func (repo *syllabusRepository) GetSyllabusByID(id string) (syllabus.Syllabus, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, syl := range repo.state.Syllabi {
		if syl.ID == id {
			return syl, nil
		}
	}
	return syllabus.Syllabus{}, syllabus.ErrNotFound
}

func (repo *syllabusRepository) UpdateSyllabus(syl syllabus.Syllabus) (syllabus.Syllabus, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Syllabi {
		if repo.state.Syllabi[i].ID == syl.ID {
			repo.state.Syllabi[i] = syl
			repo.persist()
			return syl, nil
		}
	}
	return syllabus.Syllabus{}, syllabus.ErrNotFound
}

func (repo *syllabusRepository) DeleteSyllabus(id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.state.Syllabi {
		if repo.state.Syllabi[i].ID == id {
			repo.state.Syllabi = append(repo.state.Syllabi[:i], repo.state.Syllabi[i+1:]...)
			repo.persist()
			return nil
		}
	}
	return nil
}
