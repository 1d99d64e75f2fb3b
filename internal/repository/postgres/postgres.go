package postgres

import (
	"database/sql"

	"training-portal-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.TrainingRepository
	repository.ParticipantRepository
	repository.PartnerRepository
	repository.UserRepository
	repository.AnalyticsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		TrainingRepository:    NewTrainingRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
		PartnerRepository:     NewPartnerRepository(db),
		UserRepository:        NewUserRepository(db),
		AnalyticsRepository:   NewAnalyticsRepository(db),
	}
}
