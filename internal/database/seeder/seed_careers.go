package seeder

import (
	"context"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
	"career-compass/internal/repository"
)

// CareersSeeder upserts a catalogue of careers keyed by title. Running it
// twice leaves the table unchanged.
type CareersSeeder struct {
	Careers []career.Career
}

func (s CareersSeeder) Name() string { return "careers" }

func (s CareersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "careers",
		"id", "title", "description", "scope", "earning_potential",
		"skills", "demand_level", "category", "created_at", "updated_at",
	); err != nil {
		return err
	}

	repo := repository.NewPostgresCareerRepository(db)
	for _, c := range s.Careers {
		if _, err := repo.Ensure(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
