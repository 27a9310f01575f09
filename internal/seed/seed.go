package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/unirecords/internal/app/models"
	appRepos "github.com/yigit/unirecords/internal/app/repositories"
	"github.com/yigit/unirecords/internal/db"
)

// DefaultDepartments are created on first start when the departments table is empty
var DefaultDepartments = []string{
	"Computer Science",
	"Mathematics",
	"Physics",
	"Economics",
}

// Transactor runs fn inside a database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// CreateDefaultData creates the default departments inside a single
// transaction. Nothing is written when any department already exists.
func CreateDefaultData(ctx context.Context, database Transactor, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Departments)...")

	created := 0
	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		departmentRepo := appRepos.NewDepartmentRepository(tx)

		count, err := departmentRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("error counting departments: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, name := range DefaultDepartments {
			department := &appModels.Department{Name: name}
			if err := departmentRepo.Create(ctx, department); err != nil {
				return fmt.Errorf("error creating department %q: %w", name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if created > 0 {
		lgr.Info().Int("departments", created).Msg("Default departments created")
	} else {
		lgr.Debug().Msg("Departments already present, skipping seed")
	}
	return nil
}
