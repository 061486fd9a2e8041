package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

func NewRepository(db storage.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context, id string) (*Project, error) {
	var p Project

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&p.ID,
		&p.Name,
		&p.CreateAt,
		&p.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	return &p, nil
}

// all projects, most recently updated first
func (r *Repository) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// empty slice instead of nil so the JSON response is []
	projects := []Project{}

	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreateAt, &p.UpdateAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// creates the project and its seed message in one transaction
func (r *Repository) CreateWithMessage(ctx context.Context, name, content string) (*Project, error) {
	var p Project

	err := storage.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, queryCreate, uuid.NewString(), name).Scan(
			&p.ID,
			&p.Name,
			&p.CreateAt,
			&p.UpdateAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}

		if _, err := tx.Exec(ctx, queryCreateSeedMessage, uuid.NewString(), content, p.ID); err != nil {
			return fmt.Errorf("failed to insert seed message: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}
