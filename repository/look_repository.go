package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"figure-studio/db"
	"figure-studio/models"
)

// LookRepository handles database operations for saved looks
type LookRepository struct{}

// NewLookRepository creates a new LookRepository
func NewLookRepository() *LookRepository {
	return &LookRepository{}
}

// Ensure LookRepository implements LookRepositoryInterface
var _ LookRepositoryInterface = (*LookRepository)(nil)

// Save inserts a look, assigning its id and creation time
func (r *LookRepository) Save(ctx context.Context, look *models.Look) error {
	look.ID = uuid.NewString()

	err := db.DB.QueryRowContext(ctx, `
		INSERT INTO looks (id, name, figure_code, gender)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, look.ID, look.Name, look.FigureCode, string(look.Gender)).Scan(&look.CreatedAt)
	if err != nil {
		log.Printf("❌ Error inserting look: %v", err)
		return fmt.Errorf("failed to insert look: %w", err)
	}

	log.Printf("✅ Look saved: id=%s, name=%s", look.ID, look.Name)
	return nil
}

// GetByID returns a look by id
func (r *LookRepository) GetByID(ctx context.Context, id string) (*models.Look, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrLookNotFound
	}

	var look models.Look
	var gender string
	err := db.DB.QueryRowContext(ctx, `
		SELECT id, name, figure_code, gender, created_at
		FROM looks
		WHERE id = $1
	`, id).Scan(&look.ID, &look.Name, &look.FigureCode, &gender, &look.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query look: %w", err)
	}
	look.Gender = models.Gender(gender)
	return &look, nil
}

// ListRecent returns the newest looks first
func (r *LookRepository) ListRecent(ctx context.Context, limit int) ([]models.Look, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, name, figure_code, gender, created_at
		FROM looks
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query looks: %w", err)
	}
	defer rows.Close()

	looks := []models.Look{}
	for rows.Next() {
		var look models.Look
		var gender string
		if err := rows.Scan(&look.ID, &look.Name, &look.FigureCode, &gender, &look.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan look: %w", err)
		}
		look.Gender = models.Gender(gender)
		looks = append(looks, look)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating looks: %w", err)
	}
	return looks, nil
}
