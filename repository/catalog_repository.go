package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"figure-studio/db"
	"figure-studio/models"
	"figure-studio/utils"
)

// CatalogRepository persists reconciled catalog snapshots
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// ReplaceSnapshot stores a new snapshot and drops the older ones in one transaction
func (r *CatalogRepository) ReplaceSnapshot(ctx context.Context, entries []models.CatalogEntry) (int64, error) {
	log.Printf("💾 ReplaceSnapshot: storing %d entries", len(entries))

	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Error starting transaction: %v", err)
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var snapshotID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO catalog_snapshots (entry_count) VALUES ($1) RETURNING id`,
		len(entries),
	).Scan(&snapshotID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (
			snapshot_id, family, garment_id, display_name, gender, club_tier,
			color_ids, duotone, provenance, external_asset_hint
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare entry insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		_, err := stmt.ExecContext(ctx,
			snapshotID,
			string(entry.Family),
			entry.GarmentID,
			entry.DisplayName,
			string(entry.Gender),
			string(entry.ClubTier),
			utils.FormatColorIDs(entry.AvailableColorIDs),
			entry.Duotone,
			string(entry.Provenance),
			entry.ExternalAssetHint,
		)
		if err != nil {
			log.Printf("❌ Error inserting entry %s: %v", entry.Key(), err)
			return 0, fmt.Errorf("failed to insert entry %s: %w", entry.Key(), err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_snapshots WHERE id <> $1`, snapshotID); err != nil {
		return 0, fmt.Errorf("failed to prune old snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Printf("❌ Error committing transaction: %v", err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("✅ Snapshot %d stored", snapshotID)
	return snapshotID, nil
}

// LoadLatestSnapshot returns the most recent snapshot
func (r *CatalogRepository) LoadLatestSnapshot(ctx context.Context) (*models.CatalogSnapshot, error) {
	var snapshot models.CatalogSnapshot
	err := db.DB.QueryRowContext(ctx,
		`SELECT id, created_at FROM catalog_snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	rows, err := db.DB.QueryContext(ctx, `
		SELECT family, garment_id, display_name, gender, club_tier,
		       color_ids, duotone, provenance, external_asset_hint
		FROM catalog_entries
		WHERE snapshot_id = $1
		ORDER BY family, garment_id
	`, snapshot.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.CatalogEntry
		var family, gender, clubTier, colors, provenance string
		if err := rows.Scan(
			&family,
			&entry.GarmentID,
			&entry.DisplayName,
			&gender,
			&clubTier,
			&colors,
			&entry.Duotone,
			&provenance,
			&entry.ExternalAssetHint,
		); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot entry: %w", err)
		}
		entry.Family = models.Family(family)
		entry.Gender = models.Gender(gender)
		entry.ClubTier = models.ClubTier(clubTier)
		entry.AvailableColorIDs = utils.SplitColorIDs(colors)
		entry.Provenance = models.Provenance(provenance)
		snapshot.Entries = append(snapshot.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot entries: %w", err)
	}

	log.Printf("✅ Loaded snapshot %d with %d entries", snapshot.ID, len(snapshot.Entries))
	return &snapshot, nil
}
