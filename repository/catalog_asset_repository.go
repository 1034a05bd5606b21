package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"coaxdirect/db"
	"coaxdirect/models"
)

// CatalogAssetRepository handles database operations for synced catalog imagery
type CatalogAssetRepository struct{}

// NewCatalogAssetRepository creates a new CatalogAssetRepository
func NewCatalogAssetRepository() *CatalogAssetRepository {
	return &CatalogAssetRepository{}
}

// Ensure CatalogAssetRepository implements CatalogAssetRepositoryInterface
var _ CatalogAssetRepositoryInterface = (*CatalogAssetRepository)(nil)

// ExistsByDriveFileID checks whether a Drive file was already synced
func (r *CatalogAssetRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM catalog_assets WHERE drive_file_id = $1)`

	var exists bool
	if err := db.DB.QueryRowContext(ctx, query, driveFileID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check catalog asset existence: %w", err)
	}

	return exists, nil
}

// Insert creates a new catalog asset row
func (r *CatalogAssetRepository) Insert(ctx context.Context, asset *models.CatalogAssetDB) error {
	query := `
		INSERT INTO catalog_assets (drive_file_id, slug, image_url)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := db.DB.QueryRowContext(ctx, query,
		asset.DriveFileID,
		asset.Slug,
		asset.ImageURL,
	).Scan(&asset.ID)

	if err != nil {
		log.Printf("❌ InsertCatalogAsset: Error inserting asset slug=%s: %v", asset.Slug, err)
		return fmt.Errorf("failed to insert catalog asset: %w", err)
	}

	return nil
}

// GetBySlug returns the catalog asset for a connector or cable type slug
func (r *CatalogAssetRepository) GetBySlug(ctx context.Context, slug string) (*models.CatalogAssetDB, error) {
	query := `
		SELECT id, drive_file_id, slug, image_url
		FROM catalog_assets
		WHERE slug = $1
		ORDER BY id DESC
		LIMIT 1
	`

	var asset models.CatalogAssetDB
	err := db.DB.QueryRowContext(ctx, query, slug).Scan(
		&asset.ID,
		&asset.DriveFileID,
		&asset.Slug,
		&asset.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("catalog asset not found for slug %q", slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog asset: %w", err)
	}

	return &asset, nil
}
