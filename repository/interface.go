package repository

import (
	"context"

	"coaxdirect/models"
)

// QuoteRequestRepositoryInterface defines the contract for quote request operations
type QuoteRequestRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateQuoteRequestRequest) (*models.QuoteRequest, error)
	List(ctx context.Context) ([]models.QuoteRequest, error)
}

// NewsletterRepositoryInterface defines the contract for newsletter signup operations
type NewsletterRepositoryInterface interface {
	Subscribe(ctx context.Context, email string) (*models.NewsletterSignup, error)
}

// CatalogAssetRepositoryInterface defines the contract for catalog asset operations
type CatalogAssetRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, asset *models.CatalogAssetDB) error
	GetBySlug(ctx context.Context, slug string) (*models.CatalogAssetDB, error)
}
