package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GatchaLife_Go/internal/database/postgres"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

// CatalogRepository is the catalog read model plus the seed writer.
type CatalogRepository interface {
	repository.Catalog
	repository.CatalogSeeder
}

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Catalog    CatalogRepository
	Collection repository.Collection
	Image      repository.Image
	AsyncJob   repository.AsyncJob
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Catalog:    postgres.NewCatalogRepository(dbPool),
		Collection: postgres.NewCollectionRepository(dbPool),
		Image:      postgres.NewImageRepository(dbPool),
		AsyncJob:   postgres.NewAsyncJobRepository(dbPool),
	}
}
