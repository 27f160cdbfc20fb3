package contentRepo

import (
	"context"

	"verdanta/config"
	"verdanta/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collections holding public site content.
const (
	CollectionTeamMembers      = "team_members"
	CollectionCareers          = "careers"
	CollectionInternships      = "internships"
	CollectionEcovillagePhotos = "ecovillage_photos"
	CollectionProducts         = "products"
	CollectionInvestorReports  = "investor_reports"
	CollectionPageSections     = "page_sections"
	CollectionPages            = "pages"
)

// Repository provides raw document reads for the public site. Records come
// back untyped; normalization happens in the content service.
type Repository interface {
	ListAll(ctx context.Context, collection string) ([]bson.M, error)
	GetBySlug(ctx context.Context, collection, slug string) (bson.M, error)
}

type mongoContentRepo struct {
	db *mongo.Database
}

// NewMongoContentRepo returns a Repository backed by the configured database.
func NewMongoContentRepo() Repository {
	return &mongoContentRepo{
		db: database.MongoClient.Database(config.AppConfig.DatabaseName),
	}
}
