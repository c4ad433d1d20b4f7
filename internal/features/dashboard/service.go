package dashboard

import (
	"context"

	"go-admin/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Counts holds one total per managed resource collection.
type Counts struct {
	Bookings     int64 `json:"bookings"`
	Programs     int64 `json:"programs"`
	Services     int64 `json:"services"`
	Blogs        int64 `json:"blogs"`
	Contacts     int64 `json:"contacts"`
	ChildIssues  int64 `json:"childIssues"`
	Suggestions  int64 `json:"suggestions"`
	BackendUsers int64 `json:"backendUsers"`
	Roles        int64 `json:"roles"`
}

type DashboardService interface {
	GetCounts(ctx context.Context) (*Counts, error)
}

type DashboardServiceImpl struct {
	DB *mongo.Database
}

func NewDashboardService(mongodb *database.MongodbDB) DashboardService {
	return &DashboardServiceImpl{DB: mongodb.DB}
}

func (s *DashboardServiceImpl) GetCounts(ctx context.Context) (*Counts, error) {
	counts := &Counts{}
	for name, dst := range map[string]*int64{
		"bookings":     &counts.Bookings,
		"programs":     &counts.Programs,
		"services":     &counts.Services,
		"blogs":        &counts.Blogs,
		"contacts":     &counts.Contacts,
		"childissues":  &counts.ChildIssues,
		"suggestions":  &counts.Suggestions,
		"backendusers": &counts.BackendUsers,
		"roles":        &counts.Roles,
	} {
		n, err := s.DB.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		*dst = n
	}
	return counts, nil
}
