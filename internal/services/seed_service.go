package services

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	intdb "campusbooking/internal/db"
	"campusbooking/internal/domain/models"
	"campusbooking/internal/repositories"
	"campusbooking/internal/utils"

	"gopkg.in/yaml.v3"
)

// DefaultVenues is the catalog installed into an empty registry.
var DefaultVenues = []models.Venue{
	{Name: "Lecture Hall A", Type: "Room", Capacity: 50, Location: "Building 1, Floor 1"},
	{Name: "Lecture Hall B", Type: "Room", Capacity: 75, Location: "Building 1, Floor 2"},
	{Name: "Main Library", Type: "Library", Capacity: 200, Location: "Central Building"},
	{Name: "Science Lab 1", Type: "Lab", Capacity: 30, Location: "Science Building, Floor 1"},
	{Name: "Auditorium", Type: "Auditorium", Capacity: 300, Location: "Main Building"},
	{Name: "Study Room 101", Type: "Study Room", Capacity: 10, Location: "Library, Floor 2"},
	{Name: "Computer Lab", Type: "Lab", Capacity: 25, Location: "Tech Building, Floor 1"},
	{Name: "Conference Room A", Type: "Meeting Room", Capacity: 20, Location: "Admin Building, Floor 3"},
}

type SeedService struct {
	DB     *sql.DB
	Venues repositories.VenueRepo
}

func NewSeedService(db *sql.DB, dialect intdb.Dialect) SeedService {
	return SeedService{DB: db, Venues: repositories.VenueRepo{DB: db, Dialect: dialect}}
}

// SeedDefaults inserts venues only when the registry is empty and reports how
// many rows it added. Running it again, or racing another process that seeds
// first, adds nothing.
func (s SeedService) SeedDefaults(ctx context.Context, venues []models.Venue) (int, error) {
	if len(venues) == 0 {
		venues = DefaultVenues
	}
	inserted := 0
	err := intdb.WithTx(ctx, s.DB, nil, func(txCtx context.Context) error {
		n, err := s.Venues.Count(txCtx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, v := range venues {
			v = v.Normalize()
			if v.Name == "" {
				return fmt.Errorf("seed venue: name is required")
			}
			if _, err := s.Venues.Insert(txCtx, v); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		if intdb.IsUniqueViolation(err) {
			utils.LogEvent(ctx, "venue", "seed", "registry seeded concurrently, skipping")
			return 0, nil
		}
		return 0, fmt.Errorf("seed venues: %w", err)
	}
	utils.LogEvent(ctx, "venue", "seed", "seed complete", "inserted", inserted)
	return inserted, nil
}

type seedFile struct {
	Venues []models.Venue `yaml:"venues"`
}

// LoadVenueSeedFile reads a YAML catalog of the form:
//
//	venues:
//	  - name: Lecture Hall A
//	    type: Room
//	    capacity: 50
//	    location: Building 1, Floor 1
func LoadVenueSeedFile(path string) ([]models.Venue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(f.Venues) == 0 {
		return nil, fmt.Errorf("parse seed file: no venues in %s", path)
	}
	out := make([]models.Venue, 0, len(f.Venues))
	for _, v := range f.Venues {
		out = append(out, v.Normalize())
	}
	return out, nil
}
