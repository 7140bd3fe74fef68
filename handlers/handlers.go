package handlers

import (
	"time"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/Dirk1989/ideal-car/services"
	"github.com/Dirk1989/ideal-car/storage"
)

// Entity files under the data directory. Each holds the complete dataset for
// its entity; every operation loads and rewrites the whole document.
const (
	vehiclesFile = "vehicles.json"
	dealersFile  = "dealers.json"
	blogsFile    = "blogs.json"
	leadsFile    = "leads.json"
	siteFile     = "site.json"
)

var (
	store   *storage.Store
	uploads *services.ImageService
	mailer  *services.Mailer
)

// Initialize wires the handler package to its backing services and seeds the
// entity files. Must run before any route is served.
func Initialize(s *storage.Store, imgs *services.ImageService, m *services.Mailer) error {
	store = s
	uploads = imgs
	mailer = m

	for _, name := range []string{vehiclesFile, dealersFile, blogsFile, leadsFile} {
		if err := s.Ensure(name, []interface{}{}); err != nil {
			return err
		}
	}
	return s.Ensure(siteFile, models.DefaultSiteConfig())
}

// newID derives record ids from the current time in milliseconds. Two creates
// inside the same millisecond can collide; the source system accepts that.
func newID() int64 {
	return time.Now().UnixMilli()
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// strOr mirrors the original's `body.field || default`: absent and empty both
// yield the default.
func strOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func floatOr(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func boolOr(v *bool) bool {
	return v != nil && *v
}

func sliceOr(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// capBatch silently truncates multi-image payloads to the pipeline's cap.
func capBatch(items []string) []string {
	if len(items) > services.MaxBatchImages {
		return items[:services.MaxBatchImages]
	}
	return items
}
