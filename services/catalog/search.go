package catalog

import (
	"sort"
	"strings"

	"grindsphere/models"
)

// FilterServices narrows a slice by free-text query and category. The query
// matches case-insensitively as a substring against the name, description,
// location, and every category; the category filter requires an exact
// (case-insensitive) category membership. Both conditions must hold when both
// are present. Empty query and empty category return the input unchanged.
func FilterServices(services []models.Service, query, category string) []models.Service {
	if query == "" && category == "" {
		return services
	}

	q := strings.ToLower(strings.TrimSpace(query))
	cat := strings.ToLower(strings.TrimSpace(category))

	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if q != "" && !matchesQuery(svc, q) {
			continue
		}
		if cat != "" && !hasCategory(svc, cat) {
			continue
		}
		out = append(out, svc)
	}
	return out
}

func matchesQuery(svc models.Service, q string) bool {
	if strings.Contains(strings.ToLower(svc.Name), q) ||
		strings.Contains(strings.ToLower(svc.Description), q) ||
		strings.Contains(strings.ToLower(svc.Location), q) {
		return true
	}
	for _, c := range svc.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

func hasCategory(svc models.Service, cat string) bool {
	for _, c := range svc.Categories {
		if strings.ToLower(c) == cat {
			return true
		}
	}
	return false
}

// TopByBookings returns at most n services ordered by booking count,
// highest first. Ties keep their incoming order.
func TopByBookings(services []models.Service, n int) []models.Service {
	return topBy(services, n, func(s models.Service) int64 { return s.Bookings })
}

// TopByViews returns at most n services ordered by view count, highest first.
// Ties keep their incoming order.
func TopByViews(services []models.Service, n int) []models.Service {
	return topBy(services, n, func(s models.Service) int64 { return s.Views })
}

func topBy(services []models.Service, n int, key func(models.Service) int64) []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
