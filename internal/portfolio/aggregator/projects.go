// Package aggregator derives page view data from entity snapshots. Every
// function is pure: inputs are never mutated and results are fresh slices.
package aggregator

import (
	"sort"
	"strings"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// Page sizes used by the public pages.
const (
	HomeFeaturedCount    = 3
	HomeSkillCount       = 6
	AboutFeaturedCount   = 6
	AboutCertificates    = 4
	RelatedProjectsCount = 3
)

// FeaturedProjects returns up to desired projects: featured ones first, most
// recently completed first, then non-featured ones in the same order.
func FeaturedProjects(all []domain.Project, desired int) []domain.Project {
	if desired <= 0 {
		return []domain.Project{}
	}

	var featured, rest []domain.Project
	seen := make(map[int64]bool, len(all))
	for _, p := range all {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if p.Featured {
			featured = append(featured, p)
		} else {
			rest = append(rest, p)
		}
	}
	sortRecent(featured)
	sortRecent(rest)

	out := make([]domain.Project, 0, desired)
	for _, group := range [][]domain.Project{featured, rest} {
		for _, p := range group {
			if len(out) == desired {
				return out
			}
			out = append(out, p)
		}
	}
	return out
}

// NormalizeFilter maps anything but an exact "featured" to "all".
func NormalizeFilter(filter string) string {
	if filter == domain.FilterFeatured {
		return domain.FilterFeatured
	}
	return domain.FilterAll
}

// NormalizeSort maps anything but an exact "alphabetical" to "recent".
func NormalizeSort(sortBy string) string {
	if sortBy == domain.SortAlphabetical {
		return domain.SortAlphabetical
	}
	return domain.SortRecent
}

// FilterAndSortProjects applies the project list query. Unknown filter or
// sort values fall back to all/recent.
func FilterAndSortProjects(all []domain.Project, filter, sortBy string) []domain.Project {
	out := make([]domain.Project, 0, len(all))
	featuredOnly := NormalizeFilter(filter) == domain.FilterFeatured
	for _, p := range all {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}

	if NormalizeSort(sortBy) == domain.SortAlphabetical {
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	} else {
		sortRecent(out)
	}
	return out
}

// RelatedProjects returns projects in the same category as project, in the
// order given, excluding project itself.
func RelatedProjects(project domain.Project, all []domain.Project, max int) []domain.Project {
	out := []domain.Project{}
	if max <= 0 {
		return out
	}
	for _, p := range all {
		if p.ID == project.ID || p.Category != project.Category {
			continue
		}
		out = append(out, p)
		if len(out) == max {
			break
		}
	}
	return out
}

// sortRecent orders by date_completed desc with undated projects last.
// Ties break on order asc then id asc.
func sortRecent(ps []domain.Project) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i], ps[j]
		if c := compareDateDesc(a.DateCompleted, b.DateCompleted); c != 0 {
			return c < 0
		}
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return a.ID < b.ID
	})
}

// compareDateDesc returns -1 when a sorts before b under "newest first,
// missing last".
func compareDateDesc(a, b *domain.Date) int {
	aSet := a != nil && !a.IsZero()
	bSet := b != nil && !b.IsZero()
	switch {
	case !aSet && !bSet:
		return 0
	case !aSet:
		return 1
	case !bSet:
		return -1
	case a.After(*b):
		return -1
	case a.Before(*b):
		return 1
	default:
		return 0
	}
}
