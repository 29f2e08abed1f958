package aggregator

import "github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"

// HomepageStats prefers each non-nil About override over the live count.
// A zero override is a real value and wins over the count.
func HomepageStats(about *domain.About, counts domain.Counts) domain.Stats {
	stats := domain.Stats{
		Projects:       counts.Projects,
		Skills:         counts.Skills,
		Certifications: counts.Certifications,
		Experience:     counts.Experience,
	}
	if about == nil {
		return stats
	}
	stats.Projects = override(about.StatProjects, stats.Projects)
	stats.Skills = override(about.StatSkills, stats.Skills)
	stats.Certifications = override(about.StatCertifications, stats.Certifications)
	stats.Experience = override(about.StatExperience, stats.Experience)
	return stats
}

func override(v *int, live int) int {
	if v != nil {
		return *v
	}
	return live
}
