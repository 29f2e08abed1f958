package aggregator

import (
	"sort"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// SortExperiences orders positions by start date, newest first.
func SortExperiences(all []domain.Experience) []domain.Experience {
	out := append([]domain.Experience{}, all...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// SortEducation orders entries by start year and month, newest first.
// Entries without a start year go last.
func SortEducation(all []domain.Education) []domain.Education {
	out := append([]domain.Education{}, all...)
	key := func(e domain.Education) int {
		if e.StartYear == nil {
			return -1
		}
		m := 0
		if e.StartMonth != nil {
			m = *e.StartMonth
		}
		return *e.StartYear*100 + m
	}
	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := key(out[i]), key(out[j])
		if ki != kj {
			return ki > kj
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// SkillsByCategory groups skills for the skills page. Groups follow
// domain.SkillCategories, skills within a group go by proficiency desc.
// Empty groups are omitted.
func SkillsByCategory(all []domain.Skill) []domain.SkillGroup {
	byCat := make(map[domain.SkillCategory][]domain.Skill)
	for _, s := range all {
		byCat[s.Category] = append(byCat[s.Category], s)
	}

	groups := []domain.SkillGroup{}
	for _, cat := range domain.SkillCategories {
		skills := byCat[cat]
		if len(skills) == 0 {
			continue
		}
		sort.SliceStable(skills, func(i, j int) bool {
			return skills[i].Proficiency > skills[j].Proficiency
		})
		groups = append(groups, domain.SkillGroup{Category: cat, Label: cat.Label(), Skills: skills})
	}
	return groups
}

// TopSkills returns the first n skills in store order.
func TopSkills(all []domain.Skill, n int) []domain.Skill {
	if n < 0 {
		n = 0
	}
	if len(all) < n {
		n = len(all)
	}
	return append([]domain.Skill{}, all[:n]...)
}
