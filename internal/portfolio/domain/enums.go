package domain

type SkillCategory string

const (
	SkillTechnical SkillCategory = "technical"
	SkillTools     SkillCategory = "tools"
	SkillAnalytics SkillCategory = "analytics"
	SkillSoft      SkillCategory = "soft"
)

// SkillCategories is the display order used by the skills page: category
// keys in ascending order.
var SkillCategories = []SkillCategory{SkillAnalytics, SkillSoft, SkillTechnical, SkillTools}

func (c SkillCategory) Label() string {
	switch c {
	case SkillTechnical:
		return "Technical"
	case SkillTools:
		return "Tools & Software"
	case SkillAnalytics:
		return "Analytics"
	case SkillSoft:
		return "Soft Skills"
	default:
		return string(c)
	}
}

type ProjectStatus string

const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectArchived   ProjectStatus = "archived"
)

func (s ProjectStatus) Label() string {
	switch s {
	case ProjectCompleted:
		return "Completed"
	case ProjectInProgress:
		return "In Progress"
	case ProjectArchived:
		return "Archived"
	default:
		return string(s)
	}
}

type ProjectCategory string

const (
	CategoryDataAnalysis      ProjectCategory = "data_analysis"
	CategoryDashboard         ProjectCategory = "dashboard"
	CategoryDataVisualization ProjectCategory = "data_visualization"
	CategoryMachineLearning   ProjectCategory = "machine_learning"
	CategoryOther             ProjectCategory = "other"
)

func (c ProjectCategory) Label() string {
	switch c {
	case CategoryDataAnalysis:
		return "Data Analysis"
	case CategoryDashboard:
		return "Dashboard"
	case CategoryDataVisualization:
		return "Data Visualization"
	case CategoryMachineLearning:
		return "Machine Learning"
	case CategoryOther:
		return "Other"
	default:
		return string(c)
	}
}

// Project list query values.
const (
	FilterAll      = "all"
	FilterFeatured = "featured"

	SortRecent       = "recent"
	SortAlphabetical = "alphabetical"
)

// SkillIconCustom selects the skill's own custom_svg markup.
const SkillIconCustom = "custom"
