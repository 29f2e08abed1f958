package domain

// Stats are the four homepage counters after overrides are applied.
type Stats struct {
	Projects       int `json:"projects"`
	Skills         int `json:"skills"`
	Certifications int `json:"certifications"`
	Experience     int `json:"experience"`
}

// CertificateStatus is a certificate with its expiry classification relative
// to a given day.
type CertificateStatus struct {
	Certificate
	IsExpired       bool `json:"is_expired"`
	DaysUntilExpiry int  `json:"days_until_expiry"`
	ExpiringSoon    bool `json:"expiring_soon"`
}

type CertificateCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
}

type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Label    string        `json:"label"`
	Skills   []Skill       `json:"skills"`
}

type HomeView struct {
	About            *About    `json:"about"`
	Stats            Stats     `json:"stats"`
	FeaturedProjects []Project `json:"featured_projects"`
	Skills           []Skill   `json:"skills"`
}

type AboutView struct {
	About              *About              `json:"about"`
	Experiences        []Experience        `json:"experiences"`
	Education          []Education         `json:"education"`
	Skills             []Skill             `json:"skills"`
	RecentCertificates []CertificateStatus `json:"recent_certificates"`
	FeaturedProjects   []Project           `json:"featured_projects"`
	Today              Date                `json:"today"`
}

type SkillsView struct {
	About  *About       `json:"about"`
	Groups []SkillGroup `json:"groups"`
}

type ProjectsView struct {
	About    *About    `json:"about"`
	Projects []Project `json:"projects"`
	Filter   string    `json:"filter"`
	Sort     string    `json:"sort"`
}

type ProjectDetailView struct {
	About        *About         `json:"about"`
	Project      Project        `json:"project"`
	Images       []ProjectImage `json:"images"`
	Technologies []string       `json:"technologies"`
	Achievements []string       `json:"achievements"`
	Related      []Project      `json:"related_projects"`
}

type CertificatesView struct {
	About        *About              `json:"about"`
	Certificates []CertificateStatus `json:"certificates"`
	Counts       CertificateCounts   `json:"counts"`
	Today        Date                `json:"today"`
}

type ContactView struct {
	About *About `json:"about"`
	Flash *Flash `json:"flash,omitempty"`
}

// Flash is a one-shot message shown after a form redirect.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
)
