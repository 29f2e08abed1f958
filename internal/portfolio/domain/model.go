package domain

import (
	"strconv"
	"strings"
	"time"
)

// AboutID is the fixed key of the single About row.
const AboutID = 1

// About is the site owner's profile. At most one exists.
type About struct {
	Name               string `json:"name" yaml:"name" validate:"required,max=200"`
	Title              string `json:"title" yaml:"title" validate:"required,max=200"`
	Bio                string `json:"bio" yaml:"bio" validate:"required"`
	Email              string `json:"email" yaml:"email" validate:"required,email"`
	Phone              string `json:"phone" yaml:"phone" validate:"max=20"`
	Location           string `json:"location" yaml:"location" validate:"max=200"`
	ProfileImageURL    string `json:"profile_image_url" yaml:"profile_image_url" validate:"omitempty,url"`
	ResumeURL          string `json:"resume_url" yaml:"resume_url" validate:"omitempty,url"`
	LinkedInURL        string `json:"linkedin_url" yaml:"linkedin_url" validate:"omitempty,url"`
	GitHubURL          string `json:"github_url" yaml:"github_url" validate:"omitempty,url"`
	TwitterURL         string `json:"twitter_url" yaml:"twitter_url" validate:"omitempty,url"`
	HeroHeading        string `json:"hero_heading" yaml:"hero_heading" validate:"max=300"`
	HeroTagline        string `json:"hero_tagline" yaml:"hero_tagline" validate:"max=200"`
	HeroDescription    string `json:"hero_description" yaml:"hero_description"`
	HeroCTAPrimary     string `json:"hero_cta_primary" yaml:"hero_cta_primary" validate:"max=100"`
	HeroCTASecondary   string `json:"hero_cta_secondary" yaml:"hero_cta_secondary" validate:"max=100"`
	ShowProfilePicture bool   `json:"show_profile_picture" yaml:"show_profile_picture"`

	FooterTagline         string `json:"footer_tagline" yaml:"footer_tagline" validate:"max=200"`
	FooterShowSocialLinks bool   `json:"footer_show_social_links" yaml:"footer_show_social_links"`
	FooterShowResumeLink  bool   `json:"footer_show_resume_link" yaml:"footer_show_resume_link"`
	FooterCopyrightText   string `json:"footer_copyright_text" yaml:"footer_copyright_text" validate:"max=300"`

	// Homepage stat overrides. nil means "use the live count".
	StatProjects       *int `json:"stat_projects" yaml:"stat_projects" validate:"omitempty,min=0"`
	StatSkills         *int `json:"stat_skills" yaml:"stat_skills" validate:"omitempty,min=0"`
	StatCertifications *int `json:"stat_certifications" yaml:"stat_certifications" validate:"omitempty,min=0"`
	StatExperience     *int `json:"stat_experience" yaml:"stat_experience" validate:"omitempty,min=0"`

	AvailabilityStatus bool   `json:"availability_status" yaml:"availability_status"`
	AvailabilityText   string `json:"availability_text" yaml:"availability_text" validate:"max=100"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// DefaultAbout returns the placeholder profile created by "about setup".
func DefaultAbout() About {
	return About{
		Name:                  "Your Name",
		Title:                 "Data Analyst",
		Bio:                   "Write a short introduction about yourself here.",
		Email:                 "you@example.com",
		HeroHeading:           "Transforming Data Into Strategic Insights",
		HeroCTAPrimary:        "View My Work",
		HeroCTASecondary:      "Get In Touch",
		ShowProfilePicture:    true,
		FooterTagline:         "Turning data into insights",
		FooterShowSocialLinks: true,
		FooterShowResumeLink:  true,
		AvailabilityStatus:    true,
		AvailabilityText:      "Available for projects",
	}
}

type Skill struct {
	ID          int64         `json:"id" yaml:"-"`
	Name        string        `json:"name" yaml:"name" validate:"required,max=100"`
	Category    SkillCategory `json:"category" yaml:"category" validate:"required,oneof=technical tools analytics soft"`
	Proficiency int           `json:"proficiency" yaml:"proficiency"`
	Icon        string        `json:"icon" yaml:"icon" validate:"max=100"`
	CustomSVG   string        `json:"custom_svg" yaml:"custom_svg"`
	Order       int           `json:"order" yaml:"order"`
	CreatedAt   time.Time     `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"-"`
}

type Project struct {
	ID                  int64           `json:"id" yaml:"-"`
	Title               string          `json:"title" yaml:"title" validate:"required,max=200"`
	Description         string          `json:"description" yaml:"description" validate:"required"`
	DetailedDescription string          `json:"detailed_description" yaml:"detailed_description"`
	ImageURL            string          `json:"image_url" yaml:"image_url" validate:"omitempty,url"`
	Technologies        string          `json:"technologies" yaml:"technologies" validate:"max=500"`
	ProjectURL          string          `json:"project_url" yaml:"project_url" validate:"omitempty,url"`
	GitHubURL           string          `json:"github_url" yaml:"github_url" validate:"omitempty,url"`
	Featured            bool            `json:"featured" yaml:"featured"`
	Status              ProjectStatus   `json:"status" yaml:"status" validate:"required,oneof=completed in_progress archived"`
	Category            ProjectCategory `json:"category" yaml:"category" validate:"required,oneof=data_analysis dashboard data_visualization machine_learning other"`
	KeyAchievements     string          `json:"key_achievements" yaml:"key_achievements"`
	Order               int             `json:"order" yaml:"order"`
	DateCompleted       *Date           `json:"date_completed" yaml:"date_completed"`
	CreatedAt           time.Time       `json:"created_at" yaml:"-"`
	UpdatedAt           time.Time       `json:"updated_at" yaml:"-"`

	Images []ProjectImage `json:"images,omitempty" yaml:"images,omitempty" validate:"-"`
}

// TechnologiesList splits the comma separated technologies field.
func (p Project) TechnologiesList() []string {
	return splitNonEmpty(p.Technologies, ",")
}

// AchievementsList splits key achievements on newlines.
func (p Project) AchievementsList() []string {
	return splitNonEmpty(p.KeyAchievements, "\n")
}

type ProjectImage struct {
	ID        int64     `json:"id" yaml:"-"`
	ProjectID int64     `json:"project_id" yaml:"-"`
	ImageURL  string    `json:"image_url" yaml:"image_url" validate:"required,url"`
	Caption   string    `json:"caption" yaml:"caption" validate:"max=200"`
	Order     int       `json:"order" yaml:"order"`
	CreatedAt time.Time `json:"created_at" yaml:"-"`
}

type Certificate struct {
	ID                  int64     `json:"id" yaml:"-"`
	CertificateName     string    `json:"certificate_name" yaml:"certificate_name" validate:"required,max=200"`
	IssuingOrganization string    `json:"issuing_organization" yaml:"issuing_organization" validate:"required,max=200"`
	IssueDate           Date      `json:"issue_date" yaml:"issue_date"`
	ExpiryDate          *Date     `json:"expiry_date" yaml:"expiry_date"`
	CredentialID        string    `json:"credential_id" yaml:"credential_id" validate:"max=200"`
	CredentialURL       string    `json:"credential_url" yaml:"credential_url" validate:"omitempty,url"`
	ImageURL            string    `json:"image_url" yaml:"image_url" validate:"omitempty,url"`
	Description         string    `json:"description" yaml:"description"`
	Order               int       `json:"order" yaml:"order"`
	CreatedAt           time.Time `json:"created_at" yaml:"-"`
	UpdatedAt           time.Time `json:"updated_at" yaml:"-"`
}

type Experience struct {
	ID             int64     `json:"id" yaml:"-"`
	Company        string    `json:"company" yaml:"company" validate:"required,max=200"`
	Position       string    `json:"position" yaml:"position" validate:"required,max=200"`
	Location       string    `json:"location" yaml:"location" validate:"max=200"`
	StartDate      Date      `json:"start_date" yaml:"start_date"`
	EndDate        *Date     `json:"end_date" yaml:"end_date"`
	Current        bool      `json:"current" yaml:"current"`
	Description    string    `json:"description" yaml:"description" validate:"required"`
	Achievements   string    `json:"achievements" yaml:"achievements"`
	CompanyLogoURL string    `json:"company_logo_url" yaml:"company_logo_url" validate:"omitempty,url"`
	Order          int       `json:"order" yaml:"order"`
	CreatedAt      time.Time `json:"created_at" yaml:"-"`
	UpdatedAt      time.Time `json:"updated_at" yaml:"-"`
}

func (e Experience) AchievementsList() []string {
	return splitNonEmpty(e.Achievements, "\n")
}

// DateRange renders "Jan 2020 - Present" style ranges.
func (e Experience) DateRange() string {
	if e.StartDate.IsZero() {
		return ""
	}
	start := e.StartDate.Format("Jan 2006")
	switch {
	case e.Current:
		return start + " - Present"
	case e.EndDate != nil && !e.EndDate.IsZero():
		return start + " - " + e.EndDate.Format("Jan 2006")
	default:
		return start
	}
}

type Education struct {
	ID                  int64     `json:"id" yaml:"-"`
	Institution         string    `json:"institution" yaml:"institution" validate:"required,max=200"`
	Degree              string    `json:"degree" yaml:"degree" validate:"required,max=200"`
	FieldOfStudy        string    `json:"field_of_study" yaml:"field_of_study" validate:"required,max=200"`
	StartYear           *int      `json:"start_year" yaml:"start_year" validate:"omitempty,min=1900,max=2200"`
	StartMonth          *int      `json:"start_month" yaml:"start_month" validate:"omitempty,min=1,max=12"`
	EndYear             *int      `json:"end_year" yaml:"end_year" validate:"omitempty,min=1900,max=2200"`
	EndMonth            *int      `json:"end_month" yaml:"end_month" validate:"omitempty,min=1,max=12"`
	Current             bool      `json:"current" yaml:"current"`
	Grade               string    `json:"grade" yaml:"grade" validate:"max=50"`
	Description         string    `json:"description" yaml:"description"`
	InstitutionLogoURL  string    `json:"institution_logo_url" yaml:"institution_logo_url" validate:"omitempty,url"`
	CertificateImageURL string    `json:"certificate_image_url" yaml:"certificate_image_url" validate:"omitempty,url"`
	Order               int       `json:"order" yaml:"order"`
	CreatedAt           time.Time `json:"created_at" yaml:"-"`
	UpdatedAt           time.Time `json:"updated_at" yaml:"-"`
}

// StartDisplay returns "Sep 2018", "2018" or "" when no start year is set.
func (e Education) StartDisplay() string {
	return yearMonthDisplay(e.StartYear, e.StartMonth)
}

// EndDisplay returns "Present" for ongoing studies.
func (e Education) EndDisplay() string {
	if e.Current {
		return "Present"
	}
	return yearMonthDisplay(e.EndYear, e.EndMonth)
}

func (e Education) DateRange() string {
	start, end := e.StartDisplay(), e.EndDisplay()
	switch {
	case start != "" && end != "":
		return start + " - " + end
	case start != "":
		return "Started " + start
	case end != "":
		return "Completed " + end
	default:
		return ""
	}
}

func yearMonthDisplay(year, month *int) string {
	if year == nil || *year == 0 {
		return ""
	}
	if month != nil && *month >= 1 && *month <= 12 {
		return time.Month(*month).String()[:3] + " " + strconv.Itoa(*year)
	}
	return strconv.Itoa(*year)
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactInput is an inbound contact form submission.
type ContactInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Counts are live row counts used for homepage stats.
type Counts struct {
	Projects       int `json:"projects"`
	Skills         int `json:"skills"`
	Certifications int `json:"certifications"`
	Experience     int `json:"experience"`
}

func splitNonEmpty(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func IntPtr(v int) *int { return &v }
