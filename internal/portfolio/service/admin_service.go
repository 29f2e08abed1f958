package service

import (
	"context"
	"errors"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

type AboutStore interface {
	Get(ctx context.Context) (*domain.About, error)
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, a *domain.About) error
	Upsert(ctx context.Context, a *domain.About) error
}

type SkillStore interface {
	List(ctx context.Context) ([]domain.Skill, error)
	Get(ctx context.Context, id int64) (*domain.Skill, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, s *domain.Skill) error
	Update(ctx context.Context, s *domain.Skill) error
	Delete(ctx context.Context, id int64) error
}

type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
	SetFeatured(ctx context.Context, ids []int64, featured bool) (int64, error)
	Duplicate(ctx context.Context, id int64) (*domain.Project, error)
	ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error)
	AddImage(ctx context.Context, img *domain.ProjectImage) error
	DeleteImage(ctx context.Context, projectID, imageID int64) error
}

type CertificateStore interface {
	List(ctx context.Context) ([]domain.Certificate, error)
	Get(ctx context.Context, id int64) (*domain.Certificate, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c *domain.Certificate) error
	Update(ctx context.Context, c *domain.Certificate) error
	Delete(ctx context.Context, id int64) error
	Duplicate(ctx context.Context, id int64) (*domain.Certificate, error)
}

type ExperienceStore interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Get(ctx context.Context, id int64) (*domain.Experience, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, e *domain.Experience) error
	Update(ctx context.Context, e *domain.Experience) error
	Delete(ctx context.Context, id int64) error
	SetCurrent(ctx context.Context, ids []int64, current bool) (int64, error)
}

type EducationStore interface {
	List(ctx context.Context) ([]domain.Education, error)
	Get(ctx context.Context, id int64) (*domain.Education, error)
	Create(ctx context.Context, e *domain.Education) error
	Update(ctx context.Context, e *domain.Education) error
	Delete(ctx context.Context, id int64) error
	SetCurrent(ctx context.Context, ids []int64, current bool) (int64, error)
}

type MessageStore interface {
	List(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error)
	Get(ctx context.Context, id int64) (*domain.ContactMessage, error)
	SetRead(ctx context.Context, ids []int64, read bool) (int64, error)
	CountUnread(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int64) error
}

// Stores groups the full entity store used by the admin API.
type Stores struct {
	About        AboutStore
	Skills       SkillStore
	Projects     ProjectStore
	Certificates CertificateStore
	Experiences  ExperienceStore
	Education    EducationStore
	Messages     MessageStore
}

// Readers returns the read-only view used by the public pages.
func (s Stores) Readers() Readers {
	return Readers{
		About:        s.About,
		Skills:       s.Skills,
		Projects:     s.Projects,
		Certificates: s.Certificates,
		Experiences:  s.Experiences,
		Education:    s.Education,
	}
}

// Summary is the admin dashboard overview.
type Summary struct {
	AboutConfigured bool `json:"about_configured"`
	Skills          int  `json:"skills"`
	Projects        int  `json:"projects"`
	Certificates    int  `json:"certificates"`
	Experiences     int  `json:"experiences"`
	UnreadMessages  int  `json:"unread_messages"`
}

// AdminService applies normalization and validation to every admin write
// before it reaches the store.
type AdminService struct {
	st   Stores
	svg  *domain.SVGSanitizer
	text *domain.TextSanitizer
	log  *logger.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(st Stores, log *logger.Logger) *AdminService {
	if log == nil {
		log = logger.NewNop()
	}
	return &AdminService{
		st:   st,
		svg:  domain.NewSVGSanitizer(),
		text: domain.NewTextSanitizer(),
		log:  log.With("service", "admin"),
	}
}

func (s *AdminService) Summary(ctx context.Context) (*Summary, error) {
	var (
		sum Summary
		err error
	)
	if sum.AboutConfigured, err = s.st.About.Exists(ctx); err != nil {
		return nil, err
	}
	if sum.Skills, err = s.st.Skills.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Projects, err = s.st.Projects.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Certificates, err = s.st.Certificates.Count(ctx); err != nil {
		return nil, err
	}
	if sum.Experiences, err = s.st.Experiences.Count(ctx); err != nil {
		return nil, err
	}
	if sum.UnreadMessages, err = s.st.Messages.CountUnread(ctx); err != nil {
		return nil, err
	}
	return &sum, nil
}

// plainText rejects markup in short display fields.
func (s *AdminService) plainText(fields map[string]string) error {
	for name, v := range fields {
		if s.text.ContainsMarkup(v) {
			return domain.NewValidationError(domain.KindInvalidField, name, name+" must not contain HTML")
		}
	}
	return nil
}

// ---- About ----

func (s *AdminService) GetAbout(ctx context.Context) (*domain.About, error) {
	return s.st.About.Get(ctx)
}

// SaveAbout creates or replaces the single profile row.
func (s *AdminService) SaveAbout(ctx context.Context, a *domain.About) error {
	domain.NormalizeAbout(a)
	if err := domain.Validate(a); err != nil {
		return err
	}
	if err := s.plainText(map[string]string{"name": a.Name, "title": a.Title}); err != nil {
		return err
	}
	if err := s.st.About.Upsert(ctx, a); err != nil {
		return err
	}
	s.log.Info("about saved")
	return nil
}

// SetupAbout creates the placeholder profile. It returns
// domain.ErrAboutAlreadyExists when one is present.
func (s *AdminService) SetupAbout(ctx context.Context) (*domain.About, error) {
	a := domain.DefaultAbout()
	if err := s.st.About.Create(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ---- Skills ----

func (s *AdminService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.st.Skills.List(ctx)
}

func (s *AdminService) GetSkill(ctx context.Context, id int64) (*domain.Skill, error) {
	return s.st.Skills.Get(ctx, id)
}

func (s *AdminService) prepareSkill(sk *domain.Skill) error {
	domain.NormalizeSkill(sk)
	if err := domain.Validate(sk); err != nil {
		return err
	}
	if err := s.plainText(map[string]string{"name": sk.Name}); err != nil {
		return err
	}
	if sk.Icon == domain.SkillIconCustom {
		sk.CustomSVG = s.svg.Sanitize(sk.CustomSVG)
	}
	return nil
}

func (s *AdminService) CreateSkill(ctx context.Context, sk *domain.Skill) error {
	if err := s.prepareSkill(sk); err != nil {
		return err
	}
	return s.st.Skills.Create(ctx, sk)
}

func (s *AdminService) UpdateSkill(ctx context.Context, sk *domain.Skill) error {
	if err := s.prepareSkill(sk); err != nil {
		return err
	}
	return s.st.Skills.Update(ctx, sk)
}

func (s *AdminService) DeleteSkill(ctx context.Context, id int64) error {
	return s.st.Skills.Delete(ctx, id)
}

// ---- Projects ----

func (s *AdminService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.st.Projects.List(ctx)
}

// GetProject returns the project with its gallery.
func (s *AdminService) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.st.Projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Images, err = s.st.Projects.ListImages(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *AdminService) prepareProject(p *domain.Project) error {
	domain.NormalizeProject(p)
	if err := domain.Validate(p); err != nil {
		return err
	}
	return s.plainText(map[string]string{"title": p.Title, "technologies": p.Technologies})
}

func (s *AdminService) CreateProject(ctx context.Context, p *domain.Project) error {
	if err := s.prepareProject(p); err != nil {
		return err
	}
	return s.st.Projects.Create(ctx, p)
}

func (s *AdminService) UpdateProject(ctx context.Context, p *domain.Project) error {
	if err := s.prepareProject(p); err != nil {
		return err
	}
	return s.st.Projects.Update(ctx, p)
}

func (s *AdminService) DeleteProject(ctx context.Context, id int64) error {
	return s.st.Projects.Delete(ctx, id)
}

func (s *AdminService) SetProjectsFeatured(ctx context.Context, ids []int64, featured bool) (int64, error) {
	return s.st.Projects.SetFeatured(ctx, ids, featured)
}

func (s *AdminService) DuplicateProject(ctx context.Context, id int64) (*domain.Project, error) {
	return s.st.Projects.Duplicate(ctx, id)
}

func (s *AdminService) AddProjectImage(ctx context.Context, img *domain.ProjectImage) error {
	if err := domain.Validate(img); err != nil {
		return err
	}
	return s.st.Projects.AddImage(ctx, img)
}

func (s *AdminService) DeleteProjectImage(ctx context.Context, projectID, imageID int64) error {
	return s.st.Projects.DeleteImage(ctx, projectID, imageID)
}

// ---- Certificates ----

func (s *AdminService) ListCertificates(ctx context.Context) ([]domain.Certificate, error) {
	return s.st.Certificates.List(ctx)
}

func (s *AdminService) GetCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	return s.st.Certificates.Get(ctx, id)
}

func (s *AdminService) prepareCertificate(c *domain.Certificate) error {
	domain.NormalizeCertificate(c)
	if err := domain.Validate(c); err != nil {
		return err
	}
	return s.plainText(map[string]string{
		"certificate_name":     c.CertificateName,
		"issuing_organization": c.IssuingOrganization,
	})
}

func (s *AdminService) CreateCertificate(ctx context.Context, c *domain.Certificate) error {
	if err := s.prepareCertificate(c); err != nil {
		return err
	}
	return s.st.Certificates.Create(ctx, c)
}

func (s *AdminService) UpdateCertificate(ctx context.Context, c *domain.Certificate) error {
	if err := s.prepareCertificate(c); err != nil {
		return err
	}
	return s.st.Certificates.Update(ctx, c)
}

func (s *AdminService) DeleteCertificate(ctx context.Context, id int64) error {
	return s.st.Certificates.Delete(ctx, id)
}

func (s *AdminService) DuplicateCertificate(ctx context.Context, id int64) (*domain.Certificate, error) {
	return s.st.Certificates.Duplicate(ctx, id)
}

// ---- Experience ----

func (s *AdminService) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	return s.st.Experiences.List(ctx)
}

func (s *AdminService) GetExperience(ctx context.Context, id int64) (*domain.Experience, error) {
	return s.st.Experiences.Get(ctx, id)
}

func (s *AdminService) prepareExperience(e *domain.Experience) error {
	domain.NormalizeExperience(e)
	if err := domain.Validate(e); err != nil {
		return err
	}
	return s.plainText(map[string]string{"company": e.Company, "position": e.Position})
}

func (s *AdminService) CreateExperience(ctx context.Context, e *domain.Experience) error {
	if err := s.prepareExperience(e); err != nil {
		return err
	}
	return s.st.Experiences.Create(ctx, e)
}

func (s *AdminService) UpdateExperience(ctx context.Context, e *domain.Experience) error {
	if err := s.prepareExperience(e); err != nil {
		return err
	}
	return s.st.Experiences.Update(ctx, e)
}

func (s *AdminService) DeleteExperience(ctx context.Context, id int64) error {
	return s.st.Experiences.Delete(ctx, id)
}

func (s *AdminService) SetExperiencesCurrent(ctx context.Context, ids []int64, current bool) (int64, error) {
	return s.st.Experiences.SetCurrent(ctx, ids, current)
}

// ---- Education ----

func (s *AdminService) ListEducation(ctx context.Context) ([]domain.Education, error) {
	return s.st.Education.List(ctx)
}

func (s *AdminService) GetEducation(ctx context.Context, id int64) (*domain.Education, error) {
	return s.st.Education.Get(ctx, id)
}

func (s *AdminService) prepareEducation(e *domain.Education) error {
	domain.NormalizeEducation(e)
	if err := domain.Validate(e); err != nil {
		return err
	}
	return s.plainText(map[string]string{
		"institution":    e.Institution,
		"degree":         e.Degree,
		"field_of_study": e.FieldOfStudy,
	})
}

func (s *AdminService) CreateEducation(ctx context.Context, e *domain.Education) error {
	if err := s.prepareEducation(e); err != nil {
		return err
	}
	return s.st.Education.Create(ctx, e)
}

func (s *AdminService) UpdateEducation(ctx context.Context, e *domain.Education) error {
	if err := s.prepareEducation(e); err != nil {
		return err
	}
	return s.st.Education.Update(ctx, e)
}

func (s *AdminService) DeleteEducation(ctx context.Context, id int64) error {
	return s.st.Education.Delete(ctx, id)
}

func (s *AdminService) SetEducationCurrent(ctx context.Context, ids []int64, current bool) (int64, error) {
	return s.st.Education.SetCurrent(ctx, ids, current)
}

// ---- Messages ----

func (s *AdminService) ListMessages(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error) {
	return s.st.Messages.List(ctx, unreadOnly)
}

// GetMessage returns a message and marks it read.
func (s *AdminService) GetMessage(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	m, err := s.st.Messages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.Read {
		if _, err := s.st.Messages.SetRead(ctx, []int64{id}, true); err != nil {
			return nil, err
		}
		m.Read = true
	}
	return m, nil
}

func (s *AdminService) SetMessagesRead(ctx context.Context, ids []int64, read bool) (int64, error) {
	return s.st.Messages.SetRead(ctx, ids, read)
}

func (s *AdminService) DeleteMessage(ctx context.Context, id int64) error {
	return s.st.Messages.Delete(ctx, id)
}

// IsNotFound reports whether err means the addressed record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
