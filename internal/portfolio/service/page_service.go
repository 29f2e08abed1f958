package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/aggregator"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

type AboutReader interface {
	Get(ctx context.Context) (*domain.About, error)
}

type SkillReader interface {
	List(ctx context.Context) ([]domain.Skill, error)
}

type ProjectReader interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	ListImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error)
}

type CertificateReader interface {
	List(ctx context.Context) ([]domain.Certificate, error)
}

type ExperienceReader interface {
	List(ctx context.Context) ([]domain.Experience, error)
}

type EducationReader interface {
	List(ctx context.Context) ([]domain.Education, error)
}

// Readers groups the read side of the entity store.
type Readers struct {
	About        AboutReader
	Skills       SkillReader
	Projects     ProjectReader
	Certificates CertificateReader
	Experiences  ExperienceReader
	Education    EducationReader
}

// PageService loads a snapshot of the store per request and hands it to the
// aggregator. Nothing is cached between requests.
type PageService struct {
	r   Readers
	now func() time.Time
}

// NewPageService creates a new PageService
func NewPageService(r Readers) *PageService {
	return &PageService{r: r, now: time.Now}
}

// WithClock overrides the clock used for "today".
func (s *PageService) WithClock(now func() time.Time) *PageService {
	s.now = now
	return s
}

func (s *PageService) today() domain.Date {
	return domain.DateOf(s.now().In(time.Local))
}

// loadAbout returns nil when no profile exists yet; pages render without it.
func (s *PageService) loadAbout(ctx context.Context) (*domain.About, error) {
	about, err := s.r.About.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return about, err
}

func (s *PageService) Home(ctx context.Context) (*domain.HomeView, error) {
	var (
		about        *domain.About
		projects     []domain.Project
		skills       []domain.Skill
		certificates []domain.Certificate
		experiences  []domain.Experience
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { projects, err = s.r.Projects.List(gctx); return })
	g.Go(func() (err error) { skills, err = s.r.Skills.List(gctx); return })
	g.Go(func() (err error) { certificates, err = s.r.Certificates.List(gctx); return })
	g.Go(func() (err error) { experiences, err = s.r.Experiences.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := domain.Counts{
		Projects:       len(projects),
		Skills:         len(skills),
		Certifications: len(certificates),
		Experience:     len(experiences),
	}
	return &domain.HomeView{
		About:            about,
		Stats:            aggregator.HomepageStats(about, counts),
		FeaturedProjects: aggregator.FeaturedProjects(projects, aggregator.HomeFeaturedCount),
		Skills:           aggregator.TopSkills(skills, aggregator.HomeSkillCount),
	}, nil
}

func (s *PageService) About(ctx context.Context) (*domain.AboutView, error) {
	var (
		about        *domain.About
		experiences  []domain.Experience
		education    []domain.Education
		skills       []domain.Skill
		certificates []domain.Certificate
		projects     []domain.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { experiences, err = s.r.Experiences.List(gctx); return })
	g.Go(func() (err error) { education, err = s.r.Education.List(gctx); return })
	g.Go(func() (err error) { skills, err = s.r.Skills.List(gctx); return })
	g.Go(func() (err error) { certificates, err = s.r.Certificates.List(gctx); return })
	g.Go(func() (err error) { projects, err = s.r.Projects.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := s.today()
	recent := aggregator.RecentCertificates(certificates, aggregator.AboutCertificates)
	recentStatus := make([]domain.CertificateStatus, 0, len(recent))
	for _, c := range recent {
		recentStatus = append(recentStatus, aggregator.ClassifyCertificate(c, today))
	}

	return &domain.AboutView{
		About:              about,
		Experiences:        aggregator.SortExperiences(experiences),
		Education:          aggregator.SortEducation(education),
		Skills:             skills,
		RecentCertificates: recentStatus,
		FeaturedProjects:   aggregator.FeaturedProjects(projects, aggregator.AboutFeaturedCount),
		Today:              today,
	}, nil
}

func (s *PageService) Skills(ctx context.Context) (*domain.SkillsView, error) {
	var (
		about  *domain.About
		skills []domain.Skill
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { skills, err = s.r.Skills.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.SkillsView{About: about, Groups: aggregator.SkillsByCategory(skills)}, nil
}

// Projects filters and sorts the project list. Unknown filter or sort values
// fall back to "all" and "recent".
func (s *PageService) Projects(ctx context.Context, filter, sortBy string) (*domain.ProjectsView, error) {
	var (
		about    *domain.About
		projects []domain.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { projects, err = s.r.Projects.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.ProjectsView{
		About:    about,
		Projects: aggregator.FilterAndSortProjects(projects, filter, sortBy),
		Filter:   aggregator.NormalizeFilter(filter),
		Sort:     aggregator.NormalizeSort(sortBy),
	}, nil
}

// ProjectDetail returns domain.ErrNotFound for unknown ids.
func (s *PageService) ProjectDetail(ctx context.Context, id int64) (*domain.ProjectDetailView, error) {
	project, err := s.r.Projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		about  *domain.About
		images []domain.ProjectImage
		all    []domain.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { images, err = s.r.Projects.ListImages(gctx, id); return })
	g.Go(func() (err error) { all, err = s.r.Projects.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	project.Images = images
	return &domain.ProjectDetailView{
		About:        about,
		Project:      *project,
		Images:       images,
		Technologies: project.TechnologiesList(),
		Achievements: project.AchievementsList(),
		Related:      aggregator.RelatedProjects(*project, all, aggregator.RelatedProjectsCount),
	}, nil
}

func (s *PageService) Certificates(ctx context.Context) (*domain.CertificatesView, error) {
	var (
		about        *domain.About
		certificates []domain.Certificate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { about, err = s.loadAbout(gctx); return })
	g.Go(func() (err error) { certificates, err = s.r.Certificates.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	today := s.today()
	statuses, counts := aggregator.ClassifyCertificates(aggregator.SortCertificatesByIssue(certificates), today)
	return &domain.CertificatesView{
		About:        about,
		Certificates: statuses,
		Counts:       counts,
		Today:        today,
	}, nil
}

func (s *PageService) Contact(ctx context.Context, flash *domain.Flash) (*domain.ContactView, error) {
	about, err := s.loadAbout(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ContactView{About: about, Flash: flash}, nil
}
