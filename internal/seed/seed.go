package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logger"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

//go:embed sample.yaml
var sample []byte

// Data is the seed file layout.
type Data struct {
	About        *domain.About        `yaml:"about"`
	Skills       []domain.Skill       `yaml:"skills"`
	Projects     []domain.Project     `yaml:"projects"`
	Certificates []domain.Certificate `yaml:"certificates"`
	Experiences  []domain.Experience  `yaml:"experiences"`
	Education    []domain.Education   `yaml:"education"`
}

// Result counts the records created by one run.
type Result struct {
	About        bool
	Skills       int
	Projects     int
	Images       int
	Certificates int
	Experiences  int
	Education    int
}

// Sample returns the embedded sample data set.
func Sample() (*Data, error) {
	return Parse(bytes.NewReader(sample))
}

// Parse decodes seed YAML. Unknown keys are rejected.
func Parse(r io.Reader) (*Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &d, nil
}

// Seeder writes seed data through the admin service so every record passes
// the same normalization and validation as API writes.
type Seeder struct {
	admin *service.AdminService
	clear func(ctx context.Context) error
	log   *logger.Logger
}

// NewSeeder creates a new Seeder. clear may be nil when --clear is unsupported.
func NewSeeder(admin *service.AdminService, clear func(ctx context.Context) error, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.NewNop()
	}
	return &Seeder{admin: admin, clear: clear, log: log.With("component", "seed")}
}

// Run loads d. With clearFirst, existing content is removed before loading.
// It stops at the first record that fails validation.
func (s *Seeder) Run(ctx context.Context, d *Data, clearFirst bool) (*Result, error) {
	if clearFirst {
		if s.clear == nil {
			return nil, fmt.Errorf("clearing is not supported")
		}
		if err := s.clear(ctx); err != nil {
			return nil, err
		}
		s.log.Info("existing content cleared")
	}

	res := &Result{}
	if d.About != nil {
		if err := s.admin.SaveAbout(ctx, d.About); err != nil {
			return res, fmt.Errorf("about: %w", err)
		}
		res.About = true
	}

	for i := range d.Skills {
		if err := s.admin.CreateSkill(ctx, &d.Skills[i]); err != nil {
			return res, fmt.Errorf("skill %q: %w", d.Skills[i].Name, err)
		}
		res.Skills++
	}

	for i := range d.Projects {
		p := &d.Projects[i]
		images := p.Images
		p.Images = nil
		if err := s.admin.CreateProject(ctx, p); err != nil {
			return res, fmt.Errorf("project %q: %w", p.Title, err)
		}
		res.Projects++
		for j := range images {
			images[j].ProjectID = p.ID
			if err := s.admin.AddProjectImage(ctx, &images[j]); err != nil {
				return res, fmt.Errorf("project %q image %d: %w", p.Title, j, err)
			}
			res.Images++
		}
		p.Images = images
	}

	for i := range d.Certificates {
		if err := s.admin.CreateCertificate(ctx, &d.Certificates[i]); err != nil {
			return res, fmt.Errorf("certificate %q: %w", d.Certificates[i].CertificateName, err)
		}
		res.Certificates++
	}

	for i := range d.Experiences {
		if err := s.admin.CreateExperience(ctx, &d.Experiences[i]); err != nil {
			return res, fmt.Errorf("experience %q: %w", d.Experiences[i].Company, err)
		}
		res.Experiences++
	}

	for i := range d.Education {
		if err := s.admin.CreateEducation(ctx, &d.Education[i]); err != nil {
			return res, fmt.Errorf("education %q: %w", d.Education[i].Institution, err)
		}
		res.Education++
	}

	s.log.Info("seed complete",
		"skills", res.Skills,
		"projects", res.Projects,
		"certificates", res.Certificates,
		"experiences", res.Experiences,
		"education", res.Education,
	)
	return res, nil
}
