package bootstrap

import (
	"database/sql"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/service"
)

// NewStores builds the PostgreSQL-backed entity stores.
func NewStores(db *sql.DB) service.Stores {
	return service.Stores{
		About:        repository.NewAboutRepository(db),
		Skills:       repository.NewSkillRepository(db),
		Projects:     repository.NewProjectRepository(db),
		Certificates: repository.NewCertificateRepository(db),
		Experiences:  repository.NewExperienceRepository(db),
		Education:    repository.NewEducationRepository(db),
		Messages:     repository.NewContactRepository(db),
	}
}
