package service

import (
	"context"
	"errors"
	"sync"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/notify"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// memStore is an in-memory entity store implementing every store interface
// the services need.
type memStore struct {
	mu           sync.Mutex
	about        *domain.About
	skills       []domain.Skill
	projects     []domain.Project
	images       []domain.ProjectImage
	certificates []domain.Certificate
	experiences  []domain.Experience
	education    []domain.Education
	messages     []domain.ContactMessage
	nextID       int64
	createErr    error
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

type aboutStore struct{ *memStore }

func (s aboutStore) Get(context.Context) (*domain.About, error) {
	if s.about == nil {
		return nil, domain.ErrNotFound
	}
	a := *s.about
	return &a, nil
}

func (s aboutStore) Exists(context.Context) (bool, error) { return s.about != nil, nil }

func (s aboutStore) Create(_ context.Context, a *domain.About) error {
	if s.about != nil {
		return domain.ErrAboutAlreadyExists
	}
	cp := *a
	s.about = &cp
	return nil
}

func (s aboutStore) Upsert(_ context.Context, a *domain.About) error {
	cp := *a
	s.about = &cp
	return nil
}

type skillStore struct{ *memStore }

func (s skillStore) List(context.Context) ([]domain.Skill, error) {
	return append([]domain.Skill{}, s.skills...), nil
}

func (s skillStore) Get(_ context.Context, id int64) (*domain.Skill, error) {
	for _, sk := range s.skills {
		if sk.ID == id {
			return &sk, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s skillStore) Count(context.Context) (int, error) { return len(s.skills), nil }

func (s skillStore) Create(_ context.Context, sk *domain.Skill) error {
	sk.ID = s.id()
	s.skills = append(s.skills, *sk)
	return nil
}

func (s skillStore) Update(_ context.Context, sk *domain.Skill) error {
	for i := range s.skills {
		if s.skills[i].ID == sk.ID {
			s.skills[i] = *sk
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s skillStore) Delete(_ context.Context, id int64) error {
	for i := range s.skills {
		if s.skills[i].ID == id {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type projectStore struct{ *memStore }

func (s projectStore) List(context.Context) ([]domain.Project, error) {
	return append([]domain.Project{}, s.projects...), nil
}

func (s projectStore) Get(_ context.Context, id int64) (*domain.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s projectStore) Count(context.Context) (int, error) { return len(s.projects), nil }

func (s projectStore) Create(_ context.Context, p *domain.Project) error {
	p.ID = s.id()
	s.projects = append(s.projects, *p)
	return nil
}

func (s projectStore) Update(_ context.Context, p *domain.Project) error {
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = *p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s projectStore) Delete(_ context.Context, id int64) error {
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s projectStore) SetFeatured(_ context.Context, ids []int64, featured bool) (int64, error) {
	var n int64
	for i := range s.projects {
		for _, id := range ids {
			if s.projects[i].ID == id {
				s.projects[i].Featured = featured
				n++
			}
		}
	}
	return n, nil
}

func (s projectStore) Duplicate(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *p
	cp.Title += " (Copy)"
	cp.Featured = false
	if err := s.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s projectStore) ListImages(_ context.Context, projectID int64) ([]domain.ProjectImage, error) {
	out := []domain.ProjectImage{}
	for _, img := range s.images {
		if img.ProjectID == projectID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (s projectStore) AddImage(ctx context.Context, img *domain.ProjectImage) error {
	if _, err := s.Get(ctx, img.ProjectID); err != nil {
		return err
	}
	img.ID = s.id()
	s.images = append(s.images, *img)
	return nil
}

func (s projectStore) DeleteImage(_ context.Context, projectID, imageID int64) error {
	for i, img := range s.images {
		if img.ID == imageID && img.ProjectID == projectID {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type certificateStore struct{ *memStore }

func (s certificateStore) List(context.Context) ([]domain.Certificate, error) {
	return append([]domain.Certificate{}, s.certificates...), nil
}

func (s certificateStore) Get(_ context.Context, id int64) (*domain.Certificate, error) {
	for _, c := range s.certificates {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s certificateStore) Count(context.Context) (int, error) { return len(s.certificates), nil }

func (s certificateStore) Create(_ context.Context, c *domain.Certificate) error {
	c.ID = s.id()
	s.certificates = append(s.certificates, *c)
	return nil
}

func (s certificateStore) Update(_ context.Context, c *domain.Certificate) error {
	for i := range s.certificates {
		if s.certificates[i].ID == c.ID {
			s.certificates[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s certificateStore) Delete(_ context.Context, id int64) error {
	for i := range s.certificates {
		if s.certificates[i].ID == id {
			s.certificates = append(s.certificates[:i], s.certificates[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s certificateStore) Duplicate(ctx context.Context, id int64) (*domain.Certificate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cp := *c
	cp.CertificateName += " (Copy)"
	if err := s.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

type experienceStore struct{ *memStore }

func (s experienceStore) List(context.Context) ([]domain.Experience, error) {
	return append([]domain.Experience{}, s.experiences...), nil
}

func (s experienceStore) Get(_ context.Context, id int64) (*domain.Experience, error) {
	for _, e := range s.experiences {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s experienceStore) Count(context.Context) (int, error) { return len(s.experiences), nil }

func (s experienceStore) Create(_ context.Context, e *domain.Experience) error {
	e.ID = s.id()
	s.experiences = append(s.experiences, *e)
	return nil
}

func (s experienceStore) Update(_ context.Context, e *domain.Experience) error {
	for i := range s.experiences {
		if s.experiences[i].ID == e.ID {
			s.experiences[i] = *e
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s experienceStore) Delete(context.Context, int64) error { return nil }

func (s experienceStore) SetCurrent(_ context.Context, ids []int64, current bool) (int64, error) {
	var n int64
	for i := range s.experiences {
		for _, id := range ids {
			if s.experiences[i].ID == id {
				s.experiences[i].Current = current
				if current {
					s.experiences[i].EndDate = nil
				}
				n++
			}
		}
	}
	return n, nil
}

type educationStore struct{ *memStore }

func (s educationStore) List(context.Context) ([]domain.Education, error) {
	return append([]domain.Education{}, s.education...), nil
}

func (s educationStore) Get(_ context.Context, id int64) (*domain.Education, error) {
	for _, e := range s.education {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s educationStore) Create(_ context.Context, e *domain.Education) error {
	e.ID = s.id()
	s.education = append(s.education, *e)
	return nil
}

func (s educationStore) Update(context.Context, *domain.Education) error { return nil }
func (s educationStore) Delete(context.Context, int64) error             { return nil }

func (s educationStore) SetCurrent(context.Context, []int64, bool) (int64, error) { return 0, nil }

type messageStore struct{ *memStore }

func (s messageStore) Create(_ context.Context, m *domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	m.ID = s.id()
	m.Read = false
	s.messages = append(s.messages, *m)
	return nil
}

func (s messageStore) List(_ context.Context, unreadOnly bool) ([]domain.ContactMessage, error) {
	out := []domain.ContactMessage{}
	for _, m := range s.messages {
		if !unreadOnly || !m.Read {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s messageStore) Get(_ context.Context, id int64) (*domain.ContactMessage, error) {
	for _, m := range s.messages {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s messageStore) SetRead(_ context.Context, ids []int64, read bool) (int64, error) {
	var n int64
	for i := range s.messages {
		for _, id := range ids {
			if s.messages[i].ID == id {
				s.messages[i].Read = read
				n++
			}
		}
	}
	return n, nil
}

func (s messageStore) CountUnread(context.Context) (int, error) {
	n := 0
	for _, m := range s.messages {
		if !m.Read {
			n++
		}
	}
	return n, nil
}

func (s messageStore) Delete(context.Context, int64) error { return nil }

func (m *memStore) stores() Stores {
	return Stores{
		About:        aboutStore{m},
		Skills:       skillStore{m},
		Projects:     projectStore{m},
		Certificates: certificateStore{m},
		Experiences:  experienceStore{m},
		Education:    educationStore{m},
		Messages:     messageStore{m},
	}
}

// recordingNotifier counts Send calls and optionally fails them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Message
	err  error
}

func (n *recordingNotifier) Name() string { return "recording" }

func (n *recordingNotifier) Send(_ context.Context, msg notify.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return n.err
}

var errBoom = errors.New("boom")
