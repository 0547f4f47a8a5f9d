package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arundev/portfolio-api/internal/entity"
)

// ErrNotFound indicates no record matches the requested id.
var ErrNotFound = errors.New("record not found")

// Catalog owns the portfolio collections for the process lifetime. All
// collections are seeded at construction and served in insertion order.
// Project creation is the only write path; it is in-memory only and lost
// on restart. A RWMutex keeps concurrent creates from racing with reads.
type Catalog struct {
	mu          sync.RWMutex
	projects    []entity.Project
	skills      []entity.Skill
	experiences []entity.Experience
	services    []entity.Service
	faq         []entity.FAQ
	personal    entity.PersonalInfo
	stats       entity.Stats
}

// New builds a catalog seeded with the fixture data.
func New() *Catalog {
	now := time.Now()
	return &Catalog{
		projects:    seedProjects(now),
		skills:      seedSkills(),
		experiences: seedExperiences(),
		services:    seedServices(),
		faq:         seedFAQ(),
		personal:    seedPersonalInfo(),
		stats:       seedStats(),
	}
}

// Projects returns the project list in catalog order.
func (c *Catalog) Projects() []entity.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// ProjectByID returns the matching project or ErrNotFound.
func (c *Catalog) ProjectByID(id string) (entity.Project, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Project{}, ErrNotFound
}

// CreateProject appends a new project with a generated id and capture
// timestamp. The provided ID and CreatedAt are ignored.
func (c *Catalog) CreateProject(input entity.Project) entity.Project {
	input.ID = uuid.NewString()
	input.CreatedAt = time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.projects = append(c.projects, input)
	return input
}

// Skills returns the skill list in catalog order.
func (c *Catalog) Skills() []entity.Skill {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Skill, len(c.skills))
	copy(out, c.skills)
	return out
}

// Experiences returns the experience list in catalog order.
func (c *Catalog) Experiences() []entity.Experience {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Experience, len(c.experiences))
	copy(out, c.experiences)
	return out
}

// ExperienceByID returns the matching experience or ErrNotFound.
func (c *Catalog) ExperienceByID(id string) (entity.Experience, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, e := range c.experiences {
		if e.ID == id {
			return e, nil
		}
	}
	return entity.Experience{}, ErrNotFound
}

// Services returns the service list.
func (c *Catalog) Services() []entity.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.Service, len(c.services))
	copy(out, c.services)
	return out
}

// FAQ returns the question/answer list.
func (c *Catalog) FAQ() []entity.FAQ {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entity.FAQ, len(c.faq))
	copy(out, c.faq)
	return out
}

// PersonalInfo returns the owner contact card.
func (c *Catalog) PersonalInfo() entity.PersonalInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.personal
}

// Stats returns the headline portfolio numbers.
func (c *Catalog) Stats() entity.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}
