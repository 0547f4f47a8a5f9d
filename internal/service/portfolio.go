package service

import (
	"fmt"
	"strings"

	"github.com/arundev/portfolio-api/internal/catalog"
	"github.com/arundev/portfolio-api/internal/dto"
	"github.com/arundev/portfolio-api/internal/entity"
)

// PortfolioService answers read queries over the catalog and owns the
// generic filter rules: exact match on a single field, case-insensitive
// for strings, or free-text search across projects and skills.
type PortfolioService struct {
	catalog *catalog.Catalog
}

// NewPortfolioService wires the service to a catalog.
func NewPortfolioService(c *catalog.Catalog) *PortfolioService {
	return &PortfolioService{catalog: c}
}

// ListProjects returns all projects, or only those matching the featured
// flag when one is given.
func (s *PortfolioService) ListProjects(featured *bool) []entity.Project {
	projects := s.catalog.Projects()
	if featured == nil {
		return projects
	}
	filtered := make([]entity.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured == *featured {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Project returns a single project by id.
func (s *PortfolioService) Project(id string) (entity.Project, error) {
	return s.catalog.ProjectByID(id)
}

// CreateProject appends a new in-memory project and returns it.
func (s *PortfolioService) CreateProject(req dto.CreateProjectRequest) entity.Project {
	return s.catalog.CreateProject(entity.Project{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Tech:        req.Tech,
		GitHub:      req.GitHub,
		Demo:        req.Demo,
		Featured:    req.Featured,
	})
}

// ListSkills returns all skills, or only those whose category matches
// case-insensitively when one is given.
func (s *PortfolioService) ListSkills(category string) []entity.Skill {
	skills := s.catalog.Skills()
	if category == "" {
		return skills
	}
	filtered := make([]entity.Skill, 0, len(skills))
	for _, sk := range skills {
		if strings.EqualFold(sk.Category, category) {
			filtered = append(filtered, sk)
		}
	}
	return filtered
}

// SkillCategories returns the distinct categories in first-seen order.
func (s *PortfolioService) SkillCategories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, sk := range s.catalog.Skills() {
		if _, ok := seen[sk.Category]; ok {
			continue
		}
		seen[sk.Category] = struct{}{}
		categories = append(categories, sk.Category)
	}
	return categories
}

// ListExperiences returns all experiences, or only those whose type matches
// case-insensitively when one is given.
func (s *PortfolioService) ListExperiences(typ string) []entity.Experience {
	experiences := s.catalog.Experiences()
	if typ == "" {
		return experiences
	}
	filtered := make([]entity.Experience, 0, len(experiences))
	for _, e := range experiences {
		if strings.EqualFold(e.Type, typ) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Experience returns a single experience by id.
func (s *PortfolioService) Experience(id string) (entity.Experience, error) {
	return s.catalog.ExperienceByID(id)
}

// Services returns the offered services.
func (s *PortfolioService) Services() []entity.Service {
	return s.catalog.Services()
}

// FAQ returns the question/answer list.
func (s *PortfolioService) FAQ() []entity.FAQ {
	return s.catalog.FAQ()
}

// PersonalInfo returns the owner contact card.
func (s *PortfolioService) PersonalInfo() entity.PersonalInfo {
	return s.catalog.PersonalInfo()
}

// Stats returns the headline numbers.
func (s *PortfolioService) Stats() entity.Stats {
	return s.catalog.Stats()
}

// Search matches the query case-insensitively as a substring of project
// titles, descriptions and tech tags, and of skill names. Projects come
// first, then skills, both in catalog order; there is no ranking. An empty
// or whitespace-only query yields an empty result set, not an error.
func (s *PortfolioService) Search(q string) dto.SearchResponse {
	results := make([]dto.SearchResult, 0)
	if strings.TrimSpace(q) == "" {
		return dto.SearchResponse{Query: q, Results: results}
	}
	query := strings.ToLower(q)

	for _, p := range s.catalog.Projects() {
		if projectMatches(p, query) {
			results = append(results, dto.SearchResult{
				Type:        "project",
				Title:       p.Title,
				Description: p.Description,
				URL:         "/api/projects/" + p.ID,
			})
		}
	}

	for _, sk := range s.catalog.Skills() {
		if strings.Contains(strings.ToLower(sk.Name), query) {
			results = append(results, dto.SearchResult{
				Type:        "skill",
				Title:       sk.Name,
				Description: fmt.Sprintf("%s - %d%%", sk.Category, sk.Level),
				URL:         "/api/skills",
			})
		}
	}

	return dto.SearchResponse{Query: q, Results: results}
}

func projectMatches(p entity.Project, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}
	for _, tech := range p.Tech {
		if strings.Contains(strings.ToLower(tech), query) {
			return true
		}
	}
	return false
}
