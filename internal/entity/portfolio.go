package entity

import "time"

// Project represents a portfolio project entry.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech"`
	GitHub      string    `json:"github"`
	Demo        string    `json:"demo"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
}

// Skill represents a single technology with a proficiency level in percent.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category"`
}

// Experience represents a work or learning engagement.
type Experience struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Achievements []string `json:"achievements"`
}

// Service describes an offered service with its feature bullets.
type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PersonalInfo holds the site owner's contact card.
type PersonalInfo struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Bio      string `json:"bio"`
}

// Stats summarises headline portfolio numbers, kept as display strings.
type Stats struct {
	YearsExperience    string `json:"years_experience"`
	ProjectsCompleted  string `json:"projects_completed"`
	Technologies       string `json:"technologies"`
	ClientSatisfaction string `json:"client_satisfaction"`
}
