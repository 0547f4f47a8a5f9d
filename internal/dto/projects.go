package dto

// CreateProjectRequest carries the fields for a new project entry.
type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	GitHub      string   `json:"github"`
	Demo        string   `json:"demo"`
	Featured    bool     `json:"featured"`
}
