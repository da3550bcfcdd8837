// Package dto carries request payloads for portfolio projects.
package dto

// ProjectInput is the create payload.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"githubLink"`
	Link         string   `json:"link"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
	Priority     *int64   `json:"priority"`
}

// ProjectUpdate is the partial update payload; nil fields are left untouched.
type ProjectUpdate struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubLink   *string   `json:"githubLink"`
	Link         *string   `json:"link"`
	Image        *string   `json:"image"`
	Featured     *bool     `json:"featured"`
	Priority     *int64    `json:"priority"`
	Order        *int64    `json:"order"`
}

// ReorderRequest carries the new drag-and-drop ordering of project ids.
type ReorderRequest struct {
	Order []string `json:"order"`
}
