// Package dto carries request payloads for freelance projects.
package dto

// FreelanceInput is the create payload.
type FreelanceInput struct {
	Title         string   `json:"title"`
	ClientName    string   `json:"clientName"`
	ClientCompany string   `json:"clientCompany"`
	ProjectURL    string   `json:"projectUrl"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Technologies  []string `json:"technologies"`
	Testimonial   string   `json:"testimonial"`
	ClientRating  int      `json:"clientRating"`
	Status        string   `json:"status"`
	Featured      bool     `json:"featured"`
}

// FreelanceUpdate is the partial update payload; nil fields are left untouched.
type FreelanceUpdate struct {
	Title         *string   `json:"title"`
	ClientName    *string   `json:"clientName"`
	ClientCompany *string   `json:"clientCompany"`
	ProjectURL    *string   `json:"projectUrl"`
	Description   *string   `json:"description"`
	Images        *[]string `json:"images"`
	Technologies  *[]string `json:"technologies"`
	Testimonial   *string   `json:"testimonial"`
	ClientRating  *int      `json:"clientRating"`
	Status        *string   `json:"status"`
	Featured      *bool     `json:"featured"`
}
