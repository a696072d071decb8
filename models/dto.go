package models

type CreateToolRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	Tags           []string `json:"tags"`
	Version        string   `json:"version"`
	Author         string   `json:"author"`
	Repository     string   `json:"repository,omitempty"`
	Documentation  string   `json:"documentation,omitempty"`
	InstallCommand string   `json:"install_command,omitempty"`
	UsageExamples  []string `json:"usage_examples,omitempty"`
}

// UpdateToolRequest carries a partial tool; nil fields are left untouched.
type UpdateToolRequest struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Category       *string   `json:"category,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	Version        *string   `json:"version,omitempty"`
	Author         *string   `json:"author,omitempty"`
	Repository     *string   `json:"repository,omitempty"`
	Documentation  *string   `json:"documentation,omitempty"`
	InstallCommand *string   `json:"install_command,omitempty"`
	UsageExamples  *[]string `json:"usage_examples,omitempty"`
	Downloads      *int64    `json:"downloads,omitempty" validate:"omitempty,gte=0"`
	Rating         *float64  `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type CreateBlogPostRequest struct {
	Title         string   `json:"title" validate:"required,max=255"`
	Content       string   `json:"content" validate:"required"`
	Author        string   `json:"author" validate:"required"`
	Excerpt       string   `json:"excerpt,omitempty"`
	Tags          []string `json:"tags"`
	Published     bool     `json:"published"`
	FeaturedImage string   `json:"featured_image,omitempty"`
}

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type UpdateContactStatusRequest struct {
	Status ContactStatus `json:"status"`
}

// ContactReceipt is returned to the sender after a successful submission.
type ContactReceipt struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// List query parameters. Limit and offset stay strings so that parsing can
// fall back to defaults instead of rejecting the request.

type ToolListParams struct {
	Q        string   `form:"q"`
	Category string   `form:"category"`
	Tags     []string `form:"tags"`
	Sort     string   `form:"sort"`
	Limit    string   `form:"limit"`
	Offset   string   `form:"offset"`
}

type BlogListParams struct {
	Published string `form:"published"`
	Tag       string `form:"tag"`
	Limit     string `form:"limit"`
	Offset    string `form:"offset"`
}

type ContactListParams struct {
	Status string `form:"status"`
	Limit  string `form:"limit"`
	Offset string `form:"offset"`
}

type DocumentationListParams struct {
	Category string `form:"category"`
	Limit    string `form:"limit"`
	Offset   string `form:"offset"`
}

type SendPlaygroundMessageRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}
