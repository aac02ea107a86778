package request

type NewsRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=56"`
	Text        *string `json:"text,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished bool    `json:"is_published"`
}

type NewsUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=56"`
	Text        *string `json:"text,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublished *bool   `json:"is_published,omitempty"`
}
