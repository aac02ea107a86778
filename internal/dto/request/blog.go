package request

type AuthorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Bio  string `json:"bio,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=40"`
}

type TagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

type ArticleRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=200"`
	Content    string  `json:"content,omitempty"`
	PubDate    *string `json:"pub_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	AuthorID   int64   `json:"author" validate:"required,gt=0"`
	CategoryID int64   `json:"category" validate:"required,gt=0"`
	TagIDs     []int64 `json:"tags,omitempty" validate:"dive,gt=0"`
}

type ArticleUpdateRequest struct {
	Title      *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content    *string  `json:"content,omitempty"`
	PubDate    *string  `json:"pub_date,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	AuthorID   *int64   `json:"author,omitempty" validate:"omitempty,gt=0"`
	CategoryID *int64   `json:"category,omitempty" validate:"omitempty,gt=0"`
	TagIDs     *[]int64 `json:"tags,omitempty" validate:"omitempty,dive,gt=0"`
}
