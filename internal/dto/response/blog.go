package response

import (
	"time"

	"shop-portal/internal/data/entity"
)

type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArticleResponse is the list shape; content is deferred on list queries
// and only present on the detail shape.
type ArticleResponse struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	PubDate  time.Time `json:"pub_date"`
	Author   string    `json:"author"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags"`
}

type ArticleDetailResponse struct {
	ArticleResponse
	Content string `json:"content"`
}

func AuthorToResponse(author *entity.Author) AuthorResponse {
	return AuthorResponse{ID: author.ID, Name: author.Name, Bio: author.Bio}
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func TagToResponse(tag *entity.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func ArticleToResponse(article *entity.Article) ArticleResponse {
	tags := article.TagNames
	if tags == nil {
		tags = []string{}
	}

	return ArticleResponse{
		ID:       article.ID,
		Title:    article.Title,
		PubDate:  article.PubDate,
		Author:   article.AuthorName,
		Category: article.CategoryName,
		Tags:     tags,
	}
}

func ArticleToDetailResponse(article *entity.Article) ArticleDetailResponse {
	return ArticleDetailResponse{
		ArticleResponse: ArticleToResponse(article),
		Content:         article.Content,
	}
}

func ArticlesToResponse(articles []*entity.Article) []ArticleResponse {
	responses := make([]ArticleResponse, len(articles))
	for i, article := range articles {
		responses[i] = ArticleToResponse(article)
	}
	return responses
}
