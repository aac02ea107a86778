package response

import (
	"fmt"
	"time"

	"shop-portal/internal/data/entity"
)

type NewsResponse struct {
	ID          int64      `json:"id"`
	Title       *string    `json:"title"`
	Text        *string    `json:"text,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewsToResponse(news *entity.News) NewsResponse {
	return NewsResponse{
		ID:          news.ID,
		Title:       news.Title,
		Text:        news.Text,
		Description: news.Description,
		IsPublished: news.IsPublished,
		PublishedAt: news.PublishedAt,
		CreatedAt:   news.CreatedAt,
	}
}

func NewsListToResponse(items []*entity.News) []NewsResponse {
	responses := make([]NewsResponse, len(items))
	for i, item := range items {
		responses[i] = NewsToResponse(item)
	}
	return responses
}

// NewsFeedItem is the syndication shape of a published item: headline,
// summary and a relative link to the detail page.
type NewsFeedItem struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
}

func NewsToFeedItem(news *entity.News) NewsFeedItem {
	return NewsFeedItem{
		Title:       news.Title,
		Description: news.Description,
		Link:        fmt.Sprintf("/news/%d", news.ID),
	}
}

func NewsListToFeed(items []*entity.News) []NewsFeedItem {
	feed := make([]NewsFeedItem, len(items))
	for i, item := range items {
		feed[i] = NewsToFeedItem(item)
	}
	return feed
}
