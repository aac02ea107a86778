package entity

import "time"

type News struct {
	BaseSimple
	Title       *string    `db:"title"`
	Text        *string    `db:"text"`
	Description *string    `db:"description"`
	IsPublished bool       `db:"is_published"`
	PublishedAt *time.Time `db:"published_at"`
}
