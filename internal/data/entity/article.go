package entity

import "time"

// Article belongs to an Author and a Category and carries a tag set through
// article_tags. Content is deferred on list queries, so it may be empty on
// entities loaded for listing.
type Article struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	PubDate    time.Time `db:"pub_date"`
	AuthorID   int64     `db:"author_id"`
	CategoryID int64     `db:"category_id"`

	AuthorName   string   `db:"-"`
	CategoryName string   `db:"-"`
	TagNames     []string `db:"-"`
}
