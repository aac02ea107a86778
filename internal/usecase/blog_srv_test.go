package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/internal/dto/request"

	"go.uber.org/zap"
)

type fakeArticleRepo struct {
	articles map[int64]*entity.Article
	tags     map[int64][]int64
	nextID   int64
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[int64]*entity.Article{}, tags: map[int64][]int64{}}
}

func (f *fakeArticleRepo) Create(_ context.Context, article *entity.Article, tagIDs []int64) error {
	f.nextID++
	article.ID = f.nextID
	f.articles[article.ID] = article
	f.tags[article.ID] = tagIDs
	return nil
}

func (f *fakeArticleRepo) FindByID(_ context.Context, id int64) (*entity.Article, error) {
	return f.articles[id], nil
}

func (f *fakeArticleRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, len(f.articles))
	for _, article := range f.articles {
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ID < articles[j].ID })
	if offset >= len(articles) {
		return nil, nil
	}
	end := offset + limit
	if end > len(articles) {
		end = len(articles)
	}
	return articles[offset:end], nil
}

func (f *fakeArticleRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.articles)), nil
}

func (f *fakeArticleRepo) Update(_ context.Context, article *entity.Article, tagIDs []int64) error {
	f.articles[article.ID] = article
	f.tags[article.ID] = tagIDs
	return nil
}

func (f *fakeArticleRepo) Delete(_ context.Context, id int64) error {
	delete(f.articles, id)
	delete(f.tags, id)
	return nil
}

var _ repository.ArticleRepository = (*fakeArticleRepo)(nil)

type fakeAuthorRepo struct {
	authors map[int64]*entity.Author
	nextID  int64
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: map[int64]*entity.Author{}}
}

func (f *fakeAuthorRepo) Create(_ context.Context, author *entity.Author) error {
	f.nextID++
	author.ID = f.nextID
	f.authors[author.ID] = author
	return nil
}

func (f *fakeAuthorRepo) FindByID(_ context.Context, id int64) (*entity.Author, error) {
	return f.authors[id], nil
}

func (f *fakeAuthorRepo) FindAll(_ context.Context) ([]*entity.Author, error) {
	authors := make([]*entity.Author, 0, len(f.authors))
	for _, author := range f.authors {
		authors = append(authors, author)
	}
	return authors, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, author *entity.Author) error {
	f.authors[author.ID] = author
	return nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id int64) error {
	delete(f.authors, id)
	return nil
}

var _ repository.AuthorRepository = (*fakeAuthorRepo)(nil)

type fakeCategoryRepo struct {
	categories map[int64]*entity.Category
	nextID     int64
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[int64]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.nextID++
	category.ID = f.nextID
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(f.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

type fakeTagRepo struct {
	tags   map[int64]*entity.Tag
	nextID int64
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: map[int64]*entity.Tag{}}
}

func (f *fakeTagRepo) Create(_ context.Context, tag *entity.Tag) error {
	f.nextID++
	tag.ID = f.nextID
	f.tags[tag.ID] = tag
	return nil
}

func (f *fakeTagRepo) FindByID(_ context.Context, id int64) (*entity.Tag, error) {
	return f.tags[id], nil
}

func (f *fakeTagRepo) FindAll(_ context.Context) ([]*entity.Tag, error) {
	tags := make([]*entity.Tag, 0, len(f.tags))
	for _, tag := range f.tags {
		tags = append(tags, tag)
	}
	return tags, nil
}

func (f *fakeTagRepo) Delete(_ context.Context, id int64) error {
	delete(f.tags, id)
	return nil
}

var _ repository.TagRepository = (*fakeTagRepo)(nil)

func newBlogFixture() (BlogService, *fakeArticleRepo) {
	articles := newFakeArticleRepo()
	repo := &repository.Repository{
		Article:  articles,
		Author:   newFakeAuthorRepo(),
		Category: newFakeCategoryRepo(),
		Tag:      newFakeTagRepo(),
	}
	return NewBlogService(repo, zap.NewNop()), articles
}

// TestCreateArticleValidatesReferences requires a real author and category
// before the article row is written.
func TestCreateArticleValidatesReferences(t *testing.T) {
	svc, articles := newBlogFixture()
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, &request.AuthorRequest{Name: "Jo March"})
	assert.NoError(t, err)
	category, err := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Essays"})
	assert.NoError(t, err)

	_, err = svc.CreateArticle(ctx, &request.ArticleRequest{
		Title:      "On Writing",
		AuthorID:   99,
		CategoryID: category.ID,
	})
	vErr, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Contains(t, vErr.Fields, "author")

	resp, err := svc.CreateArticle(ctx, &request.ArticleRequest{
		Title:      "On Writing",
		Content:    "Begin anywhere.",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, "On Writing", resp.Title)
	assert.Len(t, articles.articles, 1)
}

// TestCreateArticlePubDate accepts an explicit RFC 3339 date and defaults to
// now when the payload omits it.
func TestCreateArticlePubDate(t *testing.T) {
	svc, articles := newBlogFixture()
	ctx := context.Background()

	author, _ := svc.CreateAuthor(ctx, &request.AuthorRequest{Name: "Jo March"})
	category, _ := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Essays"})

	when := "2026-03-01T12:00:00Z"
	resp, err := svc.CreateArticle(ctx, &request.ArticleRequest{
		Title:      "Dated",
		AuthorID:   author.ID,
		CategoryID: category.ID,
		PubDate:    &when,
	})
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), articles.articles[resp.ID].PubDate)

	resp, err = svc.CreateArticle(ctx, &request.ArticleRequest{
		Title:      "Undated",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now(), articles.articles[resp.ID].PubDate, time.Minute)
}

// TestUpdateArticleTagSwap replaces the tag set when the payload carries
// one and leaves it alone otherwise.
func TestUpdateArticleTagSwap(t *testing.T) {
	svc, articles := newBlogFixture()
	ctx := context.Background()

	author, _ := svc.CreateAuthor(ctx, &request.AuthorRequest{Name: "Jo March"})
	category, _ := svc.CreateCategory(ctx, &request.CategoryRequest{Name: "Essays"})
	first, _ := svc.CreateTag(ctx, &request.TagRequest{Name: "craft"})
	second, _ := svc.CreateTag(ctx, &request.TagRequest{Name: "notes"})

	created, err := svc.CreateArticle(ctx, &request.ArticleRequest{
		Title:      "On Writing",
		AuthorID:   author.ID,
		CategoryID: category.ID,
		TagIDs:     []int64{first.ID},
	})
	assert.NoError(t, err)
	assert.Equal(t, []int64{first.ID}, articles.tags[created.ID])

	newTags := []int64{second.ID}
	_, err = svc.UpdateArticle(ctx, created.ID, &request.ArticleUpdateRequest{TagIDs: &newTags})
	assert.NoError(t, err)
	assert.Equal(t, []int64{second.ID}, articles.tags[created.ID])
}

// TestDeleteAuthor only checks existence here; article cleanup rides on the
// database cascade.
func TestDeleteAuthor(t *testing.T) {
	svc, _ := newBlogFixture()
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, &request.AuthorRequest{Name: "Jo March"})
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteAuthor(ctx, author.ID))
	assert.ErrorIs(t, svc.DeleteAuthor(ctx, author.ID), ErrNotFound)
}
