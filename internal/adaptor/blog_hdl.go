package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-portal/internal/dto/request"
	"shop-portal/internal/usecase"
	"shop-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BlogHandler struct {
	service usecase.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service usecase.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{
		service: service,
		log:     log.With(zap.String("handler", "blog")),
	}
}

// GetArticles handles GET /blog/articles
func (h *BlogHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	articles, err := h.service.GetArticles(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get articles")
		return
	}

	utils.ResponseSuccess(w, "Articles retrieved successfully", articles)
}

// GetArticleByID handles GET /blog/articles/{id}
func (h *BlogHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article ID", nil)
		return
	}

	article, err := h.service.GetArticleByID(r.Context(), articleID)
	if err != nil {
		handleServiceError(h.log, w, err, "get article by ID")
		return
	}

	utils.ResponseSuccess(w, "Article retrieved successfully", article)
}

// CreateArticle handles POST /blog/articles
func (h *BlogHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req request.ArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	article, err := h.service.CreateArticle(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create article")
		return
	}

	utils.ResponseCreated(w, "Article created successfully", article)
}

// UpdateArticle handles PUT /blog/articles/{id}
func (h *BlogHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article ID", nil)
		return
	}

	var req request.ArticleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	article, err := h.service.UpdateArticle(r.Context(), articleID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update article")
		return
	}

	utils.ResponseSuccess(w, "Article updated successfully", article)
}

// DeleteArticle handles DELETE /blog/articles/{id}
func (h *BlogHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article ID", nil)
		return
	}

	if err := h.service.DeleteArticle(r.Context(), articleID); err != nil {
		handleServiceError(h.log, w, err, "delete article")
		return
	}

	utils.ResponseSuccess(w, "Article deleted successfully", nil)
}

// GetAuthors handles GET /blog/authors
func (h *BlogHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.service.GetAuthors(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get authors")
		return
	}

	utils.ResponseSuccess(w, "Authors retrieved successfully", authors)
}

// CreateAuthor handles POST /blog/authors
func (h *BlogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req request.AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	author, err := h.service.CreateAuthor(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create author")
		return
	}

	utils.ResponseCreated(w, "Author created successfully", author)
}

// DeleteAuthor handles DELETE /blog/authors/{id}
func (h *BlogHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid author ID", nil)
		return
	}

	if err := h.service.DeleteAuthor(r.Context(), authorID); err != nil {
		handleServiceError(h.log, w, err, "delete author")
		return
	}

	utils.ResponseSuccess(w, "Author deleted successfully", nil)
}

// GetCategories handles GET /blog/categories
func (h *BlogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// CreateCategory handles POST /blog/categories
func (h *BlogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// DeleteCategory handles DELETE /blog/categories/{id}
func (h *BlogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		handleServiceError(h.log, w, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}

// GetTags handles GET /blog/tags
func (h *BlogHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.GetTags(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get tags")
		return
	}

	utils.ResponseSuccess(w, "Tags retrieved successfully", tags)
}

// CreateTag handles POST /blog/tags
func (h *BlogHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req request.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tag, err := h.service.CreateTag(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create tag")
		return
	}

	utils.ResponseCreated(w, "Tag created successfully", tag)
}

// DeleteTag handles DELETE /blog/tags/{id}
func (h *BlogHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid tag ID", nil)
		return
	}

	if err := h.service.DeleteTag(r.Context(), tagID); err != nil {
		handleServiceError(h.log, w, err, "delete tag")
		return
	}

	utils.ResponseSuccess(w, "Tag deleted successfully", nil)
}
