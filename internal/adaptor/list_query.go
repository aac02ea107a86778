package adaptor

import (
	"net/http"
	"strings"

	"shop-portal/internal/data/repository"
	"shop-portal/pkg/utils"
)

// parseListOptions reads the collection-endpoint query parameters: `search`,
// exact-match filters named after their field, `ordering` (with a leading
// `-` for descending) and `page`/`per_page`.
func parseListOptions(r *http.Request, filterKeys []string) repository.ListOptions {
	query := r.URL.Query()

	opts := repository.ListOptions{
		Search:  query.Get("search"),
		Filters: map[string]string{},
	}

	for _, key := range filterKeys {
		if query.Has(key) {
			opts.Filters[key] = query.Get(key)
		}
	}

	if ordering := query.Get("ordering"); ordering != "" {
		if strings.HasPrefix(ordering, "-") {
			opts.OrderBy = strings.TrimPrefix(ordering, "-")
			opts.Desc = true
		} else {
			opts.OrderBy = ordering
		}
	}

	page := utils.ParseInt(query.Get("page"), 1)
	perPage := utils.ParseInt(query.Get("per_page"), 10)
	if perPage > 100 {
		perPage = 100
	}

	opts.Limit = perPage
	opts.Offset = utils.CalculateOffset(page, perPage)

	return opts
}
