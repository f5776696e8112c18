package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

// parsePageQuery lee page, size y sort del query string con los defaults del
// boundary: page=0, size=10 y orden por fecha de creación descendente cuando
// el caller no manda ninguno. El tope de tamaño lo aplica el caso de uso.
func parsePageQuery(c *fiber.Ctx) repository.PageQuery {
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	size := c.QueryInt("size", 10)

	var sort []repository.SortKey
	for _, raw := range c.Context().QueryArgs().PeekMulti("sort") {
		if key, ok := parseSortKey(string(raw)); ok {
			sort = append(sort, key)
		}
	}
	if len(sort) == 0 {
		sort = []repository.SortKey{{Campo: "createdAt", Desc: true}}
	}

	return repository.PageQuery{Page: page, Size: size, Sort: sort}
}

// parseSortKey interpreta "campo", "campo,asc" o "campo,desc".
func parseSortKey(raw string) (repository.SortKey, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return repository.SortKey{}, false
	}
	campo, dir, _ := strings.Cut(raw, ",")
	campo = strings.TrimSpace(campo)
	if campo == "" {
		return repository.SortKey{}, false
	}
	return repository.SortKey{
		Campo: campo,
		Desc:  strings.EqualFold(strings.TrimSpace(dir), "desc"),
	}, true
}
