package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/tienda/cotizaciones-api/internal/domain/repository"
)

func TestOrderByClause(t *testing.T) {
	casos := []struct {
		nombre string
		sort   []repository.SortKey
		want   string
	}{
		{"sin criterios no hay orden implícito", nil, ""},
		{"un campo asc", []repository.SortKey{{Campo: "total"}}, " ORDER BY q.total ASC"},
		{"un campo desc", []repository.SortKey{{Campo: "createdAt", Desc: true}}, " ORDER BY q.created_at DESC"},
		{
			"varios campos en orden",
			[]repository.SortKey{{Campo: "estado", Desc: true}, {Campo: "id"}},
			" ORDER BY q.estado DESC, q.id ASC",
		},
		{
			"campos desconocidos se descartan",
			[]repository.SortKey{{Campo: "created_at; DROP TABLE cotizacion"}, {Campo: "total"}},
			" ORDER BY q.total ASC",
		},
		{"solo campos desconocidos", []repository.SortKey{{Campo: "otra"}}, ""},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, orderByClause(tc.sort))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert cliente: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	if p := nullIfEmpty("x"); assert.NotNil(t, p) {
		assert.Equal(t, "x", *p)
	}
	assert.Equal(t, "", derefStr(nil))
	s := "y"
	assert.Equal(t, "y", derefStr(&s))
}
