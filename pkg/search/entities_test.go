package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

func TestAvailableEntities(t *testing.T) {
	store := newTestStore()

	tests := []struct {
		name  string
		query models.Query
		want  []EntityOption
	}{
		{
			name:  "all rows",
			query: models.NewQuery(),
			want: []EntityOption{
				{Code: "ADR", Name: "ADR"},
				{Code: "KLT", Name: "Klant"},
				{Code: "POL", Name: "Polis"},
			},
		},
		{
			name:  "search narrows options",
			query: query("naam", models.ModeLiteral, models.TypeAll, models.All, models.All),
			want: []EntityOption{
				{Code: "ADR", Name: "ADR"},
				{Code: "KLT", Name: "Klant"},
			},
		},
		{
			name:  "selected entity does not narrow options",
			query: query("", models.ModeLiteral, models.TypeEntityOnly, models.All, "KLT"),
			want: []EntityOption{
				{Code: "KLT", Name: "Klant"},
				{Code: "POL", Name: "Polis"},
			},
		},
		{
			name:  "datatype",
			query: query("", models.ModeLiteral, models.TypeAll, "JN", models.All),
			want:  []EntityOption{{Code: "KLT", Name: "Klant"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailableEntities(store, tt.query, language.Dutch))
		})
	}
}

func TestAvailableEntitiesCollation(t *testing.T) {
	store := catalog.NewStoreFromRows([]models.Row{
		entity("ZAAK", "Zaak", ""),
		entity("ÉÉN", "Eén", ""),
		entity("ADRES", "Adres", ""),
		entity("", "Zonder code", ""),
	}, nil)

	var codes []string
	for _, opt := range AvailableEntities(store, models.NewQuery(), language.Dutch) {
		codes = append(codes, opt.Code)
	}
	assert.Equal(t, []string{"ADRES", "ÉÉN", "ZAAK"}, codes)
}

func TestReconcileEntityFilter(t *testing.T) {
	options := []EntityOption{{Code: "KLT", Name: "Klant"}}

	q := query("", models.ModeLiteral, models.TypeAll, models.All, "KLT")
	assert.Equal(t, "KLT", ReconcileEntityFilter(q, options).Entity)

	q.Entity = "POL"
	assert.Equal(t, models.All, ReconcileEntityFilter(q, options).Entity)

	q.Entity = models.All
	assert.Equal(t, models.All, ReconcileEntityFilter(q, nil).Entity)
}
