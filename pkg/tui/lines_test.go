package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

func TestBuildLines(t *testing.T) {
	engine := newTestEngine()
	none := func(string) bool { return false }
	all := func(string) bool { return true }

	tests := []struct {
		name       string
		query      models.Query
		isExpanded func(string) bool
		want       []string
	}{
		{
			name:       "collapsed entities",
			query:      models.NewQuery(),
			isExpanded: none,
			want:       []string{"KLT", "POL"},
		},
		{
			name:       "all expanded",
			query:      models.NewQuery(),
			isExpanded: all,
			want:       []string{"KLT", "KLT_NAAM", "KLT_ACTF", "POL", "POL_NR", "POL_KLT"},
		},
		{
			name:       "one expanded",
			query:      models.NewQuery(),
			isExpanded: func(code string) bool { return code == "POL" },
			want:       []string{"KLT", "POL", "POL_NR", "POL_KLT"},
		},
		{
			name: "orphan after entities",
			query: func() models.Query {
				q := models.NewQuery()
				q.SearchTerm = "klant"
				return q
			}(),
			isExpanded: all,
			want:       []string{"KLT", "KLT_NAAM", "POL_KLT"},
		},
		{
			name: "attribute only is flat",
			query: func() models.Query {
				q := models.NewQuery()
				q.Type = models.TypeAttributeOnly
				q.Entity = "POL"
				return q
			}(),
			isExpanded: all,
			want:       []string{"POL_NR", "POL_KLT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Run(tt.query)
			lines := buildLines(result.Grouped, tt.isExpanded)
			assert.Equal(t, tt.want, lineKeys(lines))
		})
	}
}

func TestBuildLinesMarkers(t *testing.T) {
	engine := newTestEngine()
	q := models.NewQuery()
	q.SearchTerm = "klant"

	lines := buildLines(engine.Run(q).Grouped, func(string) bool { return true })
	require.Len(t, lines, 3)

	assert.NotNil(t, lines[0].group)
	assert.True(t, lines[0].expanded)
	assert.True(t, lines[0].hasChildren())
	assert.Equal(t, 2, lines[0].group.AttributeCount)

	assert.True(t, lines[1].nested)
	assert.False(t, lines[1].orphan)

	assert.True(t, lines[2].orphan)
	assert.False(t, lines[2].nested)
	assert.Nil(t, lines[2].group)
}

func TestBuildLinesEntityWithoutVisibleAttributes(t *testing.T) {
	q := models.NewQuery()
	q.Type = models.TypeEntityOnly

	lines := buildLines(newTestEngine().Run(q).Grouped, func(string) bool { return true })
	require.Len(t, lines, 2)
	assert.False(t, lines[0].hasChildren(), "entity-only results have no nested attributes")
	assert.Equal(t, 2, lines[0].group.AttributeCount)
}

func TestParentLine(t *testing.T) {
	lines := buildLines(newTestEngine().Run(models.NewQuery()).Grouped, func(string) bool { return true })

	assert.Equal(t, 0, parentLine(lines, 0))
	assert.Equal(t, 0, parentLine(lines, 2))
	assert.Equal(t, 3, parentLine(lines, 5))
	assert.Equal(t, -1, parentLine(nil, 0))
}

func TestBuildLinesEmpty(t *testing.T) {
	assert.Empty(t, buildLines(nil, func(string) bool { return true }))
	assert.Empty(t, buildLines([]search.GroupedItem{}, func(string) bool { return true }))
}
