package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = Spec{
	FilterColumns: map[string]string{
		"author_id": "b.author_id",
		"year":      "b.publication_year",
	},
	SearchColumns: []string{"b.title", "a.name"},
	SearchJoin:    "JOIN authors a ON a.id = b.author_id",
	OrderColumns: map[string]string{
		"title":      "b.title",
		"created_at": "b.created_at",
	},
	DefaultOrder: "title",
}

func TestBuildDefaults(t *testing.T) {
	cl, err := testSpec.Build(Params{})
	require.NoError(t, err)

	assert.Empty(t, cl.Where)
	assert.Empty(t, cl.Join)
	assert.Equal(t, "ORDER BY b.title ASC", cl.OrderBy)
	assert.Equal(t, DefaultPageSize, cl.Limit)
	assert.Equal(t, 0, cl.Offset)
	assert.Empty(t, cl.Args)
}

func TestBuildFilters(t *testing.T) {
	cl, err := testSpec.Build(Params{
		Filters: map[string]string{
			"year":      "1999",
			"author_id": "abc",
			"ignored":   "zzz",
		},
	})
	require.NoError(t, err)

	// Filter keys apply in sorted order for a deterministic statement.
	assert.Equal(t, "WHERE b.author_id = $1 AND b.publication_year = $2", cl.Where)
	assert.Equal(t, []interface{}{"abc", "1999"}, cl.Args)
}

func TestBuildSearch(t *testing.T) {
	cl, err := testSpec.Build(Params{Search: "tolkien"})
	require.NoError(t, err)

	assert.Equal(t, "WHERE (b.title ILIKE $1 OR a.name ILIKE $1)", cl.Where)
	assert.Equal(t, "JOIN authors a ON a.id = b.author_id", cl.Join)
	assert.Equal(t, []interface{}{"%tolkien%"}, cl.Args)
}

func TestBuildFilterJoin(t *testing.T) {
	spec := Spec{
		FilterColumns: map[string]string{"tag": "t.name"},
		FilterJoins: map[string]string{
			"tag": "JOIN post_tags pt ON pt.post_id = p.id JOIN tags t ON t.id = pt.tag_id",
		},
		OrderColumns: map[string]string{"created_at": "p.created_at"},
		DefaultOrder: "-created_at",
	}

	cl, err := spec.Build(Params{Filters: map[string]string{"tag": "golang"}})
	require.NoError(t, err)

	assert.Equal(t, "WHERE t.name = $1", cl.Where)
	assert.Equal(t, "JOIN post_tags pt ON pt.post_id = p.id JOIN tags t ON t.id = pt.tag_id", cl.Join)
}

func TestBuildOrdering(t *testing.T) {
	cl, err := testSpec.Build(Params{Ordering: "-created_at"})
	require.NoError(t, err)
	assert.Equal(t, "ORDER BY b.created_at DESC", cl.OrderBy)

	_, err = testSpec.Build(Params{Ordering: "password_hash"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOrdering)
}

func TestBuildPagination(t *testing.T) {
	cl, err := testSpec.Build(Params{Page: 3, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 20, cl.Limit)
	assert.Equal(t, 40, cl.Offset)

	// Oversized page size clamps to the maximum.
	cl, err = testSpec.Build(Params{Page: 1, PageSize: 5000})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, cl.Limit)

	cl, err = testSpec.Build(Params{Page: -2, PageSize: -1})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, cl.Limit)
	assert.Equal(t, 0, cl.Offset)
}

func TestParseParams(t *testing.T) {
	values := url.Values{}
	values.Set("search", "go")
	values.Set("ordering", "-created_at")
	values.Set("page", "2")
	values.Set("page_size", "25")
	values.Set("role", "editor")
	values.Set("unlisted", "x")

	p := ParseParams(values, "role")

	assert.Equal(t, "go", p.Search)
	assert.Equal(t, "-created_at", p.Ordering)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 25, p.PageSize)
	assert.Equal(t, map[string]string{"role": "editor"}, p.Filters)
}

func TestParseParamsBadNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("page", "zero")
	values.Set("page_size", "-5")

	p := ParseParams(values)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}
