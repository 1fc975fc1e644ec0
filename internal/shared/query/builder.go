package query

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ErrInvalidOrdering is returned for an ordering key outside the
// allow-list. Unknown ordering fails the request instead of being
// silently ignored.
var ErrInvalidOrdering = errors.New("invalid ordering field")

// Params are the raw list-query parameters of a request.
type Params struct {
	Filters  map[string]string // equality filters, keyed by query param
	Search   string            // free-text search term
	Ordering string            // field name, "-" prefix for descending
	Page     int
	PageSize int
}

// ParseParams extracts Params from URL query values. Only the given
// filter keys are picked up; everything else stays out of the query.
func ParseParams(values url.Values, filterKeys ...string) Params {
	p := Params{
		Filters:  make(map[string]string),
		Search:   values.Get("search"),
		Ordering: values.Get("ordering"),
		Page:     1,
		PageSize: DefaultPageSize,
	}

	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			p.Filters[key] = v
		}
	}

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(values.Get("page_size")); err == nil && size > 0 {
		p.PageSize = size
	}

	return p
}

// Spec is the per-entity allow-list: which columns may be filtered,
// searched and ordered on.
type Spec struct {
	FilterColumns map[string]string // query param -> qualified column
	FilterJoins   map[string]string // query param -> JOIN clause its column lives behind
	SearchColumns []string          // qualified columns, OR-combined ILIKE
	SearchJoin    string            // JOIN clause needed for a related search column
	OrderColumns  map[string]string // ordering key -> qualified column
	DefaultOrder  string            // e.g. "-created_at"
}

// Clauses is a parameterized SQL fragment set ready to splice into a
// SELECT. Args are numbered from $1.
type Clauses struct {
	Join    string // empty unless the search needs a related table
	Where   string // includes the WHERE keyword, empty when unfiltered
	OrderBy string // includes the ORDER BY keyword
	Args    []interface{}
	Limit   int
	Offset  int
}

// Build translates request params into SQL clauses. Filters AND search
// narrow the candidate set, ordering applies last, pagination last of
// all.
func (s Spec) Build(p Params) (*Clauses, error) {
	cl := &Clauses{}

	page := p.Page
	if page < 1 {
		page = 1
	}
	size := p.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	cl.Limit = size
	cl.Offset = (page - 1) * size

	var conditions []string
	var joins []string
	addJoin := func(join string) {
		if join == "" {
			return
		}
		for _, existing := range joins {
			if existing == join {
				return
			}
		}
		joins = append(joins, join)
	}

	// Equality filters, allow-listed columns only. Sorted for a
	// deterministic statement (map iteration order is random).
	keys := make([]string, 0, len(p.Filters))
	for key := range p.Filters {
		if _, ok := s.FilterColumns[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		cl.Args = append(cl.Args, p.Filters[key])
		conditions = append(conditions, fmt.Sprintf("%s = $%d", s.FilterColumns[key], len(cl.Args)))
		addJoin(s.FilterJoins[key])
	}

	// Case-insensitive substring search, OR-combined across the listed
	// columns. One bind argument shared by every column.
	if p.Search != "" && len(s.SearchColumns) > 0 {
		cl.Args = append(cl.Args, "%"+p.Search+"%")
		arg := len(cl.Args)

		ors := make([]string, len(s.SearchColumns))
		for i, col := range s.SearchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE $%d", col, arg)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
		addJoin(s.SearchJoin)
	}

	cl.Join = strings.Join(joins, " ")

	if len(conditions) > 0 {
		cl.Where = "WHERE " + strings.Join(conditions, " AND ")
	}

	ordering := p.Ordering
	if ordering == "" {
		ordering = s.DefaultOrder
	}
	if ordering != "" {
		direction := "ASC"
		field := ordering
		if strings.HasPrefix(ordering, "-") {
			direction = "DESC"
			field = ordering[1:]
		}

		column, ok := s.OrderColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidOrdering, field)
		}
		cl.OrderBy = fmt.Sprintf("ORDER BY %s %s", column, direction)
	}

	return cl, nil
}
