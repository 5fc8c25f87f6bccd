// Package query describes paged, filtered and sorted searches as plain values that a
// repository executes in one go.
package query

import (
	"math"
	"strings"

	"ordereat-api/apperr"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SortDirection orders results ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "ASC"
	Descending SortDirection = "DESC"
)

// Column is a whitelisted, storage-level column name.
type Column string

// sortColumns maps the public SortBy values to columns. Anything not listed is rejected.
var sortColumns = map[string]Column{
	"Name":        "name",
	"Description": "description",
}

// SortableFields lists the accepted SortBy values.
func SortableFields() []string {
	return []string{"Name", "Description"}
}

// SortColumn resolves a SortBy value. An empty value means "no sort".
func SortColumn(sortBy string) (Column, bool, error) {
	if sortBy == "" {
		return "", false, nil
	}
	col, ok := sortColumns[sortBy]
	if !ok {
		return "", false, apperr.BadRequest("Sort by is optional, or must be in [%s]", strings.Join(SortableFields(), ","))
	}
	return col, true, nil
}

// ParseDirection accepts ASC or DESC in any case; empty defaults to ASC.
func ParseDirection(raw string) (SortDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", string(Ascending):
		return Ascending, nil
	case string(Descending):
		return Descending, nil
	}
	return "", apperr.BadRequest("Sort direction must be ASC or DESC")
}

// PageRequest is the public paging/search input shared by list endpoints.
type PageRequest struct {
	SearchPhrase  string
	PageNumber    int
	PageSize      int
	SortBy        string
	SortDirection SortDirection
}

// Validate enforces the paging bounds and the SortBy allow-list.
func (r PageRequest) Validate() error {
	if r.PageNumber < 1 {
		return apperr.Validation("PageNumber must be greater than or equal to 1")
	}
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		return apperr.Validation("PageSize must be between 1 and %d", MaxPageSize)
	}
	if err := r.checkWindow(); err != nil {
		return err
	}
	if _, err := ParseDirection(string(r.SortDirection)); err != nil {
		return err
	}
	_, _, err := SortColumn(r.SortBy)
	return err
}

// MaxPageNumber is the largest page whose window, offset plus size, still fits in an int.
func MaxPageNumber(pageSize int) int {
	if pageSize < 1 {
		return math.MaxInt
	}
	return (math.MaxInt-pageSize)/pageSize + 1
}

func (r PageRequest) checkWindow() error {
	if r.PageNumber > MaxPageNumber(r.PageSize) {
		return apperr.Validation("PageNumber must be at most %d for PageSize %d", MaxPageNumber(r.PageSize), r.PageSize)
	}
	return nil
}

// Offset is the number of rows skipped for the requested page.
func (r PageRequest) Offset() int {
	return r.PageSize * (r.PageNumber - 1)
}

// Spec is a resolved search: substring filter, optional sort and window. Zero Limit means
// no window.
type Spec struct {
	Phrase    string
	SortBy    Column
	Sorted    bool
	Direction SortDirection
	Offset    int
	Limit     int
}

// NewSpec resolves a PageRequest into a Spec, rejecting unknown sort fields and pages
// past MaxPageNumber.
func NewSpec(r PageRequest) (Spec, error) {
	if err := r.checkWindow(); err != nil {
		return Spec{}, err
	}
	col, sorted, err := SortColumn(r.SortBy)
	if err != nil {
		return Spec{}, err
	}
	dir, err := ParseDirection(string(r.SortDirection))
	if err != nil {
		return Spec{}, err
	}
	return Spec{
		Phrase:    strings.TrimSpace(r.SearchPhrase),
		SortBy:    col,
		Sorted:    sorted,
		Direction: dir,
		Offset:    r.Offset(),
		Limit:     r.PageSize,
	}, nil
}

// OrderClause renders the ORDER BY clause with columns prefixed by qualifier (e.g.
// "dishes."). ID is always the last key so rows with equal sort keys keep insertion order.
func (s Spec) OrderClause(qualifier string) string {
	if !s.Sorted {
		return qualifier + "id ASC"
	}
	return qualifier + string(s.SortBy) + " " + string(s.Direction) + ", " + qualifier + "id ASC"
}

// LikeEscape is the escape character used by LikePattern; queries must declare it with
// ESCAPE '!'.
const LikeEscape = "!"

// LikePattern returns the lower-cased LIKE pattern for the phrase with wildcards escaped.
func (s Spec) LikePattern() string {
	escaped := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(strings.ToLower(s.Phrase))
	return "%" + escaped + "%"
}

// DishQuery searches the dishes of one restaurant. DietID, when set, restricts the window
// to dishes allowing that diet.
type DishQuery struct {
	RestaurantID uint
	DietID       *uint
	Spec
}
