package handlers

import (
	"errors"

	"ordereat-api/query"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the sortby and sortdir tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator is not go-playground/validator")
	}
	if err := v.RegisterValidation("sortby", func(fl validator.FieldLevel) bool {
		_, _, err := query.SortColumn(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("sortdir", func(fl validator.FieldLevel) bool {
		_, err := query.ParseDirection(fl.Field().String())
		return err == nil
	})
}

// pageQuery is the query string of every paged endpoint.
type pageQuery struct {
	SearchPhrase  string `form:"SearchPhrase" binding:"max=100"`
	PageNumber    *int   `form:"PageNumber"`
	PageSize      *int   `form:"PageSize"`
	SortBy        string `form:"SortBy" binding:"omitempty,sortby"`
	SortDirection string `form:"SortDirection" binding:"omitempty,sortdir"`
}

func (q pageQuery) request() query.PageRequest {
	req := query.PageRequest{
		SearchPhrase: q.SearchPhrase,
		PageNumber:   1,
		PageSize:     query.DefaultPageSize,
		SortBy:       q.SortBy,
	}
	if q.PageNumber != nil {
		req.PageNumber = *q.PageNumber
	}
	if q.PageSize != nil {
		req.PageSize = *q.PageSize
	}
	if q.SortDirection != "" {
		// ParseDirection already accepted it in binding.
		dir, _ := query.ParseDirection(q.SortDirection)
		req.SortDirection = dir
	}
	return req
}

func bindPage(c *gin.Context) (query.PageRequest, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, bindingError(err))
		return query.PageRequest{}, false
	}
	return q.request(), true
}
