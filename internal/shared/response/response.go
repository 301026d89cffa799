package response

import (
	"go-employee/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// Page is the paginated list body.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		// pembulatan ke atas
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page+1 >= totalPages,
	}
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Error classifies err, writes the problem body and aborts the chain.
func Error(c *gin.Context, err error) apperror.Problem {
	instance := ""
	if c.Request != nil && c.Request.URL != nil {
		instance = c.Request.URL.Path
	}
	problem := apperror.ToHTTP(err, instance)

	c.Render(problem.Status, problemJSON{problem})
	c.Abort()
	return problem
}
