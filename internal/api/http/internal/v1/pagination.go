package v1

import (
	"strconv"

	"github.com/lash-app/backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type listResponse[T any] struct {
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	Data        []T `json:"data"`
}

// parsePagination reads page and limit. Unparsable values come back as 0 and
// are replaced with defaults by the services.
func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return page, limit
}

func newListResponse[T any](page *domain.Page[T]) listResponse[T] {
	data := page.Items
	if data == nil {
		data = []T{}
	}

	return listResponse[T]{
		TotalPages:  page.TotalPages(),
		CurrentPage: page.CurrentPage,
		Data:        data,
	}
}
