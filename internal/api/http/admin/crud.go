package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// crud binds one entity's service methods to the standard REST routes.
type crud[T any] struct {
	list   func(ctx context.Context) ([]T, error)
	get    func(ctx context.Context, id int64) (*T, error)
	create func(ctx context.Context, v *T) error
	update func(ctx context.Context, v *T) error
	delete func(ctx context.Context, id int64) error
	setID  func(v *T, id int64)
}

func registerCRUD[T any](rg *gin.RouterGroup, h *Handler, ops crud[T]) {
	rg.GET("", func(c *gin.Context) {
		items, err := ops.list(c.Request.Context())
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		item, err := ops.get(c.Request.Context(), id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	rg.POST("", func(c *gin.Context) {
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		ops.setID(&item, 0)
		if err := ops.create(c.Request.Context(), &item); err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	rg.PUT("/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var item T
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
		ops.setID(&item, id)
		if err := ops.update(c.Request.Context(), &item); err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := ops.delete(c.Request.Context(), id); err != nil {
			h.writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}
