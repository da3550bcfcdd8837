// Package controller exposes the blog REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/blog/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/blog/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Blog controller type
type Blog struct {
	svc *service.Blog
}

// New create new controller
func New(svc *service.Blog) *Blog {
	return &Blog{svc: svc}
}

// List handles GET /api/blogs with optional filter/sort query parameters.
func (c *Blog) List(ctx *gin.Context) {
	posts, err := c.svc.List(ctx.Request.Context(), dto.PostFilter{
		Status:   ctx.Query("status"),
		Tag:      ctx.Query("tag"),
		Category: ctx.Query("category"),
		Featured: ctx.Query("featured"),
		Search:   ctx.Query("search"),
		Sort:     ctx.Query("sort"),
	})
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// Get handles GET /api/blogs/:id.
func (c *Blog) Get(ctx *gin.Context) {
	post, err := c.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// GetBySlug handles GET /api/blogs/slug/:slug.
func (c *Blog) GetBySlug(ctx *gin.Context) {
	post, err := c.svc.GetBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Create handles POST /api/blogs.
func (c *Blog) Create(ctx *gin.Context) {
	input := new(dto.PostInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	post, err := c.svc.Create(ctx.Request.Context(), input)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/blogs/:id.
func (c *Blog) Update(ctx *gin.Context) {
	update := new(dto.PostUpdate)
	if err := ctx.ShouldBindJSON(update); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	post, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), update)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/blogs/:id.
func (c *Blog) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// IncrementViews handles POST /api/blogs/:id/view.
func (c *Blog) IncrementViews(ctx *gin.Context) {
	if err := c.svc.IncrementViews(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// RegisterRoutes mounts the blog routes on the given groups.
func (c *Blog) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("", c.List)
	public.GET("/slug/:slug", c.GetBySlug)
	public.GET("/:id", c.Get)
	public.POST("/:id/view", c.IncrementViews)

	admin.POST("", c.Create)
	admin.PUT("/:id", c.Update)
	admin.DELETE("/:id", c.Delete)
}
