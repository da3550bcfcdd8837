// Package controller exposes the YouTube video REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/youtube/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// YouTube controller type
type YouTube struct {
	svc *service.YouTube
}

// New create new controller
func New(svc *service.YouTube) *YouTube {
	return &YouTube{svc: svc}
}

// List handles GET /api/youtube with optional status/tag query parameters.
func (c *YouTube) List(ctx *gin.Context) {
	videos, err := c.svc.List(ctx.Request.Context(), dto.VideoFilter{
		Status: ctx.Query("status"),
		Tag:    ctx.Query("tag"),
	})
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, videos)
}

// Get handles GET /api/youtube/:id.
func (c *YouTube) Get(ctx *gin.Context) {
	video, err := c.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

// Create handles POST /api/youtube.
func (c *YouTube) Create(ctx *gin.Context) {
	input := new(dto.VideoInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	video, err := c.svc.Create(ctx.Request.Context(), input)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, video)
}

// Update handles PUT /api/youtube/:id.
func (c *YouTube) Update(ctx *gin.Context) {
	update := new(dto.VideoUpdate)
	if err := ctx.ShouldBindJSON(update); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	video, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), update)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, video)
}

// Delete handles DELETE /api/youtube/:id.
func (c *YouTube) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// RegisterRoutes mounts the youtube routes on the given groups.
func (c *YouTube) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("", c.List)
	public.GET("/:id", c.Get)

	admin.POST("", c.Create)
	admin.PUT("/:id", c.Update)
	admin.DELETE("/:id", c.Delete)
}
