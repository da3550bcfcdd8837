// Package controller exposes the project REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/project/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/project/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Project controller type
type Project struct {
	svc *service.Project
}

// New create new controller
func New(svc *service.Project) *Project {
	return &Project{svc: svc}
}

// List handles GET /api/projects.
func (c *Project) List(ctx *gin.Context) {
	projects, err := c.svc.List(ctx.Request.Context())
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// TopFeatured handles GET /api/projects/featured/top.
func (c *Project) TopFeatured(ctx *gin.Context) {
	projects, err := c.svc.TopFeatured(ctx.Request.Context())
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// TopPopular handles GET /api/projects/popular/top.
func (c *Project) TopPopular(ctx *gin.Context) {
	projects, err := c.svc.TopPopular(ctx.Request.Context())
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// Get handles GET /api/projects/:id.
func (c *Project) Get(ctx *gin.Context) {
	project, err := c.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Create handles POST /api/projects.
func (c *Project) Create(ctx *gin.Context) {
	input := new(dto.ProjectInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	project, err := c.svc.Create(ctx.Request.Context(), input)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id.
func (c *Project) Update(ctx *gin.Context) {
	update := new(dto.ProjectUpdate)
	if err := ctx.ShouldBindJSON(update); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	project, err := c.svc.Update(ctx.Request.Context(), ctx.Param("id"), update)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.
func (c *Project) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// IncrementViews handles POST /api/projects/:id/view.
func (c *Project) IncrementViews(ctx *gin.Context) {
	if err := c.svc.IncrementViews(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// IncrementLikes handles POST /api/projects/:id/like.
func (c *Project) IncrementLikes(ctx *gin.Context) {
	if err := c.svc.IncrementLikes(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
}

// ToggleFeatured handles PATCH /api/projects/:id/toggle-featured.
func (c *Project) ToggleFeatured(ctx *gin.Context) {
	project, err := c.svc.ToggleFeatured(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Reorder handles PUT /api/projects/reorder.
func (c *Project) Reorder(ctx *gin.Context) {
	req := new(dto.ReorderRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	if err := c.svc.Reorder(ctx.Request.Context(), req.Order); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "reordered"})
}

// RegisterRoutes mounts the project routes on the given groups.
func (c *Project) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("", c.List)
	public.GET("/featured/top", c.TopFeatured)
	public.GET("/popular/top", c.TopPopular)
	public.GET("/:id", c.Get)
	public.POST("/:id/view", c.IncrementViews)
	public.POST("/:id/like", c.IncrementLikes)

	admin.POST("", c.Create)
	admin.PUT("/reorder", c.Reorder)
	admin.PUT("/:id", c.Update)
	admin.PATCH("/:id/toggle-featured", c.ToggleFeatured)
	admin.DELETE("/:id", c.Delete)
}
