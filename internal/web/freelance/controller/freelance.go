// Package controller exposes the freelance project REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/dto"
	"github.com/satindersinghsall/portfolio-api/internal/web/freelance/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Freelance controller type
type Freelance struct {
	svc *service.Freelance
}

// New create new controller
func New(svc *service.Freelance) *Freelance {
	return &Freelance{svc: svc}
}

// List handles GET /api/freelance.
func (c *Freelance) List(ctx *gin.Context) {
	projects, err := c.svc.List(ctx.Request.Context())
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// Get handles GET /api/freelance/:id.
func (c *Freelance) Get(ctx *gin.Context) {
	project, err := c.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// Create handles POST /api/freelance.
func (c *Freelance) Create(ctx *gin.Context) {
	input := new(dto.FreelanceInput)
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

// Update handles PUT /api/freelance/:id.
func (c *Freelance) Update(ctx *gin.Context) {
	update := new(dto.FreelanceUpdate)
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

// Delete handles DELETE /api/freelance/:id.
func (c *Freelance) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// RegisterRoutes mounts the freelance routes on the given groups.
func (c *Freelance) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("", c.List)
	public.GET("/:id", c.Get)

	admin.POST("", c.Create)
	admin.PUT("/:id", c.Update)
	admin.DELETE("/:id", c.Delete)
}
