// Package controller exposes the contact message REST endpoints.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/contact/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Contact controller type
type Contact struct {
	svc *service.Contact
}

// New create new controller
func New(svc *service.Contact) *Contact {
	return &Contact{svc: svc}
}

// Submit handles POST /api/contact, the only public mutating endpoint.
func (c *Contact) Submit(ctx *gin.Context) {
	payload := map[string]any{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	if err := c.svc.Submit(ctx.Request.Context(), payload); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "received"})
}

// List handles GET /api/contact.
func (c *Contact) List(ctx *gin.Context) {
	messages, err := c.svc.List(ctx.Request.Context())
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// Delete handles DELETE /api/contact/:id.
func (c *Contact) Delete(ctx *gin.Context) {
	if err := c.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// RegisterRoutes mounts the contact routes on the given groups.
func (c *Contact) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("", c.Submit)

	admin.GET("", c.List)
	admin.DELETE("/:id", c.Delete)
}
