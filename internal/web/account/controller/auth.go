// Package controller exposes the admin login endpoint.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/account/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Account controller type
type Account struct {
	svc *service.Account
}

// New create new controller
func New(svc *service.Account) *Account {
	return &Account{svc: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (c *Account) Login(ctx *gin.Context) {
	req := new(loginRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "invalid request body"))
		return
	}

	result, err := c.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"email": result.User.Email,
			"role":  result.User.Role,
		},
	})
}
