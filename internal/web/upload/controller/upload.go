// Package controller exposes the image upload endpoint.
package controller

import (
	"io"
	"net/http"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/satindersinghsall/portfolio-api/internal/web/upload/dao"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// maxImageSize caps uploaded images at 10 MiB.
const maxImageSize = 10 << 20

// Upload controller type
type Upload struct {
	dao *dao.Upload
}

// New create new controller
func New(dao *dao.Upload) *Upload {
	return &Upload{dao: dao}
}

// Put handles POST /api/upload: a multipart "image" field is stored in
// object storage and its public URL returned.
func (c *Upload) Put(ctx *gin.Context) {
	header, err := ctx.FormFile("image")
	if err != nil {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "image file is required"))
		return
	}
	if header.Size > maxImageSize {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "image too large"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "only image uploads are accepted"))
		return
	}

	file, err := header.Open()
	if err != nil {
		httperr.Abort(ctx, errors.Wrap(err, "open uploaded file"))
		return
	}
	defer file.Close() //nolint:errcheck

	cnt, err := io.ReadAll(io.LimitReader(file, maxImageSize+1))
	if err != nil {
		httperr.Abort(ctx, errors.Wrap(err, "read uploaded file"))
		return
	}
	if len(cnt) > maxImageSize {
		httperr.Abort(ctx, errors.Wrap(httperr.ErrValidation, "image too large"))
		return
	}

	url, err := c.dao.PutImage(ctx.Request.Context(), cnt, header.Filename, contentType)
	if err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"url": url})
}

// RegisterRoutes mounts the upload route on the admin group.
func (c *Upload) RegisterRoutes(admin *gin.RouterGroup) {
	admin.POST("", c.Put)
}
