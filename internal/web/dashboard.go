package web

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	blogSvc "github.com/satindersinghsall/portfolio-api/internal/web/blog/service"
	contactSvc "github.com/satindersinghsall/portfolio-api/internal/web/contact/service"
	freelanceSvc "github.com/satindersinghsall/portfolio-api/internal/web/freelance/service"
	projectSvc "github.com/satindersinghsall/portfolio-api/internal/web/project/service"
	youtubeSvc "github.com/satindersinghsall/portfolio-api/internal/web/youtube/service"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Dashboard aggregates document counts across all content collections.
type Dashboard struct {
	blog      *blogSvc.Blog
	project   *projectSvc.Project
	freelance *freelanceSvc.Freelance
	youtube   *youtubeSvc.YouTube
	contact   *contactSvc.Contact
}

// NewDashboard create new dashboard controller
func NewDashboard(
	blog *blogSvc.Blog,
	project *projectSvc.Project,
	freelance *freelanceSvc.Freelance,
	youtube *youtubeSvc.YouTube,
	contact *contactSvc.Contact,
) *Dashboard {
	return &Dashboard{
		blog:      blog,
		project:   project,
		freelance: freelance,
		youtube:   youtube,
		contact:   contact,
	}
}

// Counts handles GET /api/dashboard, counting all collections in parallel.
func (c *Dashboard) Counts(ctx *gin.Context) {
	var (
		mu     sync.Mutex
		counts = gin.H{}
	)

	pool, poolCtx := errgroup.WithContext(ctx.Request.Context())
	for name, count := range map[string]func(context.Context) (int64, error){
		"blogs":     c.blog.Count,
		"projects":  c.project.Count,
		"freelance": c.freelance.Count,
		"youtube":   c.youtube.Count,
		"contacts":  c.contact.Count,
	} {
		pool.Go(func() error {
			n, err := count(poolCtx)
			if err != nil {
				return err
			}

			mu.Lock()
			counts[name] = n
			mu.Unlock()
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		httperr.Abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, counts)
}
