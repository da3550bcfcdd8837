// Package web gin server
package web

import (
	"net/http"
	"net/url"
	"strings"

	ginMw "github.com/Laisky/gin-middlewares/v7"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	accountCtl "github.com/satindersinghsall/portfolio-api/internal/web/account/controller"
	blogCtl "github.com/satindersinghsall/portfolio-api/internal/web/blog/controller"
	contactCtl "github.com/satindersinghsall/portfolio-api/internal/web/contact/controller"
	freelanceCtl "github.com/satindersinghsall/portfolio-api/internal/web/freelance/controller"
	projectCtl "github.com/satindersinghsall/portfolio-api/internal/web/project/controller"
	uploadCtl "github.com/satindersinghsall/portfolio-api/internal/web/upload/controller"
	youtubeCtl "github.com/satindersinghsall/portfolio-api/internal/web/youtube/controller"
	"github.com/satindersinghsall/portfolio-api/library/auth"
	"github.com/satindersinghsall/portfolio-api/library/log"
)

var server = gin.New()

// Controllers bundles everything the HTTP surface mounts.
type Controllers struct {
	Auth      *auth.Auth
	Account   *accountCtl.Account
	Blog      *blogCtl.Blog
	Project   *projectCtl.Project
	Freelance *freelanceCtl.Freelance
	YouTube   *youtubeCtl.YouTube
	Contact   *contactCtl.Contact
	Upload    *uploadCtl.Upload
	Dashboard *Dashboard
}

// RunServer mounts all routes and blocks serving HTTP on addr.
func RunServer(addr string, ctls *Controllers) {
	server.Use(
		gin.Recovery(),
		ginMw.NewLoggerMiddleware(
			ginMw.WithLoggerMwColored(),
			ginMw.WithLevel(log.Logger.Level().String()),
			ginMw.WithLogger(log.Logger.Named("gin")),
		),
		allowCORS,
	)
	if !gconfig.Shared.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := ginMw.EnableMetric(server); err != nil {
		log.Logger.Panic("enable metric server", zap.Error(err))
	}

	server.Any("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world")
	})

	api := server.Group("/api")
	requireAdmin := []gin.HandlerFunc{
		ctls.Auth.RequireLogin(),
		auth.RequireAdmin(),
	}

	api.POST("/auth/login", ctls.Account.Login)

	ctls.Blog.RegisterRoutes(
		api.Group("/blogs"),
		api.Group("/blogs", requireAdmin...))
	ctls.Project.RegisterRoutes(
		api.Group("/projects"),
		api.Group("/projects", requireAdmin...))
	ctls.Freelance.RegisterRoutes(
		api.Group("/freelance"),
		api.Group("/freelance", requireAdmin...))
	ctls.YouTube.RegisterRoutes(
		api.Group("/youtube"),
		api.Group("/youtube", requireAdmin...))
	ctls.Contact.RegisterRoutes(
		api.Group("/contact"),
		api.Group("/contact", requireAdmin...))
	ctls.Upload.RegisterRoutes(api.Group("/upload", requireAdmin...))

	api.GET("/dashboard", append(requireAdmin, ctls.Dashboard.Counts)...)

	log.Logger.Info("listening on http", zap.String("addr", addr))
	log.Logger.Panic("httpServer exit", zap.Error(server.Run(addr)))
}

// allowCORS reflects the Origin header for hosts on the configured
// allow-list (settings.cors.allowed_hosts), answering preflights inline.
func allowCORS(ctx *gin.Context) {
	origin := ctx.Request.Header.Get("Origin")
	allowedOrigin := ""

	if origin != "" {
		parsedOriginURL, err := url.Parse(origin)
		if err == nil {
			host := strings.ToLower(parsedOriginURL.Hostname())
			for _, allowed := range gconfig.Shared.GetStringSlice("settings.cors.allowed_hosts") {
				allowed = strings.ToLower(allowed)
				if host == allowed || strings.HasSuffix(host, "."+allowed) {
					allowedOrigin = origin
					break
				}
			}
		}
	}

	if allowedOrigin != "" {
		ctx.Header("Access-Control-Allow-Origin", allowedOrigin)
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS, HEAD")
		ctx.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, Origin, X-Requested-With")
		ctx.Header("Access-Control-Max-Age", "86400") // 24 hours
		ctx.Header("Vary", "Origin")

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}
	} else if origin != "" && ctx.Request.Method == http.MethodOptions {
		// deny preflights from disallowed origins
		ctx.AbortWithStatus(http.StatusForbidden)
		return
	}

	ctx.Next()
}
