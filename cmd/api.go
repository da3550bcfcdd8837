package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/satindersinghsall/portfolio-api/internal/web"
	accountCtl "github.com/satindersinghsall/portfolio-api/internal/web/account/controller"
	accountDao "github.com/satindersinghsall/portfolio-api/internal/web/account/dao"
	accountSvc "github.com/satindersinghsall/portfolio-api/internal/web/account/service"
	blogCtl "github.com/satindersinghsall/portfolio-api/internal/web/blog/controller"
	blogDao "github.com/satindersinghsall/portfolio-api/internal/web/blog/dao"
	blogSvc "github.com/satindersinghsall/portfolio-api/internal/web/blog/service"
	contactCtl "github.com/satindersinghsall/portfolio-api/internal/web/contact/controller"
	contactDao "github.com/satindersinghsall/portfolio-api/internal/web/contact/dao"
	contactSvc "github.com/satindersinghsall/portfolio-api/internal/web/contact/service"
	freelanceCtl "github.com/satindersinghsall/portfolio-api/internal/web/freelance/controller"
	freelanceDao "github.com/satindersinghsall/portfolio-api/internal/web/freelance/dao"
	freelanceSvc "github.com/satindersinghsall/portfolio-api/internal/web/freelance/service"
	projectCtl "github.com/satindersinghsall/portfolio-api/internal/web/project/controller"
	projectDao "github.com/satindersinghsall/portfolio-api/internal/web/project/dao"
	projectSvc "github.com/satindersinghsall/portfolio-api/internal/web/project/service"
	uploadCtl "github.com/satindersinghsall/portfolio-api/internal/web/upload/controller"
	uploadDao "github.com/satindersinghsall/portfolio-api/internal/web/upload/dao"
	youtubeCtl "github.com/satindersinghsall/portfolio-api/internal/web/youtube/controller"
	youtubeDao "github.com/satindersinghsall/portfolio-api/internal/web/youtube/dao"
	youtubeSvc "github.com/satindersinghsall/portfolio-api/internal/web/youtube/service"
	"github.com/satindersinghsall/portfolio-api/library/auth"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/db/s3"
	"github.com/satindersinghsall/portfolio-api/library/log"
)

var apiCMD = &cobra.Command{
	Use:   "api",
	Short: "api",
	Long:  `REST API service for the portfolio site`,
	Args:  gcmd.NoExtraArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		ctls, err := buildControllers(ctx)
		if err != nil {
			log.Logger.Panic("build controllers", zap.Error(err))
		}

		web.RunServer(gconfig.Shared.GetString("listen"), ctls)
	},
}

// buildControllers connects backing stores and wires every vertical.
func buildControllers(ctx context.Context) (*web.Controllers, error) {
	db, err := mongo.NewDB(ctx, mongo.DialInfo{
		Addr:   gconfig.Shared.GetString("settings.db.addr"),
		DBName: gconfig.Shared.GetString("settings.db.db"),
		User:   gconfig.Shared.GetString("settings.db.user"),
		Pwd:    gconfig.Shared.GetString("settings.db.pwd"),
	})
	if err != nil {
		return nil, err
	}

	s3Cli, err := s3.New(s3.Config{
		Endpoint:  gconfig.Shared.GetString("settings.s3.endpoint"),
		AccessKey: gconfig.Shared.GetString("settings.s3.access_key"),
		SecretKey: gconfig.Shared.GetString("settings.s3.secret_key"),
		UseSSL:    gconfig.Shared.GetBool("settings.s3.use_ssl"),
	})
	if err != nil {
		return nil, err
	}

	tokenIssuer, err := auth.New([]byte(gconfig.Shared.GetString("settings.jwt.secret")))
	if err != nil {
		return nil, err
	}

	account, err := accountSvc.New(ctx, log.Logger.Named("account"),
		accountDao.New(log.Logger.Named("account_dao"), db), tokenIssuer)
	if err != nil {
		return nil, err
	}

	blog, err := blogSvc.New(ctx, log.Logger.Named("blog"),
		blogDao.New(log.Logger.Named("blog_dao"), db))
	if err != nil {
		return nil, err
	}

	project := projectSvc.New(log.Logger.Named("project"),
		projectDao.New(log.Logger.Named("project_dao"), db))
	freelance := freelanceSvc.New(log.Logger.Named("freelance"),
		freelanceDao.New(log.Logger.Named("freelance_dao"), db))
	youtube := youtubeSvc.New(log.Logger.Named("youtube"),
		youtubeDao.New(log.Logger.Named("youtube_dao"), db))
	contact := contactSvc.New(log.Logger.Named("contact"),
		contactDao.New(log.Logger.Named("contact_dao"), db))

	return &web.Controllers{
		Auth:      tokenIssuer,
		Account:   accountCtl.New(account),
		Blog:      blogCtl.New(blog),
		Project:   projectCtl.New(project),
		Freelance: freelanceCtl.New(freelance),
		YouTube:   youtubeCtl.New(youtube),
		Contact:   contactCtl.New(contact),
		Upload: uploadCtl.New(
			uploadDao.New(log.Logger.Named("upload_dao"), db, s3Cli)),
		Dashboard: web.NewDashboard(
			blog, project, freelance, youtube, contact),
	}, nil
}

func init() {
	rootCMD.AddCommand(apiCMD)
}
