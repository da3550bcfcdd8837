package cmd

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	accountDao "github.com/satindersinghsall/portfolio-api/internal/web/account/dao"
	accountSvc "github.com/satindersinghsall/portfolio-api/internal/web/account/service"
	"github.com/satindersinghsall/portfolio-api/library/auth"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/log"
)

// seedAdminCMD creates the admin account out-of-band; there is no
// self-registration endpoint.
var seedAdminCMD = &cobra.Command{
	Use:   "seed-admin",
	Short: "create the admin account",
	Long:  `create the single admin account used to manage content`,
	PreRun: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if err := initialize(ctx, cmd); err != nil {
			log.Logger.Panic("init", zap.Error(err))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		email, err := cmd.Flags().GetString("email")
		if err != nil {
			log.Logger.Panic("get email flag", zap.Error(err))
		}
		password, err := cmd.Flags().GetString("password")
		if err != nil {
			log.Logger.Panic("get password flag", zap.Error(err))
		}

		db, err := mongo.NewDB(ctx, mongo.DialInfo{
			Addr:   gconfig.Shared.GetString("settings.db.addr"),
			DBName: gconfig.Shared.GetString("settings.db.db"),
			User:   gconfig.Shared.GetString("settings.db.user"),
			Pwd:    gconfig.Shared.GetString("settings.db.pwd"),
		})
		if err != nil {
			log.Logger.Panic("connect db", zap.Error(err))
		}
		defer db.Close(ctx) //nolint:errcheck

		tokenIssuer, err := auth.New([]byte(gconfig.Shared.GetString("settings.jwt.secret")))
		if err != nil {
			log.Logger.Panic("new auth", zap.Error(err))
		}

		svc, err := accountSvc.New(ctx, log.Logger.Named("account"),
			accountDao.New(log.Logger.Named("account_dao"), db), tokenIssuer)
		if err != nil {
			log.Logger.Panic("new account service", zap.Error(err))
		}

		user, err := svc.CreateAdmin(ctx, email, password)
		if err != nil {
			log.Logger.Panic("create admin", zap.Error(err))
		}

		log.Logger.Info("created admin", zap.String("email", user.Email))
	},
}

func init() {
	seedAdminCMD.Flags().String("email", "", "admin email")
	seedAdminCMD.Flags().String("password", "", "admin password")
	_ = seedAdminCMD.MarkFlagRequired("email")
	_ = seedAdminCMD.MarkFlagRequired("password")

	rootCMD.AddCommand(seedAdminCMD)
}
