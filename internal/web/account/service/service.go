// Package service is the service layer of admin accounts.
package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/satindersinghsall/portfolio-api/internal/web/account/dao"
	"github.com/satindersinghsall/portfolio-api/internal/web/account/model"
	"github.com/satindersinghsall/portfolio-api/library/auth"
	"github.com/satindersinghsall/portfolio-api/library/db/mongo"
	"github.com/satindersinghsall/portfolio-api/library/httperr"
)

// Account account service
type Account struct {
	logger logSDK.Logger
	dao    *dao.Account
	auth   *auth.Auth
}

// New creates the account service and ensures the unique email index.
func New(ctx context.Context,
	logger logSDK.Logger,
	dao *dao.Account,
	auth *auth.Auth) (*Account, error) {
	s := &Account{
		logger: logger,
		dao:    dao,
		auth:   auth,
	}

	if err := dao.SetupIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "setup account indexes")
	}

	return s, nil
}

// LoginResult is what a successful login returns to the client.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login verifies email+password and issues a bearer credential embedding
// the subject id and role, valid for one hour.
func (s *Account) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.Wrap(httperr.ErrValidation, "email and password are required")
	}

	user, err := s.dao.GetByEmail(ctx, email)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.Wrap(httperr.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "load user")
	}

	if err = gcrypto.VerifyHashedPassword([]byte(password), user.Password); err != nil {
		s.logger.Debug("password mismatch", zap.String("email", email))
		return nil, errors.Wrap(httperr.ErrUnauthenticated, model.ErrInvalidCredentials.Error())
	}

	token, err := s.auth.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}

	return &LoginResult{Token: token, User: user}, nil
}

// CreateAdmin inserts an admin account with a hashed password.
// Used by the seed-admin command only; there is no registration endpoint.
func (s *Account) CreateAdmin(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, errors.New("empty email or password")
	}

	hashed, err := gcrypto.PasswordHash([]byte(password), gutils.HashTypeSha256)
	if err != nil {
		return nil, errors.Wrapf(err, "generate password hash for %q", email)
	}

	user := model.NewUser()
	user.Email = email
	user.Password = hashed
	user.Role = auth.RoleAdmin

	if err = s.dao.Insert(ctx, user); err != nil {
		if mongo.IsDup(err) {
			return nil, errors.Errorf("user %q already exists", email)
		}

		return nil, errors.WithStack(err)
	}

	s.logger.Info("created admin user", zap.String("email", email))
	return user, nil
}
