package setup

import (
	"strings"

	"github.com/portfolio-dev/portfolio-api/internal/config"
	"github.com/portfolio-dev/portfolio-api/internal/handler"
	"github.com/portfolio-dev/portfolio-api/internal/jwt"
	"github.com/portfolio-dev/portfolio-api/internal/middleware"
	"github.com/portfolio-dev/portfolio-api/internal/service"
	"github.com/portfolio-dev/portfolio-api/internal/storage/pg"
	"github.com/portfolio-dev/portfolio-api/internal/utils"
)

// Dependencies holds everything main and the tests need to run the service.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// newVerifier picks bcrypt verification when the configured password is a
// bcrypt hash, plain comparison otherwise.
func newVerifier(cfg *config.Config) service.CredentialVerifier {
	if strings.HasPrefix(cfg.Private.AdminPassword, "$2") {
		return &utils.BcryptVerifier{Email: cfg.Private.AdminEmail, PasswordHash: cfg.Private.AdminPassword}
	}
	return &utils.StaticVerifier{Email: cfg.Private.AdminEmail, Password: cfg.Private.AdminPassword}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.SessionTTL())

	project := service.NewProject(storage, &utils.ProjectValidator{})
	contact := service.NewContact(storage, utils.NewStrictSanitizer())
	auth := service.NewAuth(newVerifier(cfg), tokens)

	h := handler.New(project, contact, auth, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
		Config:         cfg,
	}, nil
}
