package app

import (
	"context"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	authAPI "scroggy_backend/internal/api/auth"
	lbAPI "scroggy_backend/internal/api/leaderboard"
	slotAPI "scroggy_backend/internal/api/slot"
	"scroggy_backend/internal/config"
	"scroggy_backend/internal/config/env"
	"scroggy_backend/internal/engine"
	"scroggy_backend/internal/middleware"
	"scroggy_backend/internal/repository"
	"scroggy_backend/internal/repository/auth_repo"
	"scroggy_backend/internal/repository/player_repo"
	"scroggy_backend/internal/repository/user_repo"
	"scroggy_backend/internal/service"
	"scroggy_backend/internal/service/auth"
	"scroggy_backend/internal/service/leaderboard"
	"scroggy_backend/internal/service/slot"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager
	ctxGetter *trmpgx.CtxGetter

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logging and time
	log   *logrus.Logger
	clock quartz.Clock

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Slot bits
	slotCfg    config.SlotConfig
	eng        *engine.Engine
	playerRepo repository.PlayerRepository
	slotServ   service.SlotService
	slotHand   *slotAPI.Handler

	// Leaderboard bits
	lbServ service.LeaderboardService
	lbHand *lbAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) Logger() *logrus.Logger {
	if sp.log == nil {
		log := logrus.New()
		log.SetFormatter(&logrus.JSONFormatter{})
		sp.log = log
	}
	return sp.log
}

func (sp *ServiceProvider) Clock() quartz.Clock {
	if sp.clock == nil {
		sp.clock = quartz.NewReal()
	}
	return sp.clock
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

func (sp *ServiceProvider) CtxGetter() *trmpgx.CtxGetter {
	if sp.ctxGetter == nil {
		sp.ctxGetter = trmpgx.DefaultCtxGetter
	}
	return sp.ctxGetter
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) Engine() *engine.Engine {
	if sp.eng == nil {
		// Движок общий для всех хендлеров, поэтому rng - только с блокировкой
		rng := engine.NewRand(time.Now().UnixNano())
		sp.eng = engine.New(sp.SlotCfg().Tables(), rng, sp.Clock())
	}
	return sp.eng
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.userRepo
}

func (sp *ServiceProvider) PlayerRepo(ctx context.Context) repository.PlayerRepository {
	if sp.playerRepo == nil {
		sp.playerRepo = player_repo.NewPlayerRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.playerRepo
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), sp.CtxGetter())
	}
	return sp.authRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.PlayerRepo(ctx),
			sp.JWTConfig(),
			sp.Clock(),
			sp.SlotCfg().Tables().InitialBalance,
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) SlotService(ctx context.Context) service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(
			sp.PlayerRepo(ctx),
			sp.UserRepo(ctx),
			sp.Engine(),
			sp.TXManager(ctx),
			sp.Clock(),
			sp.Logger(),
		)
	}
	return sp.slotServ
}

func (sp *ServiceProvider) LeaderboardService(ctx context.Context) service.LeaderboardService {
	if sp.lbServ == nil {
		sp.lbServ = leaderboard.NewLeaderboardService(sp.PlayerRepo(ctx))
	}
	return sp.lbServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) SlotHandler(ctx context.Context) *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(ctx),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) LeaderboardHandler(ctx context.Context) *lbAPI.Handler {
	if sp.lbHand == nil {
		sp.lbHand = lbAPI.NewHandler(lbAPI.HandlerDeps{
			Serv: sp.LeaderboardService(ctx),
		})
	}
	return sp.lbHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Slot endpoints, требуют access токен
		slotHandler := sp.SlotHandler(ctx)
		r.Route("/slot", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTConfig()))
			rr.Post("/spin", slotHandler.Spin)
			rr.Post("/restart", slotHandler.Restart)
			rr.Post("/deposit", slotHandler.Deposit)
			rr.Get("/check-data", slotHandler.CheckData)
		})

		// Leaderboard открыт без авторизации
		r.Get("/leaderboard", sp.LeaderboardHandler(ctx).Top)

		sp.router = r
	}

	return sp.router
}
