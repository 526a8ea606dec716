package main

import (
	"log/slog"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/middleware"
	"app/internal/ratelimit"
	"app/internal/server"
	"app/internal/token"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数だけ）
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Note{},
	); err != nil {
		logger.Error("db migrate failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	noteRepo := infraRepo.NewNoteGormRepository(gormDB)

	//署名キーは起動時に1回だけ読み込む
	tokens := token.NewService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	//固定ウィンドウ（1分）のレート制限
	limiter := ratelimit.NewLimiter(cfg.RateLimitPerMinute, time.Minute)
	guard := middleware.NewRateLimitGuard(limiter)

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := usecase.NewBcryptPasswordHasher(0)
	verifier := usecase.NewBcryptPasswordVerifier()

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, tokens, hasher, verifier, validator.NewAuthValidator(), logger)
	noteUC := usecase.NewNoteUsecase(noteRepo, logger)
	userUC := usecase.NewUserUsecase(userRepo, logger)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, guard)
	noteH := handler.NewNoteHandler(noteUC)
	userH := handler.NewUserHandler(userUC)

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	e := server.New(logger, tokens, authH, noteH, userH)
	if err := server.Start(e, addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
