package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MemberHub/cache"
	"MemberHub/config"
	"MemberHub/core/member"
	"MemberHub/db"
	"MemberHub/logger"
	"MemberHub/repository"

	"github.com/gorilla/mux"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      cfg.LogLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     14,
		Compress:   true,
	})

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		logger.Fatal("Failed to connect to database", logger.ErrorField(err))
	}
	defer db.DB.Close()

	// 初始化失败只记录不终止，已有部署的表结构仍然可用
	if err := db.InitDB(); err != nil {
		logger.Error("Failed to initialize database", logger.ErrorField(err))
	}

	// Redis 不可用时降级为无缓存运行
	var memberCache *cache.MemberCache
	if err := db.ConnectRedis(cfg); err != nil {
		logger.Warn("Redis unavailable, running without member cache", logger.ErrorField(err))
	} else {
		defer db.CloseRedis()
		memberCache = cache.NewMemberCache(db.RedisClient, 10*time.Minute)
		logger.Info("Successfully connected to Redis")
	}

	memberRepo := repository.NewMySQLMemberRepository(db.DB)
	store := member.NewStore(memberRepo, memberCache)
	handler := NewMemberHandler(store)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      NewRouter(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 创建一个通道来接收操作系统信号
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 在goroutine中启动服务器
	go func() {
		logger.Info("Server starting", logger.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.ErrorField(err))
		}
	}()

	// 等待中断信号
	<-stop
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	logger.Info("Server stopped")
}

// NewRouter wires all membership routes. Split out of Start so handler tests
// can run against the same routing table.
func NewRouter(h *MemberHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogMiddleware)

	router.HandleFunc("/", h.IndexHandler).Methods(http.MethodGet)
	router.HandleFunc("/register", h.RegisterFormHandler).Methods(http.MethodGet)
	router.HandleFunc("/register", h.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc("/login", h.LoginFormHandler).Methods(http.MethodGet)
	router.HandleFunc("/login", h.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc("/error", h.ErrorHandler).Methods(http.MethodGet)
	router.HandleFunc("/welcome", h.WelcomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/edit_profile/{iid}", h.EditProfileFormHandler).Methods(http.MethodGet)
	router.HandleFunc("/edit_profile/{iid}", h.EditProfileHandler).Methods(http.MethodPost)
	router.HandleFunc("/delete_user/{iid}", h.DeleteMemberHandler).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.HealthHandler).Methods(http.MethodGet)

	return router
}
