package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httphandlers "github.com/estudai/estudai-backend/internal/handlers/http"
	"github.com/estudai/estudai-backend/internal/handlers/middleware"
	"github.com/estudai/estudai-backend/internal/infrastructure/config"
	"github.com/estudai/estudai-backend/internal/infrastructure/i18n"
	"github.com/estudai/estudai-backend/internal/infrastructure/logging"
	"github.com/estudai/estudai-backend/internal/infrastructure/persistence/postgres"
	"github.com/estudai/estudai-backend/internal/infrastructure/security"
	"github.com/estudai/estudai-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting estudai backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n (locales embutidos no binário)
	i18nService, err := i18n.NewService(i18n.Locales, "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	usuarioRepo := postgres.NewUsuarioRepository(db)
	mensagemRepo := postgres.NewMensagemRepository(db)
	notaRepo := postgres.NewNotaRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	hasher := security.NewBcryptHasher(cfg.Security.BcryptCost)
	usuarioService := services.NewUsuarioService(usuarioRepo, uow, hasher, logger)
	comunidadeService := services.NewComunidadeService(mensagemRepo, logger)
	notaService := services.NewNotaService(notaRepo, logger)

	// Inicializar handlers
	usuarioHandler := httphandlers.NewUsuarioHandler(usuarioService)
	comunidadeHandler := httphandlers.NewComunidadeHandler(comunidadeService)
	notaHandler := httphandlers.NewNotaHandler(notaService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware de correlação de requisições
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Rotas da API (caminhos históricos do sistema original)
	router.GET("/Usuarios", usuarioHandler.ListarUsuarios)
	router.POST("/Cadastrar", usuarioHandler.Cadastrar)
	router.POST("/Login", usuarioHandler.Login)
	router.GET("/Perfil/:id", usuarioHandler.BuscarPerfil)
	router.PUT("/Perfil/:id", usuarioHandler.AtualizarPerfil)

	router.POST("/Comunidade/Mensagem", comunidadeHandler.Postar)
	router.GET("/Comunidade/Mensagem", comunidadeHandler.Listar)
	router.GET("/Comunidade/Mensagem/:usuario_id", comunidadeHandler.ListarPorUsuario)

	router.GET("/Notas/:usuario_id", notaHandler.Listar)
	router.POST("/Notas", notaHandler.Criar)
	router.PUT("/Notas/:id", notaHandler.Atualizar)
	router.DELETE("/Notas/:id", notaHandler.Remover)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
