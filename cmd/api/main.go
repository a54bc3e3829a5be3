package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/questionnaire-api/internal/config"
	"github.com/yourusername/questionnaire-api/internal/handler"
	"github.com/yourusername/questionnaire-api/internal/middleware"
	pgRepo "github.com/yourusername/questionnaire-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/questionnaire-api/internal/repository/redis"
	"github.com/yourusername/questionnaire-api/internal/service"
	"github.com/yourusername/questionnaire-api/pkg/auth"
	"github.com/yourusername/questionnaire-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	questionnaireRepo := pgRepo.NewQuestionnaireRepo(db)
	responseRepo := pgRepo.NewResponseRepo(db)

	// Кеш анкет опционален: без Redis сервис работает напрямую с БД
	var cacheRepo *redisRepo.CacheRepo
	if cfg.Redis.Addr != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("WARNING: Redis недоступен, кеш анкет отключен: %v", err)
		} else {
			cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
			if err != nil {
				log.Printf("WARNING: Не удалось создать CacheRepo: %v", err)
			} else {
				log.Println("Successfully connected to Redis")
			}
		}
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)

	var questionnaireService *service.QuestionnaireService
	if cacheRepo != nil {
		questionnaireService = service.NewQuestionnaireService(questionnaireRepo, cacheRepo)
	} else {
		questionnaireService = service.NewQuestionnaireService(questionnaireRepo, nil)
	}

	responseService := service.NewResponseService(responseRepo, questionnaireService)
	reportService := service.NewReportService(responseRepo, questionnaireService)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	questionnaireHandler := handler.NewQuestionnaireHandler(questionnaireService, responseService)
	responseHandler := handler.NewResponseHandler(responseService, questionnaireService)
	adminHandler := handler.NewAdminHandler(reportService, userService)

	// Единственный шлюз сессии для всех защищенных маршрутов
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Инициализируем роутер Gin
	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Аутентификация
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		}

		// Анкеты
		questionnaires := api.Group("/questionnaires")
		questionnaires.Use(authMiddleware.RequireAuth())
		{
			questionnaires.GET("", questionnaireHandler.List)
			questionnaires.GET("/completed", questionnaireHandler.Completed)

			withID := questionnaires.Group("/:id")
			withID.Use(middleware.ExtractUintParam("id", "questionnaireID"))
			{
				withID.GET("", questionnaireHandler.Get)
				withID.POST("/responses", responseHandler.Submit)
				withID.GET("/responses/my", responseHandler.GetOwn)
			}
		}

		// Административные маршруты
		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("/users", adminHandler.ListUsers)

			adminUser := admin.Group("/users/:id")
			adminUser.Use(middleware.ExtractUintParam("id", "targetUserID"))
			{
				adminUser.GET("/responses", adminHandler.UserResponses)
				adminUser.GET("/responses/export", adminHandler.ExportUserResponses)
			}
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
