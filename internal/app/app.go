package app

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/config"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/handlers"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/pdf"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/routes"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	_ "github.com/King-Austin/ATTENDIFY-BACKEND/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	courseRepo := repositories.NewCourseRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.OriginURL,
	)
	telegramService := services.NewTelegramService(
		cfg.Telegram.BotToken,
		cfg.Telegram.AdminChatID,
		cfg.Telegram.DryRun,
	)
	activityService := services.NewActivityService(activityRepo)
	tokenService := services.NewTokenService(userRepo, cfg.JWT)
	authService := services.NewAuthService(userRepo, tokenService, emailService, activityService, telegramService)
	userService := services.NewUserService(userRepo, emailService, activityService, telegramService)
	courseService := services.NewCourseService(courseRepo, activityService)
	studentService := services.NewStudentService(studentRepo, courseRepo, activityService)
	sessionService := services.NewSessionService(sessionRepo)

	// PDF генератор для ведомостей посещаемости
	pdfGen := pdf.NewRegisterGenerator(cfg.Files.RootDir)

	attendanceService := services.NewAttendanceService(
		attendanceRepo,
		studentRepo,
		courseRepo,
		sessionRepo,
		activityService,
		pdfGen,
	)

	// === Handlers ===
	dev := cfg.Server.DevMode
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT.CookieExpires, dev)
	userHandler := handlers.NewUserHandler(userService, dev)
	courseHandler := handlers.NewCourseHandler(courseService, dev)
	studentHandler := handlers.NewStudentHandler(studentService, dev)
	sessionHandler := handlers.NewSessionHandler(sessionService, dev)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, dev)
	activityHandler := handlers.NewActivityHandler(activityService, dev)

	// === Gin ===
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.OriginURL))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Роуты (JWT/RBAC — внутри SetupRoutes)
	routes.SetupRoutes(
		router,
		tokenService,
		authHandler,
		userHandler,
		courseHandler,
		studentHandler,
		sessionHandler,
		attendanceHandler,
		activityHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

// Куки сессии ходят с credentials, поэтому origin должен быть конкретным.
func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
