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

	"github.com/enzoobispoo/EduSystem/config"
	"github.com/enzoobispoo/EduSystem/delivery"
	"github.com/enzoobispoo/EduSystem/middleware"
	"github.com/enzoobispoo/EduSystem/queue"
	"github.com/enzoobispoo/EduSystem/repository"
	"github.com/enzoobispoo/EduSystem/service"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using system environment variables")
	}
	cfg := config.Load()
	utils.InitLogger(cfg.Env)

	// ✅ Register custom validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}

	// Boot DB
	db, err := config.BootDB(cfg)
	if err != nil {
		log.Fatal("❌ Failed to connect to database: ", err)
	}

	// Redis is optional: rate limiting and the redis queue need it
	redisClient, err := config.InitRedisDB(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		log.Fatal("❌ Failed to connect to Redis: ", err)
	}
	if redisClient == nil {
		log.Println("⚠️  REDIS_ADDR not set, rate limiting disabled")
	}

	eventQueue, err := newQueue(cfg, redisClient)
	if err != nil {
		log.Fatal("❌ Failed to init event queue: ", err)
	}
	defer eventQueue.Close()
	events := queue.NewEventPublisher(eventQueue, config.NewCircuitBreaker("event-queue"))

	// Init repositories
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Init services
	payouts := service.NewPayoutGenerator(financeRepo, teacherRepo, cfg.PayoutNominalAmount)
	studentService := service.NewStudentService(studentRepo, courseRepo, events)
	teacherService := service.NewTeacherService(teacherRepo, courseRepo, payouts, events, cfg.Location)
	courseService := service.NewCourseService(courseRepo, events)
	financeService := service.NewFinanceService(financeRepo, payouts, events, cfg.Location)
	dashboardService := service.NewDashboardService(dashboardRepo)
	calendarService := service.NewCalendarService(calendarRepo, teacherRepo, courseRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := service.RunNotificationWorker(workerCtx, eventQueue, notificationService); err != nil {
			log.Printf("❌ Notification worker failed: %v", err)
		}
	}()

	scheduler, err := service.StartPayoutScheduler(cfg.PayoutCron, payouts, cfg.Location)
	if err != nil {
		log.Fatal("❌ Invalid PAYOUT_CRON: ", err)
	}

	// Init Gin
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()
	app.Use(middleware.RequestID(), middleware.AccessLog())
	config.InitMiddleware(app, cfg)
	if cfg.RateLimitEnabled {
		app.Use(middleware.NewRateLimiter(redisClient).Handler())
	}

	// ========================================================================
	// INIT HANDLERS
	// ========================================================================
	delivery.NewHealthHandler(app, db, redisClient)
	delivery.NewDashboardHandler(app, dashboardService)
	delivery.NewStudentHandler(app, studentService)
	delivery.NewTeacherHandler(app, teacherService)
	delivery.NewCourseHandler(app, courseService, cfg.Location)
	delivery.NewFinanceHandler(app, financeService)
	delivery.NewCalendarHandler(app, calendarService, cfg.Location)
	delivery.NewNotificationHandler(app, notificationService)

	// ========================================================================
	// GRACEFUL SHUTDOWN SETUP
	// ========================================================================
	srvAddr := ":" + cfg.Port
	srv := &http.Server{
		Addr:           srvAddr,
		Handler:        app,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("🚀 Server running at http://localhost%s", srvAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}
	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	stopWorker()
	select {
	case <-workerDone:
	case <-ctx.Done():
		log.Println("⚠️  Notification worker did not stop in time")
	}

	log.Println("✅ Server exited gracefully")
}

func newQueue(cfg config.App, rdb *redis.Client) (queue.Queue, error) {
	switch cfg.QueueBackend {
	case "redis":
		if rdb == nil {
			return nil, errors.New("QUEUE_BACKEND=redis requires REDIS_ADDR")
		}
		log.Println("✅ Using Redis event queue")
		return queue.NewRedisQueue(rdb, cfg.QueueName), nil
	case "rabbitmq":
		q, err := queue.NewRabbitMQQueue(cfg.RabbitMQURL, cfg.QueueName)
		if err != nil {
			return nil, err
		}
		log.Println("✅ Using RabbitMQ event queue")
		return q, nil
	default:
		log.Println("✅ Using in-memory event queue")
		return queue.NewInMemory(256), nil
	}
}
