// File: docbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docbook/config"
	"docbook/cron"
	"docbook/database"
	appointmentRepo "docbook/database/repository/appointment"
	doctorRepo "docbook/database/repository/doctor"
	userRepoPkg "docbook/database/repository/user"
	"docbook/database/seed"
	"docbook/handlers"
	"docbook/middleware"
	"docbook/models"
	"docbook/routes"
	"docbook/services/appointment"
	"docbook/services/auth"
	"docbook/services/booking"
	"docbook/services/directory"
	"docbook/services/tasks"
	"docbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type repositories struct {
	doctors      doctorRepo.DoctorRepository
	users        userRepoPkg.UserRepository
	appointments appointmentRepo.AppointmentRepository
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	repos := mustRepositories(bgCtx, logger)
	loc := config.Location()

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Repo:          repos.doctors,
		SpecialtyList: seed.Specialties,
		SlotGrid:      seed.TimeSlots(),
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:   repos.appointments,
		Logger: logger,
	}

	var (
		revoked      auth.RevocationStore
		sessionStore booking.SessionStore
		redisClients []*redis.Client
	)
	if config.AppConfig.SessionDriver == "redis" {
		sessionClient := utils.GetSessionCacheClient()
		authClient := utils.GetAuthCacheClient()
		redisClients = append(redisClients, sessionClient, authClient)
		sessionStore = booking.NewRedisSessionStore(sessionClient, config.SessionTTL())
		revoked = auth.NewRedisRevocationStore(authClient)
	} else {
		sessionStore = booking.NewMemorySessionStore(config.SessionTTL())
		revoked = auth.NewMemoryRevocationStore()
	}

	authService := &auth.DefaultAuthService{
		Repo:     repos.users,
		Revoked:  revoked,
		Secret:   []byte(config.AppConfig.JWTSecret),
		TokenTTL: config.TokenTTL(),
		Logger:   logger,
	}

	hooks := []booking.CompletionHook{appointmentService.Record}

	var (
		reminderClient *asynq.Client
		reminderWorker *asynq.Server
	)
	if config.AppConfig.RemindersEnabled {
		queueOpts := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}
		reminderClient = asynq.NewClient(queueOpts)
		reminderWorker = cron.InitReminderWorker(queueOpts, logger)

		scheduler := &tasks.ReminderScheduler{
			Client:   reminderClient,
			Lead:     time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
			Location: loc,
			Logger:   logger,
		}
		hooks = append(hooks, scheduler.OnBooked)
	}

	bookingService := &booking.DefaultBookingSessionService{
		Directory:    directoryService,
		Store:        sessionStore,
		OnComplete:   hooks,
		WindowMonths: config.AppConfig.BookingWindowMonths,
		Location:     loc,
		Logger:       logger,
	}

	utils.StartHealthMonitor(bgCtx, redisClients, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(utils.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	handlerBundle := handlers.NewHandlerBundle(
		authService,
		handlers.NewAuthHandler(authService, appointmentService),
		handlers.NewDirectoryHandler(directoryService, loc),
		handlers.NewAppointmentHandler(appointmentService),
		handlers.NewBookingHandler(bookingService),
		handlers.HealthHandler,
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stopBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if reminderClient != nil {
		if err := reminderClient.Close(); err != nil {
			logger.Warn("main: failed to close reminder client", zap.Error(err))
		}
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// mustRepositories builds the repositories for STORE_DRIVER and loads the
// seed catalogue and demo account into them.
func mustRepositories(ctx context.Context, logger *zap.Logger) repositories {
	var repos repositories

	switch config.AppConfig.StoreDriver {
	case "mongo":
		if err := database.InitDB(ctx); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		db := database.Database()

		doctors, err := doctorRepo.NewMongoDoctorRepo(db)
		if err != nil {
			logger.Sugar().Fatalf("main: doctor repository: %v", err)
		}
		users, err := userRepoPkg.NewMongoUserRepo(db)
		if err != nil {
			logger.Sugar().Fatalf("main: user repository: %v", err)
		}
		appts, err := appointmentRepo.NewMongoAppointmentRepo(db)
		if err != nil {
			logger.Sugar().Fatalf("main: appointment repository: %v", err)
		}
		for _, d := range seed.Doctors() {
			if err := doctors.Upsert(ctx, d); err != nil {
				logger.Sugar().Fatalf("main: seeding doctor %s: %v", d.ID, err)
			}
		}
		if err := seedAppointments(ctx, appts); err != nil {
			logger.Sugar().Fatalf("main: seeding appointments: %v", err)
		}
		repos = repositories{doctors: doctors, users: users, appointments: appts}
	default:
		repos = repositories{
			doctors:      doctorRepo.NewMemoryDoctorRepo(seed.Doctors()),
			users:        userRepoPkg.NewMemoryUserRepo(),
			appointments: appointmentRepo.NewMemoryAppointmentRepo(seed.Appointments()),
		}
	}

	demo := models.User{
		ID:        seed.DemoUserID,
		Name:      "Jane Doe",
		Email:     seed.DemoUserEmail,
		Phone:     "555-0100",
		CreatedAt: time.Now(),
	}
	if err := auth.SeedUser(ctx, repos.users, demo, seed.DemoUserPassword); err != nil {
		logger.Sugar().Fatalf("main: seeding demo user: %v", err)
	}
	logger.Info("repositories ready", zap.String("driver", config.AppConfig.StoreDriver))
	return repos
}

// seedAppointments loads the demo history once; later restarts keep whatever
// the demo user has booked since.
func seedAppointments(ctx context.Context, repo appointmentRepo.AppointmentRepository) error {
	existing, err := repo.ListByUser(ctx, seed.DemoUserID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, a := range seed.Appointments() {
		if err := repo.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
