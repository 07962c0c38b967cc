package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/meinhoongagan/slot-booking/config"
	"github.com/meinhoongagan/slot-booking/controllers"
	"github.com/meinhoongagan/slot-booking/cron"
	"github.com/meinhoongagan/slot-booking/db"
	"github.com/meinhoongagan/slot-booking/logger"
	"github.com/meinhoongagan/slot-booking/metrics"
	"github.com/meinhoongagan/slot-booking/middleware"
	"github.com/meinhoongagan/slot-booking/redis"
	"github.com/meinhoongagan/slot-booking/repository"
	"github.com/meinhoongagan/slot-booking/routes"
	"github.com/meinhoongagan/slot-booking/services"
	"github.com/meinhoongagan/slot-booking/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}

	gdb, err := db.Open(cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}

	mongoClient, err := db.ConnectMongo(ctx, cfg.MongoURI, log)
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	notifications := repository.NewNotificationRepository(mongoClient.Database(cfg.MongoDB))
	if err := notifications.EnsureIndexes(ctx); err != nil {
		return err
	}

	var cache services.ProviderCache
	redisClient, err := redis.NewClient(ctx, redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, log)
	if err != nil {
		log.Warn("provider cache disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		cache = redis.NewProviderCache(redisClient, cfg.ProviderCacheTTL)
	}

	var avatars services.AvatarStore
	if cfg.CloudinaryEnabled() {
		uploader, err := utils.NewAvatarUploader(utils.CloudinaryConfig{
			CloudName:    cfg.CloudinaryCloudName,
			APIKey:       cfg.CloudinaryAPIKey,
			APISecret:    cfg.CloudinaryAPISecret,
			UploadPreset: cfg.CloudinaryUploadPreset,
		})
		if err != nil {
			return err
		}
		avatars = uploader
	} else {
		log.Warn("cloudinary not configured; avatar uploads disabled")
	}

	collector := metrics.NewCollector("slot_booking")
	opts := []services.Option{
		services.WithLocation(loc),
		services.WithMetrics(collector),
		services.WithFormatter(services.FormatterFor(cfg.NotificationLang)),
	}

	users := repository.NewUserRepository(gdb)
	appointments := repository.NewAppointmentRepository(gdb)

	providerSvc := services.NewProviderService(users, cache, log)
	bookingSvc := services.NewBookingService(users, appointments, notifications, log, opts...)
	listSvc := services.NewAppointmentListService(users, appointments, log, opts...)
	scheduleSvc := services.NewScheduleService(users, appointments, log, opts...)
	availabilitySvc := services.NewAvailabilityService(users, appointments, utils.DefaultWorkingHours, log, opts...)
	accountSvc := services.NewAccountService(users, providerSvc, cfg.JWTSecret, log, opts...)
	profileSvc := services.NewProfileService(users, avatars, providerSvc, log)
	notificationSvc := services.NewNotificationService(users, notifications)

	if cfg.MailEnabled() {
		mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
		reminders := services.NewReminderService(appointments, mailer, log, opts...)
		scheduler, err := cron.Start(cfg.ReminderCron, reminders, loc, log)
		if err != nil {
			return err
		}
		defer func() { <-scheduler.Stop().Done() }()
	} else {
		log.Warn("smtp not configured; appointment reminders disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRatePerMinute/2+1)
	go sweepLimiter(ctx, limiter)

	app := routes.NewApp(routes.Handlers{
		Auth:            controllers.NewAuthController(accountSvc, log),
		Appointments:    controllers.NewAppointmentController(bookingSvc, listSvc, log),
		Schedule:        controllers.NewScheduleController(scheduleSvc, log),
		Providers:       controllers.NewProviderController(providerSvc, availabilitySvc, log),
		Notifications:   controllers.NewNotificationController(notificationSvc, log),
		Profile:         controllers.NewProfileController(profileSvc, log),
		Protected:       middleware.Protected(cfg.JWTSecret, log),
		RequireProvider: middleware.RequireProvider(users, log),
		AuthRateLimit:   limiter.Handler(),
	}, log, collector)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.AppPort), zap.String("timezone", loc.String()))
		errCh <- app.Listen(":" + cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func sweepLimiter(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Sweep(3 * time.Minute)
		}
	}
}
