package di

import (
	"context"

	"gorm.io/gorm"

	"jobupdate/application/serviceimpl"
	"jobupdate/domain/ports"
	"jobupdate/domain/repositories"
	"jobupdate/domain/services"
	"jobupdate/infrastructure/feeds"
	natspkg "jobupdate/infrastructure/nats"
	"jobupdate/infrastructure/postgres"
	redispkg "jobupdate/infrastructure/redis"
	"jobupdate/infrastructure/telegram"
	"jobupdate/infrastructure/whatsapp"
	"jobupdate/interfaces/api/handlers"
	"jobupdate/pkg/config"
	"jobupdate/pkg/logger"
	"jobupdate/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional cache, nil when Redis is absent
	EventBus       ports.EventBus   // optional, nil when NATS is absent
	Fetcher        ports.FeedFetcher
	Sources        []ports.Source
	Channels       []ports.ChannelPublisher
	EventScheduler scheduler.EventScheduler

	// Repositories
	JobRepository           repositories.JobRepository
	AutomationLogRepository repositories.AutomationLogRepository

	// Services
	JobService       services.JobService
	PipelineService  services.PipelineService
	LifecycleService services.LifecycleService
	PublishService   services.PublishService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initEventSubscriber(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis (optional, cache and run lock degrade gracefully)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
		}
	}

	// NATS event bus (optional, pipeline falls back to direct publisher calls)
	if c.Config.NATS.URL != "" {
		bus, err := natspkg.NewEventBus(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS event bus initialization failed (direct posting)", "error", err)
		} else {
			c.EventBus = bus
		}
	}

	// Feed fetcher and source catalog
	c.Fetcher = feeds.NewHTTPFetcher(&c.Config.Fetch)
	c.Sources = feeds.DefaultSources()
	logger.Info("Feed fetcher initialized", "sources", len(c.Sources), "concurrency", c.Config.Fetch.Concurrency)

	// Messaging channels; unconfigured ones stay registered but are skipped
	// by the publisher
	c.Channels = []ports.ChannelPublisher{
		telegram.NewPublisher(&c.Config.Telegram, &c.Config.Site),
		whatsapp.NewPublisher(&c.Config.WhatsApp, &c.Config.Site),
	}
	for _, ch := range c.Channels {
		logger.Info("Channel registered", "channel", ch.Name(), "configured", ch.IsConfigured())
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.JobRepository = postgres.NewJobRepository(c.DB)
	c.AutomationLogRepository = postgres.NewAutomationLogRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.JobService = serviceimpl.NewJobService(c.JobRepository, c.AutomationLogRepository, c.RedisClient)
	c.LifecycleService = serviceimpl.NewLifecycleService(c.JobRepository, c.AutomationLogRepository, c.RedisClient, &c.Config.Fetch)
	c.PublishService = serviceimpl.NewPublishService(c.JobRepository, c.AutomationLogRepository, c.Channels)
	c.PipelineService = serviceimpl.NewPipelineService(
		c.Sources,
		c.Fetcher,
		c.JobRepository,
		c.AutomationLogRepository,
		c.LifecycleService,
		c.PublishService,
		c.EventBus,
		c.RedisClient,
		&c.Config.Fetch,
	)
	logger.Info("Services initialized")
	return nil
}

// initEventSubscriber wires the autopost subscriber when a broker is present
func (c *Container) initEventSubscriber() error {
	if c.EventBus == nil {
		return nil
	}

	err := c.EventBus.SubscribeRunEvents(func(event *ports.RunEvent) {
		ctx := context.Background()
		logger.Info("Run event received", "runType", event.RunType, "created", event.Created)
		if _, err := c.PublishService.AutoPost(ctx); err != nil {
			logger.Error("Auto post from run event failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	if !c.Config.Cron.Enabled {
		logger.Info("Internal scheduler disabled, external cron triggers only")
		return nil
	}

	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	err := c.EventScheduler.AddJob("pipeline-run", c.Config.Cron.FetchExpr, func() {
		ctx := context.Background()
		if _, err := c.PipelineService.Run(ctx); err != nil {
			logger.Error("Scheduled pipeline run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	err = c.EventScheduler.AddJob("lifecycle-sweep", c.Config.Cron.CleanupExpr, func() {
		ctx := context.Background()
		if _, err := c.LifecycleService.Sweep(ctx); err != nil {
			logger.Error("Scheduled sweep failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	logger.Info("Scheduled jobs registered",
		"fetch", c.Config.Cron.FetchExpr,
		"cleanup", c.Config.Cron.CleanupExpr,
	)
	return nil
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		JobService:       c.JobService,
		PipelineService:  c.PipelineService,
		LifecycleService: c.LifecycleService,
		PublishService:   c.PublishService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.EventBus != nil {
		c.EventBus.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}
