package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/VSP7988/maranatha-api/application/serviceimpl"
	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/domain/ports"
	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/infrastructure/messaging"
	"github.com/VSP7988/maranatha-api/infrastructure/postgres"
	"github.com/VSP7988/maranatha-api/infrastructure/redis"
	"github.com/VSP7988/maranatha-api/infrastructure/storage"
	infraws "github.com/VSP7988/maranatha-api/infrastructure/websocket"
	"github.com/VSP7988/maranatha-api/interfaces/api/handlers"
	"github.com/VSP7988/maranatha-api/interfaces/api/routes"
	"github.com/VSP7988/maranatha-api/pkg/config"
	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/scheduler"
	"github.com/VSP7988/maranatha-api/pkg/settings"
)

const auditCron = "0 3 * * *"

// eventBus is satisfied by both the NATS bus and the in-process bus.
type eventBus interface {
	ports.ContentEventPublisher
	ports.ContentEventSubscriber
}

// Container wires the whole service. Infra layers degrade one by one:
// no database serves fallback content, no Redis skips caching, no NATS
// falls back to in-process events.
type Container struct {
	Config *config.Config

	DB      *gorm.DB
	Cache   *redis.Client
	Bus     eventBus
	natsBus *messaging.NATSEventBus
	Storage ports.StoragePort

	Hub         *infraws.Hub
	Broadcaster *infraws.ContentBroadcaster
	Scheduler   scheduler.JobScheduler
	Audit       *serviceimpl.StorageAuditService

	SettingsCache *settings.Cache

	UserRepo    repositories.UserRepository
	SettingRepo repositories.SettingRepository

	UserService    services.UserService
	SettingService services.SettingService
	UploadService  services.UploadService

	Handlers *handlers.Handlers
}

func NewContainer() (*Container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	c := &Container{Config: cfg}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()
	c.initEventBus()
	if err := c.initStorage(); err != nil {
		return nil, err
	}
	c.initServices()
	c.initScheduler()

	return c, nil
}

// initDatabase never fails the boot: an unconfigured or unreachable
// database means the public site serves fallback content and the admin
// console reports the data layer as unavailable.
func (c *Container) initDatabase() error {
	if !c.Config.HasDatabase() {
		logger.Warn("Database not configured, running with fallback content only")
		return nil
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		logger.Warn("Database unreachable, running with fallback content only", "error", err)
		return nil
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.DB = db
	return nil
}

func (c *Container) initCache() {
	if c.Config.Redis.URL == "" {
		logger.Info("Redis not configured, public reads go straight to the database")
		return
	}
	cache, err := redis.NewClient(&c.Config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, continuing without cache", "error", err)
		return
	}
	c.Cache = cache
}

func (c *Container) initEventBus() {
	if c.Config.NATS.URL != "" {
		bus, err := messaging.NewNATSEventBus(c.Config.NATS.URL)
		if err == nil {
			c.Bus = bus
			c.natsBus = bus
			return
		}
		logger.Warn("NATS unavailable, falling back to in-process events", "error", err)
	}
	c.Bus = messaging.NewLocalEventBus()
}

func (c *Container) initStorage() error {
	buckets := []string{c.Config.Storage.ImagesBucket, c.Config.Storage.PDFsBucket}

	var (
		store ports.StoragePort
		err   error
	)
	switch c.Config.Storage.Type {
	case "s3":
		store, err = storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
			Buckets:   buckets,
		})
	default:
		store, err = storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
	}
	if err != nil {
		return fmt.Errorf("failed to init storage: %w", err)
	}

	c.Storage = store
	c.Audit = serviceimpl.NewStorageAuditService(store, buckets)
	return nil
}

func (c *Container) initServices() {
	c.UserRepo = postgres.NewUserRepository(c.DB)
	c.SettingRepo = postgres.NewSettingRepository(c.DB)

	c.SettingsCache = settings.NewCache(c.SettingRepo)
	c.SettingsCache.Reload(context.Background())

	c.UserService = serviceimpl.NewUserService(c.UserRepo, &c.Config.JWT)
	c.SettingService = serviceimpl.NewSettingService(c.SettingRepo, c.SettingsCache)
	c.UploadService = serviceimpl.NewUploadService(c.Storage, &c.Config.Storage)

	if c.DB != nil {
		admin := c.Config.Admin
		if err := c.UserService.EnsureAdmin(context.Background(), admin.Username, admin.Email, admin.Password); err != nil {
			logger.Warn("Failed to seed admin account", "error", err)
		}
	}

	c.Hub = infraws.NewHub()
	c.Broadcaster = infraws.NewContentBroadcaster(c.Bus, c.Hub)
	if err := c.Broadcaster.Start(); err != nil {
		logger.Warn("Content broadcaster failed to start", "error", err)
	}

	c.Handlers = &handlers.Handlers{
		Auth:    handlers.NewAuthHandler(c.UserService),
		Upload:  handlers.NewUploadHandler(c.UploadService),
		Setting: handlers.NewSettingHandler(c.SettingService),
		Health:  handlers.NewHealthHandler(c.DB, c.Cache, c.Storage),
	}
}

func (c *Container) initScheduler() {
	c.Scheduler = scheduler.NewJobScheduler()

	if c.DB == nil {
		logger.Info("Storage audit disabled without a database")
		return
	}
	if err := c.Scheduler.AddJob("storage-audit", auditCron, func() {
		c.Audit.Run(context.Background())
	}); err != nil {
		logger.Warn("Failed to schedule storage audit", "error", err)
	}
	c.Scheduler.Start()
}

// RegisterContent wires every content category onto the router.
func (c *Container) RegisterContent(r *routes.Router) {
	wireCategory[models.Banner](c, r, models.BannerSpec, models.SampleBanners)
	wireCategory[models.Event](c, r, models.EventSpec, models.SampleEvents)
	wireCategory[models.GalleryImage](c, r, models.GallerySpec, models.SampleGalleryImages)
	wireCategory[models.VisionMission](c, r, models.VisionMissionSpec, models.SampleVisionMission)
	wireCategory[models.Donation](c, r, models.DonationSpec, models.SampleDonations)
	wireCategory[models.SatelliteChurch](c, r, models.SatelliteChurchSpec, models.SampleSatelliteChurches)
	wireCategory[models.SatelliteBanner](c, r, models.SatelliteBannerSpec, models.SampleSatelliteBanners)
	wireCategory[models.Ministry](c, r, models.MinistrySpec, models.SampleMinistries)
	wireCategory[models.AboutSection](c, r, models.AboutSpec, models.SampleAboutSections)
}

// wireCategory builds the full chain for one category: repository,
// admin and public services, handlers, routes and the audit source.
func wireCategory[T any, P interface {
	content.Row
	*T
}](c *Container, r *routes.Router, spec content.Spec, fallback func(string) []T) {
	repo := postgres.NewContentRepository[T](c.DB, spec)

	adminSvc := serviceimpl.NewContentService[T, P](repo, spec, c.Cache, c.Bus)
	publicSvc := serviceimpl.NewPublicContentService[T](repo, spec, c.Cache, fallback)

	adminHandler := handlers.NewAdminContentHandler[T, P](adminSvc, spec)
	publicHandler := handlers.NewPublicContentHandler[T](publicSvc, spec)

	routes.RegisterContentRoutes[T, P](r, spec, adminHandler, publicHandler)

	if c.Audit != nil && len(spec.MediaColumns) > 0 {
		c.Audit.AddSource(serviceimpl.MediaSource{
			Category: spec.Name,
			URLs:     repo.MediaURLs,
		})
	}
}

// Cleanup releases infra connections on shutdown.
func (c *Container) Cleanup() {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Broadcaster != nil {
		c.Broadcaster.Stop()
	}
	if c.natsBus != nil {
		c.natsBus.Close()
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Warn("Failed to close Redis", "error", err)
		}
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	logger.Info("Container cleaned up")
}
