package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Log      LogConfig
	Storage  StorageConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig for the public-content cache (optional).
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// NATSConfig for cross-instance content-change events (optional).
type NATSConfig struct {
	URL string // nats://localhost:4222
}

type JWTConfig struct {
	Secret string
}

// AdminConfig seeds the first admin account on an empty users table.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type StorageConfig struct {
	Type         string // local, s3
	BasePath     string // local: ./uploads
	BaseURL      string // local: URL files are served from
	ImagesBucket string // e.g. images
	PDFsBucket   string // e.g. pdfs

	// Upload policy for the admin batch uploader.
	MaxImageSize  int64 // bytes, default 10 MB
	MaxBatchFiles int   // default 200

	S3 S3Config
}

type S3Config struct {
	Endpoint  string // minio:9000 or xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	PublicURL string // optional public/CDN base URL
}

func LoadConfig() (*Config, error) {
	// Missing .env is fine, environment variables are used directly.
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	maxImageSize, _ := strconv.ParseInt(getEnv("UPLOAD_MAX_IMAGE_SIZE", "10485760"), 10, 64) // 10 MB
	maxBatchFiles, _ := strconv.Atoi(getEnv("UPLOAD_MAX_BATCH_FILES", "200"))
	s3UseSSL := getEnv("S3_USE_SSL", "false") == "true"
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Maranatha API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     lookupEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "maranatha"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-secret-key"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Email:    getEnv("ADMIN_EMAIL", "admin@maranatha.local"),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			ImagesBucket:  getEnv("STORAGE_IMAGES_BUCKET", "images"),
			PDFsBucket:    getEnv("STORAGE_PDFS_BUCKET", "pdfs"),
			MaxImageSize:  maxImageSize,
			MaxBatchFiles: maxBatchFiles,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				UseSSL:    s3UseSSL,
				Region:    getEnv("S3_REGION", ""),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
	}

	return config, nil
}

// HasDatabase reports whether the data layer is configured at all.
// Setting DB_HOST to an empty string turns it off: the service runs
// degraded, public panels serve fallback content and admin calls fail
// as transient errors.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != "" && c.Database.DBName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv keeps an explicitly empty variable, unlike getEnv.
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
