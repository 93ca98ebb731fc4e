package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/repository/memory"
	mysqlRepo "github.com/Guyuepp/forum-api/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/forum-api/internal/repository/redis"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/usecase/comment"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
	"github.com/Guyuepp/forum-api/internal/usecase/thread"
)

const (
	defaultTimeout       = 30
	defaultAddress       = ":5000"
	defaultCacheDB       = 0
	defaultCacheTTL      = 60
	defaultBloomBitSize  = 10000000
	defaultMigrationsDir = "migrations"
	dbMaxRetry           = 10
	dbRetryIntervalSec   = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading configuration from the environment")
	}

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// repositories groups the storage adapters selected by STORAGE_DRIVER.
type repositories struct {
	threads  domain.ThreadRepository
	comments domain.CommentRepository
	replies  domain.ReplyRepository
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	newID := domain.IDGenerator(uuid.NewString)
	clock := domain.Clock(time.Now)

	var repos repositories
	switch driver := os.Getenv("STORAGE_DRIVER"); driver {
	case "memory":
		logrus.Warn("using the in-memory store, data is lost on exit")
		store := memory.NewStore()
		repos = repositories{
			threads:  memory.NewThreadRepository(store, newID, clock),
			comments: memory.NewCommentRepository(store, newID, clock),
			replies:  memory.NewReplyRepository(store, newID, clock),
		}
	case "", "mysql":
		db := openDatabase()
		defer func() {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		}()

		migrationsDir := os.Getenv("MIGRATIONS_DIR")
		if migrationsDir == "" {
			migrationsDir = defaultMigrationsDir
		}
		if err := mysqlRepo.ApplyMigrations(ctx, db, migrationsDir); err != nil {
			logrus.Fatalf("failed to apply migrations: %v", err)
		}

		repos = repositories{
			threads:  mysqlRepo.NewThreadRepository(db, newID, clock),
			comments: mysqlRepo.NewCommentRepository(db, newID, clock),
			replies:  mysqlRepo.NewReplyRepository(db, newID, clock),
		}
	default:
		logrus.Fatalf("unknown STORAGE_DRIVER %q", driver)
	}

	// prepare cache; both stay untyped nil when redis is not configured
	var (
		threadCache domain.ThreadDetailCache
		bloomRepo   domain.BloomRepository
	)
	if client := openCache(ctx); client != nil {
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the cache connection: %v", err)
			}
		}()
		ttl := envInt("THREAD_CACHE_TTL", defaultCacheTTL)
		threadCache = redisRepo.NewThreadDetailCache(client, time.Duration(ttl)*time.Second)

		bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
		if err != nil {
			logrus.Info("failed to parse bloom bit size, using default size")
			bloomBitSize = defaultBloomBitSize
		}
		bloomRepo = redisRepo.NewRedisBloomRepo(client, bloomBitSize)
	}

	// Build service Layer
	threadSvc := thread.NewService(repos.threads, repos.comments, repos.replies, threadCache, bloomRepo)
	commentSvc := comment.NewService(repos.comments, threadCache, bloomRepo)
	replySvc := reply.NewService(repos.replies, threadCache)

	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatalf("failed to init bloom filter: %v", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout := envInt("CONTEXT_TIMEOUT", defaultTimeout)
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logrus.Warn("JWT_SECRET is empty, every authenticated request will be rejected")
	}
	rest.RegisterRoutes(route, middleware.AuthMiddleware(jwtSecret),
		rest.NewThreadHandler(threadSvc),
		rest.NewCommentHandler(commentSvc),
		rest.NewReplyHandler(replySvc),
	)

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting")
}

func openDatabase() *gorm.DB {
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				break
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	return db
}

// openCache returns nil when CACHE_HOST is unset.
func openCache(ctx context.Context) *redis.Client {
	cacheHost := os.Getenv("CACHE_HOST")
	if cacheHost == "" {
		logrus.Info("CACHE_HOST not set, running without thread cache and bloom filter")
		return nil
	}
	cachePort := os.Getenv("CACHE_PORT")
	if cachePort == "" {
		cachePort = "6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: os.Getenv("CACHE_PASS"),
		DB:       envInt("CACHE_DB", defaultCacheDB),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}
	return client
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		logrus.Debugf("failed to parse %s, using default %d", key, fallback)
		return fallback
	}
	return v
}
