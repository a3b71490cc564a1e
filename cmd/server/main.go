package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/db"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/events"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"
	cprmHttp "github.com/gaureshpai/cprm-prototype-sub001/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	cprmDbType := os.Getenv(common.EnvKeyCPRMDBType)
	switch cprmDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown CPRM_DB_TYPE: " + cprmDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyCPRMHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyCPRMDefaultRate), 64); err != nil {
		log.Fatal("Invalid CPRM_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyCPRMDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid CPRM_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	registryOpts := hospital.RegistryOpts{}
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyCPRMAutoAckMinutes)); raw != "" {
		minutes, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("Invalid CPRM_AUTO_ACK_MINUTES, should be an int value")
		}
		registryOpts.AutoAckDelay = time.Duration(minutes) * time.Minute
	}

	livenessOpts := hospital.LivenessOpts{}
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyCPRMStaleAfterSecs)); raw != "" {
		seconds, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatal("Invalid CPRM_STALE_AFTER_SECONDS, should be an int value")
		}
		livenessOpts.StaleAfter = time.Duration(seconds) * time.Second
	}

	logger := common.GetLogger()

	core := &hospital.Hospital{
		Db: *dbInstance,
	}
	core.WithServices(hospital.ServiceOpts{
		Registry: core.GetIRegistry(registryOpts),
		Feed:     core.GetIFeed(),
		Liveness: core.GetILiveness(livenessOpts),
	})

	if redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyCPRMRedisAddr)); redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		mirror := events.NewRedisMirror(client, events.DefaultChannel)
		core.Registry.Subscribe(mirror.Handler())
		logger.Info("Alert event mirror attached",
			zap.String("redis_addr", redisAddr),
			zap.String("channel", events.DefaultChannel))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &cprmHttp.RestfulServer{
		Server:           gin.Default(),
		Hospital:         core,
		RateLimiterStore: hospital.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Float64("default_rate", defaultRate),
		zap.Int64("default_burst", defaultBurst))

	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
