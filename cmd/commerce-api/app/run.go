package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/configs"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/cache"
	apihttp "github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/http"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/kafka"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/queue"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/adapter/repo"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/logging"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/security"
	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init(cfg.App.Name, cfg.App.LogFile)

	// init database
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if err := repo.RunMigrations(db, cfg.MySQL.MigrationsDir); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	logger.Info("commerce-api: starting up")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, err
	}

	// init rabbitmq producer
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, err
	}
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, err
	}

	// infra
	userRepo := repo.NewMySQLUserRepo(db)
	itemRepo := repo.NewMySQLItemRepo(db)
	cartRepo := repo.NewMySQLCartRepo(db)
	orderRepo := repo.NewMySQLOrderRepo(db)
	itemCache := cache.NewRedisItemCache(rdb, cfg.Cache.TTL)

	// core
	catalog := usecase.NewCatalog(itemRepo, itemCache)
	cartEngine := usecase.NewCartEngine(userRepo, catalog, cartRepo)
	orderEngine := usecase.NewOrderEngine(userRepo, cartRepo, orderRepo, producer)
	createUser := usecase.NewCreateUser(userRepo, security.NewBcryptHasher())

	// register kafka-listener (catalog cache invalidation)
	stopKafka, err := setupKafkaListener(cfg, itemCache)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
		return nil, nil, err
	}

	// handlers + router
	uh := apihttp.NewUserHandler(createUser, userRepo)
	ih := apihttp.NewItemHandler(catalog)
	chh := apihttp.NewCartHandler(cartEngine)
	oh := apihttp.NewOrderHandler(orderEngine)
	router := apihttp.NewRouter(uh, ih, chh, oh, logging.New("http"))

	cleanup := func() {
		stopKafka()
		_ = ch.Close()
		_ = conn.Close()
		_ = rdb.Close()
		_ = db.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupKafkaListener(cfg configs.Config, itemCache usecase.ItemCache) (func(), error) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.DialTimeout)
	if err != nil {
		return nil, err
	}

	h := kafka.NewItemPriceChangedHandler(itemCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle, logging.New("kafka"))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
			logging.New("kafka").Error("consumer stopped", "error", err)
		}
	}()

	return func() {
		cancel()
		_ = grp.Close()
	}, nil
}
