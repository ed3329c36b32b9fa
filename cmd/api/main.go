package main

import (
	"log"

	burgerapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/burger"
	customerapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/customer"
	ingredientapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/ingredient"
	orderapp "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/config"
	ginserver "github.com/svyrydov-ihor/burger-joint-web-app/internal/infrastructure/http/gin"
	kafkainfra "github.com/svyrydov-ihor/burger-joint-web-app/internal/infrastructure/messaging/kafka"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/infrastructure/persistence/postgres"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/interfaces/http/handler"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/interfaces/http/router"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
	"github.com/svyrydov-ihor/burger-joint-web-app/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer appLog.Sync()

	if err := postgres.Migrate(cfg.DB); err != nil {
		appLog.Fatal("run migrations failed", logger.Error(err))
	}

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		appLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	customerRepo := postgres.NewCustomerRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	burgerRepo := postgres.NewBurgerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)

	var publisher orderapp.Publisher
	if cfg.Kafka.EventsEnabled() {
		producer, err := kafkainfra.NewOrderEventProducer(cfg.Kafka)
		if err != nil {
			appLog.Fatal("kafka producer failed", logger.Error(err))
		}
		defer producer.Close()
		publisher = producer
		appLog.Info("order event stream enabled",
			logger.String("topic", cfg.Kafka.OrderEventTopic))
	}

	customerSvc := customerapp.NewService(customerRepo, appLog)
	ingredientSvc := ingredientapp.NewService(ingredientRepo, appLog)
	burgerSvc := burgerapp.NewService(burgerRepo, ingredientRepo, appLog)
	orderSvc := orderapp.NewService(orderRepo, burgerRepo, customerRepo, publisher, appLog)

	engine := ginserver.NewEngine(cfg.App.Env, appLog, web.Templates())
	router.RegisterRoutes(engine,
		handler.NewCustomerHandler(customerSvc, appLog),
		handler.NewIngredientHandler(ingredientSvc, appLog),
		handler.NewBurgerHandler(burgerSvc, appLog),
		handler.NewOrderHandler(orderSvc, appLog),
		handler.NewWebHandler(customerSvc, burgerSvc, orderSvc, ingredientSvc, appLog),
	)

	appLog.Info("starting http server",
		logger.String("addr", cfg.Server.Address()),
		logger.String("env", cfg.App.Env))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		appLog.Fatal("server run failed", logger.Error(err))
	}
}
