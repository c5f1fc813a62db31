package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/artmarket/internal/config"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/producer"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/artmarket/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/artmarket/internal/service"
	"github.com/RoyceAzure/lab/artmarket/internal/token"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf             *config.Config
	DbConn         *gorm.DB
	DbDao          *db.DbDao
	RedisClient    *redis.Client
	ArtworkCache   redis_repo.IArtworkCacheRepository
	OrderProducer  *producer.OrderEventProducer
	TokenMaker     token.Maker
	UserService    service.IUserService
	ArtistService  service.IArtistService
	BuyerService   service.IBuyerService
	PaymentService service.IPaymentService
	AdminService   service.IAdminService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	if err := app.setUpDbConn(); err != nil {
		return err
	}
	if err := app.setUpDbDao(); err != nil {
		return err
	}
	if err := app.setUpRedis(); err != nil {
		return err
	}
	if err := app.setUpOrderProducer(); err != nil {
		return err
	}
	if err := app.setUpTokenMaker(); err != nil {
		return err
	}
	if err := app.setUpServices(); err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpDbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

// redis 未配置時跳過, 快取層以 nil 傳遞
func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		log.Printf("Redis not configured, skip cache setup")
		return nil
	}

	log.Printf("Start setup redis")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr: app.Cf.RedisAddr,
	})
	if err := app.RedisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	app.ArtworkCache = redis_repo.NewArtworkCacheRepo(app.RedisClient)
	log.Printf("Finish setup redis")
	return nil
}

// kafka 未配置時 producer 為 nil, 事件發送全部 no-op
func (app *ApplicationContext) setUpOrderProducer() error {
	brokers := app.Cf.BrokerList()
	if len(brokers) == 0 {
		log.Printf("Kafka not configured, skip producer setup")
		return nil
	}

	log.Printf("Start setup order event producer")
	app.OrderProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaOrderTopic)
	log.Printf("Finish setup order event producer")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	log.Printf("Start setup services")

	userRepo := db.NewUserRepo(app.DbDao)
	artworkRepo := db.NewArtworkRepo(app.DbDao)
	cartRepo := db.NewCartRepo(app.DbDao)
	orderRepo := db.NewOrderRepo(app.DbDao)
	paymentRepo := db.NewPaymentRepo(app.DbDao)

	app.UserService = service.NewUserService(userRepo)
	app.ArtistService = service.NewArtistService(artworkRepo, app.ArtworkCache)
	app.BuyerService = service.NewBuyerService(artworkRepo, cartRepo, orderRepo, app.ArtworkCache, app.OrderProducer)
	app.PaymentService = service.NewPaymentService(paymentRepo, orderRepo, app.OrderProducer)
	app.AdminService = service.NewAdminService(userRepo, artworkRepo, orderRepo, paymentRepo, app.OrderProducer)

	log.Printf("Finish setup services")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			log.Printf("Closing order event producer...")
			if err := app.OrderProducer.Close(); err != nil {
				log.Printf("order event producer close error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client close error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
