package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shoply/internal/config"
	"shoply/internal/handlers"
	"shoply/internal/middleware"
	"shoply/internal/models"
	"shoply/internal/repositories"
	"shoply/internal/services"
	"shoply/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Messaging (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	// --- Repositories ---
	userRepo, orderRepo, productRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	productService := services.NewProductService(productRepo)
	var orderService *services.OrderService
	if mqClient != nil {
		orderService = services.NewOrderService(orderRepo, mqClient)
	} else {
		orderService = services.NewOrderService(orderRepo, nil)
	}

	seedProducts(productService)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(authService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	api := app.Group("/api")

	// Public routes
	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)

	// Protected routes: every one of these passes through the token gate.
	protected := api.Group("", middleware.AuthRequired(authService))
	orderHandler.RegisterRoutes(protected)
	userHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Order event consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for order events...")
		if consumerErr := mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server with graceful shutdown ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// buildRepositories picks the storage backend from configuration. The
// default keeps every store in process memory; sqlite and postgres swap
// in GORM-backed stores without touching the handlers.
func buildRepositories(cfg *config.Config) (repositories.UserRepository, repositories.OrderRepository, repositories.ProductRepository, error) {
	if cfg.DBDriver == "memory" {
		return repositories.NewMemoryUserRepository(),
			repositories.NewMemoryOrderRepository(),
			repositories.NewMemoryProductRepository(),
			nil
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseDSN)
	default:
		dialector = sqlite.Open(cfg.DatabaseDSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, nil, nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}); err != nil {
		return nil, nil, nil, err
	}

	return repositories.NewGORMUserRepository(db),
		repositories.NewGORMOrderRepository(db),
		repositories.NewGORMProductRepository(db),
		nil
}

// seedProducts populates the catalog with the demo storefront's products.
func seedProducts(productService *services.ProductService) {
	products := []models.Product{
		{Name: "Smartphone", Price: 12000, Image: "../images/phone.jpg", Description: "A sleek smartphone with great performance and long-lasting battery.", Stock: 10},
		{Name: "Headphones", Price: 2000, Image: "../images/headphones.jpg", Description: "High-quality wireless headphones with noise cancellation.", Stock: 15},
		{Name: "Laptop", Price: 55000, Image: "../images/laptop.jpg", Description: "Powerful laptop with 16GB RAM, 512GB SSD, and the latest processor.", Stock: 15},
		{Name: "Smartwatch", Price: 4000, Image: "../images/watch.jpg", Description: "Fitness smartwatch with heart rate monitor and GPS.", Stock: 8},
		{Name: "T-Shirt", Price: 800, Image: "../images/tshirt.jpg", Description: "A comfortable and stylish cotton t-shirt.", Stock: 10},
		{Name: "Jeans", Price: 600, Image: "../images/Jeans.jpg", Description: "Classic fit denim jeans for everyday wear.", Stock: 10},
		{Name: "Tv", Price: 20000, Image: "../images/Tv.jpg", Description: "A advance feature tv with ai assistant", Stock: 10},
		{Name: "Furniture", Price: 15000, Image: "../images/furniture.jpg", Description: "A soft and comfortable furniture to use", Stock: 15},
		{Name: "Toys", Price: 500, Image: "../images/Toys.jpg", Description: "A child playing toy", Stock: 15},
	}

	for i := range products {
		if err := productService.CreateProduct(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		}
	}
}
