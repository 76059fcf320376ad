package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"stockemdia-backend/internal/handler"
	"stockemdia-backend/internal/middleware"
	"stockemdia-backend/internal/model"
	"stockemdia-backend/internal/repository"
	"stockemdia-backend/internal/service"
	"stockemdia-backend/internal/ws"
	"stockemdia-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Account{}, &model.Product{}, &model.Transaction{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	accountRepo := repository.NewAccountRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	ledgerService := service.NewLedgerService(productRepo, txRepo, wsHub)
	dashService := service.NewDashboardService(productRepo, txRepo)
	authService := service.NewAuthService(accountRepo)
	advisoryService := service.NewAdvisoryService()
	reportService := service.NewReportService(productRepo, txRepo)

	ledgerHandler := handler.NewLedgerHandler(ledgerService)
	dashHandler := handler.NewDashboardHandler(dashService, ledgerService, advisoryService)
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock em Dia API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	// All routes below are scoped to the authenticated account
	protected := api.Group("", middleware.RequireAuth(accountRepo))

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)
	protected.Get("/dashboard/insights", dashHandler.GetInsights)

	// Product Routes (no delete: the catalogue has no removal path)
	protected.Get("/products", ledgerHandler.GetProducts)
	protected.Get("/products/:id", ledgerHandler.GetProduct)
	protected.Post("/products", ledgerHandler.CreateProduct)

	// Movement / Transaction Routes (append-only log)
	protected.Post("/movements", ledgerHandler.CreateMovement)
	protected.Get("/transactions", ledgerHandler.GetTransactions)
	protected.Get("/transactions/:id", ledgerHandler.GetTransaction)

	// Report Route (read-only consumer of the ledger)
	protected.Get("/reports/inventory", reportHandler.GetInventoryReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
