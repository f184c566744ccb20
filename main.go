package main

import (
	"log"
	"wealthdesk/config"
	orderController "wealthdesk/controllers/order"
	"wealthdesk/database"
	"wealthdesk/navfeed"
	"wealthdesk/notify"
	orderRoutes "wealthdesk/routers/orderRoutes"
	portfolioRoutes "wealthdesk/routers/portfolioRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	var notifier notify.Notifier = notify.LogNotifier{}
	if config.AppConfig.SendGridKey != "" {
		notifier = notify.NewSendGridNotifier(config.AppConfig.SendGridKey, config.AppConfig.EmailSender)
	}

	feed := navfeed.NewClient(config.AppConfig.NavFeedURL)
	scheduler := navfeed.StartScheduler(feed, config.AppConfig.NavRefreshSpec, config.AppConfig.SIPRunSpec)
	defer scheduler.Stop()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	portfolioRoutes.SetupPortfolioRoutes(app)
	orderRoutes.SetupOrderRoutes(app, orderController.New(notifier))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
