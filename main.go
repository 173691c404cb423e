package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vip_gate_bot/internal/ai"
	"vip_gate_bot/internal/bot"
	"vip_gate_bot/internal/config"
	"vip_gate_bot/internal/database"
	"vip_gate_bot/internal/repository"
	"vip_gate_bot/internal/service"
	"vip_gate_bot/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Missing credentials are fatal before anything starts listening.
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is required")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	aiClient := ai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ChatModel)

	telegramBot, err := bot.NewBot(cfg, userService, aiClient)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if cfg.EnableWebAdmin {
		webServer := web.NewServer(cfg, userService)
		go func() {
			if err := webServer.Start(); err != nil {
				log.Printf("Web server error: %v", err)
			}
		}()
	}

	go func() {
		log.Println("Bot is up and listening for updates")
		if err := telegramBot.Start(); err != nil {
			log.Fatalf("Bot stopped: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down...")
}
