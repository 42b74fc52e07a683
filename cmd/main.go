package main

import (
	"github.com/joho/godotenv"

	"github.com/Foad59/Foadbot/internal/config"
	"github.com/Foad59/Foadbot/internal/conversation"
	"github.com/Foad59/Foadbot/internal/market"
	"github.com/Foad59/Foadbot/internal/session"
	"github.com/Foad59/Foadbot/internal/telegram"
)

func main() {
	_ = godotenv.Load()
	config.Load("config")

	client := market.NewClient(config.App.Market.Timeout())
	engine := conversation.NewEngine(session.NewStore(), client)

	telegram.RunTelegramBot(config.App, engine)
}
