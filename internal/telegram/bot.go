package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Foad59/Foadbot/internal/config"
	"github.com/Foad59/Foadbot/internal/conversation"
	"github.com/Foad59/Foadbot/internal/market"
)

// Bot adapts Telegram updates to the conversation engine: commands and
// button presses go in, Reply values come back out as messages.
type Bot struct {
	api     *tgbotapi.BotAPI
	engine  *conversation.Engine
	timeout time.Duration
}

func NewBot(cfg config.Config, engine *conversation.Engine) (*Bot, error) {
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("telegram token is not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false

	return &Bot{
		api:     api,
		engine:  engine,
		timeout: cfg.Market.Timeout(),
	}, nil
}

func (b *Bot) Run() error {
	log.Printf("Bot @%s started successfully", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleTextMessage(update.Message)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.sendReply(chatID, b.engine.HandleStart(chatID))
	default:
		b.sendMessage(chatID, "Unknown command. Use /start to begin.")
	}
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Failed to answer callback query: %v", err)
	}

	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	log.Printf("Chat %d selected %q", chatID, query.Data)

	b.sendReply(chatID, b.engine.HandleSelection(chatID, query.Data))
}

func (b *Bot) handleTextMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	log.Printf("User %d (%s) in chat %d: %s",
		message.From.ID, message.From.UserName, chatID, message.Text)

	// Bounds the provider call so a slow endpoint stalls at most this one
	// update, not the chat forever.
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	b.sendReply(chatID, b.engine.HandleText(ctx, chatID, message.Text))
}

func (b *Bot) sendReply(chatID int64, reply conversation.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.ShowChainMenu {
		msg.ReplyMarkup = chainKeyboard()
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.sendReply(chatID, conversation.Reply{Text: text})
}

func chainKeyboard() tgbotapi.InlineKeyboardMarkup {
	chains := market.AllBlockchains()
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(chains))
	for _, chain := range chains {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(chain.DisplayName(), string(chain)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func RunTelegramBot(cfg config.Config, engine *conversation.Engine) {
	bot, err := NewBot(cfg, engine)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := bot.Run(); err != nil {
		log.Fatalf("Bot failed: %v", err)
	}
}
