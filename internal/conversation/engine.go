package conversation

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Foad59/Foadbot/internal/market"
	"github.com/Foad59/Foadbot/internal/session"
)

const (
	greetingMsg      = "Hello! I can help you analyze tokens based on trading volume. Choose a blockchain to start:"
	timePeriodPrompt = "Now, please enter the time period in hours (e.g., 2 for 2 hours):"
	timePeriodError  = "Please enter a positive integer for the time period."
	percentPrompt    = "Now, please enter the percentage increase in trading volume (e.g., 50 for 50%):"
	percentError     = "Please enter a positive integer for the percentage increase."
	marketCapPrompt  = "Now, please enter the minimum market cap (e.g., 100000 for 100,000):"
	marketCapError   = "Please enter a positive integer for the market cap."
	noMatchesMsg     = "No tokens found matching your criteria."
	fetchFailedMsg   = "Sorry, I couldn't fetch market data right now. Please try again later."
	needStartMsg     = "Use /start to choose a blockchain first."
)

// Fetcher is what the engine needs from the market data gateway.
type Fetcher interface {
	FetchTokens(ctx context.Context, chain market.Blockchain) ([]market.TokenRecord, error)
}

// Reply is one outbound message. ShowChainMenu asks the transport to attach
// the blockchain selection keyboard.
type Reply struct {
	Text          string
	ShowChainMenu bool
}

// Engine drives the per-chat question sequence: blockchain, time period,
// percent increase, minimum market cap. Answering the last question fetches
// token records for the chosen chain, filters them and replies once.
type Engine struct {
	sessions *session.Store
	fetcher  Fetcher
}

func NewEngine(sessions *session.Store, fetcher Fetcher) *Engine {
	return &Engine{sessions: sessions, fetcher: fetcher}
}

// HandleStart answers the /start command. It only presents the menu; any
// answers already recorded for the chat stay untouched.
func (e *Engine) HandleStart(chatID int64) Reply {
	return Reply{Text: greetingMsg, ShowChainMenu: true}
}

// HandleSelection answers a blockchain button press. A selection is accepted
// in any state and replaces the chat's session with a fresh one holding only
// the chosen chain.
func (e *Engine) HandleSelection(chatID int64, data string) Reply {
	lock := e.sessions.ChatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	chain, err := market.ParseBlockchain(data)
	if err != nil {
		log.Printf("ERROR: chat %d selected unknown blockchain %q", chatID, data)
		return Reply{Text: needStartMsg}
	}

	e.sessions.Put(chatID, &session.Session{
		Step:       session.AwaitingTimePeriod,
		Blockchain: chain,
	})

	return Reply{Text: fmt.Sprintf("You selected %s.\n%s", chain.DisplayName(), timePeriodPrompt)}
}

// HandleText answers a freeform message, interpreted by the chat's current
// step. Invalid input re-prompts in place without touching other answers.
func (e *Engine) HandleText(ctx context.Context, chatID int64, text string) Reply {
	lock := e.sessions.ChatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	sess, ok := e.sessions.Get(chatID)
	if !ok {
		return Reply{Text: needStartMsg}
	}

	switch sess.Step {
	case session.AwaitingTimePeriod:
		value, err := parsePositiveInt(text)
		if err != nil {
			return Reply{Text: timePeriodError}
		}
		sess.TimePeriodHours = value
		sess.Step = session.AwaitingPercent
		return Reply{Text: percentPrompt}

	case session.AwaitingPercent:
		value, err := parsePositiveInt(text)
		if err != nil {
			return Reply{Text: percentError}
		}
		sess.PercentIncrease = value
		sess.Step = session.AwaitingMarketCap
		return Reply{Text: marketCapPrompt}

	case session.AwaitingMarketCap:
		value, err := parsePositiveInt(text)
		if err != nil {
			return Reply{Text: marketCapError}
		}
		sess.MinMarketCap = value
		return e.complete(ctx, chatID, sess)

	default:
		return Reply{Text: needStartMsg}
	}
}

// complete runs the fetch-filter-reply sequence and ends the session. A
// gateway failure gets its own reply so the user can tell it apart from a
// genuinely empty match set.
func (e *Engine) complete(ctx context.Context, chatID int64, sess *session.Session) Reply {
	defer e.sessions.Delete(chatID)

	if sess.Blockchain == "" {
		log.Printf("ERROR: chat %d completed without a blockchain", chatID)
		return Reply{Text: fetchFailedMsg}
	}

	tokens, err := e.fetcher.FetchTokens(ctx, sess.Blockchain)
	if err != nil {
		log.Printf("ERROR: failed to fetch %s tokens for chat %d: %v", sess.Blockchain, chatID, err)
		return Reply{Text: fetchFailedMsg}
	}

	found := market.FilterTokens(tokens, float64(sess.MinMarketCap), float64(sess.PercentIncrease))
	if len(found) == 0 {
		return Reply{Text: noMatchesMsg}
	}

	return Reply{Text: strings.Join(found, "\n")}
}

func parsePositiveInt(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if value <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", value)
	}
	return value, nil
}
