package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Foad59/Foadbot/internal/market"
	"github.com/Foad59/Foadbot/internal/session"
)

type stubFetcher struct {
	tokens []market.TokenRecord
	err    error

	calls  int
	chains []market.Blockchain
}

func (f *stubFetcher) FetchTokens(_ context.Context, chain market.Blockchain) ([]market.TokenRecord, error) {
	f.calls++
	f.chains = append(f.chains, chain)
	return f.tokens, f.err
}

func newTestEngine(fetcher *stubFetcher) (*Engine, *session.Store) {
	store := session.NewStore()
	return NewEngine(store, fetcher), store
}

func TestEngine_FullConversation(t *testing.T) {
	fetcher := &stubFetcher{tokens: []market.TokenRecord{
		{Symbol: "eth", Volume: 1_500_000_000, MarketCap: 400_000, Price: 3200.5, PercentChange: 62.1},
		{Symbol: "dust", MarketCap: 10, PercentChange: 1},
	}}
	engine, store := newTestEngine(fetcher)
	ctx := context.Background()

	reply := engine.HandleStart(7)
	require.Equal(t, greetingMsg, reply.Text)
	require.True(t, reply.ShowChainMenu)

	reply = engine.HandleSelection(7, "ethereum")
	require.Equal(t, "You selected Ethereum.\n"+timePeriodPrompt, reply.Text)

	reply = engine.HandleText(ctx, 7, "2")
	require.Equal(t, percentPrompt, reply.Text)

	reply = engine.HandleText(ctx, 7, "50")
	require.Equal(t, marketCapPrompt, reply.Text)

	reply = engine.HandleText(ctx, 7, "100000")
	require.Equal(t, 1, fetcher.calls)
	require.Equal(t, []market.Blockchain{market.Ethereum}, fetcher.chains)
	require.Contains(t, reply.Text, "Token: eth\n")
	require.Contains(t, reply.Text, "Volume: 1.5B\n")
	require.NotContains(t, reply.Text, "dust")

	// The session ends with the reply; further text needs a fresh start.
	_, ok := store.Get(7)
	require.False(t, ok)
	reply = engine.HandleText(ctx, 7, "100000")
	require.Equal(t, needStartMsg, reply.Text)
	require.Equal(t, 1, fetcher.calls)
}

func TestEngine_InvalidInputRetriesInPlace(t *testing.T) {
	fetcher := &stubFetcher{}
	engine, store := newTestEngine(fetcher)
	ctx := context.Background()

	engine.HandleSelection(3, "solana")

	for _, bad := range []string{"-5", "0", "abc", "2.5", ""} {
		reply := engine.HandleText(ctx, 3, bad)
		require.Equal(t, timePeriodError, reply.Text, "input %q", bad)

		sess, ok := store.Get(3)
		require.True(t, ok)
		require.Equal(t, session.AwaitingTimePeriod, sess.Step)
	}

	reply := engine.HandleText(ctx, 3, "3")
	require.Equal(t, percentPrompt, reply.Text)

	sess, _ := store.Get(3)
	require.Equal(t, 3, sess.TimePeriodHours)
	require.Equal(t, session.AwaitingPercent, sess.Step)
	require.Zero(t, fetcher.calls)
}

func TestEngine_PerStepErrorMessages(t *testing.T) {
	engine, _ := newTestEngine(&stubFetcher{})
	ctx := context.Background()

	engine.HandleSelection(4, "bnb")
	engine.HandleText(ctx, 4, "2")

	reply := engine.HandleText(ctx, 4, "nope")
	require.Equal(t, percentError, reply.Text)

	engine.HandleText(ctx, 4, "50")

	reply = engine.HandleText(ctx, 4, "-1")
	require.Equal(t, marketCapError, reply.Text)
}

func TestEngine_NoMatchesMessage(t *testing.T) {
	fetcher := &stubFetcher{tokens: []market.TokenRecord{
		{Symbol: "tiny", MarketCap: 5, PercentChange: 2},
	}}
	engine, _ := newTestEngine(fetcher)
	ctx := context.Background()

	engine.HandleSelection(9, "polygon")
	engine.HandleText(ctx, 9, "2")
	engine.HandleText(ctx, 9, "50")
	reply := engine.HandleText(ctx, 9, "100000")

	require.Equal(t, noMatchesMsg, reply.Text)
}

func TestEngine_GatewayFailureIsDistinctFromNoMatches(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("provider down")}
	engine, store := newTestEngine(fetcher)
	ctx := context.Background()

	engine.HandleSelection(11, "sui")
	engine.HandleText(ctx, 11, "1")
	engine.HandleText(ctx, 11, "1")
	reply := engine.HandleText(ctx, 11, "1")

	require.Equal(t, fetchFailedMsg, reply.Text)
	require.NotEqual(t, noMatchesMsg, reply.Text)

	// A failed run still ends the session.
	_, ok := store.Get(11)
	require.False(t, ok)
}

func TestEngine_SelectionMidFlowRestartsWithNewChain(t *testing.T) {
	fetcher := &stubFetcher{}
	engine, store := newTestEngine(fetcher)
	ctx := context.Background()

	engine.HandleSelection(5, "ethereum")
	engine.HandleText(ctx, 5, "2")

	reply := engine.HandleSelection(5, "solana")
	require.True(t, strings.HasPrefix(reply.Text, "You selected Solana.\n"))

	sess, ok := store.Get(5)
	require.True(t, ok)
	require.Equal(t, market.Solana, sess.Blockchain)
	require.Equal(t, session.AwaitingTimePeriod, sess.Step)
	require.Zero(t, sess.TimePeriodHours)

	engine.HandleText(ctx, 5, "1")
	engine.HandleText(ctx, 5, "1")
	engine.HandleText(ctx, 5, "1")

	require.Equal(t, []market.Blockchain{market.Solana}, fetcher.chains)
}

func TestEngine_StartDoesNotClobberSession(t *testing.T) {
	engine, store := newTestEngine(&stubFetcher{})
	ctx := context.Background()

	engine.HandleSelection(6, "ethereum")
	engine.HandleText(ctx, 6, "2")

	engine.HandleStart(6)

	sess, ok := store.Get(6)
	require.True(t, ok)
	require.Equal(t, session.AwaitingPercent, sess.Step)

	reply := engine.HandleText(ctx, 6, "50")
	require.Equal(t, marketCapPrompt, reply.Text)
}

func TestEngine_UnknownSelectionData(t *testing.T) {
	engine, store := newTestEngine(&stubFetcher{})

	reply := engine.HandleSelection(8, "dogecoin")
	require.Equal(t, needStartMsg, reply.Text)

	_, ok := store.Get(8)
	require.False(t, ok)
}

func TestEngine_TextWithoutSession(t *testing.T) {
	engine, _ := newTestEngine(&stubFetcher{})

	reply := engine.HandleText(context.Background(), 12, "2")
	require.Equal(t, needStartMsg, reply.Text)
}

func TestEngine_DistinctChatsAreIndependent(t *testing.T) {
	fetcher := &stubFetcher{}
	engine, store := newTestEngine(fetcher)
	ctx := context.Background()

	engine.HandleSelection(100, "ethereum")
	engine.HandleSelection(200, "bnb")

	engine.HandleText(ctx, 100, "2")
	engine.HandleText(ctx, 200, "4")

	a, _ := store.Get(100)
	b, _ := store.Get(200)
	require.Equal(t, market.Ethereum, a.Blockchain)
	require.Equal(t, market.BNB, b.Blockchain)
	require.Equal(t, 2, a.TimePeriodHours)
	require.Equal(t, 4, b.TimePeriodHours)
}
