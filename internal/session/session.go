package session

import "github.com/Foad59/Foadbot/internal/market"

// Step is the question a chat is currently being asked. A session is created
// already holding a blockchain, so AwaitingBlockchain only describes chats
// with no session at all.
type Step int

const (
	AwaitingBlockchain Step = iota
	AwaitingTimePeriod
	AwaitingPercent
	AwaitingMarketCap
)

// Session holds one chat's collected answers. The time period is collected
// and validated but not used by the fetch or the filter.
type Session struct {
	Step            Step
	Blockchain      market.Blockchain
	TimePeriodHours int
	PercentIncrease int
	MinMarketCap    int
}
