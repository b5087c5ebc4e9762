package app

import "rook/internal/bot"

// Phase is the stage a round has reached.
type Phase string

const (
	PhaseBidding  Phase = "bidding"
	PhaseExchange Phase = "exchange"
	PhasePlaying  Phase = "playing"
	PhaseScoring  Phase = "scoring"
	PhaseEnded    Phase = "ended"
)

// DefaultSeatNames are the player names used when none are configured.
var DefaultSeatNames = bot.DefaultNames
