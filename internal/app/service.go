package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"rook/internal/bot"
	"rook/internal/domain"
	"rook/internal/logging"
)

// Service runs Rook rounds on top of the domain rules.
type Service struct {
	src    domain.Source
	logger runtime.Logger
	rules  domain.Rules
	newID  func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithRules sets the variant rules for every round the service starts.
func WithRules(rules domain.Rules) Option {
	return func(s *Service) { s.rules = rules }
}

// WithIDGenerator replaces the uuid round IDs, mostly for tests.
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// NewService constructs a Service with the provided source or a time-seeded default.
func NewService(src domain.Source, logger runtime.Logger, opts ...Option) *Service {
	if src == nil {
		src = domain.NewSource(uint64(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = logging.Nop()
	}
	s := &Service{
		src:    src,
		logger: logger,
		rules:  domain.DefaultRules(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Source returns the randomness shared by the service and its strategies.
func (s *Service) Source() domain.Source { return s.src }

// Rules returns the variant rules new rounds use.
func (s *Service) Rules() domain.Rules { return s.rules }

var (
	ErrWrongPhase  = errors.New("action not allowed in this phase")
	ErrNotYourTurn = errors.New("not this seat's turn")
	ErrIllegalCard = errors.New("card is not a legal play")
	ErrNoBid       = errors.New("no winning bid")
	ErrUnknownSeat = errors.New("seat not at the table")
)

// RoundState is the mutable state of one round. Hands are private to their
// seats; callers hand out TurnViews instead.
type RoundState struct {
	ID       string
	Seats    [domain.NumSeats]string
	Phase    Phase
	Round    *domain.Round
	Hands    [domain.NumSeats]*domain.Hand
	Kitty    []domain.Card
	Bids     [domain.NumSeats]int
	Bidder   domain.Seat
	Bid      int
	Exchange *domain.Exchange
	Tricks   []*domain.Trick
	Current  *domain.Trick
	Outcome  *domain.Outcome

	log runtime.Logger
}

// Turn returns the seat expected to play next.
func (st *RoundState) Turn() (domain.Seat, bool) {
	if st.Phase != PhasePlaying || st.Current == nil {
		return 0, false
	}
	return st.Current.NextSeat(), true
}

// View builds the read-only view a strategy gets for seat.
func (st *RoundState) View(seat domain.Seat) (bot.TurnView, error) {
	if !seat.Valid() {
		return bot.TurnView{}, fmt.Errorf("%w: %d", ErrUnknownSeat, seat)
	}
	if st.Phase != PhasePlaying {
		return bot.TurnView{}, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	hand := st.Hands[seat]
	legal, err := domain.LegalCards(hand, st.Current, st.Round)
	if err != nil {
		return bot.TurnView{}, err
	}
	return bot.TurnView{
		Seat:   seat,
		Bidder: st.Bidder,
		Hand:   append([]domain.Card(nil), hand.Cards...),
		Legal:  legal,
		Trick:  st.Current.Clone(),
		Round:  st.Round,
	}, nil
}

// StartRound shuffles, deals and opens bidding.
func (s *Service) StartRound(seats [domain.NumSeats]string) (*RoundState, []Event, error) {
	for i, name := range seats {
		if name == "" {
			seats[i] = DefaultSeatNames[i]
		}
	}
	dealt, err := domain.Deal(s.src)
	if err != nil {
		return nil, nil, fmt.Errorf("deal: %w", err)
	}

	st := &RoundState{
		ID:    s.newID(),
		Seats: seats,
		Phase: PhaseBidding,
		Round: domain.NewRound(s.rules),
		Kitty: dealt.Kitty,
	}
	st.log = s.logger.WithField("round", st.ID)

	events := make([]Event, 0, domain.NumSeats+1)
	events = append(events, Event{
		Kind:    EventRoundStarted,
		Payload: RoundStartedPayload{RoundID: st.ID, Seats: seats, Rules: s.rules},
	})
	for i, cards := range dealt.Hands {
		seat := domain.Seat(i)
		st.Hands[i] = domain.NewHand(cards)
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: domain.SortedView(cards, s.rules.BirdMode)},
			Recipients: []domain.Seat{seat},
		})
	}
	st.log.Info("round dealt, bird mode %s, partner mode %s", s.rules.BirdMode, s.rules.PartnerMode)
	return st, events, nil
}

// ResolveBidding values every hand and awards the kitty to the highest bid.
func (s *Service) ResolveBidding(st *RoundState) ([]Event, error) {
	if st.Phase != PhaseBidding {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	for i, h := range st.Hands {
		st.Bids[i] = h.MaxBid()
	}
	seat, bid, err := ResolveBids(st.Bids)
	if err != nil {
		return nil, err
	}
	st.Bidder, st.Bid = seat, bid
	st.Phase = PhaseExchange

	st.log.WithFields(map[string]interface{}{"bidder": st.Seats[seat], "bid": bid}).Info("bidding resolved")
	return []Event{{
		Kind:    EventBidsResolved,
		Payload: BidsResolvedPayload{Bids: st.Bids, Bidder: seat, Bid: bid},
	}}, nil
}

// ExchangeKitty lets the bidder take the kitty, discard and declare.
func (s *Service) ExchangeKitty(st *RoundState) ([]Event, error) {
	if st.Phase != PhaseExchange {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	ex, err := domain.ExchangeKitty(st.Hands[st.Bidder], st.Kitty, st.Round, s.src)
	if err != nil {
		return nil, fmt.Errorf("kitty exchange: %w", err)
	}
	st.Exchange = &ex
	st.Kitty = nil
	st.Phase = PhasePlaying
	st.Current = domain.NewTrick(st.Bidder)

	payload := KittyExchangedPayload{Bidder: st.Bidder, Trump: ex.Trump, PartnerVia: ex.PartnerTier}
	if partner, ok := st.Round.Partner(); ok {
		payload.Partner = &partner
	}
	l := st.log.WithField("trump", ex.Trump.String())
	switch ex.PartnerTier {
	case domain.PartnerUndeclared:
		l.Info("kitty exchanged, bidder plays without a partner card")
	case domain.PartnerFallback:
		l.Warn("no gap found, partner %v chosen at random", ex.Partner)
	default:
		l.Info("kitty exchanged, partner %v by %s", ex.Partner, ex.PartnerTier)
	}
	return []Event{{Kind: EventKittyExchanged, Payload: payload}}, nil
}

// PlayCard validates and applies one play, closing the trick when it is complete.
func (s *Service) PlayCard(st *RoundState, seat domain.Seat, card domain.Card) ([]Event, error) {
	if st.Phase != PhasePlaying {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	if !seat.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSeat, seat)
	}
	if next := st.Current.NextSeat(); seat != next {
		return nil, fmt.Errorf("%w: %s played, %s is next", ErrNotYourTurn, st.Seats[seat], st.Seats[next])
	}
	hand := st.Hands[seat]
	legal, err := domain.LegalCards(hand, st.Current, st.Round)
	if err != nil {
		return nil, err
	}
	if !containsCard(legal, card) {
		return nil, fmt.Errorf("%w: %s cannot play %v", ErrIllegalCard, st.Seats[seat], card)
	}
	if err := hand.Play(card); err != nil {
		return nil, err
	}
	if err := st.Current.Add(seat, card); err != nil {
		return nil, err
	}

	number := len(st.Tricks) + 1
	played := CardPlayedPayload{Trick: number, Seat: seat, Card: card, NextSeat: st.Current.NextSeat()}
	if !st.Current.Complete() {
		return []Event{{Kind: EventCardPlayed, Payload: played}}, nil
	}

	winner, err := domain.Winner(st.Current, st.Round)
	if err != nil {
		return nil, err
	}
	played.NextSeat = winner
	points := st.Current.Points()
	st.Tricks = append(st.Tricks, st.Current)
	st.log.Debug("trick %d to %s for %d points", number, st.Seats[winner], points)

	if len(st.Tricks) == domain.TricksPerRound {
		st.Current = nil
		st.Phase = PhaseScoring
	} else {
		st.Current = domain.NewTrick(winner)
	}
	return []Event{
		{Kind: EventCardPlayed, Payload: played},
		{Kind: EventTrickWon, Payload: TrickWonPayload{Trick: number, Winner: winner, Points: points}},
	}, nil
}

// PlayTrick asks each agent in turn for a card until the current trick closes.
func (s *Service) PlayTrick(st *RoundState, agents [domain.NumSeats]*bot.Agent) ([]Event, error) {
	if st.Phase != PhasePlaying {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	var events []Event
	for start := len(st.Tricks); len(st.Tricks) == start && st.Phase == PhasePlaying; {
		seat, _ := st.Turn()
		view, err := st.View(seat)
		if err != nil {
			return events, err
		}
		card, err := agents[seat].Play(view)
		if errors.Is(err, bot.ErrIllegalChoice) {
			return events, fmt.Errorf("%w: %w", ErrIllegalCard, err)
		}
		if err != nil {
			return events, err
		}
		evs, err := s.PlayCard(st, seat, card)
		if err != nil {
			return events, err
		}
		events = append(events, evs...)
	}
	return events, nil
}

// FinishRound scores the played tricks.
func (s *Service) FinishRound(st *RoundState) ([]Event, error) {
	if st.Phase != PhaseScoring {
		return nil, fmt.Errorf("%w: %s", ErrWrongPhase, st.Phase)
	}
	out, err := domain.Score(st.Tricks, st.Hands[st.Bidder].Discards, st.Bidder, st.Bid, st.Round)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	st.Outcome = &out
	st.Phase = PhaseEnded

	st.log.WithFields(map[string]interface{}{
		"bidder":     st.Seats[out.Bidder],
		"partner":    st.Seats[out.Partner],
		"solo":       out.Solo,
		"bid":        out.Bid,
		"leader":     out.LeaderScore,
		"opposition": out.OppositionScore,
		"made":       out.Made,
	}).Info("round scored")
	return []Event{{Kind: EventRoundEnded, Payload: RoundEndedPayload{Outcome: out}}}, nil
}

// PlayRound runs a whole round with the given agents. Any error aborts the
// round and is returned with the events emitted so far.
func (s *Service) PlayRound(agents [domain.NumSeats]*bot.Agent) (*RoundState, []Event, error) {
	var seats [domain.NumSeats]string
	for i, a := range agents {
		if a == nil {
			return nil, nil, fmt.Errorf("%w: no agent in seat %d", ErrUnknownSeat, i)
		}
		seats[i] = a.Name
	}

	st, events, err := s.StartRound(seats)
	if err != nil {
		return nil, nil, err
	}
	steps := []func() ([]Event, error){
		func() ([]Event, error) { return s.ResolveBidding(st) },
		func() ([]Event, error) { return s.ExchangeKitty(st) },
	}
	for i := 0; i < domain.TricksPerRound; i++ {
		steps = append(steps, func() ([]Event, error) { return s.PlayTrick(st, agents) })
	}
	steps = append(steps, func() ([]Event, error) { return s.FinishRound(st) })

	for _, step := range steps {
		evs, err := step()
		events = append(events, evs...)
		if err != nil {
			st.log.Error("round aborted in %s: %v", st.Phase, err)
			return st, events, err
		}
	}
	return st, events, nil
}

func containsCard(cards []domain.Card, c domain.Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
