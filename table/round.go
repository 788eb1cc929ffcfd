package table

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// GameState represents the current state of a round
type GameState string

const (
	GameStateIdle           GameState = "idle"
	GameStateDealing        GameState = "dealing"
	GameStateBlackjackCheck GameState = "blackjack_check"
	GameStatePlayerTurn     GameState = "player_turn"
	GameStateDealerTurn     GameState = "dealer_turn"
	GameStateSettlement     GameState = "settlement"
	GameStateEnded          GameState = "ended"
)

const (
	actionHit   = 1
	actionStand = 2
)

// Round plays one hand of blackjack against the dealer from a shared shoe.
type Round struct {
	ID        string
	SessionID string
	Number    int
	State     GameState
	Player    *blackjack.Hand
	Dealer    *blackjack.Hand
	Outcome   blackjack.Outcome

	shoe          *cards.Shoe
	prompter      Prompter
	view          View
	logger        *slog.Logger
	stateHandlers map[GameState]func() (GameState, error)
	eventHandlers []events.EventHandler
}

// NewRound creates a round with two empty hands drawing from shoe
func NewRound(sessionID string, number int, shoe *cards.Shoe, prompter Prompter, view View, logger *slog.Logger) *Round {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Round{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Number:    number,
		State:     GameStateIdle,
		Player:    blackjack.NewHand(),
		Dealer:    blackjack.NewHand(),
		shoe:      shoe,
		prompter:  prompter,
		view:      view,
	}
	r.logger = logger.With("round_id", r.ID, "round", number)
	r.registerStateHandlers()
	return r
}

// RegisterEventHandler registers a callback function that will be called when events occur
func (r *Round) RegisterEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

func (r *Round) emitEvent(event events.Event) {
	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

func (r *Round) registerStateHandlers() {
	r.stateHandlers = map[GameState]func() (GameState, error){
		GameStateDealing:        r.handleDealing,
		GameStateBlackjackCheck: r.handleBlackjackCheck,
		GameStatePlayerTurn:     r.handlePlayerTurn,
		GameStateDealerTurn:     r.handleDealerTurn,
		GameStateSettlement:     r.handleSettlement,
	}
}

// Play runs the round from the deal to settlement and returns the outcome.
// An error from the prompter aborts the round with the state left where it
// failed.
func (r *Round) Play() (blackjack.Outcome, error) {
	if r.State != GameStateIdle {
		return blackjack.Outcome_None, fmt.Errorf("round %d already played", r.Number)
	}

	r.emitEvent(events.RoundStarted{SessionID: r.SessionID, RoundID: r.ID, Number: r.Number})
	r.transitionTo(GameStateDealing)

	for r.State != GameStateEnded {
		handler, exists := r.stateHandlers[r.State]
		if !exists {
			return blackjack.Outcome_None, fmt.Errorf("no handler for state %s", r.State)
		}

		next, err := handler()
		if err != nil {
			return blackjack.Outcome_None, err
		}
		r.transitionTo(next)
	}

	return r.Outcome, nil
}

func (r *Round) transitionTo(newState GameState) {
	r.logger.Debug("round transition", "from", r.State, "to", newState)
	r.State = newState
}

func (r *Round) dealTo(seat events.Seat, hand *blackjack.Hand) {
	card := r.shoe.Draw()
	hand.Append(card)
	r.emitEvent(events.CardDealt{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Seat:      seat,
		Card:      card,
		Total:     hand.Total(),
	})
}

// handleDealing deals player, dealer, player, dealer and shows one dealer card
func (r *Round) handleDealing() (GameState, error) {
	r.view.Info("Dealing Cards...")

	for i := 0; i < 2; i++ {
		r.dealTo(events.SeatPlayer, r.Player)
		r.dealTo(events.SeatDealer, r.Dealer)
	}

	r.view.Info("Your Hand: " + r.Player.String())
	r.view.Info("Dealer Showing: " + r.Dealer.Display(1))
	return GameStateBlackjackCheck, nil
}

func (r *Round) handleBlackjackCheck() (GameState, error) {
	outcome := blackjack.Natural(r.Player, r.Dealer)
	if outcome == blackjack.Outcome_None {
		return GameStatePlayerTurn, nil
	}

	r.revealDealer()
	r.Outcome = outcome
	return GameStateSettlement, nil
}

// handlePlayerTurn offers hit or stand until the player stands or busts.
// Invalid input repeats the prompt.
func (r *Round) handlePlayerTurn() (GameState, error) {
	for {
		r.view.Info(fmt.Sprintf("Your total: %d", r.Player.Total()))
		r.view.Prompt("1: Hit Me!\n2: Stand!\n")

		action, err := r.prompter.NextInt()
		if errors.Is(err, ErrInvalidInput) {
			r.view.Warning("Invalid input! Try again.")
			continue
		}
		if err != nil {
			return r.State, err
		}

		switch action {
		case actionHit:
			r.dealTo(events.SeatPlayer, r.Player)
			r.view.Info("Your Hand: " + r.Player.String())

			if r.Player.IsBust() {
				r.Outcome = blackjack.Outcome_PlayerBust
				return GameStateSettlement, nil
			}
		case actionStand:
			r.emitEvent(events.PlayerStood{SessionID: r.SessionID, RoundID: r.ID, Total: r.Player.Total()})
			return GameStateDealerTurn, nil
		default:
			r.view.Warning("Invalid action!")
		}
	}
}

// handleDealerTurn draws for the dealer while the total is below 17. Soft
// totals count as already reduced, so Ace+6 stands.
func (r *Round) handleDealerTurn() (GameState, error) {
	r.revealDealer()

	for r.Dealer.Total() < blackjack.DealerStandsOn {
		r.dealTo(events.SeatDealer, r.Dealer)
		r.view.Info("Dealer Hand: " + r.Dealer.String())
	}
	return GameStateSettlement, nil
}

func (r *Round) revealDealer() {
	r.view.Info("Dealer Reveals: " + r.Dealer.String())
	r.emitEvent(events.DealerRevealed{
		SessionID: r.SessionID,
		RoundID:   r.ID,
		Cards:     append(cards.Stack(nil), r.Dealer.Cards...),
		Total:     r.Dealer.Total(),
	})
}

func (r *Round) handleSettlement() (GameState, error) {
	if r.Outcome == blackjack.Outcome_None {
		r.Outcome = blackjack.Settle(r.Player, r.Dealer)
	}

	msg := r.Outcome.Message()
	switch {
	case r.Outcome.PlayerWon():
		r.view.Success(msg)
	case r.Outcome.IsPush():
		r.view.Warning(msg)
	default:
		r.view.Error(msg)
	}

	r.logger.Debug("round settled",
		"outcome", r.Outcome.String(),
		"player_total", r.Player.Total(),
		"dealer_total", r.Dealer.Total(),
	)
	r.emitEvent(events.RoundSettled{
		SessionID:   r.SessionID,
		RoundID:     r.ID,
		Outcome:     string(r.Outcome),
		PlayerTotal: r.Player.Total(),
		DealerTotal: r.Dealer.Total(),
	})
	return GameStateEnded, nil
}
