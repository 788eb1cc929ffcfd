package table

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/sanity-io/litter"
)

const (
	answerStop = 0
	answerPlay = 1
)

// Stats counts round outcomes over a session
type Stats struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int
}

func (s *Stats) record(outcome blackjack.Outcome) {
	s.Rounds++
	switch {
	case outcome.PlayerWon():
		s.Wins++
	case outcome.IsPush():
		s.Pushes++
	default:
		s.Losses++
	}
}

// Session plays rounds from one shoe until the user stops.
type Session struct {
	ID    string
	Stats Stats

	shoe       *cards.Shoe
	prompter   Prompter
	view       View
	eventStore events.EventStore
	logger     *slog.Logger
	round      *Round
}

// NewSession creates a session around an already shuffled shoe. A nil store
// keeps events in memory; a nil logger discards logs.
func NewSession(shoe *cards.Shoe, prompter Prompter, view View, eventStore events.EventStore, logger *slog.Logger) *Session {
	if eventStore == nil {
		eventStore = events.NewInMemoryEventStore()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		ID:         uuid.NewString(),
		shoe:       shoe,
		prompter:   prompter,
		view:       view,
		eventStore: eventStore,
	}
	s.logger = logger.With("session_id", s.ID)
	shoe.OnReshuffle(s.handleReshuffle)
	return s
}

// Run plays rounds until the user declines another or input runs out.
// Only unexpected prompter errors are returned.
func (s *Session) Run() error {
	s.record(events.SessionStarted{SessionID: s.ID, Decks: s.shoe.Len() / cards.DeckSize})
	s.record(events.ShoeBuilt{SessionID: s.ID, Cards: s.shoe.Len(), SizeBytes: s.shoe.SizeBytes()})
	s.view.Info(fmt.Sprintf("Deck constructed with %d cards of size %d bytes.", s.shoe.Len(), s.shoe.SizeBytes()))

	err := s.loop()
	s.finish()
	return err
}

func (s *Session) loop() error {
	for {
		s.round = NewRound(s.ID, s.Stats.Rounds+1, s.shoe, s.prompter, s.view, s.logger)
		s.round.RegisterEventHandler(s.record)

		outcome, err := s.round.Play()
		if err != nil {
			return ignoreEOF(err)
		}
		s.Stats.record(outcome)
		s.round = nil

		again, err := s.playAgain()
		if err != nil || !again {
			return err
		}
	}
}

// playAgain asks whether to continue. Zero or unparseable input stops the
// session; any other integer is rejected and asked again.
func (s *Session) playAgain() (bool, error) {
	for {
		s.view.Prompt("Play again? (1: Yes, 0: No): ")

		answer, err := s.prompter.NextInt()
		if errors.Is(err, ErrInvalidInput) {
			return false, nil
		}
		if err != nil {
			return false, ignoreEOF(err)
		}

		switch answer {
		case answerPlay:
			return true, nil
		case answerStop:
			return false, nil
		default:
			s.view.Warning("Invalid choice!")
		}
	}
}

func (s *Session) finish() {
	s.record(events.SessionEnded{SessionID: s.ID, Rounds: s.Stats.Rounds})
	s.logger.Debug("session ended", "rounds", s.Stats.Rounds, "wins", s.Stats.Wins, "losses", s.Stats.Losses, "pushes", s.Stats.Pushes)

	s.view.Info(fmt.Sprintf("Rounds played: %d (won %d, lost %d, pushed %d)",
		s.Stats.Rounds, s.Stats.Wins, s.Stats.Losses, s.Stats.Pushes))
	s.view.Info(fmt.Sprintf("Released deck of size %d bytes.", s.shoe.SizeBytes()))
	s.view.Success("Thanks for playing!")
}

func (s *Session) handleReshuffle(stack cards.Stack) {
	roundID := ""
	if s.round != nil {
		roundID = s.round.ID
	}

	s.view.Warning("Deck is empty! Reshuffling...")
	s.logger.Debug("shoe reshuffled", "round_id", roundID, "cards", len(stack))
	s.record(events.ShoeReshuffled{SessionID: s.ID, RoundID: roundID, Cards: len(stack)})
}

func (s *Session) record(event events.Event) {
	if err := s.eventStore.Append(event); err != nil {
		s.logger.Warn("failed to record event", "event", event.EventName(), "error", err)
	}
}

// Events returns everything recorded for this session so far
func (s *Session) Events() ([]events.Event, error) {
	return s.eventStore.LoadEvents(s.ID)
}

// DumpEvents writes a readable dump of the session's events
func (s *Session) DumpEvents(w io.Writer) error {
	recorded, err := s.Events()
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	_, err = io.WriteString(w, litter.Sdump(recorded)+"\n")
	return err
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
