package events

import (
	"reflect"

	"github.com/lazharichir/blackjack/cards"
)

// Event is the interface that all domain events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// GetSessionID returns the SessionID field of an event, or "" if it has none.
func GetSessionID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return ""
	}
	field := val.FieldByName("SessionID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

type SessionStarted struct {
	SessionID string
	Decks     int
}

func (e SessionStarted) EventName() string { return "session-started" }

type ShoeBuilt struct {
	SessionID string
	Cards     int
	SizeBytes int
}

func (e ShoeBuilt) EventName() string { return "shoe-built" }

type ShoeReshuffled struct {
	SessionID string
	RoundID   string
	Cards     int
}

func (e ShoeReshuffled) EventName() string { return "shoe-reshuffled" }

type RoundStarted struct {
	SessionID string
	RoundID   string
	Number    int
}

func (e RoundStarted) EventName() string { return "round-started" }

// Seat identifies who received a card
type Seat string

const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

type CardDealt struct {
	SessionID string
	RoundID   string
	Seat      Seat
	Card      cards.Card
	Total     int
}

func (e CardDealt) EventName() string { return "card-dealt" }

type PlayerStood struct {
	SessionID string
	RoundID   string
	Total     int
}

func (e PlayerStood) EventName() string { return "player-stood" }

type DealerRevealed struct {
	SessionID string
	RoundID   string
	Cards     cards.Stack
	Total     int
}

func (e DealerRevealed) EventName() string { return "dealer-revealed" }

type RoundSettled struct {
	SessionID   string
	RoundID     string
	Outcome     string
	PlayerTotal int
	DealerTotal int
}

func (e RoundSettled) EventName() string { return "round-settled" }

type SessionEnded struct {
	SessionID string
	Rounds    int
}

func (e SessionEnded) EventName() string { return "session-ended" }

// EventHandler is called for every event a round emits
type EventHandler func(event Event)
