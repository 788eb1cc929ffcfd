package blackjack

// Outcome is the result of a round from the player's point of view
type Outcome string

const (
	Outcome_None          Outcome = ""
	Outcome_PushNaturals  Outcome = "push.naturals"
	Outcome_PlayerNatural Outcome = "player.natural"
	Outcome_DealerNatural Outcome = "dealer.natural"
	Outcome_PlayerBust    Outcome = "player.bust"
	Outcome_DealerBust    Outcome = "dealer.bust"
	Outcome_PlayerWins    Outcome = "player.wins"
	Outcome_DealerWins    Outcome = "dealer.wins"
	Outcome_Push          Outcome = "push"
)

// Natural resolves the blackjack check after the deal. It returns
// Outcome_None when neither hand is a blackjack and play continues.
func Natural(player, dealer *Hand) Outcome {
	playerBJ, dealerBJ := player.IsBlackjack(), dealer.IsBlackjack()
	switch {
	case playerBJ && dealerBJ:
		return Outcome_PushNaturals
	case playerBJ:
		return Outcome_PlayerNatural
	case dealerBJ:
		return Outcome_DealerNatural
	default:
		return Outcome_None
	}
}

// Settle compares the final totals of both hands
func Settle(player, dealer *Hand) Outcome {
	playerTotal, dealerTotal := player.Total(), dealer.Total()
	switch {
	case playerTotal > Limit:
		return Outcome_PlayerBust
	case dealerTotal > Limit:
		return Outcome_DealerBust
	case playerTotal > dealerTotal:
		return Outcome_PlayerWins
	case playerTotal == dealerTotal:
		return Outcome_Push
	default:
		return Outcome_DealerWins
	}
}

// PlayerWon reports whether the outcome is a win for the player
func (o Outcome) PlayerWon() bool {
	return o == Outcome_PlayerNatural || o == Outcome_DealerBust || o == Outcome_PlayerWins
}

// IsPush reports whether the outcome is a tie
func (o Outcome) IsPush() bool {
	return o == Outcome_Push || o == Outcome_PushNaturals
}

// Message is the announcement shown to the player
func (o Outcome) Message() string {
	switch o {
	case Outcome_PushNaturals:
		return "Push! Both you and the dealer have Blackjack."
	case Outcome_PlayerNatural:
		return "Blackjack! You win!"
	case Outcome_DealerNatural:
		return "Dealer has Blackjack. You lose!"
	case Outcome_PlayerBust:
		return "Bust! You lose this hand."
	case Outcome_DealerBust, Outcome_PlayerWins:
		return "You Win!"
	case Outcome_Push:
		return "Push! It's a tie."
	case Outcome_DealerWins:
		return "You Lost!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case Outcome_PushNaturals, Outcome_Push:
		return "Push"
	case Outcome_PlayerNatural:
		return "Player wins (natural)"
	case Outcome_DealerNatural:
		return "Dealer wins (natural)"
	case Outcome_PlayerBust:
		return "Player bust"
	case Outcome_DealerBust:
		return "Player wins (dealer bust)"
	case Outcome_PlayerWins:
		return "Player wins"
	case Outcome_DealerWins:
		return "Dealer wins"
	default:
		return "None"
	}
}
