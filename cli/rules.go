package cli

import (
	"errors"
	"fmt"
	"math"

	"github.com/armando2002/blackjack/cards"
)

const (
	// DealerStandValue is the total at which the dealer stops drawing.
	DealerStandValue = 17
	// MaxMoney is the largest starting money, a win on it can't overflow.
	MaxMoney = math.MaxInt / 2
)

// ErrInvalidMoney is returned by CheckMoney.
var ErrInvalidMoney = errors.New("invalid starting money")

// CheckMoney validates the starting money, between 1 and MaxMoney.
func CheckMoney(money int) error {
	if money < 1 || money > MaxMoney {
		return fmt.Errorf("%w: %d must be between 1 and %d", ErrInvalidMoney, money, MaxMoney)
	}
	return nil
}

// Outcome of a round for the player.
type Outcome int

const (
	Push Outcome = iota
	DealerBusts
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Push:
		return "push"
	case DealerBusts:
		return "dealer busts"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Resolve decides the round, checked in this order: dealer bust wins,
// player bust or lower total loses, higher total wins, else push.
func Resolve(player, dealer cards.Hand) Outcome {
	playerScore := player.Value()
	dealerScore := dealer.Value()
	switch {
	case dealerScore > cards.BlackjackValue:
		return DealerBusts
	case playerScore > cards.BlackjackValue, playerScore < dealerScore:
		return Lost
	case playerScore > dealerScore:
		return Won
	default:
		return Push
	}
}

// Apply returns the money after settling bet with this outcome. Winnings
// stop at math.MaxInt instead of wrapping around.
func (o Outcome) Apply(money, bet int) int {
	switch o {
	case DealerBusts, Won:
		if money > math.MaxInt-bet {
			return math.MaxInt
		}
		return money + bet
	case Lost:
		return money - bet
	case Push:
		return money
	}
	panic("invalid outcome " + o.String())
}

// Message is what the player is told about the outcome.
func (o Outcome) Message(bet int) string {
	switch o {
	case DealerBusts:
		return fmt.Sprintf("Dealer busts! You win $%d!", bet)
	case Lost:
		return "You lost!"
	case Won:
		return fmt.Sprintf("You won $%d!", bet)
	case Push:
		return "Push, bet is returned."
	}
	panic("invalid outcome " + o.String())
}

// CanDoubleDown is true on the first decision (2 cards) when the player
// has money left beyond the current bet.
func CanDoubleDown(hand cards.Hand, spare int) bool {
	return len(hand) == 2 && spare > 0
}

// DoubleDownLimit is the most that can be added to bet when doubling
// down: the smaller of the bet and the money not already bet.
func DoubleDownLimit(bet, money int) int {
	return min(bet, money-bet)
}
