// Package cards has the standard 52 card deck and blackjack hand values.
package cards

import "strconv"

// Suit of a playing card.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits in deck construction order.
var Suits = [...]Suit{Hearts, Diamonds, Spades, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	}
	panic("invalid suit " + strconv.Itoa(int(s)))
}

// Red is true for hearts and diamonds.
func (s Suit) Red() bool {
	switch s {
	case Hearts, Diamonds:
		return true
	case Spades, Clubs:
		return false
	}
	panic("invalid suit " + strconv.Itoa(int(s)))
}

// Rank of a playing card, numeric ranks have their face value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks in deck construction order (numbers first, then J Q K A).
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return strconv.Itoa(int(r))
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	panic("invalid rank " + strconv.Itoa(int(r)))
}

// Points is the hard value of the rank: aces count 1, faces 10.
func (r Rank) Points() int {
	switch r {
	case Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten:
		return int(r)
	case Jack, Queen, King:
		return 10
	case Ace:
		return 1
	}
	panic("invalid rank " + strconv.Itoa(int(r)))
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
