package cards

import (
	"math/rand/v2"
	"slices"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = len(Suits) * len(Ranks)

// Deck is a shuffled set of cards, dealt from the end.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards shuffled. A nil r uses the process wide
// random generator.
func NewDeck(r *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if r == nil {
		rand.Shuffle(len(d.cards), swap)
	} else {
		r.Shuffle(len(d.cards), swap)
	}
	return d
}

// NewStackedDeck returns a deck that deals the given cards in order.
func NewStackedDeck(cards ...Card) *Deck {
	d := &Deck{cards: slices.Clone(cards)}
	slices.Reverse(d.cards)
	return d
}

// Deal removes and returns the next card. Dealing from an empty
// deck panics: a round never uses more than a fraction of the deck.
func (d *Deck) Deal() Card {
	n := len(d.cards)
	if n == 0 {
		panic("deal from empty deck")
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card
}

// Len is the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, next card to be dealt last.
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}
