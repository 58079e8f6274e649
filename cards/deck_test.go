package cards

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeckTestSuite struct {
	suite.Suite
}

func TestDeckSuite(t *testing.T) {
	suite.Run(t, new(DeckTestSuite))
}

func (s *DeckTestSuite) TestNewDeckHasEveryCardOnce() {
	deck := NewDeck(nil)

	s.Equal(DeckSize, deck.Len(), "Deck should have 52 cards")
	s.Equal(52, DeckSize)

	seen := make(map[Card]int)
	suits := make(map[Suit]int)
	ranks := make(map[Rank]int)
	for _, card := range deck.Cards() {
		seen[card]++
		suits[card.Suit]++
		ranks[card.Rank]++
	}
	s.Len(seen, 52, "All cards should be distinct")
	for suit, count := range suits {
		s.Equal(13, count, "Each suit should have 13 cards: %s", suit)
	}
	for rank, count := range ranks {
		s.Equal(4, count, "Each rank should have 4 cards: %s", rank)
	}
}

func (s *DeckTestSuite) TestInitialDealLeaves48() {
	deck := NewDeck(nil)
	dealer := Hand{deck.Deal(), deck.Deal()}
	player := Hand{deck.Deal(), deck.Deal()}

	s.Len(dealer, 2)
	s.Len(player, 2)
	s.Equal(48, deck.Len())
	for _, c := range append(dealer, player...) {
		s.NotContains(deck.Cards(), c, "Dealt card should be gone from the deck")
	}
}

func (s *DeckTestSuite) TestSeededDecksAreReproducible() {
	a := NewDeck(rand.New(rand.NewPCG(1, 2)))
	b := NewDeck(rand.New(rand.NewPCG(1, 2)))
	c := NewDeck(rand.New(rand.NewPCG(3, 4)))

	s.Equal(a.Cards(), b.Cards())
	s.NotEqual(a.Cards(), c.Cards())
}

func (s *DeckTestSuite) TestShuffleMovesCards() {
	// First card dealt is uniform over 52: with 2000 decks every card shows up.
	r := rand.New(rand.NewPCG(5, 6))
	firsts := make(map[Card]bool)
	for range 2000 {
		firsts[NewDeck(r).Deal()] = true
	}
	s.Len(firsts, 52)
}

func (s *DeckTestSuite) TestStackedDeckDealsInOrder() {
	deck := NewStackedDeck(Card{Ace, Spades}, Card{Ten, Hearts}, Card{Two, Clubs})

	s.Equal(Card{Ace, Spades}, deck.Deal())
	s.Equal(Card{Ten, Hearts}, deck.Deal())
	s.Equal(Card{Two, Clubs}, deck.Deal())
	s.Zero(deck.Len())
	s.Panics(func() { deck.Deal() })
}

func (s *DeckTestSuite) TestCardString() {
	testCases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"ace of hearts", Card{Rank: Ace, Suit: Hearts}, "A♥"},
		{"ten of diamonds", Card{Rank: Ten, Suit: Diamonds}, "10♦"},
		{"king of clubs", Card{Rank: King, Suit: Clubs}, "K♣"},
		{"two of spades", Card{Rank: Two, Suit: Spades}, "2♠"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.card.String())
		})
	}
}

func (s *DeckTestSuite) TestInvalidRankPanics() {
	s.Panics(func() { _ = Rank(1).Points() })
	s.Panics(func() { _ = Rank(15).String() })
	s.Panics(func() { _ = Suit(9).String() })
}
