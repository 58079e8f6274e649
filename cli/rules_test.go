package cli

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/armando2002/blackjack/cards"
	"github.com/stretchr/testify/assert"
)

func hand(ranks ...cards.Rank) cards.Hand {
	h := make(cards.Hand, 0, len(ranks))
	for i, r := range ranks {
		h = append(h, cards.Card{Rank: r, Suit: cards.Suits[i%len(cards.Suits)]})
	}
	return h
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		player    cards.Hand
		dealer    cards.Hand
		expected  Outcome
		moneyLeft int
	}{
		{"Dealer busts", hand(cards.Ten, cards.Eight), hand(cards.Ten, cards.Six, cards.King), DealerBusts, 110},
		{"Both bust, dealer checked first", hand(cards.Ten, cards.Six, cards.Nine), hand(cards.Ten, cards.Six, cards.King),
			DealerBusts, 110},
		{"Player busts", hand(cards.Ten, cards.Six, cards.Nine), hand(cards.Ten, cards.Seven), Lost, 90},
		{"Player lower", hand(cards.Ten, cards.Seven), hand(cards.Ten, cards.Nine), Lost, 90},
		{"Player higher", hand(cards.Ten, cards.Nine), hand(cards.Ten, cards.Seven), Won, 110},
		{"Push", hand(cards.Ten, cards.Eight), hand(cards.Nine, cards.Nine), Push, 100},
		{"Blackjack against 21 is a push", hand(cards.Ace, cards.King), hand(cards.Seven, cards.Seven, cards.Seven),
			Push, 100},
		{"Blackjack wins even money", hand(cards.Ace, cards.King), hand(cards.Ten, cards.Nine), Won, 110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.player, tt.dealer)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.moneyLeft, got.Apply(100, 10))
		})
	}
}

func TestApplyNeverWraps(t *testing.T) {
	assert.Equal(t, math.MaxInt, Won.Apply(math.MaxInt, math.MaxInt))
	assert.Equal(t, math.MaxInt, DealerBusts.Apply(math.MaxInt-3, 10))
	assert.Equal(t, math.MaxInt-1, Won.Apply(MaxMoney, MaxMoney))
	assert.Equal(t, 0, Lost.Apply(math.MaxInt, math.MaxInt))
}

func TestCheckMoney(t *testing.T) {
	tests := []struct {
		money int
		valid bool
	}{
		{1, true},
		{5000, true},
		{MaxMoney, true},
		{0, false},
		{-1, false},
		{MaxMoney + 1, false},
		{math.MaxInt, false},
	}
	for _, tt := range tests {
		err := CheckMoney(tt.money)
		if tt.valid {
			assert.NoError(t, err, "CheckMoney(%d)", tt.money)
		} else {
			assert.ErrorIs(t, err, ErrInvalidMoney, "CheckMoney(%d)", tt.money)
		}
	}
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "Dealer busts! You win $25!", DealerBusts.Message(25))
	assert.Equal(t, "You lost!", Lost.Message(25))
	assert.Equal(t, "You won $25!", Won.Message(25))
	assert.Equal(t, "Push, bet is returned.", Push.Message(25))
	assert.Panics(t, func() { Outcome(42).Message(1) })
	assert.Equal(t, "Outcome(42)", Outcome(42).String())
}

func TestCanDoubleDown(t *testing.T) {
	assert.True(t, CanDoubleDown(hand(cards.Five, cards.Six), 1))
	assert.False(t, CanDoubleDown(hand(cards.Five, cards.Six), 0), "no money beyond the bet")
	assert.False(t, CanDoubleDown(hand(cards.Two, cards.Three, cards.Four), 50), "only on 2 cards")
	assert.Equal(t, 10, DoubleDownLimit(10, 100))
	assert.Equal(t, 5, DoubleDownLimit(10, 15))
}

func TestParseBet(t *testing.T) {
	for i := 1; i <= 100; i++ {
		bet, err := ParseBet(strconv.Itoa(i), 100)
		assert.NoError(t, err)
		assert.Equal(t, i, bet)
	}
	tests := []struct {
		input string
		err   error
	}{
		{"0", ErrBetOutOfRange},
		{"101", ErrBetOutOfRange},
		{"99999999999999999999999", ErrBetOutOfRange},
		{"abc", ErrInvalidBet},
		{"-5", ErrInvalidBet},
		{"1.5", ErrInvalidBet},
		{"", ErrInvalidBet},
		{"quit", ErrQuit},
		{"QUIT", ErrQuit},
		{" QuIt ", ErrQuit},
	}
	for _, tt := range tests {
		_, err := ParseBet(tt.input, 100)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseBet(%q) = %v, want %v", tt.input, err, tt.err)
		}
	}
	bet, err := ParseBet("  42 ", 100)
	assert.NoError(t, err)
	assert.Equal(t, 42, bet)
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input     string
		canDouble bool
		move      Move
		ok        bool
	}{
		{"h", false, Hit, true},
		{"H", true, Hit, true},
		{"s", false, Stand, true},
		{" s ", false, 0, false},
		{"h\t", true, 0, false},
		{"d", true, DoubleDown, true},
		{"D", false, 0, false},
		{"x", true, 0, false},
		{"hit", true, 0, false},
		{"", true, 0, false},
	}
	for _, tt := range tests {
		move, ok := ParseMove(tt.input, tt.canDouble)
		assert.Equal(t, tt.ok, ok, "ParseMove(%q, %v)", tt.input, tt.canDouble)
		assert.Equal(t, tt.move, move, "ParseMove(%q, %v)", tt.input, tt.canDouble)
	}
	assert.Equal(t, "(H)it, (S)tand> ", MovePrompt(false))
	assert.Equal(t, "(H)it, (S)tand, (D)ouble down> ", MovePrompt(true))
}
