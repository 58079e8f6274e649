// Package render draws blackjack hands as ascii art cards.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/armando2002/blackjack/ansi"
	"github.com/armando2002/blackjack/cards"
)

const (
	// CardRows is the number of text lines of every card.
	CardRows = 5
	// CardWidth including the space on the right of a card.
	CardWidth = 6
)

// Options for drawing.
type Options struct {
	// Color red suits using ansi codes.
	Color bool
}

var cardBack = [CardRows]string{
	" ___ ",
	"|## |",
	"|###|",
	"| ##|",
	"|___|",
}

// CardLines returns the 5 rows of a face up card (without the separating space).
func CardLines(c cards.Card, opts Options) [CardRows]string {
	rank := c.Rank.String()
	suit := c.Suit.String()
	if c.Suit.Red() {
		suit = ansi.Color(opts.Color, ansi.Red, suit)
	}
	return [CardRows]string{
		" ___ ",
		"|" + fmt.Sprintf("%-2s", rank) + " |",
		"| " + suit + " |",
		"| " + fmt.Sprintf("%2s", rank) + "|",
		"|___|",
	}
}

// HandLines returns the hand's cards side by side, in hand order. When
// hideFirst is set the first card is drawn face down.
func HandLines(hand cards.Hand, hideFirst bool, opts Options) [CardRows]string {
	var rows [CardRows]strings.Builder
	for i, card := range hand {
		lines := cardBack
		if !(hideFirst && i == 0) {
			lines = CardLines(card, opts)
		}
		for r := range rows {
			rows[r].WriteString(lines[r])
			rows[r].WriteByte(' ')
		}
	}
	var res [CardRows]string
	for r := range rows {
		res[r] = rows[r].String()
	}
	return res
}

// Total is the label for a hand's value, "???" when it must stay hidden.
func Total(hand cards.Hand, hidden bool) string {
	if hidden {
		return "???"
	}
	s := strconv.Itoa(hand.Value())
	if hand.IsBlackjack() {
		s += " (Blackjack!)"
	}
	return s
}

// Hands writes the dealer's then the player's hand with their totals.
// Unless reveal is set, the dealer's first card and total are hidden;
// the hands themselves are never modified.
func Hands(w io.Writer, player, dealer cards.Hand, reveal bool, opts Options) error {
	var sb strings.Builder
	sb.WriteString("\n")
	writeHand(&sb, "DEALER", dealer, !reveal, opts)
	writeHand(&sb, "PLAYER", player, false, opts)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHand(sb *strings.Builder, label string, hand cards.Hand, hidden bool, opts Options) {
	sb.WriteString(ansi.Color(opts.Color, ansi.Bold, label+":"))
	sb.WriteString(" ")
	sb.WriteString(Total(hand, hidden))
	sb.WriteString("\n")
	for _, row := range HandLines(hand, hidden, opts) {
		sb.WriteString(row)
		sb.WriteString("\n")
	}
}
