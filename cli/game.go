// Package cli is the blackjack game loop: betting, player and dealer
// turns and payouts, round after round.
package cli

import (
	"fmt"
	"io"

	"fortio.org/log"
	"github.com/armando2002/blackjack/ansi"
	"github.com/armando2002/blackjack/cards"
	"github.com/armando2002/blackjack/render"
)

// GameState is the step of the round being played.
type GameState int

const (
	StateAwaitingBet GameState = iota
	StatePlayerTurn
	StateDealerTurn
	StateResolution
	StateTerminated
)

func (s GameState) String() string {
	switch s {
	case StateAwaitingBet:
		return "awaiting bet"
	case StatePlayerTurn:
		return "player turn"
	case StateDealerTurn:
		return "dealer turn"
	case StateResolution:
		return "resolution"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

const helpText = `Blackjack game.
Try to get to 21 without going over. The dealer must stop at 17.
Press [H] to hit
Press [S] to stand
Press [D] to double down`

// Game is the blackjack game state, all of it is owned by the game loop.
type Game struct {
	In    LineReader
	Out   io.Writer
	Money int
	State GameState
	// Color the red suits.
	Color bool
	// NewDeck is called at the start of every round.
	NewDeck func() *cards.Deck
	Session *Session

	deck   *cards.Deck
	player cards.Hand
	dealer cards.Hand
	bet    int
	// doubled is set once the player doubled down this round.
	doubled bool
}

// NewGame returns a game starting with money, using freshly shuffled
// decks from the process wide random generator.
func NewGame(in LineReader, out io.Writer, money int) *Game {
	return &Game{
		In:      in,
		Out:     out,
		Money:   money,
		State:   StateAwaitingBet,
		NewDeck: func() *cards.Deck { return cards.NewDeck(nil) },
		Session: NewSession(money),
	}
}

func (g *Game) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.Out, format, args...)
}

func (g *Game) println(msg string) {
	_, _ = io.WriteString(g.Out, msg+"\n")
}

// show draws both hands, the dealer's first card stays hidden unless reveal.
func (g *Game) show(reveal bool) {
	err := render.Hands(g.Out, g.player, g.dealer, reveal, render.Options{Color: g.Color})
	if err != nil {
		log.Errf("Error drawing hands: %v", err)
	}
}

// Run plays rounds until the player quits (ErrQuit) or has no money
// left (ErrOutOfMoney). Any other error is unexpected.
func (g *Game) Run() error {
	for _, l := range ansi.BoxLines(helpText) {
		g.println(l)
	}
	g.println("")
	for {
		if err := g.PlayRound(); err != nil {
			g.State = StateTerminated
			return err
		}
	}
}

// PlayRound plays one round from the bet to the payout.
func (g *Game) PlayRound() error {
	g.State = StateAwaitingBet
	g.printf("Money: %d\n", g.Money)
	bet, err := g.GetBet(g.Money)
	if err != nil {
		return err
	}
	g.bet = bet
	g.doubled = false
	g.deal()
	g.printf("Bet: %d\n", g.bet)

	g.State = StatePlayerTurn
	if err := g.playerTurn(); err != nil {
		return err
	}
	if !g.player.IsBust() {
		g.State = StateDealerTurn
		if err := g.dealerTurn(); err != nil {
			return err
		}
	}
	g.State = StateResolution
	return g.resolve()
}

// deal starts the round with a new deck, 2 cards for the dealer then 2 for the player.
func (g *Game) deal() {
	g.deck = g.NewDeck()
	g.dealer = cards.Hand{g.deck.Deal(), g.deck.Deal()}
	g.player = cards.Hand{g.deck.Deal(), g.deck.Deal()}
	log.LogVf("Dealt dealer %v, player %v, %d cards left", g.dealer, g.player, g.deck.Len())
}

// drawCard deals the next card to the player.
func (g *Game) drawCard() {
	card := g.deck.Deal()
	g.printf("You drew a %s of %s.\n", card.Rank, card.Suit)
	g.player = append(g.player, card)
}

// playerTurn loops until the player stands, doubles down or busts. The bust
// check happens at the top of the loop, after the hands are shown.
func (g *Game) playerTurn() error {
	for {
		g.show(false)
		g.println("")
		if g.player.IsBust() {
			return nil
		}
		canDouble := CanDoubleDown(g.player, g.Money-g.bet)
		move, err := g.GetMove(canDouble)
		if err != nil {
			return err
		}
		switch move {
		case Stand:
			return nil
		case Hit:
			g.drawCard()
		case DoubleDown:
			extra, err := g.GetBet(DoubleDownLimit(g.bet, g.Money))
			if err != nil {
				return err
			}
			g.bet += extra
			g.doubled = true
			g.printf("Bet increased to %d.\n", g.bet)
			// Exactly one more card, then the turn is over whatever it is.
			g.drawCard()
			return nil
		}
	}
}

// dealerTurn: dealer must hit on 16 and below, stand on 17 and above.
func (g *Game) dealerTurn() error {
	for g.dealer.Value() < DealerStandValue {
		g.println("Dealer hits...")
		g.dealer = append(g.dealer, g.deck.Deal())
		log.LogVf("Dealer drew, hand %v = %d (soft %t)", g.dealer, g.dealer.Value(), g.dealer.IsSoft())
		g.show(false)
		if g.dealer.IsBust() {
			return nil
		}
		if err := g.pause(); err != nil {
			return err
		}
	}
	return nil
}

// resolve shows the final hands, settles the bet and ends the session
// when there is no money left.
func (g *Game) resolve() error {
	g.show(true)
	outcome := Resolve(g.player, g.dealer)
	g.Money = outcome.Apply(g.Money, g.bet)
	g.println(outcome.Message(g.bet))
	round := g.Session.Record(Round{
		Bet:         g.bet,
		Doubled:     g.doubled,
		PlayerValue: g.player.Value(),
		DealerValue: g.dealer.Value(),
		Outcome:     outcome,
		MoneyAfter:  g.Money,
	})
	log.S(log.Verbose, "Round resolved", log.Any("id", round.ID), log.Str("outcome", outcome.String()),
		log.Any("bet", g.bet), log.Any("money", g.Money))
	if err := g.pause(); err != nil {
		return err
	}
	if g.Money <= 0 {
		g.println("You're out of money. Play again.")
		return ErrOutOfMoney
	}
	return nil
}
