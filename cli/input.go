package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/log"
)

var (
	// ErrQuit is returned when the player asks to quit (or input ends).
	ErrQuit = errors.New("player quit")
	// ErrOutOfMoney is returned when the bankroll is depleted.
	ErrOutOfMoney = errors.New("out of money")

	ErrInvalidBet    = errors.New("not a valid bet amount")
	ErrBetOutOfRange = errors.New("bet out of range")
)

const (
	QuitCommand   = "QUIT"
	InputPrompt   = "> "
	ContinueInput = "Press Enter to continue..."
)

// LineReader is the line input the game needs, *console.Console implements it.
type LineReader interface {
	SetPrompt(prompt string)
	ReadLine() (string, error)
}

// Move the player can make on their turn.
type Move byte

const (
	Hit        Move = 'H'
	Stand      Move = 'S'
	DoubleDown Move = 'D'
)

// ParseBet validates a bet entry: surrounding spaces are ignored, QUIT
// (any case) returns ErrQuit, anything not made of digits is
// ErrInvalidBet and numbers outside [1, maxBet] are ErrBetOutOfRange.
func ParseBet(input string, maxBet int) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == QuitCommand {
		return 0, ErrQuit
	}
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		return 0, ErrInvalidBet
	}
	bet, err := strconv.Atoi(s)
	if err != nil {
		// Only possible error left for digits is overflow.
		return 0, fmt.Errorf("%w: %w", ErrBetOutOfRange, err)
	}
	if bet < 1 || bet > maxBet {
		return 0, ErrBetOutOfRange
	}
	return bet, nil
}

// MovePrompt lists the available moves.
func MovePrompt(canDouble bool) string {
	moves := []string{"(H)it", "(S)tand"}
	if canDouble {
		moves = append(moves, "(D)ouble down")
	}
	return strings.Join(moves, ", ") + InputPrompt
}

// ParseMove returns the move for the (case insensitive) letter entered,
// D is only valid when canDouble is set. Unlike bets, moves are not
// trimmed: " s" is not a move.
func ParseMove(input string, canDouble bool) (Move, bool) {
	switch strings.ToUpper(input) {
	case "H":
		return Hit, true
	case "S":
		return Stand, true
	case "D":
		if canDouble {
			return DoubleDown, true
		}
	}
	return 0, false
}

// readLine reads the next line after showing prompt. The end of the
// input is handled like the quit command.
func (g *Game) readLine(prompt string) (string, error) {
	g.In.SetPrompt(prompt)
	line, err := g.In.ReadLine()
	if errors.Is(err, io.EOF) {
		log.LogVf("Input closed, quitting")
		g.println("Thanks for playing!")
		return "", ErrQuit
	}
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// GetBet asks for a bet between 1 and maxBet until a valid one is entered.
func (g *Game) GetBet(maxBet int) (int, error) {
	for {
		g.printf("How much do you want to bet? (1-%d, or %s)\n", maxBet, QuitCommand)
		line, err := g.readLine(InputPrompt)
		if err != nil {
			return 0, err
		}
		bet, err := ParseBet(line, maxBet)
		switch {
		case err == nil:
			return bet, nil
		case errors.Is(err, ErrQuit):
			g.println("Thanks for playing!")
			return 0, ErrQuit
		case errors.Is(err, ErrInvalidBet):
			g.println("Enter a valid bet amount.")
		}
		log.LogVf("Rejected bet %q: %v", line, err)
	}
}

// GetMove asks for a move until a valid one is entered.
func (g *Game) GetMove(canDouble bool) (Move, error) {
	prompt := MovePrompt(canDouble)
	for {
		line, err := g.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if move, ok := ParseMove(line, canDouble); ok {
			return move, nil
		}
		log.LogVf("Rejected move %q", line)
	}
}

// pause waits for the player to press enter.
func (g *Game) pause() error {
	_, err := g.readLine(ContinueInput)
	if err != nil {
		return err
	}
	g.printf("\n\n")
	return nil
}
