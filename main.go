package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	clishell "fortio.org/cli"
	"fortio.org/log"
	"github.com/armando2002/blackjack/cards"
	"github.com/armando2002/blackjack/cli"
	"github.com/armando2002/blackjack/console"
)

func main() {
	os.Exit(Main())
}

// Main plays the game on the terminal and returns the process exit code.
func Main() int {
	money := flag.Int("money", 5000, "Starting `money`")
	seed := flag.Uint64("seed", 0, "Shuffle `seed` for a reproducible session, 0 for random")
	noColor := flag.Bool("no-color", false, "Don't use colors for the red suits")
	summary := flag.Bool("summary", true, "Print the session summary table on exit")
	clishell.ArgsHelp = "\nTerminal blackjack: bet, then (H)it, (S)tand or (D)ouble down. QUIT at a bet prompt exits.\n"
	clishell.Main()
	if err := cli.CheckMoney(*money); err != nil {
		return log.FErrf("Invalid -money: %v", err)
	}
	c, err := console.Open()
	if err != nil {
		return log.FErrf("Error opening terminal: %v", err)
	}
	defer c.Close()
	c.LoggerSetup()

	game := cli.NewGame(c, c.Out, *money)
	game.Color = !*noColor && c.IsTerminal()
	if *seed != 0 {
		r := rand.New(rand.NewPCG(*seed, *seed))
		game.NewDeck = func() *cards.Deck { return cards.NewDeck(r) }
		log.Infof("Using shuffle seed %d", *seed)
	}
	err = game.Run()
	if *summary {
		fmt.Fprintf(c.Out, "%s\n", strings.Join(game.Session.Table(), "\n"))
	}
	sum := game.Session.Summary()
	log.S(log.Info, "Session over", log.Any("rounds", sum.Rounds), log.Any("money", game.Money),
		log.Any("net", sum.Net), log.Str("reason", err.Error()))
	if errors.Is(err, cli.ErrQuit) || errors.Is(err, cli.ErrOutOfMoney) {
		return 0
	}
	return log.FErrf("Game ended unexpectedly: %v", err)
}
