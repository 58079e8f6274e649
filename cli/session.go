package cli

import (
	"fmt"
	"strconv"

	"github.com/armando2002/blackjack/ansi/table"
	"github.com/google/uuid"
)

// Round is the record of one finished round.
type Round struct {
	ID          uuid.UUID
	Bet         int
	Doubled     bool
	PlayerValue int
	DealerValue int
	Outcome     Outcome
	MoneyAfter  int
}

// Session keeps the rounds played since the game started, in memory only.
type Session struct {
	StartMoney int
	Rounds     []Round
}

// NewSession starts an empty session.
func NewSession(startMoney int) *Session {
	return &Session{StartMoney: startMoney}
}

// Record stamps the round with a new id and appends it.
func (s *Session) Record(r Round) Round {
	r.ID = uuid.New()
	s.Rounds = append(s.Rounds, r)
	return r
}

// Summary of a session.
type Summary struct {
	Rounds  int
	Wins    int
	Losses  int
	Pushes  int
	Doubles int
	Net     int
}

// Summary counts the recorded rounds.
func (s *Session) Summary() Summary {
	sum := Summary{Rounds: len(s.Rounds)}
	for _, r := range s.Rounds {
		switch r.Outcome {
		case Won, DealerBusts:
			sum.Wins++
		case Lost:
			sum.Losses++
		case Push:
			sum.Pushes++
		}
		if r.Doubled {
			sum.Doubles++
		}
	}
	if n := len(s.Rounds); n > 0 {
		sum.Net = s.Rounds[n-1].MoneyAfter - s.StartMoney
	}
	return sum
}

func formatNet(net int) string {
	switch {
	case net > 0:
		return fmt.Sprintf("+$%d", net)
	case net < 0:
		return fmt.Sprintf("-$%d", -net)
	default:
		return "$0"
	}
}

// Table returns the summary as boxed text lines.
func (s *Session) Table() []string {
	sum := s.Summary()
	rows := [][]string{
		{"Rounds played", strconv.Itoa(sum.Rounds)},
		{"Won", strconv.Itoa(sum.Wins)},
		{"Lost", strconv.Itoa(sum.Losses)},
		{"Pushed", strconv.Itoa(sum.Pushes)},
		{"Doubled down", strconv.Itoa(sum.Doubles)},
		{"Net", formatNet(sum.Net)},
	}
	return table.Boxed([]table.Alignment{table.Left, table.Right}, rows)
}
