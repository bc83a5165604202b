package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"blackjack-engine/internal/config"
	"blackjack-engine/internal/session"
	"blackjack-engine/pkg/blackjack"
	"blackjack-engine/pkg/deck"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// errQuit is returned by the prompt when the player asks to leave the table
var errQuit = errors.New("quit")

// PlayCmd plays at the table from the terminal
type PlayCmd struct {
	Seed int64 `help:"Shuffle seed for the first shoe, overrides the config"`
}

// Run plays rounds until everybody is broke, input ends or someone quits
func (p *PlayCmd) Run(cfg config.Config) error {
	if p.Seed != 0 {
		cfg.Seed = p.Seed
	}

	table, err := session.New(cfg, logrus.StandardLogger())
	if err != nil {
		return err
	}

	prompt := newPrompt(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
	for {
		results, err := table.PlayRound(prompt)
		switch {
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, session.ErrTableEmpty):
			prompt.printf("Nobody is left at the table.\n")
			return nil
		case err != nil:
			return err
		}

		prompt.printResults(table, results)
	}
}

// prompt asks the person at the keyboard for every seat's decisions
type prompt struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompt(in io.Reader, out io.Writer, interactive bool) *prompt {
	return &prompt{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

func (p *prompt) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

func (p *prompt) ask(question string) (string, error) {
	if p.interactive {
		p.printf("%s: ", question)
	}

	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}

	if strings.EqualFold(line, "q") {
		return "", errQuit
	}

	return line, nil
}

// Bet asks for a bet. An empty answer bets the minimum, zero sits out.
func (p *prompt) Bet(player *blackjack.Player, minBet int) (int, error) {
	for {
		answer, err := p.ask(fmt.Sprintf("%s (balance %d) bet [%d, 0 to sit out, q to quit]", player.Name, player.Balance, minBet))
		if err != nil {
			return 0, err
		}

		if answer == "" {
			return minBet, nil
		}

		bet, err := strconv.Atoi(answer)
		if err != nil || (bet != 0 && bet < minBet) {
			p.printf("Bet must be 0 or at least %d\n", minBet)
			continue
		}

		return bet, nil
	}
}

// Hit shows the hand and asks whether to take another card
func (p *prompt) Hit(player *blackjack.Player, dealerUp deck.Card) (bool, error) {
	p.printf("Dealer shows %s. %s has %s (%d)\n", dealerUp.Name(), player.Name, describe(player.Hand), player.Hand.Value())
	for {
		answer, err := p.ask("(h)it or (s)tand")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "h", "hit":
			return true, nil
		case "s", "stand", "":
			return false, nil
		}
	}
}

func (p *prompt) printResults(table *session.Session, results []blackjack.Result) {
	dealer := table.Dealer()
	p.printf("Dealer has %s (%d)\n", describe(dealer.Hand), dealer.Hand.Value())

	names := make(map[int64]string, len(table.Players()))
	balances := make(map[int64]int, len(table.Players()))
	for _, player := range table.Players() {
		names[player.ID] = player.Name
		balances[player.ID] = player.Balance
	}

	for _, result := range results {
		p.printf("%s: %s (%d), %+d, balance %d\n", names[result.PlayerID], result.Outcome, result.PlayerValue, result.Net, balances[result.PlayerID])
	}
}

func describe(hand deck.Hand) string {
	names := make([]string, len(hand))
	for i, card := range hand {
		names[i] = card.Name()
	}

	return strings.Join(names, ", ")
}
