package blackjack

import (
	"errors"
	"testing"

	"blackjack-engine/pkg/deck"
	"github.com/stretchr/testify/assert"
)

// seatedPlayer returns a player who bet and holds cards, as if the round was dealt
func seatedPlayer(t *testing.T, balance, bet int, cards string) *Player {
	t.Helper()
	p := bettingPlayer(t, 1, balance, bet)
	for _, card := range deck.CardsFromString(cards) {
		p.Hand.AddCard(card)
	}

	p.State = PlayerStateStanding
	if p.Hand.IsBust() {
		p.Active = false
		p.State = PlayerStateBusted
	}

	return p
}

// finishedDealer returns a dealer that has drawn out the cards given
func finishedDealer(cards string) *Dealer {
	d := dealtDealer(cards)
	d.State = DealerStateFinished
	return d
}

func TestController_SettleBets(t *testing.T) {
	tests := []struct {
		name    string
		bet     int
		player  string
		dealer  string
		outcome Outcome
		net     int
	}{
		{"blackjack beats 20", 100, "1s,13h", "10c,13d", OutcomeBlackjack, 150},
		{"blackjack payout rounds down", 25, "1s,12h", "10c,9d", OutcomeBlackjack, 37},
		{"blackjack beats bust dealer", 10, "1s,11h", "10c,6d,13c", OutcomeBlackjack, 15},
		{"both blackjack push", 100, "1s,13h", "1d,10d", OutcomePush, 0},
		{"three card 21 is not blackjack", 100, "7c,7d,7h", "10c,13d", OutcomeWin, 100},
		{"three card 21 pushes dealer 21", 100, "7c,7d,7h", "10c,5d,6h", OutcomePush, 0},
		{"bust loses", 50, "10c,9d,5h", "10h,6d,13c", OutcomeBust, -50},
		{"bust loses to dealer blackjack", 50, "10c,9d,5h", "1h,13c", OutcomeBust, -50},
		{"dealer bust pays even", 40, "10c,2d", "10h,6d,13c", OutcomeWin, 40},
		{"higher wins", 20, "10c,9d", "10h,8d", OutcomeWin, 20},
		{"equal pushes", 20, "10c,8d", "9h,9d", OutcomePush, 0},
		{"lower loses", 20, "10c,7d", "10h,9d", OutcomeLose, -20},
		{"dealer blackjack beats 20", 20, "10c,13d", "1h,13c", OutcomeLose, -20},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := assert.New(t)
			c := newTestController()

			p := seatedPlayer(t, 1000, test.bet, test.player)
			a.Equal(1000-test.bet, p.Balance)

			results, err := c.SettleBets([]*Player{p}, finishedDealer(test.dealer))
			a.NoError(err)
			a.Equal(1, len(results))

			result := results[0]
			a.Equal(test.outcome, result.Outcome)
			a.Equal(test.net, result.Net)
			a.Equal(test.bet, result.Bet)
			a.Equal(test.bet+test.net, result.Payout)
			a.Equal(1000+test.net, p.Balance)

			a.Equal(0, p.Bet)
			a.True(p.Active)
			a.Equal(PlayerStateSettled, p.State)
		})
	}
}

func TestController_SettleBets_multiplePlayers(t *testing.T) {
	a := assert.New(t)
	c := newTestController()

	winner := seatedPlayer(t, 500, 100, "1s,13h")
	winner.ID = 1
	buster := seatedPlayer(t, 500, 50, "10c,9d,5h")
	buster.ID = 2
	pusher := seatedPlayer(t, 500, 10, "10d,8s")
	pusher.ID = 3
	sitter := NewPlayer(4, "sitter", 500)
	a.NoError(sitter.SitOut())

	dealer := finishedDealer("10h,8c")

	results, err := c.SettleBets([]*Player{winner, buster, pusher, sitter}, dealer)
	a.NoError(err)
	a.Equal([]Result{
		{PlayerID: 1, Outcome: OutcomeBlackjack, Bet: 100, Payout: 250, Net: 150, PlayerValue: 21, DealerValue: 18},
		{PlayerID: 2, Outcome: OutcomeBust, Bet: 50, Payout: 0, Net: -50, PlayerValue: 24, DealerValue: 18},
		{PlayerID: 3, Outcome: OutcomePush, Bet: 10, Payout: 10, Net: 0, PlayerValue: 18, DealerValue: 18},
	}, results)

	a.Equal(650, winner.Balance)
	a.Equal(450, buster.Balance)
	a.True(buster.Active)
	a.Equal(500, pusher.Balance)

	a.Equal(500, sitter.Balance)
	a.True(sitter.Active)
	a.Equal(PlayerStateBetting, sitter.State)

	a.Equal(DealerStateWaiting, dealer.State)
}

func TestController_SettleBets_notDealt(t *testing.T) {
	a := assert.New(t)
	c := newTestController()

	p := bettingPlayer(t, 1, 100, 10)
	players := []*Player{p}
	dealer := NewDealer()

	results, err := c.SettleBets(players, dealer)
	a.Nil(results)
	a.Equal(ErrRoundNotDealt, err)
	a.Equal(90, p.Balance)
	a.Equal(10, p.Bet)

	// p: 10c,8d  dealer: 2h,3h
	shoe := shoeOf("10c,8d,2h,3h,4s")
	a.NoError(c.DealInitial(shoe, players, dealer))

	// the player is still drawing
	_, err = c.SettleBets(players, dealer)
	a.True(errors.Is(err, ErrRoundInProgress))
	a.EqualError(err, "player 1 (dealt): round is already in progress")

	// the dealer has not played against a standing player
	a.NoError(c.Stand(p))
	_, err = c.SettleBets(players, dealer)
	a.True(errors.Is(err, ErrDealerNotReady))
	a.EqualError(err, "dealer (dealt): dealer cannot play from this state")

	// the shoe ran out while the dealer was drawing
	a.True(errors.Is(c.DealerPlay(shoe, dealer), ErrEndOfDeck))
	a.Equal(9, dealer.Hand.Value())
	results, err = c.SettleBets(players, dealer)
	a.Nil(results)
	a.True(errors.Is(err, ErrDealerNotReady))
	a.Equal(90, p.Balance)
	a.Equal(10, p.Bet)
	a.Equal(PlayerStateStanding, p.State)
	a.Equal(DealerStatePlaying, dealer.State)

	a.NoError(c.DealerPlay(shoeOf("8c"), dealer))
	a.Equal(17, dealer.Hand.Value())
	results, err = c.SettleBets(players, dealer)
	a.NoError(err)
	a.Equal(OutcomeWin, results[0].Outcome)
	a.Equal(110, p.Balance)

	// settling twice does not pay twice
	_, err = c.SettleBets(players, dealer)
	a.Equal(ErrRoundNotDealt, err)
	a.Equal(110, p.Balance)
}

func TestController_SettleBets_allBusted(t *testing.T) {
	a := assert.New(t)
	c := newTestController()

	p := bettingPlayer(t, 1, 100, 10)
	dealer := NewDealer()
	shoe := shoeOf("10c,6d,2h,3h,13s")
	a.NoError(c.DealInitial(shoe, []*Player{p}, dealer))

	_, err := c.PlayerHit(shoe, p)
	a.NoError(err)
	a.Equal(PlayerStateBusted, p.State)

	// nobody is left for the dealer to play against
	results, err := c.SettleBets([]*Player{p}, dealer)
	a.NoError(err)
	a.Equal(OutcomeBust, results[0].Outcome)
	a.Equal(5, results[0].DealerValue)
	a.Equal(90, p.Balance)
	a.Equal(DealerStateWaiting, dealer.State)
}

func TestController_fullRound(t *testing.T) {
	a := assert.New(t)
	c := newTestController()

	p1 := NewPlayer(1, "alice", 1000)
	p2 := NewPlayer(2, "bob", 1000)
	players := []*Player{p1, p2}
	dealer := NewDealer()

	a.NoError(PlaceBet(p1, 100))
	a.NoError(PlaceBet(p2, 50))

	// p1: 10c,9c  p2: 5d,6d  dealer: 10h,6h
	shoe := shoeOf("10c,5d,9c,6d,10h,6h,13s,2c,3s")
	a.NoError(c.DealInitial(shoe, players, dealer))
	a.NoError(c.Stand(p1))

	_, err := c.PlayerHit(shoe, p2)
	a.NoError(err)
	a.Equal(21, p2.Hand.Value())
	a.NoError(c.Stand(p2))

	a.NoError(c.DealerPlay(shoe, dealer))
	a.Equal(18, dealer.Hand.Value())

	results, err := c.SettleBets(players, dealer)
	a.NoError(err)
	a.Equal(OutcomeWin, results[0].Outcome)
	a.Equal(OutcomeWin, results[1].Outcome)
	a.Equal(1100, p1.Balance)
	a.Equal(1050, p2.Balance)

	// next round starts from the settled state
	a.NoError(PlaceBet(p1, 10))
	a.NoError(PlaceBet(p2, 10))
	a.NoError(c.DealInitial(shoeOf("2c,3c,4c,5c,6c,7c"), players, dealer))
	a.Equal(2, len(p1.Hand))
	a.Equal(2, len(dealer.Hand))
}
