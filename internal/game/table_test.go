package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feltworks/pokertable/internal/deck"
)

func TestTableSeating(t *testing.T) {
	t.Parallel()

	tbl := NewTable(2)
	a := NewPlayer("a", "A", 100)
	b := NewPlayer("b", "B", 100)

	require.NoError(t, tbl.SeatPlayer(a))
	require.NoError(t, tbl.SeatPlayer(b))
	assert.Equal(t, 0, a.Seat)
	assert.Equal(t, 1, b.Seat)

	assert.Error(t, tbl.SeatPlayer(NewPlayer("c", "C", 100)), "table is full")
	assert.Error(t, tbl.SeatPlayer(a), "already seated")
}

func TestTableRemovePlayerRenumbersSeats(t *testing.T) {
	t.Parallel()

	tbl := NewTable(9)
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, tbl.SeatPlayer(NewPlayer(id, id, 100)))
	}

	require.True(t, tbl.RemovePlayer("a"))
	assert.False(t, tbl.RemovePlayer("a"))

	players := tbl.Players()
	require.Len(t, players, 2)
	assert.Equal(t, "b", players[0].ID)
	assert.Equal(t, 0, players[0].Seat)
	assert.Equal(t, "c", players[1].ID)
	assert.Equal(t, 1, players[1].Seat)
}

func TestTableCommunityCards(t *testing.T) {
	t.Parallel()

	tbl := NewTable(9)
	tbl.AddCommunityCards(deck.MustParseCards("AsKdQh")...)
	assert.Len(t, tbl.CommunityCards, 3)

	tbl.ClearCommunityCards()
	assert.Empty(t, tbl.CommunityCards)
}

func TestPlayerPlaceBetClampsToStack(t *testing.T) {
	t.Parallel()

	p := NewPlayer("a", "A", 50)
	p.Status = StatusActive

	placed := p.PlaceBet(30)
	assert.Equal(t, 30, placed)
	assert.Equal(t, 20, p.Chips)
	assert.Equal(t, 30, p.CurrentBet)
	assert.Equal(t, StatusActive, p.Status)

	placed = p.PlaceBet(100)
	assert.Equal(t, 20, placed, "bet clamps to the remaining stack")
	assert.Equal(t, 0, p.Chips)
	assert.Equal(t, 50, p.TotalBet)
	assert.Equal(t, StatusAllIn, p.Status)
}

func TestDealerDealsStreetsWithBurns(t *testing.T) {
	t.Parallel()

	// A 12-card stack: 4 hole cards, then burn+flop, burn+turn,
	// burn+river.
	d := NewDealerWithDeck(deck.NewStackedDeck(deck.MustParseCards(
		"AsKdAhQc" + "2c" + "7s8h2d" + "3c" + "9c" + "4c" + "Jh")))

	players := []*Player{NewPlayer("a", "A", 100), NewPlayer("b", "B", 100)}
	for _, p := range players {
		p.ResetForHand()
	}
	require.NoError(t, d.DealHoleCards(players, 2))

	// Round-robin: first card to each player, then the second.
	assert.Equal(t, deck.MustParseCards("AsAh"), players[0].Hand.Cards())
	assert.Equal(t, deck.MustParseCards("KdQc"), players[1].Hand.Cards())

	tbl := NewTable(9)
	flop, err := d.DealFlop(tbl)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCards("7s8h2d"), flop)

	turn, err := d.DealTurn(tbl)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCards("9c"), turn)

	river, err := d.DealRiver(tbl)
	require.NoError(t, err)
	assert.Equal(t, deck.MustParseCards("Jh"), river)

	assert.Len(t, tbl.CommunityCards, 5)
	assert.Equal(t, 0, d.Remaining())
}

func TestDealerErrorsWhenDeckRunsDry(t *testing.T) {
	t.Parallel()

	d := NewDealerWithDeck(deck.NewStackedDeck(deck.MustParseCards("As")))
	_, err := d.DealFlop(NewTable(9))
	assert.Error(t, err)
}
