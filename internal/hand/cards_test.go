package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCard(t *testing.T) {
	rank, suit, ok := SplitCard("A♠")
	assert.True(t, ok)
	assert.Equal(t, "A", rank)
	assert.Equal(t, "♠", suit)

	// 10是唯一的双字符点数
	rank, suit, ok = SplitCard("10♥")
	assert.True(t, ok)
	assert.Equal(t, "10", rank)
	assert.Equal(t, "♥", suit)

	_, _, ok = SplitCard("1♠")
	assert.False(t, ok)

	_, _, ok = SplitCard("As")
	assert.False(t, ok)

	_, _, ok = SplitCard("♠")
	assert.False(t, ok)

	_, _, ok = SplitCard("")
	assert.False(t, ok)
}

func TestValidCard(t *testing.T) {
	for _, token := range []string{"A♠", "K♥", "Q♦", "J♣", "10♠", "2♣"} {
		assert.True(t, ValidCard(token), token)
	}
	for _, token := range []string{"T♠", "11♥", "A", "AA♠", "a♠"} {
		assert.False(t, ValidCard(token), token)
	}
}

func TestDeck(t *testing.T) {
	deck := Deck()
	assert.Len(t, deck, 52)

	// 无重复且全部合法
	seen := make(map[string]bool)
	for _, token := range deck {
		assert.True(t, ValidCard(token), token)
		assert.False(t, seen[token], token)
		seen[token] = true
	}

	// 按花色分组、点数从A开始
	assert.Equal(t, "A♠", deck[0])
	assert.Equal(t, "2♠", deck[12])
	assert.Equal(t, "A♥", deck[13])
}

func TestParseStreet(t *testing.T) {
	street, ok := ParseStreet("preflop")
	assert.True(t, ok)
	assert.Equal(t, StreetPreflop, street)

	street, ok = ParseStreet("FLOP")
	assert.True(t, ok)
	assert.Equal(t, StreetFlop, street)

	_, ok = ParseStreet("showdown")
	assert.False(t, ok)

	_, ok = ParseStreet("")
	assert.False(t, ok)
}

func TestOrderFor(t *testing.T) {
	// 翻前从UTG开始到BB结束
	preflop := OrderFor(StreetPreflop)
	assert.Equal(t, SeatUTG, preflop[0])
	assert.Equal(t, SeatBB, preflop[len(preflop)-1])

	// 翻后从SB开始到BTN结束
	for _, street := range []Street{StreetFlop, StreetTurn, StreetRiver} {
		order := OrderFor(street)
		assert.Equal(t, SeatSB, order[0], string(street))
		assert.Equal(t, SeatBTN, order[len(order)-1], string(street))
		assert.Len(t, order, 9, string(street))
	}
}

func TestKnownSeat(t *testing.T) {
	for _, seat := range []Seat{SeatUTG, SeatUTG1, SeatUTG2, SeatLJ, SeatHJ, SeatCO, SeatBTN, SeatSB, SeatBB} {
		assert.True(t, KnownSeat(seat), string(seat))
	}
	assert.False(t, KnownSeat("MP"))
	assert.False(t, KnownSeat(""))
}
