package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionLogRecordAndTexts(t *testing.T) {
	log := NewActionLog()

	log.Record(StreetPreflop, SeatBTN, Action{Kind: ActionRaise, Amount: "6"})
	log.Record(StreetPreflop, SeatSB, Action{Kind: ActionFold})
	log.Record(StreetFlop, SeatBB, Action{Kind: ActionCheck})

	assert.Equal(t, []string{"BTN: Raise 6", "SB: Fold"}, log.Texts(StreetPreflop))
	assert.Equal(t, []string{"BB: Check"}, log.Texts(StreetFlop))
	assert.Empty(t, log.Texts(StreetTurn))
	assert.Equal(t, 2, log.Len(StreetPreflop))
}

func TestActionLogUndoLast(t *testing.T) {
	log := NewActionLog()
	log.Record(StreetPreflop, SeatBTN, Action{Kind: ActionRaise, Amount: "6"})
	log.Record(StreetPreflop, SeatSB, Action{Kind: ActionCall})

	entry, ok := log.UndoLast(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatSB, entry.Seat)
	assert.Equal(t, ActionCall, entry.Action.Kind)
	assert.Equal(t, []string{"BTN: Raise 6"}, log.Texts(StreetPreflop))

	// 只撤销当前街，其他街不受影响
	log.Record(StreetFlop, SeatSB, Action{Kind: ActionBet, Amount: "10"})
	entry, ok = log.UndoLast(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatBTN, entry.Seat)
	assert.Equal(t, []string{"SB: Bet 10"}, log.Texts(StreetFlop))

	_, ok = log.UndoLast(StreetPreflop)
	assert.False(t, ok)
}

func TestActionLogEntriesSnapshot(t *testing.T) {
	log := NewActionLog()
	log.Record(StreetRiver, SeatBB, Action{Kind: ActionAllIn})

	entries := log.Entries(StreetRiver)
	require.Len(t, entries, 1)

	// 返回的是副本，修改不影响日志
	entries[0].Seat = SeatSB
	assert.Equal(t, []string{"BB: All-in"}, log.Texts(StreetRiver))
}
