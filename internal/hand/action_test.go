package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAction(t *testing.T) {
	a, err := NewAction(ActionRaise, " 6 ")
	require.NoError(t, err)
	assert.Equal(t, ActionRaise, a.Kind)
	assert.Equal(t, "6", a.Amount)

	// 非下注动作忽略金额
	a, err = NewAction(ActionCall, "10")
	require.NoError(t, err)
	assert.Empty(t, a.Amount)

	_, err = NewAction("Limp", "")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestActionString(t *testing.T) {
	tests := []struct {
		kind     ActionKind
		amount   string
		expected string
	}{
		{ActionFold, "", "Fold"},
		{ActionCheck, "", "Check"},
		{ActionCall, "", "Call"},
		{ActionBet, "6", "Bet 6"},
		{ActionRaise, "18", "Raise 18"},
		{ActionRaise, "", "Raise"},
		{ActionAllIn, "", "All-in"},
	}

	for _, tt := range tests {
		a := Action{Kind: tt.kind, Amount: tt.amount}
		assert.Equal(t, tt.expected, a.String())
	}
}

func TestActionIsFold(t *testing.T) {
	assert.True(t, Action{Kind: ActionFold}.IsFold())
	assert.False(t, Action{Kind: ActionCheck}.IsFold())
	assert.False(t, Action{Kind: ActionAllIn}.IsFold())
}

func TestEntryText(t *testing.T) {
	e := Entry{Seat: SeatBTN, Action: Action{Kind: ActionRaise, Amount: "6"}}
	assert.Equal(t, "BTN: Raise 6", e.Text())

	e = Entry{Seat: SeatSB, Action: Action{Kind: ActionFold}}
	assert.Equal(t, "SB: Fold", e.Text())
}
