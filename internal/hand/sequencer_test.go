package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSequencer(t *testing.T, seats []Seat) (*Roster, *Sequencer) {
	t.Helper()
	r := NewRoster()
	require.NoError(t, r.Configure(seats, ""))
	q := NewSequencer(r)
	return r, q
}

func TestSequencerReset(t *testing.T) {
	_, q := newTestSequencer(t, []Seat{SeatUTG, SeatBTN, SeatSB, SeatBB})

	// 翻前第一个行动座位是UTG
	q.Reset(StreetPreflop)
	actor, ok := q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatUTG, actor)

	// 翻后第一个行动座位是SB
	q.Reset(StreetFlop)
	actor, ok = q.CurrentActor(StreetFlop)
	require.True(t, ok)
	assert.Equal(t, SeatSB, actor)
}

func TestSequencerPreflopBlindsOnly(t *testing.T) {
	// 只有盲注位时翻前从SB开始
	_, q := newTestSequencer(t, []Seat{SeatSB, SeatBB})
	q.Reset(StreetPreflop)

	actor, ok := q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatSB, actor)
}

func TestSequencerAdvanceWraps(t *testing.T) {
	_, q := newTestSequencer(t, []Seat{SeatBTN, SeatSB, SeatBB})
	q.Reset(StreetPreflop)

	var seen []Seat
	for i := 0; i < 6; i++ {
		actor, ok := q.CurrentActor(StreetPreflop)
		require.True(t, ok)
		seen = append(seen, actor)
		q.Advance(StreetPreflop)
	}
	// 两圈完整回绕
	assert.Equal(t, []Seat{SeatBTN, SeatSB, SeatBB, SeatBTN, SeatSB, SeatBB}, seen)
}

func TestSequencerAdvanceRetreatInverse(t *testing.T) {
	_, q := newTestSequencer(t, []Seat{SeatUTG, SeatCO, SeatBTN, SeatSB, SeatBB})
	q.Reset(StreetPreflop)

	// 任意位置上 Advance 后 Retreat 都回到原座位
	for i := 0; i < 5; i++ {
		before, ok := q.CurrentActor(StreetPreflop)
		require.True(t, ok)

		q.Advance(StreetPreflop)
		q.Retreat(StreetPreflop)

		after, ok := q.CurrentActor(StreetPreflop)
		require.True(t, ok)
		assert.Equal(t, before, after)

		q.Advance(StreetPreflop)
	}
}

func TestSequencerRetreatWraps(t *testing.T) {
	_, q := newTestSequencer(t, []Seat{SeatSB, SeatBB})
	q.Reset(StreetFlop)

	// 从第一位后退回绕到最后一位
	q.Retreat(StreetFlop)
	actor, ok := q.CurrentActor(StreetFlop)
	require.True(t, ok)
	assert.Equal(t, SeatBB, actor)
}

func TestSequencerSelectManually(t *testing.T) {
	r, q := newTestSequencer(t, []Seat{SeatUTG, SeatBTN, SeatBB})
	q.Reset(StreetPreflop)

	assert.True(t, q.SelectManually(StreetPreflop, SeatBB))
	actor, ok := q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatBB, actor)

	// 不可行动座位被静默忽略，游标不动
	assert.False(t, q.SelectManually(StreetPreflop, SeatCO))
	actor, ok = q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatBB, actor)

	// 已弃牌座位同样不可选
	r.MarkFolded(SeatUTG)
	assert.False(t, q.SelectManually(StreetPreflop, SeatUTG))
}

func TestSequencerDanglingCursorNormalizes(t *testing.T) {
	r, q := newTestSequencer(t, []Seat{SeatUTG, SeatCO, SeatBTN, SeatBB})
	q.Reset(StreetPreflop)

	// 游标推进到最后一位后列表收缩，游标悬空
	q.Advance(StreetPreflop)
	q.Advance(StreetPreflop)
	q.Advance(StreetPreflop)
	actor, ok := q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	require.Equal(t, SeatBB, actor)
	r.MarkFolded(SeatBB)

	// 悬空游标回落到第一个可行动座位
	actor, ok = q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatUTG, actor)

	// 回落后的前进以该座位为基准，不会重复报告同一座位
	q.Advance(StreetPreflop)
	actor, ok = q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatCO, actor)

	// 后退同样落在回落座位的前一位
	q.Retreat(StreetPreflop)
	q.Retreat(StreetPreflop)
	actor, ok = q.CurrentActor(StreetPreflop)
	require.True(t, ok)
	assert.Equal(t, SeatBTN, actor)
}

func TestSequencerEmptyEligible(t *testing.T) {
	r, q := newTestSequencer(t, []Seat{SeatSB, SeatBB})
	q.Reset(StreetPreflop)

	r.MarkFolded(SeatSB)
	r.MarkFolded(SeatBB)
	q.Reset(StreetPreflop)

	_, ok := q.CurrentActor(StreetPreflop)
	assert.False(t, ok)
}
