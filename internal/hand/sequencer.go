package hand

// Sequencer 行动顺序器。维护一个指向"当前街可行动座位列表"的游标，
// 座位列表始终从名单实时推导，游标本身不跨街保留。
type Sequencer struct {
	roster *Roster
	cursor int
}

// NewSequencer 创建顺序器，游标指向列表第一位之前
func NewSequencer(roster *Roster) *Sequencer {
	return &Sequencer{roster: roster, cursor: -1}
}

// CurrentActor 返回当前行动座位；没有可行动座位时返回空
func (q *Sequencer) CurrentActor(street Street) (Seat, bool) {
	eligible := q.roster.EligibleSeats(street)
	if len(eligible) == 0 || q.cursor < 0 {
		return "", false
	}
	if q.cursor >= len(eligible) {
		// 列表收缩后的悬空游标，归一化到第一个可行动座位，
		// 之后的前进和后退都以该座位为基准
		q.cursor = 0
	}
	return eligible[q.cursor], true
}

// Advance 游标前进一位，到末尾后回绕到开头。每记录一个动作调用一次。
func (q *Sequencer) Advance(street Street) {
	eligible := q.roster.EligibleSeats(street)
	if len(eligible) == 0 {
		q.cursor = -1
		return
	}
	if q.cursor >= len(eligible) {
		q.cursor = -1
	}
	q.cursor = (q.cursor + 1) % len(eligible)
}

// Retreat 游标后退一位（模列表长度），撤销时调用
func (q *Sequencer) Retreat(street Street) {
	eligible := q.roster.EligibleSeats(street)
	if len(eligible) == 0 {
		q.cursor = -1
		return
	}
	if q.cursor < 0 || q.cursor >= len(eligible) {
		q.cursor = 0
	}
	q.cursor = (q.cursor - 1 + len(eligible)) % len(eligible)
}

// Reset 重新推导可行动列表并把游标指向第一位。
// 街切换或名单变化（弃牌、重新配置）后调用。
func (q *Sequencer) Reset(street Street) {
	q.cursor = -1
	q.Advance(street)
}

// SelectManually 手动选择座位。座位不可行动时静默忽略并保持原游标，
// 引擎不因非法选择报错。
func (q *Sequencer) SelectManually(street Street, seat Seat) bool {
	for i, s := range q.roster.EligibleSeats(street) {
		if s == seat {
			q.cursor = i
			return true
		}
	}
	return false
}
