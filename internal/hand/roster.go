package hand

// Roster 当前牌局的座位名单：参与的座位、已弃牌的座位和Hero座位。
// 不变量：folded ⊆ active；hero ∈ active ∪ {空}。
type Roster struct {
	order  []Seat        // 配置时的座位顺序，保存记录时原样写入
	active map[Seat]bool
	folded map[Seat]bool
	hero   Seat
}

// NewRoster 创建空名单
func NewRoster() *Roster {
	return &Roster{
		active: make(map[Seat]bool),
		folded: make(map[Seat]bool),
	}
}

// Configure 替换座位集合和Hero座位。座位集为空时拒绝。
// 重新配置总是清空弃牌状态，这是有意的整体重置而不是合并。
// hero 不在座位集内时静默清空，与座位的静默丢弃策略一致。
func (r *Roster) Configure(seats []Seat, hero Seat) error {
	if len(seats) == 0 {
		return ErrNoSeats
	}

	r.order = r.order[:0]
	r.active = make(map[Seat]bool)
	r.folded = make(map[Seat]bool)
	for _, s := range seats {
		if r.active[s] {
			continue
		}
		r.active[s] = true
		r.order = append(r.order, s)
	}

	r.hero = ""
	if hero != "" && r.active[hero] {
		r.hero = hero
	}
	return nil
}

// MarkFolded 标记座位弃牌。幂等：座位不在名单内或已弃牌时静默忽略，
// 避免撤销重放时状态漂移。
func (r *Roster) MarkFolded(seat Seat) {
	if r.active[seat] {
		r.folded[seat] = true
	}
}

// UnmarkFolded 撤销弃牌标记，MarkFolded 的幂等逆操作
func (r *Roster) UnmarkFolded(seat Seat) {
	delete(r.folded, seat)
}

// EligibleSeats 返回指定街上仍可行动的座位（活跃且未弃牌），
// 按该街的固定行动顺序排列。不在固定枚举内的座位名永远不会出现
// 在任何排序里，因此也永远不会被选中行动。
func (r *Roster) EligibleSeats(street Street) []Seat {
	var eligible []Seat
	for _, s := range OrderFor(street) {
		if r.active[s] && !r.folded[s] {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// ActiveSeats 返回配置顺序的活跃座位列表
func (r *Roster) ActiveSeats() []Seat {
	out := make([]Seat, len(r.order))
	copy(out, r.order)
	return out
}

// FoldedSeats 返回已弃牌座位，按配置顺序排列
func (r *Roster) FoldedSeats() []Seat {
	var out []Seat
	for _, s := range r.order {
		if r.folded[s] {
			out = append(out, s)
		}
	}
	return out
}

// Hero 返回Hero座位，未设置时为空
func (r *Roster) Hero() Seat {
	return r.hero
}

// Configured 判断是否已配置座位
func (r *Roster) Configured() bool {
	return len(r.order) > 0
}

// AllFolded 判断是否全部座位都已弃牌
func (r *Roster) AllFolded() bool {
	if len(r.order) == 0 {
		return false
	}
	for _, s := range r.order {
		if !r.folded[s] {
			return false
		}
	}
	return true
}
