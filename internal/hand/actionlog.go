package hand

// Entry 动作日志的一条记录
type Entry struct {
	Seat   Seat   `json:"seat"`
	Action Action `json:"action"`
}

// Text 生成 "<座位>: <动作>" 的规范文本，仅在日志/持久化边界使用
func (e Entry) Text() string {
	return string(e.Seat) + ": " + e.Action.String()
}

// ActionLog 按街存放的动作日志。每条街是一个只在尾部追加、
// 只从尾部弹出的序列（撤销只移除当前街最近的一条）。
// 纯数据结构：弃牌登记和游标推进由调用方在记录之后自行触发。
type ActionLog struct {
	entries map[Street][]Entry
}

// NewActionLog 创建空日志
func NewActionLog() *ActionLog {
	log := &ActionLog{entries: make(map[Street][]Entry)}
	for _, s := range Streets() {
		log.entries[s] = nil
	}
	return log
}

// Record 追加一条记录，不校验动作内容
func (l *ActionLog) Record(street Street, seat Seat, action Action) {
	l.entries[street] = append(l.entries[street], Entry{Seat: seat, Action: action})
}

// UndoLast 弹出并返回指定街最近的一条记录，日志为空时返回 ok=false。
// 弃牌副作用的回退和游标后退由调用方负责。
func (l *ActionLog) UndoLast(street Street) (Entry, bool) {
	entries := l.entries[street]
	if len(entries) == 0 {
		return Entry{}, false
	}
	last := entries[len(entries)-1]
	l.entries[street] = entries[:len(entries)-1]
	return last, true
}

// Entries 返回指定街的记录快照，按时间顺序
func (l *ActionLog) Entries(street Street) []Entry {
	out := make([]Entry, len(l.entries[street]))
	copy(out, l.entries[street])
	return out
}

// Texts 返回指定街的规范文本序列
func (l *ActionLog) Texts(street Street) []string {
	entries := l.entries[street]
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text()
	}
	return out
}

// Len 返回指定街的记录条数
func (l *ActionLog) Len(street Street) int {
	return len(l.entries[street])
}
