package hand

import (
	"errors"
	"sync"
	"time"

	"github.com/wfunc/hand-recorder/internal/models"
	"go.uber.org/zap"
)

// 可恢复的校验错误。引擎不会因被拒绝的操作进入坏状态，
// 错误原因原样返回给调用方展示。
var (
	ErrNoSeats             = errors.New("at least one seat required")
	ErrNoSeatSelected      = errors.New("no seat selected")
	ErrNothingToUndo       = errors.New("nothing to undo")
	ErrHeroCardsIncomplete = errors.New("hero cards incomplete")
	ErrBlindsRequired      = errors.New("blinds required")
	ErrInvalidCard         = errors.New("invalid card token")
)

// IsValidation 判断是否为可恢复的校验错误
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrNoSeats),
		errors.Is(err, ErrNoSeatSelected),
		errors.Is(err, ErrNothingToUndo),
		errors.Is(err, ErrHeroCardsIncomplete),
		errors.Is(err, ErrBlindsRequired),
		errors.Is(err, ErrInvalidCard),
		errors.Is(err, ErrUnknownAction):
		return true
	}
	return false
}

// Snapshot 会话的可观察状态，每次成功的变更操作都会返回，
// 渲染层据此整体重绘
type Snapshot struct {
	SessionID     string              `json:"session_id"`
	Street        Street              `json:"street"`
	CurrentActor  Seat                `json:"current_actor,omitempty"`
	HandComplete  bool                `json:"hand_complete"`
	ActiveSeats   []Seat              `json:"active_seats"`
	FoldedSeats   []Seat              `json:"folded_seats"`
	EligibleSeats []Seat              `json:"eligible_seats"`
	HeroSeat      Seat                `json:"hero_seat,omitempty"`
	Actions       map[Street][]string `json:"actions"`
}

// SaveRequest 保存牌局的输入
type SaveRequest struct {
	HeroCards    []string `json:"hero_cards"`
	VillainCards []string `json:"villain_cards"`
	BoardCards   []string `json:"board_cards"`
	Blinds       string   `json:"blinds"`
	Position     string   `json:"position"`
	Stack        string   `json:"stack"`
}

// Session 牌局记录会话。独占持有名单、动作日志和行动游标，
// 生命周期为一手牌：保存或重置后回到全新的待配置状态。
// 所有操作要么完整生效、要么完全不生效。
type Session struct {
	mu     sync.RWMutex
	id     string
	logger *zap.Logger

	roster *Roster
	log    *ActionLog
	seq    *Sequencer
	street Street

	createdAt    time.Time
	lastActivity time.Time

	// 每次成功变更后回调（WebSocket推送），持锁调用
	onChange func(*Snapshot)
}

// NewSession 创建会话，初始街为翻前
func NewSession(id string, logger *zap.Logger) *Session {
	roster := NewRoster()
	now := time.Now()
	return &Session{
		id:           id,
		logger:       logger,
		roster:       roster,
		log:          NewActionLog(),
		seq:          NewSequencer(roster),
		street:       StreetPreflop,
		createdAt:    now,
		lastActivity: now,
	}
}

// ID 返回会话ID
func (s *Session) ID() string {
	return s.id
}

// OnChange 设置状态变更回调
func (s *Session) OnChange(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// ConfigureSeats 配置参与座位和Hero座位。座位集为空时拒绝，
// 成功时清空弃牌状态并把游标重置到第一个可行动座位。
func (s *Session) ConfigureSeats(seats []Seat, hero Seat) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Configure(seats, hero); err != nil {
		return nil, err
	}
	s.seq.Reset(s.street)
	s.touch()

	s.logger.Info("座位配置完成",
		zap.String("session_id", s.id),
		zap.Int("seats", len(s.roster.ActiveSeats())),
		zap.String("hero", string(s.roster.Hero())))
	return s.emit(), nil
}

// SetStreet 切换当前街并重置行动游标。街可以任意跳转，不要求单调前进。
func (s *Session) SetStreet(street Street) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.street = street
	s.seq.Reset(street)
	s.touch()
	return s.emit(), nil
}

// SelectSeat 手动选择行动座位，代替自动推进。
// 座位不可行动时静默忽略并保持原游标。
func (s *Session) SelectSeat(seat Seat) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.SelectManually(s.street, seat)
	s.touch()
	return s.emit(), nil
}

// RecordAction 为当前行动座位记录一个动作。没有行动座位时拒绝。
// 弃牌动作登记弃牌并重置游标（可行动列表变了），其余动作推进游标。
func (s *Session) RecordAction(action Action) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actor, ok := s.seq.CurrentActor(s.street)
	if !ok {
		return nil, ErrNoSeatSelected
	}

	s.log.Record(s.street, actor, action)
	if action.IsFold() {
		s.roster.MarkFolded(actor)
		s.seq.Reset(s.street)
	} else {
		s.seq.Advance(s.street)
	}
	s.touch()

	s.logger.Debug("记录动作",
		zap.String("session_id", s.id),
		zap.String("street", string(s.street)),
		zap.String("seat", string(actor)),
		zap.String("action", action.String()))
	return s.emit(), nil
}

// Undo 撤销当前街最近的一个动作。日志为空时拒绝且状态不变。
// 被撤销的是弃牌时先回退弃牌登记，再按撤销后的可行动列表
// 把游标放回该座位（该座位重新成为行动者）。
func (s *Session) Undo() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.log.UndoLast(s.street)
	if !ok {
		return nil, ErrNothingToUndo
	}

	if entry.Action.IsFold() {
		s.roster.UnmarkFolded(entry.Seat)
	}
	if !s.seq.SelectManually(s.street, entry.Seat) {
		s.seq.Retreat(s.street)
	}
	s.touch()

	s.logger.Debug("撤销动作",
		zap.String("session_id", s.id),
		zap.String("street", string(s.street)),
		zap.String("undone", entry.Text()))
	return s.emit(), nil
}

// BuildRecord 校验保存前提并构建持久化记录，不改变会话状态。
// 记录由调用方写入存储，写入成功后再调用 CompleteSave 清空会话，
// 写入失败时本手牌原样保留。
func (s *Session) BuildRecord(req *SaveRequest) (*models.HandRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(req.HeroCards) != 2 {
		return nil, ErrHeroCardsIncomplete
	}
	if req.Blinds == "" {
		return nil, ErrBlindsRequired
	}
	for _, group := range [][]string{req.HeroCards, req.VillainCards, req.BoardCards} {
		for _, token := range group {
			if !ValidCard(token) {
				return nil, ErrInvalidCard
			}
		}
	}

	actions := make(models.StreetLog, len(Streets()))
	for _, street := range Streets() {
		actions[string(street)] = s.log.Texts(street)
	}

	position := req.Position
	if position == "" {
		position = string(s.roster.Hero())
	}

	record := &models.HandRecord{
		HeroCards:    models.StringArray(req.HeroCards),
		VillainCards: models.StringArray(req.VillainCards),
		BoardCards:   models.StringArray(req.BoardCards),
		Blinds:       req.Blinds,
		Position:     position,
		Stack:        req.Stack,
		ActiveSeats:  seatStrings(s.roster.ActiveSeats()),
		HeroSeat:     string(s.roster.Hero()),
		Actions:      actions,
		RecordedAt:   time.Now(),
	}

	return record, nil
}

// CompleteSave 持久化成功后清空全部会话状态
func (s *Session) CompleteSave() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.logger.Info("牌局已保存", zap.String("session_id", s.id))
	s.emit()
}

// ResetHand 无条件清空全部会话状态，不做持久化
func (s *Session) ResetHand() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	s.logger.Info("牌局已重置", zap.String("session_id", s.id))
	return s.emit(), nil
}

// CurrentActor 返回当前街的行动座位，无人可行动时 ok=false
func (s *Session) CurrentActor() (Seat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq.CurrentActor(s.street)
}

// CurrentStreet 返回当前街
func (s *Session) CurrentStreet() Street {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.street
}

// LogFor 返回指定街的动作文本，按时间顺序
func (s *Session) LogFor(street Street) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.log.Texts(street)
}

// EligibleSeatsFor 返回指定街仍可行动的座位
func (s *Session) EligibleSeatsFor(street Street) []Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.EligibleSeats(street)
}

// IsHandComplete 已配置且所有座位都已弃牌时为真。
// 没有独立的终局标志：无人可行动本身就是终局信号。
func (s *Session) IsHandComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.AllFolded()
}

// Snapshot 返回当前可观察状态
func (s *Session) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// LastActivity 返回最近一次操作时间，空闲回收用
func (s *Session) LastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}

// reset 回到全新的待配置状态，调用方持锁
func (s *Session) reset() {
	s.roster = NewRoster()
	s.log = NewActionLog()
	s.seq = NewSequencer(s.roster)
	s.street = StreetPreflop
	s.touch()
}

func (s *Session) touch() {
	s.lastActivity = time.Now()
}

// emit 生成快照并触发变更回调，调用方持锁
func (s *Session) emit() *Snapshot {
	snap := s.snapshot()
	if s.onChange != nil {
		s.onChange(snap)
	}
	return snap
}

// snapshot 调用方持锁
func (s *Session) snapshot() *Snapshot {
	actor, _ := s.seq.CurrentActor(s.street)
	actions := make(map[Street][]string, len(Streets()))
	for _, street := range Streets() {
		actions[street] = s.log.Texts(street)
	}
	return &Snapshot{
		SessionID:     s.id,
		Street:        s.street,
		CurrentActor:  actor,
		HandComplete:  s.roster.AllFolded(),
		ActiveSeats:   s.roster.ActiveSeats(),
		FoldedSeats:   s.roster.FoldedSeats(),
		EligibleSeats: s.roster.EligibleSeats(s.street),
		HeroSeat:      s.roster.Hero(),
		Actions:       actions,
	}
}

func seatStrings(seats []Seat) models.StringArray {
	out := make(models.StringArray, len(seats))
	for i, s := range seats {
		out[i] = string(s)
	}
	return out
}
