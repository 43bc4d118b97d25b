package hand

import (
	"errors"
	"strings"
)

// ActionKind 动作类型
type ActionKind string

const (
	ActionFold  ActionKind = "Fold"
	ActionCheck ActionKind = "Check"
	ActionCall  ActionKind = "Call"
	ActionBet   ActionKind = "Bet"
	ActionRaise ActionKind = "Raise"
	ActionAllIn ActionKind = "All-in"
)

// ErrUnknownAction 动作类型不在枚举内
var ErrUnknownAction = errors.New("unknown action")

// Action 一次下注动作。Bet/Raise 携带金额，金额是自由文本，
// 本层不做数值校验。
type Action struct {
	Kind   ActionKind `json:"kind"`
	Amount string     `json:"amount,omitempty"`
}

// ParseActionKind 解析动作类型
func ParseActionKind(s string) (ActionKind, bool) {
	switch ActionKind(s) {
	case ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise, ActionAllIn:
		return ActionKind(s), true
	}
	return "", false
}

// NewAction 构造动作并校验类型；Bet/Raise 以外的金额被忽略
func NewAction(kind ActionKind, amount string) (Action, error) {
	if _, ok := ParseActionKind(string(kind)); !ok {
		return Action{}, ErrUnknownAction
	}
	a := Action{Kind: kind}
	if a.HasAmount() {
		a.Amount = strings.TrimSpace(amount)
	}
	return a, nil
}

// HasAmount 判断动作是否携带金额
func (a Action) HasAmount() bool {
	return a.Kind == ActionBet || a.Kind == ActionRaise
}

// IsFold 弃牌判定基于动作类型而不是文本匹配
func (a Action) IsFold() bool {
	return a.Kind == ActionFold
}

// String 生成动作描述文本，与历史数据的格式逐字节一致
func (a Action) String() string {
	if a.HasAmount() && a.Amount != "" {
		return string(a.Kind) + " " + a.Amount
	}
	return string(a.Kind)
}
