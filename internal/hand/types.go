package hand

import "strings"

// Street 下注轮次
type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Streets 按游戏顺序返回四条街
func Streets() []Street {
	return []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver}
}

// ParseStreet 解析街名
func ParseStreet(s string) (Street, bool) {
	switch Street(strings.ToLower(s)) {
	case StreetPreflop:
		return StreetPreflop, true
	case StreetFlop:
		return StreetFlop, true
	case StreetTurn:
		return StreetTurn, true
	case StreetRiver:
		return StreetRiver, true
	}
	return "", false
}

// Seat 座位标识（桌面位置）
type Seat string

const (
	SeatUTG  Seat = "UTG"
	SeatUTG1 Seat = "UTG+1"
	SeatUTG2 Seat = "UTG+2"
	SeatLJ   Seat = "LJ"
	SeatHJ   Seat = "HJ"
	SeatCO   Seat = "CO"
	SeatBTN  Seat = "BTN"
	SeatSB   Seat = "SB"
	SeatBB   Seat = "BB"
)

// actionOrder 每条街的行动顺序。
// 翻前从UTG开始到BB结束，翻后从SB开始到BTN结束。
// 两张表成员相同、只是起点不同，但必须保持为独立的固定列表，
// 不能由一张表旋转推导。
var actionOrder = map[Street][]Seat{
	StreetPreflop: {SeatUTG, SeatUTG1, SeatUTG2, SeatLJ, SeatHJ, SeatCO, SeatBTN, SeatSB, SeatBB},
	StreetFlop:    {SeatSB, SeatBB, SeatUTG, SeatUTG1, SeatUTG2, SeatLJ, SeatHJ, SeatCO, SeatBTN},
	StreetTurn:    {SeatSB, SeatBB, SeatUTG, SeatUTG1, SeatUTG2, SeatLJ, SeatHJ, SeatCO, SeatBTN},
	StreetRiver:   {SeatSB, SeatBB, SeatUTG, SeatUTG1, SeatUTG2, SeatLJ, SeatHJ, SeatCO, SeatBTN},
}

// OrderFor 返回指定街的完整行动顺序
func OrderFor(street Street) []Seat {
	return actionOrder[street]
}

// KnownSeat 判断座位是否在固定枚举内
func KnownSeat(seat Seat) bool {
	for _, s := range actionOrder[StreetPreflop] {
		if s == seat {
			return true
		}
	}
	return false
}
