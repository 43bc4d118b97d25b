package hand

import "strings"

// 牌面字符与花色符号。牌的序列化格式为点数紧跟花色符号（如 A♠、10♥），
// 中间无分隔符，必须与已持久化的数据保持兼容。
var (
	cardRanks = []string{"A", "K", "Q", "J", "10", "9", "8", "7", "6", "5", "4", "3", "2"}
	cardSuits = []string{"♠", "♥", "♦", "♣"}
)

// SplitCard 拆分牌面标记为点数和花色，非法标记返回 ok=false
func SplitCard(token string) (rank, suit string, ok bool) {
	for _, s := range cardSuits {
		if strings.HasSuffix(token, s) {
			rank = strings.TrimSuffix(token, s)
			for _, r := range cardRanks {
				if rank == r {
					return rank, s, true
				}
			}
			return "", "", false
		}
	}
	return "", "", false
}

// ValidCard 判断牌面标记是否合法
func ValidCard(token string) bool {
	_, _, ok := SplitCard(token)
	return ok
}

// Deck 返回全部52张牌的标记，按花色分组、点数从A到2
func Deck() []string {
	deck := make([]string, 0, len(cardRanks)*len(cardSuits))
	for _, s := range cardSuits {
		for _, r := range cardRanks {
			deck = append(deck, r+s)
		}
	}
	return deck
}
