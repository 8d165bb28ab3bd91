package doudizhu

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// 名字表在包初始化时建好，只读
var (
	rankNames = map[Rank]string{
		Rank3: "3", Rank4: "4", Rank5: "5", Rank6: "6",
		Rank7: "7", Rank8: "8", Rank9: "9", Rank10: "10",
		RankJ: "J", RankQ: "Q", RankK: "K", RankA: "A",
		Rank2: "2", RankJokerSmall: "小王", RankJokerBig: "大王",
	}
	suitNames = [...]string{
		SuitSpade:   "♠",
		SuitHeart:   "♥",
		SuitClub:    "♣",
		SuitDiamond: "♦",
		SuitNone:    "",
	}

	ranksByName = map[string]Rank{
		"3": Rank3, "4": Rank4, "5": Rank5, "6": Rank6,
		"7": Rank7, "8": Rank8, "9": Rank9, "10": Rank10, "T": Rank10,
		"J": RankJ, "Q": RankQ, "K": RankK, "A": RankA, "2": Rank2,
	}
	suitsByName = map[string]Suit{
		"♠": SuitSpade, "S": SuitSpade,
		"♥": SuitHeart, "H": SuitHeart,
		"♣": SuitClub, "C": SuitClub,
		"♦": SuitDiamond, "D": SuitDiamond,
	}
	jokersByName = map[string]Card{
		"小王": {rank: RankJokerSmall, suit: SuitNone},
		"大王": {rank: RankJokerBig, suit: SuitNone},
		"SJ": {rank: RankJokerSmall, suit: SuitNone},
		"BJ": {rank: RankJokerBig, suit: SuitNone},
	}
)

// String 返回点数的显示名
func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Strength 返回点数的权重，3 < 4 < ... < A < 2 < 小王 < 大王
func (r Rank) Strength() int {
	return int(r)
}

// IsJoker 是否为大小王
func (r Rank) IsJoker() bool {
	return r == RankJokerSmall || r == RankJokerBig
}

func (s Suit) String() string {
	if int(s) < len(suitNames) {
		return suitNames[s]
	}
	return "?"
}

// Card 代表一张扑克牌，构造后不可修改
// 零值不是一张合法的牌，只能通过 NewCard 得到
type Card struct {
	rank Rank
	suit Suit
}

// NewCard 根据 [0,54) 的编号创建一张牌
// 0-12 为黑桃 3..2，13-25 红桃，26-38 梅花，39-51 方块，52 小王，53 大王
func NewCard(index int) (Card, error) {
	switch {
	case index < 0 || index >= DeckSize:
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidCardIndex, index)
	case index == indexJokerSmall:
		return Card{rank: RankJokerSmall, suit: SuitNone}, nil
	case index == indexJokerBig:
		return Card{rank: RankJokerBig, suit: SuitNone}, nil
	}
	return Card{
		rank: Rank3 + Rank(index%suitCards),
		suit: Suit(index / suitCards),
	}, nil
}

// MustCard 同 NewCard，编号非法时 panic
func MustCard(index int) Card {
	c, err := NewCard(index)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard 解析牌名，String 的逆操作
// 另外接受 T 表示 10，S/H/C/D 表示花色，SJ/BJ 表示小王/大王
func ParseCard(name string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if c, ok := jokersByName[s]; ok {
		return c, nil
	}

	last, size := utf8.DecodeLastRuneInString(s)
	if last == utf8.RuneError {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardName, name)
	}
	suit, ok := suitsByName[string(last)]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardName, name)
	}
	rank, ok := ranksByName[s[:len(s)-size]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardName, name)
	}
	return Card{rank: rank, suit: suit}, nil
}

func (c Card) Rank() Rank { return c.rank }
func (c Card) Suit() Suit { return c.suit }

// Strength 牌的权重，只由点数决定
func (c Card) Strength() int { return c.rank.Strength() }

// IsJoker 是否为大小王
func (c Card) IsJoker() bool { return c.rank.IsJoker() }

// IsValid 零值或非法的牌返回 false
func (c Card) IsValid() bool {
	if c.rank.IsJoker() {
		return c.suit == SuitNone
	}
	return c.rank >= Rank3 && c.rank <= Rank2 && c.suit < SuitNone
}

// Index 返回牌的编号，与 NewCard 互逆
func (c Card) Index() int {
	switch c.rank {
	case RankJokerSmall:
		return indexJokerSmall
	case RankJokerBig:
		return indexJokerBig
	}
	return int(c.suit)*suitCards + int(c.rank-Rank3)
}

// Less 按权重比较，同点数不同花色的两张牌互不小于对方
func (c Card) Less(other Card) bool {
	return c.rank < other.rank
}

// String 显示名，如 10♠、A♥、小王
func (c Card) String() string {
	if c.IsJoker() {
		return c.rank.String()
	}
	return c.rank.String() + c.suit.String()
}

// Cards 一组牌，出牌时的一手
type Cards []Card

// Deck 按编号顺序返回一副完整的牌
func Deck() Cards {
	cards := make(Cards, DeckSize)
	for i := 0; i < DeckSize; i++ {
		cards[i] = MustCard(i)
	}
	return cards
}

// FromIndices 将编号列表转换为牌，遇到非法编号返回错误
func FromIndices(indices ...int) (Cards, error) {
	cards := make(Cards, 0, len(indices))
	for _, i := range indices {
		c, err := NewCard(i)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Indices 返回每张牌的编号
func (cs Cards) Indices() []int {
	indices := make([]int, len(cs))
	for i, c := range cs {
		indices[i] = c.Index()
	}
	return indices
}

// Sorted 返回按权重升序排列的副本，同点数按编号排
func (cs Cards) Sorted() Cards {
	sorted := slices.Clone(cs)
	slices.SortFunc(sorted, func(a, b Card) int {
		if a.rank != b.rank {
			return int(a.rank) - int(b.rank)
		}
		return a.Index() - b.Index()
	})
	return sorted
}

func (cs Cards) String() string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, " ")
}
