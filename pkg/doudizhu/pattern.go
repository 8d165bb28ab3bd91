package doudizhu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var handTypeNames = [...]string{
	HandTypeInvalid:             "invalid",
	HandTypeSingle:              "single",
	HandTypePair:                "pair",
	HandTypeTriple:              "triple",
	HandTypeTripleWithSingle:    "triple_with_single",
	HandTypeTripleWithPair:      "triple_with_pair",
	HandTypeStraight:            "straight",
	HandTypeBomb:                "bomb",
	HandTypeRocket:              "rocket",
	HandTypePairSequence:        "pair_sequence",
	HandTypeAirplane:            "airplane",
	HandTypeAirplaneWithSingles: "airplane_with_singles",
	HandTypeAirplaneWithPairs:   "airplane_with_pairs",
}

func (t HandType) String() string {
	if int(t) < len(handTypeNames) {
		return handTypeNames[t]
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

func (t HandType) MarshalText() ([]byte, error) {
	if int(t) >= len(handTypeNames) {
		return nil, fmt.Errorf("unknown hand type %d", t)
	}
	return []byte(handTypeNames[t]), nil
}

func (t *HandType) UnmarshalText(data []byte) error {
	i := slices.Index(handTypeNames[:], string(data))
	if i < 0 {
		return fmt.Errorf("unknown hand type %q", data)
	}
	*t = HandType(i)
	return nil
}

// Pattern 识别后的一手牌
type Pattern struct {
	Type   HandType `json:"type"`
	Key    Rank     `json:"key"`    // 关键点数：三张的点数、顺子的最小点数等，王炸没有
	Length int      `json:"length"` // 张数，同牌型必须张数相同才能比较
	Cards  Cards    `json:"cards"`  // 按权重排好序的牌
}

// IsValid 是否为合法牌型
func (p Pattern) IsValid() bool {
	return p.Type != HandTypeInvalid
}

func (p Pattern) String() string {
	switch p.Type {
	case HandTypeInvalid:
		return "invalid[" + p.Cards.String() + "]"
	case HandTypeRocket:
		return "rocket[" + p.Cards.String() + "]"
	}
	return fmt.Sprintf("%s(%s)[%s]", p.Type, p.Key, p.Cards)
}

// group 同点数的一组牌
type group struct {
	rank  Rank
	count int
}

// shapeRule 按张数形状匹配牌型，返回关键点数
type shapeRule struct {
	typ   HandType
	match func(gs []group) (Rank, bool)
}

// 形状为各组张数降序，如 3,1 为三带一
var basicShapes = map[string]shapeRule{
	"1":         {HandTypeSingle, firstRank},
	"2":         {HandTypePair, firstRank},
	"3":         {HandTypeTriple, firstRank},
	"4":         {HandTypeBomb, firstRank},
	"3,1":       {HandTypeTripleWithSingle, firstRank},
	"3,2":       {HandTypeTripleWithPair, firstRank},
	"1,1,1,1,1": {HandTypeStraight, sequenceRank},
}

func firstRank(gs []group) (Rank, bool) {
	return gs[0].rank, true
}

// sequenceRank 各组点数连续且不含 2 和王时返回最小点数
func sequenceRank(gs []group) (Rank, bool) {
	for i := 1; i < len(gs); i++ {
		if gs[i].rank != gs[i-1].rank+1 {
			return RankNone, false
		}
	}
	if gs[len(gs)-1].rank >= Rank2 {
		return RankNone, false
	}
	return gs[0].rank, true
}

// Rules 牌型识别规则
type Rules struct {
	extended bool
}

type Option func(*Rules)

// WithExtendedPatterns 开启长顺子、连对和飞机
func WithExtendedPatterns() Option {
	return func(r *Rules) {
		r.extended = true
	}
}

func NewRules(opts ...Option) *Rules {
	r := new(Rules)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extended 是否开启了扩展牌型
func (r *Rules) Extended() bool {
	return r.extended
}

var standardRules = NewRules()

// Classify 按基础规则识别牌型
func Classify(cards Cards) Pattern {
	return standardRules.Classify(cards)
}

// Pattern 按基础规则识别牌型
func (cs Cards) Pattern() Pattern {
	return standardRules.Classify(cs)
}

// Classify 识别牌型，无法识别时返回 HandTypeInvalid，不会失败
func (r *Rules) Classify(cards Cards) (p Pattern) {
	p.Cards = cards.Sorted()
	p.Length = len(cards)

	if p.Length == 0 || !distinct(p.Cards) {
		return
	}

	if p.Length == 2 && p.Cards[0].rank == RankJokerSmall && p.Cards[1].rank == RankJokerBig {
		p.Type = HandTypeRocket
		return
	}

	gs := groupByRank(p.Cards)
	if rule, ok := basicShapes[shapeOf(gs)]; ok {
		if key, ok := rule.match(gs); ok {
			p.Type = rule.typ
			p.Key = key
			return
		}
	}

	if r.extended {
		if typ, key, ok := matchExtended(gs, p.Length); ok {
			p.Type = typ
			p.Key = key
		}
	}
	return
}

// distinct 每张牌都合法且不重复
func distinct(sorted Cards) bool {
	for i, c := range sorted {
		if !c.IsValid() {
			return false
		}
		if i > 0 && sorted[i-1] == c {
			return false
		}
	}
	return true
}

// groupByRank 将排好序的牌按点数分组，组按张数降序、点数升序排列
func groupByRank(sorted Cards) []group {
	var gs []group
	for _, c := range sorted {
		if n := len(gs); n > 0 && gs[n-1].rank == c.rank {
			gs[n-1].count++
			continue
		}
		gs = append(gs, group{rank: c.rank, count: 1})
	}
	slices.SortStableFunc(gs, func(a, b group) int {
		return b.count - a.count
	})
	return gs
}

func shapeOf(gs []group) string {
	var sb strings.Builder
	for i, g := range gs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(g.count))
	}
	return sb.String()
}

// matchExtended 长顺子、连对、飞机
func matchExtended(gs []group, length int) (HandType, Rank, bool) {
	width := gs[0].count

	if gs[len(gs)-1].count == width {
		key, ok := sequenceRank(gs)
		if !ok {
			return HandTypeInvalid, RankNone, false
		}
		switch {
		case width == 1 && len(gs) >= minStraight && len(gs) <= maxStraight:
			return HandTypeStraight, key, true
		case width == 2 && len(gs) >= minPairSeq:
			return HandTypePairSequence, key, true
		case width == 3 && len(gs) >= minAirplaneSeq:
			return HandTypeAirplane, key, true
		}
		return HandTypeInvalid, RankNone, false
	}

	if width != 3 {
		return HandTypeInvalid, RankNone, false
	}
	body := 0
	for body < len(gs) && gs[body].count == 3 {
		body++
	}
	wings := gs[body:]
	if body < minAirplaneSeq || len(wings) != body {
		return HandTypeInvalid, RankNone, false
	}
	key, ok := sequenceRank(gs[:body])
	if !ok {
		return HandTypeInvalid, RankNone, false
	}

	wingWidth := wings[0].count
	jokers := 0
	for _, w := range wings {
		if w.count != wingWidth {
			return HandTypeInvalid, RankNone, false
		}
		if w.rank.IsJoker() {
			jokers++
		}
	}
	switch {
	case wingWidth == 1 && jokers < 2:
		return HandTypeAirplaneWithSingles, key, length == body*4
	case wingWidth == 2:
		return HandTypeAirplaneWithPairs, key, length == body*5
	}
	return HandTypeInvalid, RankNone, false
}
