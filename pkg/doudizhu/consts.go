package doudizhu

import "errors"

// Suit 牌的花色
type Suit uint8

const (
	SuitSpade   Suit = iota // 黑桃
	SuitHeart               // 红桃
	SuitClub                // 梅花
	SuitDiamond             // 方块
	SuitNone                // 王没有花色
)

// Rank 牌的点数，数值即权重
type Rank uint8

const (
	RankNone Rank = iota
)

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
	Rank2
	RankJokerSmall
	RankJokerBig
)

// HandType 牌型
type HandType uint8

const (
	HandTypeInvalid          HandType = iota // 无效牌型
	HandTypeSingle                           // 单张
	HandTypePair                             // 对子
	HandTypeTriple                           // 三张
	HandTypeTripleWithSingle                 // 三带一
	HandTypeTripleWithPair                   // 三带二
	HandTypeStraight                         // 顺子
	HandTypeBomb                             // 炸弹
	HandTypeRocket                           // 王炸
	HandTypePairSequence                     // 连对（扩展规则）
	HandTypeAirplane                         // 飞机不带（扩展规则）
	HandTypeAirplaneWithSingles              // 飞机带单（扩展规则）
	HandTypeAirplaneWithPairs                // 飞机带对（扩展规则）
)

// Outcome 比较结果
type Outcome uint8

const (
	OutcomeIllegal     Outcome = iota // 不可比较（牌型或张数不同）
	OutcomeDoesNotBeat                // 可比较但压不过
	OutcomeBeats                      // 压得过
)

const (
	// DeckSize 一副牌的张数
	DeckSize = 54

	suitCards       = 13
	indexJokerSmall = 52
	indexJokerBig   = 53

	minStraight    = 5
	maxStraight    = 12
	minPairSeq     = 3
	minAirplaneSeq = 2
)

// 错误定义
var (
	ErrInvalidCardIndex = errors.New("invalid card index")
	ErrInvalidCardName  = errors.New("invalid card name")
)
