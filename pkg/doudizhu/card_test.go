package doudizhu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hand 按空格分隔的牌名构造一手牌
func hand(t *testing.T, names string) Cards {
	t.Helper()
	var cs Cards
	for _, name := range strings.Fields(names) {
		c, err := ParseCard(name)
		require.NoError(t, err, name)
		cs = append(cs, c)
	}
	return cs
}

// TestNewCard 测试编号到牌的映射
func TestNewCard(t *testing.T) {
	tests := []struct {
		name  string
		index int
		rank  Rank
		suit  Suit
		str   string
	}{
		{"黑桃3", 0, Rank3, SuitSpade, "3♠"},
		{"黑桃10", 7, Rank10, SuitSpade, "10♠"},
		{"黑桃A", 11, RankA, SuitSpade, "A♠"},
		{"黑桃2", 12, Rank2, SuitSpade, "2♠"},
		{"红桃3", 13, Rank3, SuitHeart, "3♥"},
		{"梅花J", 34, RankJ, SuitClub, "J♣"},
		{"方块2", 51, Rank2, SuitDiamond, "2♦"},
		{"小王", 52, RankJokerSmall, SuitNone, "小王"},
		{"大王", 53, RankJokerBig, SuitNone, "大王"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCard(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.suit, c.Suit())
			assert.Equal(t, tt.str, c.String())
			assert.Equal(t, tt.index, c.Index())
			assert.True(t, c.IsValid())
		})
	}
}

func TestNewCard_InvalidIndex(t *testing.T) {
	for _, index := range []int{-1, 54, 55, 255, -100} {
		c, err := NewCard(index)
		require.ErrorIs(t, err, ErrInvalidCardIndex)
		assert.Equal(t, Card{}, c)
		assert.False(t, c.IsValid())
	}

	assert.Panics(t, func() { MustCard(54) })
	assert.NotPanics(t, func() { MustCard(53) })
}

// TestStrengthOrder 权重在 3 < 4 < ... < A < 2 < 小王 < 大王 上严格递增
func TestStrengthOrder(t *testing.T) {
	order := []Rank{
		Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10,
		RankJ, RankQ, RankK, RankA, Rank2, RankJokerSmall, RankJokerBig,
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Strength(), order[i].Strength(), "%s < %s", order[i-1], order[i])
	}

	position := make(map[Rank]int, len(order))
	for i, r := range order {
		position[r] = i
	}
	for _, a := range Deck() {
		for _, b := range Deck() {
			assert.Equal(t, position[a.Rank()] < position[b.Rank()], a.Strength() < b.Strength(), "%s vs %s", a, b)
		}
	}
}

// TestCardIdentity 同点数不同花色互不相等，也互不小于
func TestCardIdentity(t *testing.T) {
	spade, heart := MustCard(0), MustCard(13)
	assert.Equal(t, spade.Rank(), heart.Rank())
	assert.NotEqual(t, spade, heart)
	assert.False(t, spade.Less(heart))
	assert.False(t, heart.Less(spade))
	assert.Equal(t, spade.Strength(), heart.Strength())

	assert.Equal(t, MustCard(7), MustCard(7))
	assert.True(t, MustCard(52).Less(MustCard(53)))
	assert.True(t, MustCard(12).Less(MustCard(52)))
	assert.True(t, MustCard(11).Less(MustCard(12)))
}

// TestIndexRoundTrip 编号构造的牌与识别结果中的点数一致
func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < DeckSize; i++ {
		c := MustCard(i)
		assert.Equal(t, i, c.Index())

		p := Classify(Cards{c})
		assert.Equal(t, HandTypeSingle, p.Type)
		assert.Equal(t, c.Rank(), p.Key)

		parsed, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"3♠", 0},
		{"10♥", 20},
		{"T♥", 20},
		{"10h", 20},
		{"qc", 35},
		{" 2D ", 51},
		{"SJ", 52},
		{"bj", 53},
		{"大王", 53},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCard(tt.name)
			require.NoError(t, err)
			assert.Equal(t, MustCard(tt.index), c)
		})
	}

	for _, name := range []string{"", "1♠", "3X", "11♠", "♠", "10", "王"} {
		_, err := ParseCard(name)
		assert.ErrorIs(t, err, ErrInvalidCardName, name)
	}
}

func TestDeck(t *testing.T) {
	deck := Deck()
	require.Len(t, deck, DeckSize)

	seen := make(map[Card]bool, DeckSize)
	for i, c := range deck {
		assert.Equal(t, i, c.Index())
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestCardsSorted(t *testing.T) {
	cs := hand(t, "大王 3♦ 2♠ 3♠ A♥")
	sorted := cs.Sorted()

	assert.Equal(t, "3♠ 3♦ A♥ 2♠ 大王", sorted.String())
	assert.Equal(t, "大王 3♦ 2♠ 3♠ A♥", cs.String(), "input must not be reordered")
}

func TestFromIndices(t *testing.T) {
	cs, err := FromIndices(0, 13, 53)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 13, 53}, cs.Indices())

	_, err = FromIndices(0, 54)
	assert.ErrorIs(t, err, ErrInvalidCardIndex)
}
