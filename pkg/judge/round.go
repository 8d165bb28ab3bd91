package judge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/play/landlord/pkg/doudizhu"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidDocument = errors.New("invalid rounds document")
	ErrInvalidCards    = errors.New("invalid cards")
)

// Round 一次出牌判定：challenger 是否能压过 incumbent
// Incumbent 为空表示首出，只识别牌型
type Round struct {
	Incumbent  doudizhu.Cards
	Challenger doudizhu.Cards
	Err        error // 解析失败的原因，不影响其他轮次
}

// IsLead 是否为首出
func (r Round) IsLead() bool {
	return len(r.Incumbent) == 0
}

// ParseRounds 解析批量判定文档
//
//	{"rounds": [{"incumbent": [0, 13], "challenger": ["4♠", "4♥"]}]}
//
// 牌可以是编号（数字或数字字符串）或牌名。单个轮次的牌无法解析时记录在 Round.Err 中
func ParseRounds(data []byte) ([]Round, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}
	list := gjson.GetBytes(data, "rounds")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing rounds array", ErrInvalidDocument)
	}

	var rounds []Round
	list.ForEach(func(_, value gjson.Result) bool {
		rounds = append(rounds, parseRound(value))
		return true
	})
	return rounds, nil
}

func parseRound(value gjson.Result) (r Round) {
	if !value.IsObject() {
		r.Err = fmt.Errorf("%w: round must be an object", ErrInvalidCards)
		return
	}
	r.Challenger, r.Err = parseCards(value.Get("challenger"))
	if r.Err != nil {
		r.Err = fmt.Errorf("challenger: %w", r.Err)
		return
	}
	if incumbent := value.Get("incumbent"); incumbent.Exists() && incumbent.Type != gjson.Null {
		r.Incumbent, r.Err = parseCards(incumbent)
		if r.Err != nil {
			r.Err = fmt.Errorf("incumbent: %w", r.Err)
		}
	}
	return
}

func parseCards(value gjson.Result) (doudizhu.Cards, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidCards)
	}

	var (
		cards doudizhu.Cards
		err   error
	)
	value.ForEach(func(_, item gjson.Result) bool {
		var c doudizhu.Card
		c, err = parseCard(item)
		if err != nil {
			return false
		}
		cards = append(cards, c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func parseCard(item gjson.Result) (doudizhu.Card, error) {
	switch item.Type {
	case gjson.Number:
		index, err := cast.ToIntE(item.Raw)
		if err != nil {
			return doudizhu.Card{}, fmt.Errorf("%w: %s", ErrInvalidCards, item.Raw)
		}
		return doudizhu.NewCard(index)
	case gjson.String:
		if !isDigits(item.Str) {
			return doudizhu.ParseCard(item.Str)
		}
		// cast 按 Go 字面量解析，去掉前导零以免 "010" 被当成八进制
		digits := strings.TrimLeft(item.Str, "0")
		if digits == "" {
			digits = "0"
		}
		index, err := cast.ToIntE(digits)
		if err != nil {
			return doudizhu.Card{}, fmt.Errorf("%w: %q", ErrInvalidCards, item.Str)
		}
		return doudizhu.NewCard(index)
	}
	return doudizhu.Card{}, fmt.Errorf("%w: %s", ErrInvalidCards, item.Raw)
}

// isDigits 是否全部为十进制数字
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
