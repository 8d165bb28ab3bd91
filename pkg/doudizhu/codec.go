package doudizhu

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON 序列化为编号数组
func (cs Cards) MarshalJSON() ([]byte, error) {
	for _, c := range cs {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCardIndex, c)
		}
	}
	return json.Marshal(cs.Indices())
}

// UnmarshalJSON 从编号数组反序列化，编号非法时返回错误
func (cs *Cards) UnmarshalJSON(data []byte) error {
	var indices []int
	if err := json.Unmarshal(data, &indices); err != nil {
		return err
	}
	cards, err := FromIndices(indices...)
	if err != nil {
		return err
	}
	*cs = cards
	return nil
}

// MarshalBinary 每张牌一个字节
func (cs Cards) MarshalBinary() (data []byte, err error) {
	data = make([]byte, len(cs))
	for i, c := range cs {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCardIndex, c)
		}
		data[i] = byte(c.Index())
	}
	return
}

// UnmarshalBinary 从二进制反序列化
func (cs *Cards) UnmarshalBinary(data []byte) error {
	cards := make(Cards, len(data))
	for i, b := range data {
		c, err := NewCard(int(b))
		if err != nil {
			return err
		}
		cards[i] = c
	}
	*cs = cards
	return nil
}
