package doudizhu

import (
	"fmt"
	"slices"
)

var outcomeNames = [...]string{
	OutcomeIllegal:     "illegal",
	OutcomeDoesNotBeat: "does_not_beat",
	OutcomeBeats:       "beats",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	if int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("unknown outcome %d", o)
	}
	return []byte(outcomeNames[o]), nil
}

func (o *Outcome) UnmarshalText(data []byte) error {
	i := slices.Index(outcomeNames[:], string(data))
	if i < 0 {
		return fmt.Errorf("unknown outcome %q", data)
	}
	*o = Outcome(i)
	return nil
}

// Beats 判断 challenger 能否压过上家的 incumbent
//
// 王炸压一切；炸弹压一切非炸弹，炸弹之间比点数；
// 其余牌型必须类型和张数都相同才能比较，否则返回 OutcomeIllegal
func Beats(challenger, incumbent Pattern) Outcome {
	if !challenger.IsValid() || !incumbent.IsValid() {
		return OutcomeIllegal
	}

	switch challenger.Type {
	case HandTypeRocket:
		// 一副牌只有一个王炸
		if incumbent.Type == HandTypeRocket {
			return OutcomeIllegal
		}
		return OutcomeBeats
	case HandTypeBomb:
		switch incumbent.Type {
		case HandTypeRocket:
			return OutcomeDoesNotBeat
		case HandTypeBomb:
			return compareKey(challenger, incumbent)
		}
		return OutcomeBeats
	}

	if challenger.Type != incumbent.Type || challenger.Length != incumbent.Length {
		return OutcomeIllegal
	}
	return compareKey(challenger, incumbent)
}

func compareKey(challenger, incumbent Pattern) Outcome {
	if challenger.Key > incumbent.Key {
		return OutcomeBeats
	}
	return OutcomeDoesNotBeat
}

// Beats 判断 p 能否压过 other
func (p Pattern) Beats(other Pattern) Outcome {
	return Beats(p, other)
}
