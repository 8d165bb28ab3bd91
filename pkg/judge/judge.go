package judge

import (
	"context"

	"github.com/play/landlord/pkg/doudizhu"
	"github.com/play/landlord/pkg/worker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Verdict 一轮的判定结果
type Verdict struct {
	Round      int               `json:"round"`
	Challenger doudizhu.Pattern  `json:"challenger"`
	Incumbent  *doudizhu.Pattern `json:"incumbent,omitempty"`
	Outcome    *doudizhu.Outcome `json:"outcome,omitempty"` // 首出时为空
	Legal      bool              `json:"legal"`             // 首出时牌型合法，跟牌时压得过
	Error      string            `json:"error,omitempty"`
}

type Option func(*Judge)

// WithRules 指定牌型识别规则，默认为基础规则
func WithRules(rules *doudizhu.Rules) Option {
	return func(j *Judge) {
		if rules != nil {
			j.rules = rules
		}
	}
}

// WithWorkers 设置并发判定的数量
func WithWorkers(n int) Option {
	return func(j *Judge) {
		if n > 0 {
			j.workers = n
		}
	}
}

// Judge 批量判定出牌，本身不保存任何对局状态
type Judge struct {
	rules   *doudizhu.Rules
	workers int
}

func New(opts ...Option) *Judge {
	j := &Judge{
		rules:   doudizhu.NewRules(),
		workers: 8,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Judge 判定一轮
func (j *Judge) Judge(ctx context.Context, index int, r Round) (v Verdict) {
	v.Round = index
	if r.Err != nil {
		v.Error = r.Err.Error()
		log.Ctx(ctx).Warn().Err(r.Err).Int("round", index).Msg("round skipped")
		return
	}

	v.Challenger = j.rules.Classify(r.Challenger)
	if r.IsLead() {
		v.Legal = v.Challenger.IsValid()
	} else {
		incumbent := j.rules.Classify(r.Incumbent)
		outcome := doudizhu.Beats(v.Challenger, incumbent)
		v.Incumbent = &incumbent
		v.Outcome = &outcome
		v.Legal = outcome == doudizhu.OutcomeBeats
	}

	if viper.GetBool("log.traced") {
		event := log.Ctx(ctx).Trace().Int("round", index).Stringer("challenger", v.Challenger).Bool("legal", v.Legal)
		if v.Outcome != nil {
			event = event.Stringer("incumbent", v.Incumbent).Stringer("outcome", v.Outcome)
		}
		event.Msg("round judged")
	}
	return
}

// JudgeAll 并发判定所有轮次，结果与输入顺序一致
func (j *Judge) JudgeAll(ctx context.Context, rounds []Round) ([]Verdict, error) {
	pool := worker.New(j.workers)
	verdicts := make([]Verdict, len(rounds))

	for i, r := range rounds {
		i, r := i, r
		err := pool.Go(ctx, func() {
			verdicts[i] = j.Judge(ctx, i, r)
		})
		if err != nil {
			pool.Wait()
			return nil, err
		}
	}
	pool.Wait()

	legal := 0
	for _, v := range verdicts {
		if v.Legal {
			legal++
		}
	}
	log.Ctx(ctx).Debug().Int("rounds", len(rounds)).Int("legal", legal).Int("workers", j.workers).Msg("rounds judged")
	return verdicts, nil
}
