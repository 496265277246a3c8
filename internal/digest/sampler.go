package digest

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/model"
)

type dosePool interface {
	Count(ctx context.Context) (int, error)
	ByOffset(ctx context.Context, offset int) (*ent.DailyDose, error)
}

// Sampler 从语录池中均匀随机挑选每日一句
type Sampler struct {
	pool dosePool
	rnd  *rand.Rand
}

// NewSampler 创建 Sampler, seed 为 0 时使用当前时间作为随机种子
func NewSampler(pool *model.DailyDoseModel, seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{pool: pool, rnd: rand.New(rand.NewSource(seed))}
}

// Sample 均匀采样一条语录, 池为空时返回 (nil, nil)
func (s *Sampler) Sample(ctx context.Context) (*DailyDoseOut, error) {
	count, err := s.pool.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计语录数量失败, %v", err)
	}
	if count == 0 {
		return nil, nil
	}

	record, err := s.pool.ByOffset(ctx, s.rnd.Intn(count))
	if err != nil {
		return nil, fmt.Errorf("读取语录失败, %v", err)
	}

	return &DailyDoseOut{
		Quote:  record.Quote,
		Source: record.Source,
		DdType: record.DdType,
	}, nil
}
