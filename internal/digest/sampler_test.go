package digest

import (
	"context"
	"math/rand"
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDosePool struct {
	mock.Mock
}

func (m *mockDosePool) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockDosePool) ByOffset(ctx context.Context, offset int) (*ent.DailyDose, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.DailyDose), args.Error(1)
}

func newSeededSampler(pool dosePool, seed int64) *Sampler {
	return &Sampler{pool: pool, rnd: rand.New(rand.NewSource(seed))}
}

func TestSample_EmptyPool(t *testing.T) {
	pool := new(mockDosePool)
	pool.On("Count", mock.Anything).Return(0, nil)

	s := newSeededSampler(pool, 1)
	dose, err := s.Sample(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, dose)
	pool.AssertNotCalled(t, "ByOffset")
}

func TestSample_ReturnsRecordFields(t *testing.T) {
	pool := new(mockDosePool)
	pool.On("Count", mock.Anything).Return(3, nil)
	pool.On("ByOffset", mock.Anything, mock.Anything).
		Return(&ent.DailyDose{Quote: "引言", Source: "出处", DdType: "quote"}, nil)

	s := newSeededSampler(pool, 1)
	dose, err := s.Sample(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, dose)
	assert.Equal(t, "引言", dose.Quote)
	assert.Equal(t, "出处", dose.Source)
	assert.Equal(t, "quote", dose.DdType)
}

func TestSample_SeededDeterminism(t *testing.T) {
	// 相同种子下两个采样器的取样序列一致
	makeSampler := func() (*Sampler, *mockDosePool) {
		pool := new(mockDosePool)
		pool.On("Count", mock.Anything).Return(100, nil)
		pool.On("ByOffset", mock.Anything, mock.Anything).
			Return(&ent.DailyDose{Quote: "q"}, nil)
		return newSeededSampler(pool, 42), pool
	}

	s1, p1 := makeSampler()
	s2, p2 := makeSampler()
	for i := 0; i < 5; i++ {
		_, err := s1.Sample(context.Background())
		assert.NoError(t, err)
		_, err = s2.Sample(context.Background())
		assert.NoError(t, err)
	}

	offsets := func(p *mockDosePool) []int {
		var out []int
		for _, call := range p.Calls {
			if call.Method == "ByOffset" {
				out = append(out, call.Arguments.Int(1))
			}
		}
		return out
	}
	assert.Equal(t, offsets(p1), offsets(p2))
}

func TestSample_OffsetWithinBounds(t *testing.T) {
	pool := new(mockDosePool)
	pool.On("Count", mock.Anything).Return(5, nil)
	pool.On("ByOffset", mock.Anything, mock.MatchedBy(func(offset int) bool {
		return offset >= 0 && offset < 5
	})).Return(&ent.DailyDose{Quote: "q"}, nil)

	s := newSeededSampler(pool, 7)
	for i := 0; i < 20; i++ {
		_, err := s.Sample(context.Background())
		assert.NoError(t, err)
	}
	pool.AssertExpectations(t)
}

func TestSample_CountError(t *testing.T) {
	pool := new(mockDosePool)
	pool.On("Count", mock.Anything).Return(0, assert.AnError)

	s := newSeededSampler(pool, 1)
	_, err := s.Sample(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "统计语录数量失败")
}
