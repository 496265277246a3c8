package model

import (
	"context"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
)

type DigestRunModel struct {
	client *ent.DigestRunClient
}

func NewDigestRunModel(client *ent.DigestRunClient) *DigestRunModel {
	return &DigestRunModel{client: client}
}

// Create 创建 DigestRun 记录
func (m *DigestRunModel) Create(ctx context.Context, selectFrom, runDate time.Time, status digestrun.Status) (*ent.DigestRun, error) {
	return m.client.Create().
		SetSelectFrom(selectFrom).
		SetRunDate(runDate).
		SetStatus(status).
		Save(ctx)
}

// GetOrCreate 获取或创建 DigestRun（用于周期开始时）
// 若已存在相同窗口的记录则返回现有记录
func (m *DigestRunModel) GetOrCreate(ctx context.Context, selectFrom, runDate time.Time, status digestrun.Status) (*ent.DigestRun, error) {
	existing, err := m.client.Query().
		Where(
			digestrun.SelectFromEQ(selectFrom),
			digestrun.RunDateEQ(runDate),
		).
		First(ctx)

	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return m.Create(ctx, selectFrom, runDate, status)
}

// GetByWindow 查询指定窗口的 DigestRun 记录
func (m *DigestRunModel) GetByWindow(ctx context.Context, selectFrom, runDate time.Time) (*ent.DigestRun, error) {
	return m.client.Query().
		Where(
			digestrun.SelectFromEQ(selectFrom),
			digestrun.RunDateEQ(runDate),
		).
		First(ctx)
}

// GetIncompleteRuns 查询所有未完成的 DigestRun
func (m *DigestRunModel) GetIncompleteRuns(ctx context.Context) ([]*ent.DigestRun, error) {
	return m.client.Query().
		Where(digestrun.StatusEQ(digestrun.StatusInProgress)).
		Order(digestrun.ByCreateTime()).
		All(ctx)
}

// MarkCompleted 标记 DigestRun 完成
func (m *DigestRunModel) MarkCompleted(ctx context.Context, id int) error {
	return m.client.UpdateOneID(id).SetStatus(digestrun.StatusCompleted).Exec(ctx)
}

// MarkFailed 标记 DigestRun 失败
func (m *DigestRunModel) MarkFailed(ctx context.Context, id int, errorMsg string) error {
	return m.client.UpdateOneID(id).
		SetStatus(digestrun.StatusFailed).
		SetErrorMessage(errorMsg).
		Exec(ctx)
}
