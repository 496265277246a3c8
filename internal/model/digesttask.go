package model

import (
	"context"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/google/uuid"
)

type DigestTaskModel struct {
	client *ent.DigestTaskClient
}

func NewDigestTaskModel(client *ent.DigestTaskClient) *DigestTaskModel {
	return &DigestTaskModel{client: client}
}

// CreateTask 创建任务
func (m *DigestTaskModel) CreateTask(ctx context.Context, categoryID uuid.UUID, selectFrom time.Time, status digesttask.Status) (*ent.DigestTask, error) {
	return m.client.Create().
		SetBundleCategoryID(categoryID).
		SetSelectFrom(selectFrom).
		SetStatus(status).
		Save(ctx)
}

// GetOrCreateTask 获取或创建任务（如果已存在则返回现有任务）
// 唯一索引保证同一分类同一窗口只有一个任务
func (m *DigestTaskModel) GetOrCreateTask(ctx context.Context, categoryID uuid.UUID, selectFrom time.Time, status digesttask.Status) (*ent.DigestTask, error) {
	existing, err := m.client.Query().
		Where(
			digesttask.BundleCategoryIDEQ(categoryID),
			digesttask.SelectFromEQ(selectFrom),
		).
		First(ctx)

	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	return m.CreateTask(ctx, categoryID, selectFrom, status)
}

// UpdateTaskStatus 更新任务状态
func (m *DigestTaskModel) UpdateTaskStatus(ctx context.Context, taskID int, status digesttask.Status, errorMsg *string) error {
	update := m.client.UpdateOneID(taskID).SetStatus(status)

	if status == digesttask.StatusCompleted {
		update.SetCompletedAt(time.Now())
	}

	if errorMsg != nil {
		update.SetErrorMessage(*errorMsg)
	}

	return update.Exec(ctx)
}

// GetPendingOrProcessingTasks 查询所有待处理或处理中的任务
func (m *DigestTaskModel) GetPendingOrProcessingTasks(ctx context.Context) ([]*ent.DigestTask, error) {
	return m.client.Query().
		Where(
			digesttask.Or(
				digesttask.StatusEQ(digesttask.StatusPending),
				digesttask.StatusEQ(digesttask.StatusProcessing),
			),
		).
		Order(digesttask.ByCreateTime()).
		All(ctx)
}

// MarkTaskCompleted 标记任务完成
func (m *DigestTaskModel) MarkTaskCompleted(ctx context.Context, taskID int) error {
	return m.UpdateTaskStatus(ctx, taskID, digesttask.StatusCompleted, nil)
}

// MarkTaskFailed 标记任务失败
func (m *DigestTaskModel) MarkTaskFailed(ctx context.Context, taskID int, errorMsg string) error {
	return m.UpdateTaskStatus(ctx, taskID, digesttask.StatusFailed, &errorMsg)
}

// ResetTaskToPending 将任务重置为待处理状态（用于恢复）
func (m *DigestTaskModel) ResetTaskToPending(ctx context.Context, taskID int) error {
	return m.client.UpdateOneID(taskID).
		SetStatus(digesttask.StatusPending).
		ClearCompletedAt().
		ClearErrorMessage().
		Exec(ctx)
}
