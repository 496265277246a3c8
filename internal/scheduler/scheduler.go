package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/digestrun"
	"github.com/fachebot/ko-digest-bot/internal/ent/digesttask"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/fachebot/ko-digest-bot/internal/model"
	"github.com/robfig/cron/v3"
)

type digestCreator interface {
	CreateDigest(ctx context.Context, category *ent.BundleCategory, selectFrom time.Time, timezones []string) ([]*ent.Bundle, error)
}

type Scheduler struct {
	cron          *cron.Cron
	bundler       digestCreator
	categoryModel *model.BundleCategoryModel
	runModel      *model.DigestRunModel
	taskModel     *model.DigestTaskModel
	config        *config.Digest
	ctx           context.Context
	cancel        context.CancelFunc
	mu            sync.Mutex
}

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

func NewScheduler(
	bundler digestCreator,
	categoryModel *model.BundleCategoryModel,
	runModel *model.DigestRunModel,
	taskModel *model.DigestTaskModel,
	cfg *config.Digest,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(locUTC)),
		bundler:       bundler,
		categoryModel: categoryModel,
		runModel:      runModel,
		taskModel:     taskModel,
		config:        cfg,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	// 注册每日整包任务
	_, err := s.cron.AddFunc(s.config.Cron, s.runDigestCycle)
	if err != nil {
		return fmt.Errorf("注册每日整包任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，每日整包任务: %s", s.config.Cron)

	// 启动时恢复未完成的周期
	go s.recoverDigestCycle()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// currentWindow 计算当前周期的选集窗口（UTC 自然日对齐）
func (s *Scheduler) currentWindow() (selectFrom, runDate time.Time) {
	selectDays := s.config.SelectDays
	if selectDays <= 0 {
		selectDays = 1
	}
	now := time.Now().In(locUTC)
	runDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, locUTC)
	selectFrom = runDate.AddDate(0, 0, -selectDays)
	return selectFrom, runDate
}

// recoverDigestCycle 恢复每日整包（未完成的 DigestRun、缺失的当日、未完成的 DigestTask）
func (s *Scheduler) recoverDigestCycle() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	logger.Infof("[Scheduler] 开始恢复每日整包")

	// 1. 恢复未完成的 DigestRun
	incompleteRuns, err := s.runModel.GetIncompleteRuns(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成 DigestRun 失败: %v", err)
	} else {
		for _, run := range incompleteRuns {
			select {
			case <-ctx.Done():
				logger.Infof("[Scheduler] 恢复已取消")
				return
			default:
			}
			logger.Infof("[Scheduler] 恢复未完成 DigestRun: selectFrom=%s, runDate=%s", run.SelectFrom.Format("2006-01-02"), run.RunDate.Format("2006-01-02"))
			if err := s.executeDigestForWindow(ctx, run.SelectFrom); err != nil {
				logger.Errorf("[Scheduler] 恢复 DigestRun 失败: %v", err)
				_ = s.runModel.MarkFailed(ctx, run.ID, err.Error())
			} else {
				_ = s.runModel.MarkCompleted(ctx, run.ID)
			}
		}
	}

	// 2. 检查缺失的当日：若当日窗口无 DigestRun 记录，视为漏跑并执行
	selectFrom, runDate := s.currentWindow()
	_, err = s.runModel.GetByWindow(ctx, selectFrom, runDate)
	if err != nil && ent.IsNotFound(err) {
		logger.Infof("[Scheduler] 当日无 DigestRun 记录，补跑: %s ~ %s", selectFrom.Format("2006-01-02"), runDate.Format("2006-01-02"))
		run, createErr := s.runModel.Create(ctx, selectFrom, runDate, digestrun.StatusInProgress)
		if createErr != nil {
			logger.Errorf("[Scheduler] 创建 DigestRun 失败: %v", createErr)
		} else {
			if execErr := s.executeDigestForWindow(ctx, selectFrom); execErr != nil {
				logger.Errorf("[Scheduler] 补跑 DigestRun 失败: %v", execErr)
				_ = s.runModel.MarkFailed(ctx, run.ID, execErr.Error())
			} else {
				_ = s.runModel.MarkCompleted(ctx, run.ID)
			}
		}
	}

	// 3. 恢复未完成的 DigestTask
	s.recoverPendingTasks(ctx)

	logger.Infof("[Scheduler] 每日整包恢复完成")
}

// recoverPendingTasks 恢复未完成的 DigestTask
func (s *Scheduler) recoverPendingTasks(ctx context.Context) {
	tasks, err := s.taskModel.GetPendingOrProcessingTasks(ctx)
	if err != nil {
		logger.Errorf("[Scheduler] 查询未完成任务失败: %v", err)
		return
	}
	if len(tasks) == 0 {
		return
	}

	logger.Infof("[Scheduler] 找到 %d 个未完成的任务，开始恢复", len(tasks))
	cutoffTime := time.Now().In(locUTC).AddDate(0, 0, -7)

	for _, t := range tasks {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if t.SelectFrom.Before(cutoffTime) {
			logger.Warnf("[Scheduler] 跳过过期任务: categoryID=%s, selectFrom=%s", t.BundleCategoryID, t.SelectFrom.Format("2006-01-02"))
			continue
		}
		category, err := s.categoryModel.GetByID(ctx, t.BundleCategoryID)
		if err != nil {
			logger.Errorf("[Scheduler] 查询任务分类失败 (taskID=%d): %v", t.ID, err)
			continue
		}
		if err := s.taskModel.ResetTaskToPending(ctx, t.ID); err != nil {
			logger.Errorf("[Scheduler] 重置任务状态失败 (taskID=%d): %v", t.ID, err)
			continue
		}
		if err := s.taskModel.UpdateTaskStatus(ctx, t.ID, digesttask.StatusProcessing, nil); err != nil {
			logger.Errorf("[Scheduler] 更新任务状态失败 (taskID=%d): %v", t.ID, err)
			continue
		}
		logger.Infof("[Scheduler] 恢复处理任务: category=%s, selectFrom=%s", category.Name, t.SelectFrom.Format("2006-01-02"))
		if err := s.processTask(ctx, category, t.SelectFrom); err != nil {
			logger.Errorf("[Scheduler] 恢复处理任务失败 (category=%s): %v", category.Name, err)
			_ = s.taskModel.MarkTaskFailed(ctx, t.ID, err.Error())
			continue
		}
		_ = s.taskModel.MarkTaskCompleted(ctx, t.ID)
	}
}

// runDigestCycle 执行每日整包任务（cron 触发）
func (s *Scheduler) runDigestCycle() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	selectFrom, runDate := s.currentWindow()
	logger.Infof("[Scheduler] 开始执行每日整包任务，窗口: %s ~ %s", selectFrom.Format("2006-01-02"), runDate.Format("2006-01-02"))

	// 在查询前创建 DigestRun 记录，便于崩溃恢复
	run, err := s.runModel.GetOrCreate(ctx, selectFrom, runDate, digestrun.StatusInProgress)
	if err != nil {
		logger.Errorf("[Scheduler] 获取或创建 DigestRun 失败: %v", err)
		return
	}
	// 若已存在且完成，跳过
	if run.Status == digestrun.StatusCompleted {
		logger.Infof("[Scheduler] 当日 DigestRun 已完成，跳过")
		return
	}

	if err := s.executeDigestForWindow(ctx, selectFrom); err != nil {
		logger.Errorf("[Scheduler] 每日整包执行失败: %v", err)
		_ = s.runModel.MarkFailed(ctx, run.ID, err.Error())
		return
	}
	_ = s.runModel.MarkCompleted(ctx, run.ID)
	logger.Infof("[Scheduler] 每日整包任务完成")
}

// executeDigestForWindow 对指定窗口执行完整整包流程（逐分类创建任务并处理）
func (s *Scheduler) executeDigestForWindow(ctx context.Context, selectFrom time.Time) error {
	if len(s.config.Categories) == 0 {
		logger.Warnf("[Scheduler] 未配置任何分类，跳过整包")
		return nil
	}

	// 1. 逐分类创建任务
	successCount := 0
	failCount := 0
	type pendingTask struct {
		record   *ent.DigestTask
		category *ent.BundleCategory
	}
	var tasksToProcess []pendingTask
	for _, name := range s.config.Categories {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}
		category, err := s.categoryModel.GetByName(ctx, name)
		if err != nil {
			if ent.IsNotFound(err) {
				logger.Warnf("[Scheduler] 分类不存在，跳过: %s", name)
			} else {
				logger.Errorf("[Scheduler] 查询分类失败 (category=%s): %v", name, err)
			}
			failCount++
			continue
		}
		taskRecord, err := s.taskModel.GetOrCreateTask(ctx, category.ID, selectFrom, digesttask.StatusPending)
		if err != nil {
			logger.Errorf("[Scheduler] 创建任务失败 (category=%s): %v", name, err)
			failCount++
			continue
		}
		if taskRecord.Status == digesttask.StatusCompleted {
			successCount++
			continue
		}
		tasksToProcess = append(tasksToProcess, pendingTask{record: taskRecord, category: category})
	}

	// 2. 处理任务
	for _, t := range tasksToProcess {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}
		if err := s.taskModel.UpdateTaskStatus(ctx, t.record.ID, digesttask.StatusProcessing, nil); err != nil {
			failCount++
			continue
		}
		if err := s.processTask(ctx, t.category, selectFrom); err != nil {
			_ = s.taskModel.MarkTaskFailed(ctx, t.record.ID, err.Error())
			failCount++
			continue
		}
		if err := s.taskModel.MarkTaskCompleted(ctx, t.record.ID); err == nil {
			successCount++
		}
	}

	logger.Infof("[Scheduler] 分类处理完成: 成功 %d 个，失败 %d 个", successCount, failCount)
	return nil
}

// processTask 处理单个分类的整包创建，内含重试循环
func (s *Scheduler) processTask(ctx context.Context, category *ent.BundleCategory, selectFrom time.Time) error {
	retryTimes := s.config.RetryTimes
	if retryTimes <= 0 {
		retryTimes = 3
	}
	retryInterval := time.Duration(s.config.RetryInterval) * time.Second
	if retryInterval <= 0 {
		retryInterval = 60 * time.Second
	}

	var err error
	for attempt := 1; attempt <= retryTimes; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}

		logger.Debugf("[Scheduler] 分类 %s: 尝试创建整包 (第 %d/%d 次)", category.Name, attempt, retryTimes)
		var bundles []*ent.Bundle
		bundles, err = s.bundler.CreateDigest(ctx, category, selectFrom, s.config.Timezones)
		if err == nil {
			if len(bundles) == 0 {
				logger.Infof("[Scheduler] 分类 %s: 窗口内无可合成内容", category.Name)
			} else {
				logger.Infof("[Scheduler] 分类 %s: 整包创建成功, 共 %d 个时区", category.Name, len(bundles))
			}
			return nil
		}

		logger.Warnf("[Scheduler] 分类 %s: 整包创建失败 (第 %d/%d 次): %v", category.Name, attempt, retryTimes, err)
		if attempt < retryTimes {
			logger.Debugf("[Scheduler] 分类 %s: %v 后进行重试...", category.Name, retryInterval)
			select {
			case <-ctx.Done():
				return fmt.Errorf("任务已取消")
			case <-time.After(retryInterval):
			}
		}
	}

	return fmt.Errorf("整包创建失败，已重试 %d 次: %w", retryTimes, err)
}
