package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/fachebot/ko-digest-bot/internal/digest"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/fachebot/ko-digest-bot/internal/scheduler"
	"github.com/fachebot/ko-digest-bot/internal/svc"
)

var configFile = flag.String("f", "etc/config.yaml", "the config file")

func main() {
	flag.Parse()

	// 读取配置文件
	c, err := config.LoadFromFile(*configFile)
	if err != nil {
		logger.Fatalf("读取配置文件失败, %s", err)
	}

	// 创建数据目录
	if _, err := os.Stat("data"); os.IsNotExist(err) {
		err := os.Mkdir("data", 0755)
		if err != nil {
			logger.Fatalf("创建数据目录失败, %s", err)
		}
	}

	// 创建服务上下文
	svcCtx := svc.NewServiceContext(c)

	// 创建整包编排器
	samplerInstance := digest.NewSampler(svcCtx.DailyDoseModel, 0)
	synthesizerInstance := digest.NewSynthesizer(svcCtx.LLMClient, svcCtx.PromptLibrary)
	bundlerInstance := digest.NewBundler(
		svcCtx.KoSummaryModel,
		svcCtx.KnowledgeObjectModel,
		svcCtx.BundleModel,
		samplerInstance,
		synthesizerInstance,
	)

	// 创建并启动调度器
	schedulerInstance := scheduler.NewScheduler(
		bundlerInstance,
		svcCtx.BundleCategoryModel,
		svcCtx.DigestRunModel,
		svcCtx.DigestTaskModel,
		&c.Digest,
	)
	if err := schedulerInstance.Start(); err != nil {
		logger.Fatalf("[Scheduler] 启动调度器失败: %s", err)
	}

	// 等待程序退出
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	// 优雅关闭
	logger.Infof("正在关闭服务...")
	schedulerInstance.Stop()
	svcCtx.Close()
	logger.Infof("服务已停止")
}
