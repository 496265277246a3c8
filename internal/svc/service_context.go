package svc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/fachebot/ko-digest-bot/internal/config"
	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ingest"
	"github.com/fachebot/ko-digest-bot/internal/llm"
	"github.com/fachebot/ko-digest-bot/internal/logger"
	"github.com/fachebot/ko-digest-bot/internal/model"
	"github.com/fachebot/ko-digest-bot/internal/prompt"
	"github.com/fachebot/ko-digest-bot/internal/summarizer"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/net/proxy"
)

type ServiceContext struct {
	Config               *config.Config
	DbClient             *ent.Client
	TransportProxy       *http.Transport
	KnowledgeObjectModel *model.KnowledgeObjectModel
	KoSummaryModel       *model.KoSummaryModel
	BundleCategoryModel  *model.BundleCategoryModel
	BundleModel          *model.BundleModel
	DailyDoseModel       *model.DailyDoseModel
	DigestRunModel       *model.DigestRunModel
	DigestTaskModel      *model.DigestTaskModel
	LLMClient            *llm.Client
	PromptLibrary        *prompt.Library
	Summarizer           *summarizer.Summarizer
	Ingestor             *ingest.Ingestor
}

func NewServiceContext(c *config.Config) *ServiceContext {
	// 创建数据库连接
	client, err := ent.Open("sqlite3", "file:data/sqlite.db?mode=rwc&_journal_mode=WAL&_fk=1")
	if err != nil {
		logger.Fatalf("打开数据库失败, %v", err)
	}
	if err := client.Schema.Create(context.Background()); err != nil {
		logger.Fatalf("创建数据库Schema失败, %v", err)
	}

	// 创建SOCKS5代理
	var transportProxy *http.Transport
	if c.Sock5Proxy.Enable {
		socks5Proxy := fmt.Sprintf("%s:%d", c.Sock5Proxy.Host, c.Sock5Proxy.Port)
		dialer, err := proxy.SOCKS5("tcp", socks5Proxy, nil, proxy.Direct)
		if err != nil {
			logger.Fatalf("创建SOCKS5代理失败, %v", err)
		}

		transportProxy = &http.Transport{
			Dial:            dialer.Dial,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	svcCtx := &ServiceContext{
		Config:               c,
		DbClient:             client,
		TransportProxy:       transportProxy,
		KnowledgeObjectModel: model.NewKnowledgeObjectModel(client.KnowledgeObject),
		KoSummaryModel:       model.NewKoSummaryModel(client.KoSummary),
		BundleCategoryModel:  model.NewBundleCategoryModel(client.BundleCategory),
		BundleModel:          model.NewBundleModel(client),
		DailyDoseModel:       model.NewDailyDoseModel(client.DailyDose),
		DigestRunModel:       model.NewDigestRunModel(client.DigestRun),
		DigestTaskModel:      model.NewDigestTaskModel(client.DigestTask),
		LLMClient:            llm.NewClient(&c.LLM, transportProxy),
		PromptLibrary:        prompt.Default(),
	}

	svcCtx.Summarizer = summarizer.NewSummarizer(svcCtx.LLMClient, svcCtx.KoSummaryModel, svcCtx.PromptLibrary)
	svcCtx.Ingestor = ingest.NewIngestor(svcCtx.KnowledgeObjectModel, svcCtx.Summarizer)
	return svcCtx
}

func (svcCtx *ServiceContext) Close() {
	if err := svcCtx.DbClient.Close(); err != nil {
		logger.Errorf("关闭数据库失败, %v", err)
	}
}
