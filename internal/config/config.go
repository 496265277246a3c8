package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type LLM struct {
	BaseURL         string `yaml:"BaseURL"`         // 兼容 OpenAI API 的端点
	APIKey          string `yaml:"APIKey"`          // API 密钥
	Model           string `yaml:"Model"`           // 基础模型，如 gpt-4o-mini, deepseek-chat
	RetryModel      string `yaml:"RetryModel"`      // 重试时升级使用的更强模型
	MaxOutputTokens int    `yaml:"MaxOutputTokens"` // 单次请求最大输出 tokens，默认 4096
}

type Digest struct {
	Cron          string   `yaml:"Cron"`          // cron 表达式，如 "0 23 * * *"
	SelectDays    int      `yaml:"SelectDays"`    // 选取窗口天数，1=仅最近一天
	Timezones     []string `yaml:"Timezones"`     // 每次合成为每个时区各落一条 Bundle
	Categories    []string `yaml:"Categories"`    // 需要生成摘要包的分类名称列表
	RetryTimes    int      `yaml:"RetryTimes"`    // 单个分类失败重试次数，默认 3
	RetryInterval int      `yaml:"RetryInterval"` // 重试间隔（秒），默认 60
}

type Config struct {
	Sock5Proxy Sock5Proxy `yaml:"Sock5Proxy"`
	LLM        LLM        `yaml:"LLM"`
	Digest     Digest     `yaml:"Digest"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 LLM
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM.APIKey 不能为空")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM.BaseURL 不能为空")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM.Model 不能为空")
	}
	if c.LLM.RetryModel == "" {
		return fmt.Errorf("LLM.RetryModel 不能为空")
	}
	if c.LLM.MaxOutputTokens < 0 {
		return fmt.Errorf("LLM.MaxOutputTokens 必须 >= 0")
	}

	// 验证 Digest
	if c.Digest.Cron == "" {
		return fmt.Errorf("Digest.Cron 不能为空")
	}
	if c.Digest.SelectDays < 0 {
		return fmt.Errorf("Digest.SelectDays 必须 >= 0")
	}
	if len(c.Digest.Timezones) == 0 {
		return fmt.Errorf("Digest.Timezones 不能为空")
	}
	if len(c.Digest.Categories) == 0 {
		return fmt.Errorf("Digest.Categories 不能为空")
	}
	if c.Digest.RetryTimes < 0 {
		return fmt.Errorf("Digest.RetryTimes 必须 >= 0")
	}
	if c.Digest.RetryInterval < 0 {
		return fmt.Errorf("Digest.RetryInterval 必须 >= 0")
	}

	return nil
}
