package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Ollama    OllamaConfig
	Chunker   ChunkerConfig
	Generator GeneratorConfig
	Dataset   DatasetConfig
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig 数据库配置
// Driver 为 sqlite 时使用 Path，为 postgres 时使用 DSN 各字段
type DatabaseConfig struct {
	Driver       string
	Path         string
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
}

// OllamaConfig 远程生成服务配置
type OllamaConfig struct {
	BaseURL string
	Model   string
	Timeout int
}

// ChunkerConfig 分块参数
type ChunkerConfig struct {
	MinTokens int
	MaxTokens int
	Stride    int
}

// GeneratorConfig QA 生成参数
type GeneratorConfig struct {
	MaxPairs         int
	PromptCharBudget int
}

// DatasetConfig 数据集文件目录
type DatasetConfig struct {
	Dir string
}

// Load 加载配置
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 环境变量
	v.SetEnvPrefix("DOCQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetDSN 获取 Postgres 连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetAddr 获取服务器地址
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "docqa")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 120)

	// Database
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./docqa.sqlite3")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "docqa")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.maxLifetime", 300)

	// Ollama
	v.SetDefault("ollama.baseUrl", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.1:8b")
	v.SetDefault("ollama.timeout", 60)

	// Chunker
	v.SetDefault("chunker.minTokens", 400)
	v.SetDefault("chunker.maxTokens", 800)
	v.SetDefault("chunker.stride", 160)

	// Generator
	v.SetDefault("generator.maxPairs", 3)
	v.SetDefault("generator.promptCharBudget", 4000)

	// Dataset
	v.SetDefault("dataset.dir", "./dataset")
}
