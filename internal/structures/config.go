package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath       string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval   time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	BackupDir      string        `yaml:"backupDir"`
	BackupInterval time.Duration `yaml:"backupInterval"`
	BackupTTL      time.Duration `yaml:"backupTTL"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type InsightConfig struct {
	SeedOnEmpty bool `yaml:"seedOnEmpty"`
}

type AIConfig struct {
	APIKey              string        `yaml:"apiKey"`
	Model               string        `yaml:"model"`
	Timeout             time.Duration `yaml:"timeout"`
	MaxImageUploadSize  int64         `yaml:"maxImageUploadSize"`
	MaxVideoUploadSize  int64         `yaml:"maxVideoUploadSize"`
	ExtractTemperature  float32       `yaml:"extractTemperature"`
	AnalysisTemperature float32       `yaml:"analysisTemperature"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Insight     InsightConfig `yaml:"insight"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	AI          AIConfig      `yaml:"ai"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
