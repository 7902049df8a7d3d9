package providers

import (
	"fmt"
	"insightd/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "INSIGHTD_LOG_LEVEL")
	viper.BindEnv("persistence.saveInterval", "INSIGHTD_SAVE_INTERVAL")
	viper.BindEnv("ai.apiKey", "INSIGHTD_AI_API_KEY", "GEMINI_API_KEY")
	viper.BindEnv("ai.model", "INSIGHTD_AI_MODEL")
	viper.BindEnv("cache.enabled", "INSIGHTD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "INSIGHTD_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.AI.Model == "" {
		conf.AI.Model = "gemini-2.5-flash"
	}
	if conf.AI.MaxImageUploadSize <= 0 {
		conf.AI.MaxImageUploadSize = 16 << 20
	}
	if conf.AI.MaxVideoUploadSize <= 0 {
		conf.AI.MaxVideoUploadSize = 128 << 20
	}
	if conf.AI.ExtractTemperature <= 0 {
		conf.AI.ExtractTemperature = 0.1
	}
	if conf.AI.AnalysisTemperature <= 0 {
		conf.AI.AnalysisTemperature = 0.4
	}

	conf.AppName = "CreatorInsightDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
