package providers

import (
	"insightd/internal/ai"
	"insightd/internal/ai/gemini"
	"insightd/internal/structures"
)

func NewAnalyzerProvider(conf *structures.Config, logger Logger) (ai.Analyzer, error) {
	if conf.AI.APIKey == "" {
		logger.Warnf(TypeApp, "No AI API key configured, analysis calls will fail until one is set")
	}

	return gemini.NewAnalyzer(
		ai.WithApiKey(conf.AI.APIKey),
		ai.WithModel(conf.AI.Model),
		ai.WithExtractTemperature(conf.AI.ExtractTemperature),
		ai.WithAnalysisTemperature(conf.AI.AnalysisTemperature),
	)
}
