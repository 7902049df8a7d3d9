package ai

type Options struct {
	ApiKey              string
	Model               string
	ExtractTemperature  float32
	AnalysisTemperature float32
}

type Option func(o *Options)

func NewOptions(opts ...Option) Options {
	options := Options{
		Model:               "gemini-2.5-flash",
		ExtractTemperature:  0.1,
		AnalysisTemperature: 0.4,
	}

	for _, fn := range opts {
		fn(&options)
	}

	return options
}

func WithApiKey(key string) Option {
	return func(o *Options) {
		o.ApiKey = key
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithExtractTemperature(t float32) Option {
	return func(o *Options) {
		o.ExtractTemperature = t
	}
}

func WithAnalysisTemperature(t float32) Option {
	return func(o *Options) {
		o.AnalysisTemperature = t
	}
}
