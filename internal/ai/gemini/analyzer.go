package gemini

import (
	"context"
	"fmt"
	"insightd/internal/ai"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	genaiopt "google.golang.org/api/option"
)

const (
	extractPrompt = "分析這張 Instagram/社群媒體的洞察報告截圖。擷取效能指標數據。" +
		"如果截圖是繁體中文，請正確辨識。如果特定指標未顯示，請估算為 0 或從上下文推斷。請回傳 JSON 格式。"

	analyzePrompt = "擔任一位爆款社群媒體顧問。分析這段 Reels 短影音。" +
		"專注於「鉤子 Hook」（前 3 秒）、「節奏/步調」和「題材」吸引力。提供批判性分析和爆款潛力評分。" +
		"請務必使用**繁體中文 (Traditional Chinese)** 回答。內容要誠實且具建設性。"
)

type geminiAnalyzer struct {
	options ai.Options

	mu     sync.Mutex
	client *genai.Client
}

// NewAnalyzer builds the Gemini collaborator. The client itself is
// constructed on first use, so an empty API key fails at call time and
// a daemon configured without one still starts.
func NewAnalyzer(opts ...ai.Option) (ai.Analyzer, error) {
	return &geminiAnalyzer{
		options: ai.NewOptions(opts...),
	}, nil
}

func (g *geminiAnalyzer) ensureClient(ctx context.Context) (*genai.Client, error) {
	if g.options.ApiKey == "" {
		return nil, ai.ErrNoAPIKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, genaiopt.WithAPIKey(g.options.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	g.client = client
	return client, nil
}

var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":         {Type: genai.TypeString, Description: "從內容推斷的簡短標題，或是 '未命名 Reels'"},
		"views":         {Type: genai.TypeInteger, Description: "總播放次數或瀏覽次數"},
		"reach":         {Type: genai.TypeInteger, Description: "觸及帳號數量"},
		"likes":         {Type: genai.TypeInteger, Description: "按讚/愛心數"},
		"shares":        {Type: genai.TypeInteger, Description: "分享數"},
		"saves":         {Type: genai.TypeInteger, Description: "珍藏/儲存數"},
		"comments":      {Type: genai.TypeInteger, Description: "留言數"},
		"retentionRate": {Type: genai.TypeNumber, Description: "平均觀看比例或續看率 (百分比數字)。如果沒找到填 0。"},
		"avgWatchTime":  {Type: genai.TypeString, Description: "平均觀看時間 (例如 '8秒', '1分 2秒'). 沒找到填 '0s'。"},
	},
	Required: []string{"views", "reach", "likes", "shares", "saves", "comments"},
}

var videoSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"hookScore":      {Type: genai.TypeInteger, Description: "針對前 3 秒的評分 (1-10)"},
		"pacingScore":    {Type: genai.TypeInteger, Description: "針對節奏和剪輯速度的評分 (1-10)"},
		"topicScore":     {Type: genai.TypeInteger, Description: "針對題材相關性和趣味性的評分 (1-10)"},
		"hookAnalysis":   {Type: genai.TypeString, Description: "針對開頭鉤子的詳細評論 (繁體中文)"},
		"pacingAnalysis": {Type: genai.TypeString, Description: "針對流暢度和節奏的詳細評論 (繁體中文)"},
		"topicAnalysis":  {Type: genai.TypeString, Description: "針對主題內容的分析 (繁體中文)"},
		"viralPotential": {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
		"improvements": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "3 個具體的改進建議，供下次創作參考 (繁體中文)",
		},
	},
	Required: []string{"hookScore", "pacingScore", "topicScore", "hookAnalysis", "pacingAnalysis", "viralPotential", "improvements"},
}

func (g *geminiAnalyzer) ExtractInsight(ctx context.Context, data []byte, mimeType string) (*ai.InsightExtraction, error) {
	text, err := g.generate(ctx, data, mimeType, extractPrompt, insightSchema, g.options.ExtractTemperature)
	if err != nil {
		return nil, err
	}
	return decodeExtraction([]byte(text))
}

func (g *geminiAnalyzer) AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*ai.VideoAnalysis, error) {
	text, err := g.generate(ctx, data, mimeType, analyzePrompt, videoSchema, g.options.AnalysisTemperature)
	if err != nil {
		return nil, err
	}
	return decodeAnalysis([]byte(text))
}

func (g *geminiAnalyzer) generate(ctx context.Context, data []byte, mimeType, prompt string, schema *genai.Schema, temperature float32) (string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	model := client.GenerativeModel(g.options.Model)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	model.SetTemperature(temperature)

	rsp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return "", err
	}

	if len(rsp.Candidates) == 0 || rsp.Candidates[0].Content == nil || len(rsp.Candidates[0].Content.Parts) == 0 {
		return "", ai.ErrNoResponse
	}

	var b strings.Builder
	for _, part := range rsp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	result := b.String()
	if len(result) == 0 {
		return "", ai.ErrNoResponse
	}
	return result, nil
}

// looseExtraction mirrors the response schema with every field optional
// so that a missing required field is detected, not zero-defaulted.
type looseExtraction struct {
	Title         *string  `json:"title"`
	Views         *float64 `json:"views"`
	Reach         *float64 `json:"reach"`
	Likes         *float64 `json:"likes"`
	Shares        *float64 `json:"shares"`
	Saves         *float64 `json:"saves"`
	Comments      *float64 `json:"comments"`
	RetentionRate *float64 `json:"retentionRate"`
	AvgWatchTime  *string  `json:"avgWatchTime"`
}

func decodeExtraction(raw []byte) (*ai.InsightExtraction, error) {
	var loose looseExtraction
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("unparseable extraction: %w", err)
	}

	required := map[string]*float64{
		"views":    loose.Views,
		"reach":    loose.Reach,
		"likes":    loose.Likes,
		"shares":   loose.Shares,
		"saves":    loose.Saves,
		"comments": loose.Comments,
	}
	for field, val := range required {
		if val == nil {
			return nil, fmt.Errorf("%w: missing %s", ai.ErrIncomplete, field)
		}
	}

	result := &ai.InsightExtraction{
		Views:    count(loose.Views),
		Reach:    count(loose.Reach),
		Likes:    count(loose.Likes),
		Shares:   count(loose.Shares),
		Saves:    count(loose.Saves),
		Comments: count(loose.Comments),
	}
	if loose.Title != nil {
		result.Title = *loose.Title
	}
	if loose.AvgWatchTime != nil {
		result.AvgWatchTime = *loose.AvgWatchTime
	}
	if loose.RetentionRate != nil {
		v := *loose.RetentionRate
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		result.RetentionRate = &v
	}
	return result, nil
}

type looseAnalysis struct {
	HookScore      *float64 `json:"hookScore"`
	PacingScore    *float64 `json:"pacingScore"`
	TopicScore     *float64 `json:"topicScore"`
	HookAnalysis   *string  `json:"hookAnalysis"`
	PacingAnalysis *string  `json:"pacingAnalysis"`
	TopicAnalysis  *string  `json:"topicAnalysis"`
	ViralPotential *string  `json:"viralPotential"`
	Improvements   []string `json:"improvements"`
}

func decodeAnalysis(raw []byte) (*ai.VideoAnalysis, error) {
	var loose looseAnalysis
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("unparseable analysis: %w", err)
	}

	switch {
	case loose.HookScore == nil:
		return nil, fmt.Errorf("%w: missing hookScore", ai.ErrIncomplete)
	case loose.PacingScore == nil:
		return nil, fmt.Errorf("%w: missing pacingScore", ai.ErrIncomplete)
	case loose.TopicScore == nil:
		return nil, fmt.Errorf("%w: missing topicScore", ai.ErrIncomplete)
	case loose.HookAnalysis == nil:
		return nil, fmt.Errorf("%w: missing hookAnalysis", ai.ErrIncomplete)
	case loose.PacingAnalysis == nil:
		return nil, fmt.Errorf("%w: missing pacingAnalysis", ai.ErrIncomplete)
	case loose.ViralPotential == nil:
		return nil, fmt.Errorf("%w: missing viralPotential", ai.ErrIncomplete)
	case len(loose.Improvements) == 0:
		return nil, fmt.Errorf("%w: missing improvements", ai.ErrIncomplete)
	}

	tier := *loose.ViralPotential
	if tier != "Low" && tier != "Medium" && tier != "High" {
		return nil, fmt.Errorf("%w: unknown viralPotential %q", ai.ErrIncomplete, tier)
	}

	result := &ai.VideoAnalysis{
		HookScore:      score(loose.HookScore),
		PacingScore:    score(loose.PacingScore),
		TopicScore:     score(loose.TopicScore),
		HookAnalysis:   *loose.HookAnalysis,
		PacingAnalysis: *loose.PacingAnalysis,
		ViralPotential: tier,
		Improvements:   loose.Improvements,
	}
	if loose.TopicAnalysis != nil {
		result.TopicAnalysis = *loose.TopicAnalysis
	}
	return result, nil
}

func count(v *float64) int {
	if v == nil || *v < 0 {
		return 0
	}
	return int(*v)
}

func score(v *float64) int {
	s := int(*v)
	if s < 1 {
		s = 1
	}
	if s > 10 {
		s = 10
	}
	return s
}
