// File: /services/gemini_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"anglerhub-api/models"
)

// Canned assistant replies for the degraded paths. Advice never errors; the
// failure mode is encoded in the reply text itself.
const (
	AdviceUnavailable = "AI 服务暂不可用，请检查配置。"
	AdviceNetworkErr  = "网络连接不佳，无法获取建议。"
	AdviceEmptyReply  = "抱歉，我现在有点晕船，请稍后再问。"
)

const identifyPrompt = `你是一位鱼类学专家。请识别图片中的鱼类，并严格按照以下JSON格式返回，不要输出任何其他文字：
{
  "name": "中文俗名",
  "scientificName": "拉丁学名",
  "edibility": "可食用性与烹饪建议（一句话）",
  "description": "外形特征与习性简介（两到三句话）",
  "isProtected": 是否为保护物种（布尔值）
}
如果图片中没有鱼，请将name设为"未识别到鱼类"并如实填写其余字段。`

const advicePersona = `你是一位经验丰富的中国老钓手，网名"老渔翁"。回答钓友的问题时口语化、接地气，多用钓鱼行话（如"爆护"、"空军"、"打窝"），回答控制在150字以内。`

// GeminiService wraps the generative AI client. A missing API key leaves the
// client nil and every call degrades instead of failing at startup.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	svc := &GeminiService{model: model}
	if apiKey == "" {
		fmt.Println("GEMINI_API_KEY not set, AI features degraded")
		return svc, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	svc.client = client
	return svc, nil
}

// Available reports whether the upstream client is configured.
func (s *GeminiService) Available() bool {
	return s.client != nil
}

// IdentifyFish sends the image to the model and parses the structured
// verdict. Unlike FishingAdvice, failures surface to the caller.
func (s *GeminiService) IdentifyFish(ctx context.Context, data []byte, mimeType string) (*models.FishAnalysisResult, error) {
	if s.client == nil {
		return nil, fmt.Errorf("AI service is not configured")
	}

	temperature := float32(0.2)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		ResponseMIMEType: "application/json",
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(identifyPrompt),
		}, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("fish identification request failed: %w", err)
	}

	jsonText := extractJSON(collectPartsText(resp))
	var result models.FishAnalysisResult
	if err := json.Unmarshal([]byte(jsonText), &result); err != nil {
		return nil, fmt.Errorf("failed to parse identification response: %w", err)
	}

	return &result, nil
}

// FishingAdvice answers a free-form question in the assistant persona. It
// never returns an error; degraded paths map to canned replies.
func (s *GeminiService) FishingAdvice(ctx context.Context, query string) string {
	if s.client == nil {
		return AdviceUnavailable
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(advicePersona, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(query), config)
	if err != nil {
		fmt.Printf("[ERROR] fishing advice request failed: %v\n", err)
		return AdviceNetworkErr
	}

	text := strings.TrimSpace(collectPartsText(resp))
	if text == "" {
		return AdviceEmptyReply
	}
	return text
}

// extractJSON extracts the first JSON object from a string.
func extractJSON(text string) string {
	text = regexp.MustCompile("```json\\s*").ReplaceAllString(text, "")
	text = regexp.MustCompile("```\\s*").ReplaceAllString(text, "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return strings.TrimSpace(text[start : end+1])
	}
	return text
}

// collectPartsText concatenates text parts from a response.
func collectPartsText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
