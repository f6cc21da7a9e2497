package anthropic

import (
	"strings"

	"github.com/leofalp/entitylens/providers/ai"
)

// requestToAnthropic converts an ai.ChatRequest into an anthropicRequest ready
// to POST to Anthropic's Messages API. System-role messages are folded into the
// top-level system field because the Messages API rejects them inline.
func requestToAnthropic(request ai.ChatRequest) anthropicRequest {
	req := anthropicRequest{
		Model:     request.Model,
		MaxTokens: defaultMaxTokens,
		Messages:  make([]anthropicMessage, 0, len(request.Messages)),
	}

	system := []string{}
	if request.SystemPrompt != "" {
		system = append(system, request.SystemPrompt)
	}
	for _, msg := range request.Messages {
		if msg.Role == ai.RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		req.Messages = append(req.Messages, anthropicMessage{
			Role:    string(msg.Role),
			Content: []anthropicContentBlock{{Type: "text", Text: msg.Content}},
		})
	}
	req.System = strings.Join(system, "\n\n")

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature > 0 {
			temp := float64(cfg.Temperature)
			req.Temperature = &temp
		}
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
	}

	return req
}

// anthropicToGeneric maps an anthropicResponse to ai.ChatResponse. Text blocks
// are concatenated in order.
func anthropicToGeneric(resp anthropicResponse) *ai.ChatResponse {
	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.Text)
		}
	}

	return &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Content:      content.String(),
		FinishReason: mapStopReason(resp.StopReason),
		Usage: &ai.Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}
}

// mapStopReason translates Anthropic stop reasons to the OpenAI-style values
// used across providers.
func mapStopReason(reason string) string {
	switch reason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	case "refusal":
		return "content_filter"
	default:
		return reason
	}
}
