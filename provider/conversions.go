package provider

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"

	"github.com/Stefan824/TradingAgents/model"
)

// ConvertToOllamaMessages converts pipeline messages to Ollama api.Message.
func ConvertToOllamaMessages(messages []model.Message) []api.Message {
	result := make([]api.Message, len(messages))
	for i, msg := range messages {
		result[i] = api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return result
}

// ConvertToOpenAIMessages converts pipeline messages to OpenAI format.
// Used by every OpenAI-compatible backend (openai, openrouter, google, xai,
// llamacpp server).
func ConvertToOpenAIMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))

	for i, msg := range messages {
		switch msg.Role {
		case "system":
			result[i] = openai.SystemMessage(msg.Content)
		case "user":
			result[i] = openai.UserMessage(msg.Content)
		case "assistant":
			result[i] = openai.AssistantMessage(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}

	return result
}

// convertToAnthropicMessages converts pipeline messages to Anthropic format.
// Returns the message array and any system blocks found; Anthropic takes the
// system prompt as a separate parameter, not in the messages array.
func convertToAnthropicMessages(messages []model.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var systemBlocks []anthropic.TextBlockParam
	anthropicMsgs := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case "system":
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{
				Text: msg.Content,
			})
		case "assistant":
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)),
			)
		default:
			anthropicMsgs = append(anthropicMsgs,
				anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)),
			)
		}
	}

	return anthropicMsgs, systemBlocks
}

// ConvertToProviderToolCalls converts Ollama api.ToolCall to the
// provider-agnostic model.ToolCall. Returns nil for empty input, matching
// the Ollama API's nil semantics.
func ConvertToProviderToolCalls(ollamaCalls []api.ToolCall) []model.ToolCall {
	if len(ollamaCalls) == 0 {
		return nil
	}

	result := make([]model.ToolCall, len(ollamaCalls))
	for i, call := range ollamaCalls {
		result[i] = model.ToolCall{
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		}
	}
	return result
}

// ParseToolArguments parses a JSON arguments string into a map.
// Used by the OpenAI-compatible providers for tool call parsing; unparsable
// input yields an empty map rather than an error.
func ParseToolArguments(argsJSON string) map[string]any {
	var args map[string]any
	if err := json.Unmarshal([]byte(argsJSON), &args); err != nil {
		return make(map[string]any)
	}
	return args
}

// convertToolsToOllama converts pipeline tools to Ollama api.Tool via a
// JSON round-trip; both sides are JSON Schema shaped.
func convertToolsToOllama(tools []model.Tool) []api.Tool {
	if len(tools) == 0 {
		return nil
	}

	result := make([]api.Tool, 0, len(tools))
	for _, t := range tools {
		tool := api.Tool{
			Type: "function",
			Function: api.ToolFunction{
				Name:        t.Name,
				Description: t.Description,
			},
		}

		if t.Parameters != nil {
			raw, err := json.Marshal(t.Parameters)
			if err == nil {
				// Best effort: a schema the Ollama types cannot express
				// leaves Parameters zero-valued.
				_ = json.Unmarshal(raw, &tool.Function.Parameters)
			}
		}

		result = append(result, tool)
	}
	return result
}

// convertToolsToOpenAI converts pipeline tools to OpenAI function tools.
func convertToolsToOpenAI(tools []model.Tool) []openai.ChatCompletionToolUnionParam {
	if len(tools) == 0 {
		return nil
	}

	result := make([]openai.ChatCompletionToolUnionParam, len(tools))
	for i, t := range tools {
		params := openai.FunctionParameters(t.Parameters)
		result[i] = openai.ChatCompletionFunctionTool(
			openai.FunctionDefinitionParam{
				Name:        t.Name,
				Description: openai.String(t.Description),
				Parameters:  params,
			},
		)
	}
	return result
}

// convertToolsToAnthropic converts pipeline tools to Anthropic tool params.
func convertToolsToAnthropic(tools []model.Tool) []anthropic.ToolUnionParam {
	if len(tools) == 0 {
		return nil
	}

	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		inputSchema := anthropic.ToolInputSchemaParam{}
		if props, ok := t.Parameters["properties"]; ok {
			inputSchema.Properties = props
		}
		if req, ok := t.Parameters["required"].([]string); ok {
			inputSchema.Required = req
		}

		result[i] = anthropic.ToolUnionParamOfTool(inputSchema, t.Name)
		if t.Description != "" {
			result[i].OfTool.Description = anthropic.String(t.Description)
		}
	}
	return result
}
