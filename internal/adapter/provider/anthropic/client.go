// Package anthropic implements the completion provider against the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/bilalwebs/Taskflow-Fullstack-sub000/internal/provider"
)

// Client calls the Anthropic Messages API and translates between the neutral
// completion types and the SDK's wire types.
type Client struct {
	api   sdk.Client
	model sdk.Model
}

// NewClient creates a Client for the given API key and model name.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   sdk.NewClient(option.WithAPIKey(apiKey)),
		model: sdk.Model(model),
	}
}

// Complete sends one completion request and returns the model's reply.
// Rate-limit, server-side, and deadline failures are mapped to the provider
// sentinel errors.
func (c *Client) Complete(ctx context.Context, req provider.Request) (provider.Completion, error) {
	params := sdk.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(req.MaxTokens),
		Messages:  buildMessages(req.Turns),
		Tools:     buildTools(req.Tools),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return provider.Completion{}, mapError(err)
	}

	comp := provider.Completion{StopReason: stopReason(msg.StopReason)}
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case sdk.TextBlock:
			comp.Text += b.Text
		case sdk.ToolUseBlock:
			comp.ToolCalls = append(comp.ToolCalls, provider.ToolCall{
				ID:        b.ID,
				Name:      b.Name,
				Arguments: json.RawMessage(b.JSON.Input.Raw()),
			})
		}
	}
	return comp, nil
}

func buildMessages(turns []provider.Turn) []sdk.MessageParam {
	msgs := make([]sdk.MessageParam, 0, len(turns))
	for _, turn := range turns {
		var blocks []sdk.ContentBlockParamUnion

		for _, res := range turn.ToolResults {
			blocks = append(blocks, sdk.ContentBlockParamUnion{
				OfToolResult: &sdk.ToolResultBlockParam{
					ToolUseID: res.CallID,
					IsError:   sdk.Bool(res.IsError),
					Content: []sdk.ToolResultBlockParamContentUnion{
						{OfText: &sdk.TextBlockParam{Text: res.Content}},
					},
				},
			})
		}
		if turn.Content != "" {
			blocks = append(blocks, sdk.NewTextBlock(turn.Content))
		}
		for _, call := range turn.ToolCalls {
			blocks = append(blocks, sdk.ContentBlockParamUnion{
				OfToolUse: &sdk.ToolUseBlockParam{
					ID:    call.ID,
					Name:  call.Name,
					Input: call.Arguments,
				},
			})
		}

		switch turn.Role {
		case provider.RoleAssistant:
			msgs = append(msgs, sdk.NewAssistantMessage(blocks...))
		default:
			msgs = append(msgs, sdk.NewUserMessage(blocks...))
		}
	}
	return msgs
}

func buildTools(specs []provider.ToolSpec) []sdk.ToolUnionParam {
	if len(specs) == 0 {
		return nil
	}
	tools := make([]sdk.ToolUnionParam, 0, len(specs))
	for _, spec := range specs {
		var schema sdk.ToolInputSchemaParam
		if len(spec.InputSchema) > 0 {
			// InputSchema is a JSON Schema object; lift its properties
			// and required list into the SDK's schema param.
			var parsed struct {
				Properties map[string]any `json:"properties"`
				Required   []string       `json:"required"`
			}
			if err := json.Unmarshal(spec.InputSchema, &parsed); err == nil {
				schema.Properties = parsed.Properties
				schema.Required = parsed.Required
			}
		}
		tools = append(tools, sdk.ToolUnionParam{
			OfTool: &sdk.ToolParam{
				Name:        spec.Name,
				Description: sdk.String(spec.Description),
				InputSchema: schema,
			},
		})
	}
	return tools
}

func stopReason(r sdk.StopReason) provider.StopReason {
	switch r {
	case sdk.StopReasonToolUse:
		return provider.StopToolUse
	case sdk.StopReasonMaxTokens:
		return provider.StopMaxTokens
	default:
		return provider.StopEndTurn
	}
}

// mapError converts SDK and transport errors into provider sentinels so
// callers never depend on the Anthropic SDK directly.
func mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", provider.ErrTimeout, err)
	}

	var apiErr *sdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 429:
			return fmt.Errorf("%w: %v", provider.ErrRateLimited, err)
		case apiErr.StatusCode >= 500:
			return fmt.Errorf("%w: %v", provider.ErrUnavailable, err)
		}
	}

	return fmt.Errorf("anthropic completion: %w", err)
}
