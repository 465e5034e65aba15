package oracle

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// functionSchemas declares the two callable functions exposed to the model.
// book_room requires all four parameters; validation beyond this schema is
// left to the model and the upstream booking service.
var functionSchemas = []openai.FunctionDefinition{
	{
		Name:        FunctionGetRoomOptions,
		Description: "Get available room options",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {},
			"required": []
		}`),
	},
	{
		Name:        FunctionBookRoom,
		Description: "Book a room",
		Parameters: json.RawMessage(`{
			"type": "object",
			"properties": {
				"roomId": {"type": "integer"},
				"fullName": {"type": "string"},
				"email": {"type": "string"},
				"nights": {"type": "integer"}
			},
			"required": ["roomId", "fullName", "email", "nights"]
		}`),
	},
}

// OpenAIClient implements Completer against the OpenAI chat completions API
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new completion client
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Complete sends the transcript and function declarations and returns the
// model's answer as a tagged result. Transport and API errors are returned
// to the caller unhandled.
func (c *OpenAIClient) Complete(ctx context.Context, transcript []Message) (*Result, error) {
	messages := make([]openai.ChatCompletionMessage, len(transcript))
	for i, msg := range transcript {
		messages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:        c.model,
		Messages:     messages,
		Functions:    functionSchemas,
		FunctionCall: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	choice := resp.Choices[0].Message
	if choice.FunctionCall != nil {
		return &Result{
			Kind:      KindFunctionCall,
			Name:      choice.FunctionCall.Name,
			Arguments: json.RawMessage(choice.FunctionCall.Arguments),
		}, nil
	}

	return &Result{
		Kind:    KindText,
		Content: choice.Content,
	}, nil
}
