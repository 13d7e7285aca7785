package llmsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/Ayushpund/Acharya/core"
)

const responsesPath = "/v1/responses"

type (
	message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	responsesRequest struct {
		Model string    `json:"model"`
		Input []message `json:"input"`
		Text  struct {
			Format map[string]any `json:"format,omitempty"`
		} `json:"text,omitempty"`
		Temperature *float64 `json:"temperature,omitempty"`
	}

	responsesResponse struct {
		Output []struct {
			Type    string `json:"type"`
			Role    string `json:"role,omitempty"`
			Content []struct {
				Type    string `json:"type"`
				Text    string `json:"text,omitempty"`
				Refusal string `json:"refusal,omitempty"`
			} `json:"content,omitempty"`
		} `json:"output"`
	}

	// HTTPError is a non-2xx answer from the model API.
	HTTPError struct {
		StatusCode int
		Body       string
	}
)

func (e *HTTPError) Error() string {
	return fmt.Sprintf("openai: status %d: %s", e.StatusCode, e.Body)
}

// OpenAIClient calls the OpenAI Responses API with structured (json_schema) outputs.
// Each call is a single attempt; the client timeout bounds its latency.
type OpenAIClient struct {
	http        *resty.Client
	model       string
	temperature *float64
}

func NewOpenAIClient(conf *core.Config) *OpenAIClient {
	c := &OpenAIClient{
		http: resty.New().
			SetBaseURL(conf.LLM.BaseURL).
			SetTimeout(conf.LLM.Timeout).
			SetAuthToken(conf.LLM.APIKey).
			SetHeader("Content-Type", "application/json").
			SetRetryCount(0),
		model: conf.LLM.Model,
	}
	if conf.LLM.Temperature > 0 {
		t := conf.LLM.Temperature
		c.temperature = &t
	}
	return c
}

func (c *OpenAIClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (json.RawMessage, error) {
	if schemaName == "" {
		return nil, errors.New("schemaName required")
	}
	if schema == nil {
		return nil, errors.New("schema required")
	}

	req := responsesRequest{
		Model: c.model,
		Input: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.temperature,
	}
	req.Text.Format = map[string]any{
		"type":   "json_schema",
		"name":   schemaName,
		"schema": schema,
		"strict": true,
	}

	var out responsesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(responsesPath)
	if err != nil {
		return nil, errors.Wrap(err, "calling responses API")
	}
	if resp.IsError() {
		return nil, &HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	text, refusal := extractOutputText(out)
	if refusal != "" {
		return nil, errors.Errorf("model refused: %s", refusal)
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("no output_text found in response")
	}
	return json.RawMessage(text), nil
}

func extractOutputText(resp responsesResponse) (text, refusal string) {
	var out strings.Builder
	for _, item := range resp.Output {
		if item.Type != "message" || item.Role != "assistant" {
			continue
		}
		for _, c := range item.Content {
			switch c.Type {
			case "output_text":
				out.WriteString(c.Text)
			case "refusal":
				refusal = c.Refusal
			}
		}
	}
	return out.String(), refusal
}
