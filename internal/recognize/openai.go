package recognize

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/cache"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/model"
	"github.com/Jayakumar-B-23012888/extraction-and-verification-of-information-from-semi-categorized-data/internal/worker"
)

const openaiSystemPrompt = `You are a named-entity recognizer for scanned document text.
Extract entities and reply with ONLY a JSON array, no prose, no code fences.
Each element: {"label": "...", "text": "..."}.
Allowed labels: PERSON, ORG, DATE, GPE. Omit anything else.
Copy entity text exactly as it appears in the input.`

// OpenAIRecognizer runs entity recognition through the OpenAI chat API.
// Calls are rate limited, and responses for identical blocks are served
// from an in-process cache for the life of the process.
type OpenAIRecognizer struct {
	client  *openai.Client
	model   string
	config  model.RecognizerConfig
	limiter *worker.Limiter
	store   cache.Cache // nil when caching is disabled
}

// NewOpenAI creates an OpenAI-backed recognizer. The API key comes from
// the configuration or the OPENAI_API_KEY environment variable.
func NewOpenAI(cfg model.RecognizerConfig, store cache.Cache) (*OpenAIRecognizer, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY)")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIRecognizer{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		config:  cfg,
		limiter: worker.NewLimiter(cfg.RateLimit, cfg.Burst),
		store:   store,
	}, nil
}

// Name returns the backend name
func (r *OpenAIRecognizer) Name() string {
	return "openai"
}

// Recognize extracts labeled spans from the text
func (r *OpenAIRecognizer) Recognize(ctx context.Context, text string) ([]Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	key := cache.Key(text)
	if r.store != nil {
		if raw, found := r.store.Get(key); found {
			var results []Result
			if err := json.Unmarshal(raw, &results); err == nil {
				return results, nil
			}
			// Corrupt entry, fall through to a fresh call
		}
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	mdl := r.model
	if mdl == "" {
		mdl = openai.GPT4oMini
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: mdl,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openaiSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	results, err := parseEntityJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		if raw, merr := json.Marshal(results); merr == nil {
			r.store.Set(key, raw, 0) // 0 uses the cache default TTL
		}
	}
	return results, nil
}

// parseEntityJSON parses the model reply, tolerating code fences the model
// sometimes adds despite instructions.
func parseEntityJSON(content string) ([]Result, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var raw []struct {
		Label string `json:"label"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("malformed entity JSON: %w", err)
	}

	var results []Result
	for _, item := range raw {
		results = append(results, Result{Label: item.Label, Text: item.Text})
	}
	return results, nil
}
