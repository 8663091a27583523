package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient on the Gemini API.
type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client // nil when no credential is configured
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API. A missing
// credential is not an error here: every Generate call then fails with
// ErrMissingCredential before touching the network.
func NewGeminiClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if observer == nil {
		observer = NoopObserver{}
	}
	c := &geminiClient{cfg: cfg, observer: observer}
	if !cfg.HasCredential() {
		return c, nil
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(cfg.BaseURL, "/") + "/"}
	}
	client, err := genai.NewClient(context.Background(), cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if c.client == nil {
		finishCall(c.observer, c.cfg, req.Task, start, ErrMissingCredential)
		return nil, ErrMissingCredential
	}

	params := callParams(c.cfg, req)
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(params.Temperature)),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(params.ThinkingBudget)),
		},
	}
	if req.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(req.UserPrompt), config)
	if err != nil {
		err = classify(ctx, err)
		finishCall(c.observer, c.cfg, req.Task, start, err)
		return nil, err
	}

	latency := finishCall(c.observer, c.cfg, req.Task, start, nil)
	model := c.cfg.Model
	if resp.ModelVersion != "" {
		model = resp.ModelVersion
	}
	return &GenerateResponse{
		Text:      resp.Text(),
		Model:     model,
		LatencyMs: latency,
	}, nil
}

// Available reports whether a credential is configured. No request is made.
func (c *geminiClient) Available(context.Context) bool {
	return c.client != nil
}
