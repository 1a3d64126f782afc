package draft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mbellows/gigbook/internal/model"
)

const systemPrompt = `You extract structured gig (freelance job) details from text.
Respond with a single JSON object and nothing else. Use only these keys,
omitting any the text does not mention:
  jobTitle, description, clientName, clientPhone, clientEmail,
  clientAddress, date (YYYY-MM-DD), time (HH:MM 24h), jobSite,
  jobCost (number), taxRate (number 0-100), hoursWorked (number),
  expenses (array of {description, amount}).
Resolve relative dates like "next Tuesday" against the reference date.
Never invent values that are not stated or clearly implied.`

// ollamaParser implements Parser using the Ollama HTTP API.
type ollamaParser struct {
	cfg  Config
	http *http.Client
	now  func() time.Time
}

// NewOllamaParser creates a Parser that talks to a local Ollama
// instance.
func NewOllamaParser(cfg Config) Parser {
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = 15000
	}
	return &ollamaParser{
		cfg:  cfg,
		http: &http.Client{},
		now:  time.Now,
	}
}

// ollamaRequest is the JSON body sent to POST /api/generate.
type ollamaRequest struct {
	Model  string `json:"model"`
	System string `json:"system,omitempty"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ollamaResponse is the non-streaming body returned by /api/generate.
type ollamaResponse struct {
	Response string `json:"response"`
}

func (p *ollamaParser) ParseGig(ctx context.Context, text string) (*model.Gig, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(p.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	prompt := fmt.Sprintf("Reference date: %s\n\nText:\n%s", p.now().Format("2006-01-02"), text)
	body, err := json.Marshal(ollamaRequest{
		Model:  p.cfg.Model,
		System: systemPrompt,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.Endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var or ollamaResponse
	if err := json.Unmarshal(raw, &or); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	gig, err := extractGig(or.Response)
	if err != nil {
		return nil, err
	}
	// Identity is assigned by the store, never by the parser.
	gig.ID = ""
	return gig, nil
}

func (p *ollamaParser) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.Endpoint+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// extractGig pulls the first JSON object out of raw model output and
// decodes it as a partial gig. Markdown code fences and surrounding
// prose are tolerated.
func extractGig(raw string) (*model.Gig, error) {
	block := jsonBlock(stripFences(raw))
	if block == "" {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrInvalidOutput)
	}

	var gig model.Gig
	if err := json.Unmarshal([]byte(block), &gig); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return &gig, nil
}

// stripFences removes markdown code fences around model output.
func stripFences(s string) string {
	var out []string
	inFence := false
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// jsonBlock returns the first balanced { ... } block in s, respecting
// strings and escapes.
func jsonBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
