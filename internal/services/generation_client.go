package services

import (
  "bytes"
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "io"
  "math/rand"
  "net"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/caretrack/caretrack-backend/internal/logger"
)

// GenerationClient is the single seam to the external text-generation API.
// Prompts go out as one text block; replies come back as plain text which may
// wrap a JSON object in a markdown fence.
type GenerationClient interface {
  GenerateText(ctx context.Context, prompt string) (string, error)
  GenerateJSON(ctx context.Context, prompt string) (map[string]any, error)
}

type generationClient struct {
  log        *logger.Logger
  baseURL    string
  apiKey     string
  model      string
  httpClient *http.Client

  maxRetries int
}

func NewGenerationClient(log *logger.Logger) (GenerationClient, error) {
  apiKey := os.Getenv("GENERATION_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GENERATION_API_KEY")
  }

  baseURL := os.Getenv("GENERATION_BASE_URL")
  if baseURL == "" {
    baseURL = "https://generativelanguage.googleapis.com"
  }

  model := os.Getenv("GENERATION_MODEL")
  if model == "" {
    model = "gemini-1.5-flash"
  }

  timeoutSec := 60
  if v := os.Getenv("GENERATION_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  maxRetries := 3
  if v := os.Getenv("GENERATION_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
      maxRetries = parsed
    }
  }

  return &generationClient{
    log:        log.With("service", "GenerationClient"),
    baseURL:    baseURL,
    apiKey:     apiKey,
    model:      model,
    httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
    maxRetries: maxRetries,
  }, nil
}

type generationHTTPError struct {
  StatusCode int
  Body       string
}

func (e *generationHTTPError) Error() string {
  return fmt.Sprintf("generation http %d: %s", e.StatusCode, e.Body)
}

func isRetryableHTTP(code int) bool {
  if code == 408 || code == 429 {
    return true
  }
  if code >= 500 && code <= 599 {
    return true
  }
  return false
}

func isRetryableErr(err error) bool {
  if err == nil {
    return false
  }
  if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
    return true
  }
  var netErr net.Error
  if errors.As(err, &netErr) {
    if netErr.Timeout() {
      return true
    }
  }
  var httpErr *generationHTTPError
  if errors.As(err, &httpErr) {
    return isRetryableHTTP(httpErr.StatusCode)
  }
  return false
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  j := 0.2
  delta := base.Seconds() * j
  low := base.Seconds() - delta
  high := base.Seconds() + delta
  if low < 0 {
    low = 0
  }
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}

type generationPart struct {
  Text string `json:"text"`
}

type generationContent struct {
  Parts []generationPart `json:"parts"`
}

type generateContentRequest struct {
  Contents []generationContent `json:"contents"`
}

type generateContentResponse struct {
  Candidates []struct {
    Content generationContent `json:"content"`
  } `json:"candidates"`
}

func (c *generationClient) doOnce(ctx context.Context, path string, body any) (*http.Response, []byte, error) {
  var buf bytes.Buffer
  if body != nil {
    if err := json.NewEncoder(&buf).Encode(body); err != nil {
      return nil, nil, err
    }
  }

  req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
  if err != nil {
    return nil, nil, err
  }
  req.Header.Set("x-goog-api-key", c.apiKey)
  req.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(req)
  if err != nil {
    return nil, nil, err
  }

  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return resp, nil, readErr
  }

  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return resp, raw, &generationHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
  }
  return resp, raw, nil
}

func (c *generationClient) do(ctx context.Context, path string, body any, out any) error {
  // exponential backoff: 1s, 2s, 4s (cap ~10s)
  backoff := 1 * time.Second

  for attempt := 0; attempt <= c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return ctx.Err()
    }

    resp, raw, err := c.doOnce(ctx, path, body)
    if err == nil {
      if out == nil {
        return nil
      }
      if uErr := json.Unmarshal(raw, out); uErr != nil {
        return fmt.Errorf("generation decode error: %w; raw=%s", uErr, string(raw))
      }
      return nil
    }

    if !isRetryableErr(err) {
      return err
    }
    if attempt == c.maxRetries {
      return err
    }

    sleepFor := backoff
    if resp != nil {
      ra := strings.TrimSpace(resp.Header.Get("Retry-After"))
      if ra != "" {
        if secs, parseErr := strconv.Atoi(ra); parseErr == nil && secs > 0 {
          sleepFor = time.Duration(secs) * time.Second
        }
      }
    }
    if sleepFor > 10*time.Second {
      sleepFor = 10 * time.Second
    }
    sleepFor = jitterSleep(sleepFor)

    c.log.Warn("Generation request retrying",
      "path", path,
      "attempt", attempt+1,
      "max_retries", c.maxRetries,
      "sleep", sleepFor.String(),
      "error", err.Error(),
    )

    time.Sleep(sleepFor)
    backoff *= 2
  }

  return fmt.Errorf("unreachable retry loop")
}

func (c *generationClient) GenerateText(ctx context.Context, prompt string) (string, error) {
  req := generateContentRequest{
    Contents: []generationContent{
      {Parts: []generationPart{{Text: prompt}}},
    },
  }

  path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)

  var resp generateContentResponse
  if err := c.do(ctx, path, req, &resp); err != nil {
    return "", err
  }

  var text string
  for _, cand := range resp.Candidates {
    for _, part := range cand.Content.Parts {
      text += part.Text
    }
  }
  if strings.TrimSpace(text) == "" {
    return "", fmt.Errorf("no text in generation response")
  }
  return text, nil
}

func (c *generationClient) GenerateJSON(ctx context.Context, prompt string) (map[string]any, error) {
  text, err := c.GenerateText(ctx, prompt)
  if err != nil {
    return nil, err
  }

  cleaned := stripJSONFences(text)

  var obj map[string]any
  if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
    return nil, fmt.Errorf("failed to parse model JSON: %w; text=%s", err, cleaned)
  }
  return obj, nil
}

// stripJSONFences removes markdown code fences the model often wraps its
// JSON reply in.
func stripJSONFences(s string) string {
  out := strings.TrimSpace(s)
  out = strings.ReplaceAll(out, "```json", "")
  out = strings.ReplaceAll(out, "```", "")
  return strings.TrimSpace(out)
}
