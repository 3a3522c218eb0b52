package services

import (
  "context"
  "encoding/json"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func newGenerationClientForTest(t *testing.T, baseURL string, maxRetries int) *generationClient {
  t.Helper()
  return &generationClient{
    log:        newTestLogger(t),
    baseURL:    baseURL,
    apiKey:     "test-key",
    model:      "test-model",
    httpClient: &http.Client{Timeout: 5 * time.Second},
    maxRetries: maxRetries,
  }
}

func generationReply(text string) string {
  body := map[string]any{
    "candidates": []map[string]any{
      {"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
    },
  }
  raw, _ := json.Marshal(body)
  return string(raw)
}

func TestGenerateTextSendsPromptAndAPIKey(t *testing.T) {
  var gotPath, gotKey string
  var gotBody generateContentRequest
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    gotPath = r.URL.Path
    gotKey = r.Header.Get("x-goog-api-key")
    _ = json.NewDecoder(r.Body).Decode(&gotBody)
    _, _ = w.Write([]byte(generationReply("hello there")))
  }))
  defer srv.Close()

  client := newGenerationClientForTest(t, srv.URL, 0)
  text, err := client.GenerateText(context.Background(), "say hello")
  require.NoError(t, err)
  assert.Equal(t, "hello there", text)
  assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
  assert.Equal(t, "test-key", gotKey)
  require.Len(t, gotBody.Contents, 1)
  require.Len(t, gotBody.Contents[0].Parts, 1)
  assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateTextRetriesOnServerError(t *testing.T) {
  calls := 0
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    calls++
    if calls == 1 {
      w.Header().Set("Retry-After", "0")
      w.WriteHeader(http.StatusServiceUnavailable)
      return
    }
    _, _ = w.Write([]byte(generationReply("second try")))
  }))
  defer srv.Close()

  client := newGenerationClientForTest(t, srv.URL, 2)
  text, err := client.GenerateText(context.Background(), "p")
  require.NoError(t, err)
  assert.Equal(t, "second try", text)
  assert.Equal(t, 2, calls)
}

func TestGenerateTextNoRetryOnBadRequest(t *testing.T) {
  calls := 0
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    calls++
    w.WriteHeader(http.StatusBadRequest)
    _, _ = w.Write([]byte(`{"error": "bad prompt"}`))
  }))
  defer srv.Close()

  client := newGenerationClientForTest(t, srv.URL, 3)
  _, err := client.GenerateText(context.Background(), "p")
  require.Error(t, err)
  assert.Equal(t, 1, calls)

  var httpErr *generationHTTPError
  require.ErrorAs(t, err, &httpErr)
  assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(`{"candidates": []}`))
  }))
  defer srv.Close()

  client := newGenerationClientForTest(t, srv.URL, 0)
  _, err := client.GenerateText(context.Background(), "p")
  assert.Error(t, err)
}

func TestGenerateJSONStripsFences(t *testing.T) {
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    _, _ = w.Write([]byte(generationReply("```json\n{\"title\": \"Hi\", \"message\": \"welcome\"}\n```")))
  }))
  defer srv.Close()

  client := newGenerationClientForTest(t, srv.URL, 0)
  obj, err := client.GenerateJSON(context.Background(), "p")
  require.NoError(t, err)
  assert.Equal(t, "Hi", obj["title"])
  assert.Equal(t, "welcome", obj["message"])
}

func TestStripJSONFences(t *testing.T) {
  tests := []struct {
    in   string
    want string
  }{
    {"{\"a\": 1}", "{\"a\": 1}"},
    {"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
    {"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
    {"  \n```json{\"a\": 1}```\n ", "{\"a\": 1}"},
  }
  for _, tt := range tests {
    if got := stripJSONFences(tt.in); got != tt.want {
      t.Fatalf("stripJSONFences(%q) = %q, want %q", tt.in, got, tt.want)
    }
  }
}
