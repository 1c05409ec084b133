//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
)

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("INTEGRATION_BASE_URL", "http://localhost:8080")
}

func getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decode(t, resp)
}

func postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload for %s: %v", path, err)
	}
	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decode(t, resp)
}

func deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response from %s: %v", resp.Request.URL, err)
	}
	return body
}

func createQuestion(t *testing.T, question, answer string, category int) int64 {
	t.Helper()

	status, body := postJSON(t, "/questions", map[string]any{
		"question":   question,
		"answer":     answer,
		"difficulty": 3,
		"category":   category,
	})
	if status != http.StatusOK {
		t.Fatalf("create question returned status %d", status)
	}
	created, ok := body["created"].(float64)
	if !ok {
		t.Fatalf("create response missing created id: %v", body)
	}
	return int64(created)
}

func mustFloat(t *testing.T, body map[string]any, key string) float64 {
	t.Helper()

	val, ok := body[key].(float64)
	if !ok {
		t.Fatalf("expected numeric %q in %v", key, body)
	}
	return val
}
