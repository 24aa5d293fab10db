package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestOpenAIClientGenerate(t *testing.T) {
	var captured imageRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/generations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": time.Now().Unix(),
			"data": []map[string]string{
				{"b64_json": base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))},
			},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", "", server.URL, 5*time.Second)

	data, err := client.Generate(context.Background(), "a red square", "1024x1024", "high")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("decoded payload = %q, expected jpeg-bytes", data)
	}

	if authHeader != "Bearer sk-test" {
		t.Errorf("authorization header = %q", authHeader)
	}
	if captured.Model != "gpt-image-1" {
		t.Errorf("model = %q, expected the gpt-image-1 default", captured.Model)
	}
	if captured.N != 1 || captured.Size != "1024x1024" || captured.Quality != "high" {
		t.Errorf("request = %+v", captured)
	}
	if captured.OutputFormat != "jpeg" || captured.Background != "opaque" {
		t.Errorf("output settings = %q/%q, expected jpeg/opaque", captured.OutputFormat, captured.Background)
	}
}

func TestOpenAIClientGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		contains string
	}{
		{
			"api error status",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error": {"message": "invalid prompt"}}`, http.StatusBadRequest)
			},
			"status 400",
		},
		{
			"empty data",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"created": 1, "data": []}`))
			},
			"no image data",
		},
		{
			"broken base64",
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"created": 1, "data": [{"b64_json": "!!not-base64!!"}]}`))
			},
			"base64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewOpenAIClient("sk-test", "gpt-image-1", server.URL, 5*time.Second)
			_, err := client.Generate(context.Background(), "p", "1024x1024", "")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q should mention %q", err, tt.contains)
			}
		})
	}
}

func TestOpenAIClientContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server starts its background connection read;
		// otherwise it never notices the client disconnect and r.Context() is
		// never cancelled, deadlocking server.Close.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", "", server.URL, 30*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Generate(ctx, "p", "1024x1024", ""); err == nil {
		t.Fatal("expected the context deadline to abort the call")
	}
}
