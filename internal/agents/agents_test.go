package agents

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// failingGenerator fails for one style and succeeds for the rest.
type failingGenerator struct {
	failStyle Style
}

func (g failingGenerator) Generate(_ context.Context, style Style, _ string) (string, error) {
	if style == g.failStyle {
		return "", errors.New("endpoint status 503")
	}
	return "ok: " + string(style), nil
}

func TestGenerateAllLabelsAndOrder(t *testing.T) {
	out := GenerateAll(context.Background(), Mock{}, "q", DefaultStyles())

	if len(out) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(out))
	}
	wantLabels := []string{"Agent-1-concise", "Agent-2-explainer", "Agent-3-optimizer"}
	for i, c := range out {
		if c.Agent != wantLabels[i] {
			t.Fatalf("label %d: expected %s, got %s", i, wantLabels[i], c.Agent)
		}
	}
	if out[0].Text != "# Mock: concise response" {
		t.Fatalf("unexpected mock text: %s", out[0].Text)
	}
}

func TestGenerateAllDegradesPerStyle(t *testing.T) {
	out := GenerateAll(context.Background(), failingGenerator{failStyle: StyleExplainer}, "q", DefaultStyles())

	if out[0].Text != "ok: concise" {
		t.Fatalf("concise should succeed, got %s", out[0].Text)
	}
	if !strings.HasPrefix(out[1].Text, "# [agent explainer failed:") {
		t.Fatalf("expected error marker for explainer, got %s", out[1].Text)
	}
	if out[2].Text != "ok: optimizer" {
		t.Fatalf("optimizer should succeed, got %s", out[2].Text)
	}
}

func TestNewGeneratorSelection(t *testing.T) {
	if _, ok := NewGenerator(Config{}).(Mock); !ok {
		t.Fatal("expected mock when unconfigured")
	}
	g := NewGenerator(Config{Endpoint: "http://localhost:9", Token: "tok", Timeout: time.Second})
	if _, ok := g.(*EndpointClient); !ok {
		t.Fatal("expected endpoint client when configured")
	}
}

func TestEndpointClientParsesListShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer token")
		}
		w.Write([]byte(`[{"generated_text": "  def f(): pass  "}]`))
	}))
	defer srv.Close()

	c := NewEndpointClient(Config{Endpoint: srv.URL, Token: "tok", Timeout: 5 * time.Second})
	text, err := c.Generate(context.Background(), StyleConcise, "q")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "def f(): pass" {
		t.Fatalf("expected trimmed text, got %q", text)
	}
}

func TestEndpointClientParsesObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"generated_text": "x = 1"}`))
	}))
	defer srv.Close()

	c := NewEndpointClient(Config{Endpoint: srv.URL, Timeout: 5 * time.Second})
	text, err := c.Generate(context.Background(), StyleOptimizer, "q")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "x = 1" {
		t.Fatalf("got %q", text)
	}
}

func TestEndpointClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "busy", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewEndpointClient(Config{Endpoint: srv.URL, Timeout: 5 * time.Second})
	if _, err := c.Generate(context.Background(), StyleConcise, "q"); err == nil {
		t.Fatal("expected error on 503")
	}
}

func TestEndpointClientUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "model loading"}`))
	}))
	defer srv.Close()

	c := NewEndpointClient(Config{Endpoint: srv.URL, Timeout: 5 * time.Second})
	if _, err := c.Generate(context.Background(), StyleConcise, "q"); err == nil {
		t.Fatal("expected error on unknown shape")
	}
}

func TestPromptForIncludesQuery(t *testing.T) {
	for _, style := range DefaultStyles() {
		p := PromptFor(style, "find the second largest number")
		if !strings.Contains(p, "find the second largest number") {
			t.Fatalf("prompt for %s missing query", style)
		}
	}
}
