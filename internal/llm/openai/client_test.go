package openai

import (
	"encoding/json"
	"testing"

	oai "github.com/sashabaranov/go-openai"
)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"}, nil)

	if c.cfg.Model != oai.GPT4oMini {
		t.Errorf("model = %q, want %q", c.cfg.Model, oai.GPT4oMini)
	}
	if c.cfg.Timeout <= 0 {
		t.Errorf("timeout = %v, want positive", c.cfg.Timeout)
	}
}

func TestNewClientZeroTemperatureStaysOnWire(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"}, nil)

	// An exact 0 would be dropped by omitempty and the API would fall back
	// to its own default of 1.
	if c.cfg.Temperature == 0 {
		t.Fatal("temperature defaulted to exactly 0")
	}

	body, err := json.Marshal(oai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	if _, ok := fields["temperature"]; !ok {
		t.Error("temperature missing from serialized request")
	}
}

func TestNewClientKeepsExplicitTemperature(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key", Temperature: 0.7}, nil)
	if c.cfg.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", c.cfg.Temperature)
	}
}
