package llm

import (
	"encoding/json"
	"testing"
)

func TestNormalize_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"score\": 12}\n```"
	got := Normalize(raw)
	want := `{"score":12}`
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", raw, got, want)
	}
}

func TestNormalize_IsolatesObjectSpan(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n{\"riskLevel\": \"LOW\"}\nLet me know if you need anything else."
	got := Normalize(raw)
	want := `{"riskLevel":"LOW"}`
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_RemovesTrailingCommas(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"object", `{"a": 1, "b": 2,}`, `{"a":1,"b":2}`},
		{"array", `{"xs": [1, 2, 3,]}`, `{"xs":[1,2,3]}`},
		{"comma then newline", "{\"a\": 1,\n}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	raw := "{\n\t\"fraudRiskScore\":\t55,\n\t\"riskLevel\": \"MEDIUM\"\n}"
	got := Normalize(raw)
	want := `{"fraudRiskScore":55,"riskLevel":"MEDIUM"}`
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_PreservesStringContents(t *testing.T) {
	// Whitespace and commas inside string values must survive untouched.
	raw := "{\"location\": \"Lagos, Victoria Island: block 4\" ,}"
	got := Normalize(raw)
	want := `{"location":"Lagos, Victoria Island: block 4"}`
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}

	var m map[string]string
	if err := json.Unmarshal([]byte(got), &m); err != nil {
		t.Fatalf("normalized output is not valid JSON: %v", err)
	}
	if m["location"] != "Lagos, Victoria Island: block 4" {
		t.Errorf("string value changed: %q", m["location"])
	}
}

func TestNormalize_EscapedQuotesInsideStrings(t *testing.T) {
	raw := `{"note": "he said \"wait\" , then left", }`
	got := Normalize(raw)
	want := `{"note":"he said \"wait\" , then left"}`
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": [1, 2,], \"b\": \"x , y\",}\n```",
		`{"score": 50, "findings": ["one", "two"]}`,
		"prefix {\"k\":\t\"v\"} suffix",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first=%q second=%q", raw, once, twice)
		}
	}
}

func TestNormalize_NoObjectSpan(t *testing.T) {
	raw := "I cannot analyze this claim."
	got := Normalize(raw)
	if got != "I cannot analyze this claim." {
		t.Errorf("Normalize = %q, want input text preserved", got)
	}
}
