package llm

import "testing"

func TestFirstCodeBlock(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around fence", in: "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", want: `{"a":1}`},
		{name: "first of two", in: "```\n{\"a\":1}\n```\n```\n{\"b\":2}\n```", want: `{"a":1}`},
		{name: "inline fence", in: "```{\"a\":1}```", want: `{"a":1}`},
		{name: "no fence", in: "  {\"a\":1} ", want: `{"a":1}`},
		{name: "unterminated fence", in: "```json\n{\"a\":1}", want: "```json\n{\"a\":1}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FirstCodeBlock(tc.in); got != tc.want {
				t.Fatalf("FirstCodeBlock(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeLLMJSON(t *testing.T) {
	var target struct {
		Genres []string `json:"genres"`
	}
	if err := DecodeLLMJSON("Sure! {\"genres\":[\"Drama\"]} hope that helps", &target); err != nil {
		t.Fatalf("DecodeLLMJSON returned error: %v", err)
	}
	if len(target.Genres) != 1 || target.Genres[0] != "Drama" {
		t.Fatalf("unexpected target %+v", target)
	}
	if err := DecodeLLMJSON("Sorry, I cannot help.", &target); err == nil {
		t.Fatal("expected error for prose")
	}
	if err := DecodeLLMJSON("   ", &target); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestSummarizePayloadTruncates(t *testing.T) {
	long := make([]byte, 400)
	for i := range long {
		long[i] = 'x'
	}
	got := SummarizePayload(string(long))
	if len(got) != 163 {
		t.Fatalf("expected truncated snippet, got length %d", len(got))
	}
	if SummarizePayload("  ") != "<empty>" {
		t.Fatal("expected <empty> marker")
	}
}
