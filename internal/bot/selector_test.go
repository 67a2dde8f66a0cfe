package bot

import "testing"

func TestSelectGreeting(t *testing.T) {
	got := Select("Hi there")
	if got != GreetingResponse {
		t.Fatalf("expected greeting, got %q", got)
	}
}

func TestSelectCompanyStatement(t *testing.T) {
	got := Select("tell me about your company")
	if got != CompanyResponse {
		t.Fatalf("expected company statement, got %q", got)
	}
}

func TestSelectFallback(t *testing.T) {
	got := Select("xyz unrelated query")
	if got != FallbackResponse {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestSelectTable(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"hello keyword", "well hello to you", GreetingResponse},
		{"uppercase", "HELLO", GreetingResponse},
		{"identity question", "who are you exactly?", IdentityResponse},
		{"name question", "what is your name", IdentityResponse},
		{"about keyword", "about", CompanyResponse},
		{"help keyword", "can you help me?", CapabilityResponse},
		{"empty string still total", "", FallbackResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Select(tc.input); got != tc.want {
				t.Fatalf("Select(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// A message matching several rules resolves to the earliest declared one.
func TestSelectPrecedence(t *testing.T) {
	got := Select("hello, tell me about your company")
	if got != GreetingResponse {
		t.Fatalf("expected greeting to win precedence, got %q", got)
	}
}

func TestSelectDeterministic(t *testing.T) {
	input := "please help me understand"
	first := Select(input)
	second := Select(input)
	if first != second {
		t.Fatalf("selector not deterministic: %q vs %q", first, second)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := Rules()
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	rules[0].Response = "tampered"
	if Select("hello") != GreetingResponse {
		t.Fatal("mutating the returned rules must not affect selection")
	}
}
