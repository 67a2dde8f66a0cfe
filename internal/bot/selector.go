// Package bot chooses a canned reply for a user utterance by ordered
// keyword matching. The selector is pure and total: every input maps to
// exactly one of a fixed set of responses.
package bot

import "strings"

// Rule pairs trigger substrings with the response they select.
type Rule struct {
	Triggers []string
	Response string
}

// Canned responses. The greeting wording is part of the product copy and
// mirrored by the frontend.
const (
	GreetingResponse   = "Hello! How can I help you today?"
	IdentityResponse   = "I'm Chatter, the Chatterbox virtual assistant. Nice to meet you!"
	CompanyResponse    = "Chatterbox is a small team building friendly messaging tools for everyone."
	CapabilityResponse = "I can answer questions about Chatterbox, our team, and how to get started. Just ask!"
	FallbackResponse   = "I'm not sure about that yet, but feel free to ask me anything else!"
)

// replyRules are evaluated in order and the first match wins. A message
// containing both "hello" and "about" therefore resolves to the greeting;
// the precedence is deliberate and covered by tests.
var replyRules = []Rule{
	{Triggers: []string{"hello", "hi"}, Response: GreetingResponse},
	{Triggers: []string{"who are you", "your name"}, Response: IdentityResponse},
	{Triggers: []string{"about"}, Response: CompanyResponse},
	{Triggers: []string{"help"}, Response: CapabilityResponse},
}

// Rules returns a copy of the ordered rule table.
func Rules() []Rule {
	out := make([]Rule, len(replyRules))
	copy(out, replyRules)
	return out
}

// Select maps an utterance to its canned reply. Matching is
// case-insensitive substring containment against each rule's triggers.
func Select(input string) string {
	normalized := strings.ToLower(input)
	for _, rule := range replyRules {
		for _, trigger := range rule.Triggers {
			if strings.Contains(normalized, trigger) {
				return rule.Response
			}
		}
	}
	return FallbackResponse
}
