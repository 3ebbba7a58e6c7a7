// Package assistant implements the keyword-triggered auto-reply engine
// behind the care team chat. A policy is an ordered list of rules; the
// first rule whose keywords match the incoming message wins, and every
// policy ends with a catch-all fallback so a reply is always produced.
package assistant

import "strings"

// Rule pairs trigger keywords with a canned reply. A rule with no
// keywords matches everything and acts as the policy fallback.
type Rule struct {
	Keywords []string
	Reply    string
}

// Policy is an ordered rule set. Earlier rules take precedence.
type Policy struct {
	Name  string
	Rules []Rule
}

// Reply returns the canned response for content. Matching is
// case-insensitive substring search, first rule wins.
func (p Policy) Reply(content string) string {
	lower := strings.ToLower(content)
	for _, rule := range p.Rules {
		if len(rule.Keywords) == 0 {
			return rule.Reply
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Reply
			}
		}
	}
	return ""
}

// DashboardPolicy is the rule set used by the patient-detail chat panel.
func DashboardPolicy() Policy {
	return Policy{
		Name: "dashboard",
		Rules: []Rule{
			{
				Keywords: []string{"oxygen", "o2"},
				Reply:    "The latest oxygen saturation readings for this patient are within normal range (95-98%).",
			},
			{
				Keywords: []string{"medication", "medicine", "med"},
				Reply:    "The patient's medication adherence is at 92%. Their next dosage is scheduled in 2 hours.",
			},
			{
				Keywords: []string{"vital", "bp", "blood pressure"},
				Reply:    "The patient's vitals are stable. Blood pressure: 128/85, Heart rate: 72 bpm, Temperature: 37.1°C.",
			},
			{
				Keywords: []string{"appointment", "schedule"},
				Reply:    "The patient has an upcoming appointment on Friday at 2:30 PM with Dr. Roberts.",
			},
			{
				Reply: "I'm here to help! Is there anything specific about the patient's care that you would like to know?",
			},
		},
	}
}

// MessagingPolicy is the rule set used by the ward messaging page. It
// only knows conversational phrases; clinical questions get the
// fallback.
func MessagingPolicy() Policy {
	return Policy{
		Name: "messaging",
		Rules: []Rule{
			{
				Keywords: []string{"hello", "hi"},
				Reply:    "Hello! How can I assist you today?",
			},
			{
				Keywords: []string{"help"},
				Reply:    "I'm here to help. You can ask me about patient information, reminders, or health data.",
			},
			{
				Keywords: []string{"thank"},
				Reply:    "You're welcome! Is there anything else you need?",
			},
			{
				Reply: "I understand. Is there anything specific you would like to know about your patients or reminders?",
			},
		},
	}
}

// ByName returns the named policy, defaulting to the dashboard rules
// when the name is unknown.
func ByName(name string) Policy {
	if name == "messaging" {
		return MessagingPolicy()
	}
	return DashboardPolicy()
}
