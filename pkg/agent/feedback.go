package agent

import "strings"

const formatReminder = `Required format:
Thought: [your reasoning about what to investigate next]
Action: [exact tool name from the available tools]
Action Input: [JSON object with the tool arguments]

Or, when you have enough evidence to conclude:
Thought: [your final reasoning]
Final Answer: [your complete root cause analysis]

Rules:
- Start each section on a NEW LINE with the header followed by a colon.
- Stop after Action Input. The system runs the tool and replies with an Observation.
- Never write the Observation yourself.`

// FormatFeedback builds the corrective message sent back to the model
// after a malformed reply, naming what was missing.
func FormatFeedback(p *ParsedResponse) string {
	var problem string
	switch {
	case p.Thought == "":
		problem = "FORMAT ERROR: your response did not contain any recognized section. Begin with \"Thought:\"."
	case p.Action != "":
		problem = "FORMAT ERROR: you named an Action but gave no \"Action Input:\" section."
	default:
		problem = "FORMAT ERROR: after your Thought you must either call a tool with \"Action:\" and \"Action Input:\" or conclude with \"Final Answer:\"."
	}
	return problem + "\n\n" + formatReminder
}

// ForcedAnswer extracts the best available conclusion from a reply to the
// forced-conclusion prompt. The model is asked for a Final Answer, but
// under budget pressure we accept a bare Thought or the raw text rather
// than fail the turn.
func ForcedAnswer(text string) string {
	p := ParseResponse(text)
	if p.IsFinalAnswer {
		return p.FinalAnswer
	}
	if p.Thought != "" {
		return p.Thought
	}
	return strings.TrimSpace(text)
}
