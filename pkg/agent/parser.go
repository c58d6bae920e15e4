package agent

import (
	"regexp"
	"strings"
)

// ParsedResponse is one LLM reply decomposed into ReAct sections.
type ParsedResponse struct {
	// Thought is the reasoning text before an action or final answer.
	Thought string

	// Action fields, populated when the model wants a tool call.
	HasAction   bool
	Action      string
	ActionInput string

	// Final answer, populated when the model concludes.
	IsFinalAnswer bool
	FinalAnswer   string

	// IsMalformed marks a reply with no usable action or final answer.
	IsMalformed bool
}

var (
	// Section headers appearing mid-line after a sentence boundary. Models
	// sometimes run "…is degraded. Final Answer: …" together on one line.
	midlineFinalAnswer = regexp.MustCompile("[.!?][`\\s*]*Final Answer:")
	midlineAction      = regexp.MustCompile("[.!?][`\\s*]*Action:")

	// Tool names are dot-joined capability + provider, e.g.
	// logs.search.grafana or code.list_commits.github.
	toolNamePattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)+$`)

	recoverActionHeader = regexp.MustCompile(`(?i)\bAction:`)
	recoverActionInput  = regexp.MustCompile(`(?i)Action Input:`)
)

// ParseResponse parses LLM text into ReAct sections. The parser is
// forgiving: it accepts headers mid-line after a sentence boundary,
// recovers a missing Action header from the text before Action Input, and
// stops at hallucinated Observation lines. When both an action and a final
// answer are present the action wins — a real final answer is terminal, so
// anything following it means the model was not done.
func ParseResponse(text string) *ParsedResponse {
	sections := splitSections(text)

	thought := sections["thought"]
	action := strings.TrimSpace(sections["action"])
	input, hasInput := sections["action_input"]

	if action != "" && hasInput {
		return &ParsedResponse{
			Thought:     thought,
			HasAction:   true,
			Action:      action,
			ActionInput: input,
		}
	}

	if answer := strings.TrimSpace(sections["final_answer"]); answer != "" {
		return &ParsedResponse{
			Thought:       thought,
			IsFinalAnswer: true,
			FinalAnswer:   answer,
		}
	}

	// Keep a dangling action (one with no input) visible so feedback can
	// name the specific omission.
	return &ParsedResponse{Thought: thought, Action: action, IsMalformed: true}
}

// splitSections runs a line-oriented state machine over the reply,
// accumulating content under the most recent section header.
func splitSections(text string) map[string]string {
	lines := explodeMidlineFinalAnswer(strings.Split(strings.TrimSpace(text), "\n"))

	parsed := map[string]string{}
	seenFinal := false
	var current string
	var content []string

	flush := func() {
		if current == "" {
			return
		}
		joined := strings.TrimSpace(strings.Join(content, "\n"))
		if joined != "" || parsed[current] == "" {
			parsed[current] = joined
		}
		content = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		// The model must stop after Action Input; an Observation line
		// means it hallucinated the tool result.
		if strings.HasPrefix(line, "Observation:") {
			break
		}

		switch {
		case strings.HasPrefix(line, "Final Answer:") && !seenFinal:
			flush()
			current, content = "final_answer", []string{afterHeader(line, "Final Answer:")}
			seenFinal = true

		case strings.HasPrefix(line, "Thought:") || line == "Thought":
			flush()
			current, content = "thought", nil
			if body := afterHeader(line, "Thought:"); body != "" {
				content = append(content, body)
			}

		case strings.HasPrefix(line, "Action Input:"):
			flush()
			current, content = "action_input", []string{afterHeader(line, "Action Input:")}

		case strings.HasPrefix(line, "Action:"),
			strings.Contains(line, "Action:") && !strings.Contains(line, "Action Input:") && midlineAction.MatchString(line):
			flush()
			current, content = "action", []string{afterHeader(line, "Action:")}

		default:
			if current != "" {
				content = append(content, raw)
			}
		}
	}
	flush()

	// Recovery: Action Input without Action — look backwards for a line
	// that is a plausible tool name.
	if _, ok := parsed["action_input"]; ok && parsed["action"] == "" {
		if name := recoverAction(text); name != "" {
			parsed["action"] = name
		}
	}
	if input, ok := parsed["action_input"]; ok {
		parsed["action_input"] = strings.Trim(input, "`")
	}
	return parsed
}

// explodeMidlineFinalAnswer splits any line carrying "Final Answer:" after
// a sentence boundary into two lines, so the state machine only ever sees
// the header at the start of a line.
func explodeMidlineFinalAnswer(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Final Answer:") {
			out = append(out, line)
			continue
		}
		loc := midlineFinalAnswer.FindStringIndex(line)
		if loc == nil {
			out = append(out, line)
			continue
		}
		header := loc[0] + strings.Index(line[loc[0]:], "Final Answer:")
		out = append(out, line[:loc[0]+1], line[header:])
	}
	return out
}

func afterHeader(line, header string) string {
	idx := strings.Index(line, header)
	if idx == -1 {
		return ""
	}
	return strings.TrimSpace(line[idx+len(header):])
}

// recoverAction searches the text before "Action Input:" for a trailing
// tool name, covering replies like "Action\nlogs.search.grafana".
func recoverAction(text string) string {
	loc := recoverActionInput.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	before := text[:loc[0]]

	if matches := recoverActionHeader.FindAllStringIndex(before, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		if candidate := firstLine(before[last[1]:]); toolNamePattern.MatchString(candidate) {
			return candidate
		}
	}

	// Fall back to the last non-empty line before Action Input.
	for _, candidate := range lastLines(before) {
		if toolNamePattern.MatchString(candidate) {
			return candidate
		}
		break
	}
	return ""
}

func firstLine(s string) string {
	return strings.TrimSpace(strings.SplitN(strings.TrimSpace(s), "\n", 2)[0])
}

func lastLines(s string) []string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var out []string
	for i := len(lines) - 1; i >= 0; i-- {
		if trimmed := strings.TrimSpace(lines[i]); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
