// Package prompt renders the system and control prompts for the
// investigation loop.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vibemonitor/rca/pkg/tools"
)

const systemPersona = `You are an expert on-call Site Reliability Engineer investigating a production issue. You work systematically: form a hypothesis, gather evidence with the available tools, and revise until you can name a root cause or rule the leading suspects out.

Investigation rules:
- Only use tools from the AVAILABLE TOOLS list. Never invent a tool.
- Ground every claim in an observation. If the evidence is inconclusive, say so.
- Prefer recent error logs and recent code changes; correlate timestamps across sources.
- One tool call at a time. Each call should test a specific hypothesis.

Output rules for the final answer:
- Plain text, no markdown headers or tables.
- Service names in backticks, key findings in **bold**.
- Structure it as: what is going on, the root cause (or best current hypothesis with confidence), and recommended next steps as short bullets.`

const formatInstructions = `You must respond in the following format.

To call a tool:
Thought: [your reasoning about what to investigate next]
Action: [exact tool name from AVAILABLE TOOLS]
Action Input: [JSON object with the tool arguments]

To conclude:
Thought: [your final reasoning]
Final Answer: [your complete root cause analysis]

Rules:
- Start each section on a NEW LINE with the header followed by a colon.
- Action Input must be a single JSON object on one or more lines.
- Stop after Action Input. The system runs the tool and replies with "Observation: ...".
- Never write an Observation yourself.`

const forcedConclusionDirective = `The investigation budget is exhausted. You must now produce the final answer from the evidence gathered so far. Do not request any more tools. Respond with:
Thought: [your final reasoning]
Final Answer: [your complete root cause analysis, noting any gaps in the evidence]`

// System renders the full system prompt: persona, tool manifest, and the
// response format contract.
func System(set *tools.Set) string {
	var b strings.Builder
	b.WriteString(systemPersona)
	b.WriteString("\n\n## AVAILABLE TOOLS\n\n")
	b.WriteString(ToolManifest(set))
	b.WriteString("\n\n## RESPONSE FORMAT\n\n")
	b.WriteString(formatInstructions)
	return b.String()
}

// ForcedConclusion is the directive for the budget-exhaustion turn.
func ForcedConclusion() string { return forcedConclusionDirective }

// Observation wraps a tool result for the conversation history.
func Observation(content string) string {
	return "Observation: " + content
}

// ToolManifest renders the tool set as a numbered list with parameter
// summaries pulled from each tool's JSON schema.
func ToolManifest(set *tools.Set) string {
	all := set.All()
	if len(all) == 0 {
		return "No tools are available. Conclude from the problem description alone."
	}
	var b strings.Builder
	for i, t := range all {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, t.Name, t.Description)
		if params := schemaParameters(t.InputSchema()); params != "" {
			fmt.Fprintf(&b, "   Parameters: %s\n", params)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// schemaParameters flattens a JSON schema's top-level properties into
// "name (type, required): description" fragments.
func schemaParameters(rawSchema string) string {
	var schema struct {
		Properties map[string]struct {
			Type        string `json:"type"`
			Description string `json:"description"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	if err := json.Unmarshal([]byte(rawSchema), &schema); err != nil || len(schema.Properties) == 0 {
		return ""
	}

	required := map[string]bool{}
	for _, name := range schema.Required {
		required[name] = true
	}

	var parts []string
	for _, name := range sortedKeys(schema.Properties) {
		prop := schema.Properties[name]
		kind := prop.Type
		if kind == "" {
			kind = "any"
		}
		if required[name] {
			kind += ", required"
		}
		part := fmt.Sprintf("%s (%s)", name, kind)
		if prop.Description != "" {
			part += ": " + prop.Description
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
