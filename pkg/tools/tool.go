// Package tools materializes the callable surface the agent sees: one tool
// per (capability, provider) pair available in a workspace, each with a JSON
// schema, a per-call timeout, and a bounded observation. Tool failures are
// never Go errors — they come back as ERROR: observations so the loop can
// keep going.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/vibemonitor/rca/pkg/masking"
	"github.com/vibemonitor/rca/pkg/providers"
)

// truncationMarker terminates observations that exceeded the size budget.
const truncationMarker = "…<truncated>"

// Tool is one named, schema-typed callable. The workspace is bound at build
// time; the LLM only ever supplies the input document.
type Tool struct {
	Name        string
	Description string

	capability providers.Capability
	provider   providers.Provider
	schema     *jsonschema.Schema
	rawSchema  string

	timeout  time.Duration
	obsLimit int
	masker   *masking.Masker
}

// Result is what one tool invocation produced. IsError marks observations
// the agent should treat as a failed step; the content still flows back into
// the transcript either way.
type Result struct {
	Content string
	IsError bool
}

// InputSchema returns the tool's JSON schema document, for the manifest
// shown to the LLM.
func (t *Tool) InputSchema() string { return t.rawSchema }

// Invoke validates raw LLM-provided input, dispatches to the provider with
// the per-call timeout, and bounds the observation.
func (t *Tool) Invoke(ctx context.Context, rawInput string) Result {
	if strings.TrimSpace(rawInput) == "" {
		rawInput = "{}"
	}

	var decoded any
	if err := json.Unmarshal([]byte(rawInput), &decoded); err != nil {
		return errResult("invalid arguments: input is not valid JSON")
	}
	if err := t.schema.Validate(decoded); err != nil {
		return errResult("invalid arguments: " + oneLine(err))
	}
	args, ok := decoded.(map[string]any)
	if !ok {
		return errResult("invalid arguments: input must be a JSON object")
	}

	callCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	out, err := t.provider.Invoke(callCtx, t.capability, providers.Args(args))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return errResult(fmt.Sprintf("timeout after %ds", int(t.timeout.Seconds())))
		}
		return errResult(oneLine(err))
	}
	// Mask before truncating so a secret straddling the cut cannot survive.
	return Result{Content: truncateObservation(t.masker.Mask(out), t.obsLimit)}
}

func errResult(reason string) Result {
	return Result{Content: "ERROR: " + reason, IsError: true}
}

// oneLine flattens an error into a single-line reason for the observation.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

// truncateObservation cuts the observation at the byte limit, backing up to
// a rune boundary so the output stays valid UTF-8.
func truncateObservation(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}
