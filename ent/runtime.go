// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vibemonitor/rca/ent/chatsession"
	"github.com/vibemonitor/rca/ent/chatturn"
	"github.com/vibemonitor/rca/ent/integration"
	"github.com/vibemonitor/rca/ent/job"
	"github.com/vibemonitor/rca/ent/llmconfig"
	"github.com/vibemonitor/rca/ent/quotacounter"
	"github.com/vibemonitor/rca/ent/schema"
	"github.com/vibemonitor/rca/ent/securityevent"
	"github.com/vibemonitor/rca/ent/turncomment"
	"github.com/vibemonitor/rca/ent/turnfeedback"
	"github.com/vibemonitor/rca/ent/turnstep"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[7].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[8].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatturnFields := schema.ChatTurn{}.Fields()
	_ = chatturnFields
	// chatturnDescCreatedAt is the schema descriptor for created_at field.
	chatturnDescCreatedAt := chatturnFields[6].Descriptor()
	// chatturn.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatturn.DefaultCreatedAt = chatturnDescCreatedAt.Default.(func() time.Time)
	// chatturnDescUpdatedAt is the schema descriptor for updated_at field.
	chatturnDescUpdatedAt := chatturnFields[7].Descriptor()
	// chatturn.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatturn.DefaultUpdatedAt = chatturnDescUpdatedAt.Default.(func() time.Time)
	// chatturn.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatturn.UpdateDefaultUpdatedAt = chatturnDescUpdatedAt.UpdateDefault.(func() time.Time)
	integrationFields := schema.Integration{}.Fields()
	_ = integrationFields
	// integrationDescEnabled is the schema descriptor for enabled field.
	integrationDescEnabled := integrationFields[6].Descriptor()
	// integration.DefaultEnabled holds the default value on creation for the enabled field.
	integration.DefaultEnabled = integrationDescEnabled.Default.(bool)
	// integrationDescCreatedAt is the schema descriptor for created_at field.
	integrationDescCreatedAt := integrationFields[9].Descriptor()
	// integration.DefaultCreatedAt holds the default value on creation for the created_at field.
	integration.DefaultCreatedAt = integrationDescCreatedAt.Default.(func() time.Time)
	// integrationDescUpdatedAt is the schema descriptor for updated_at field.
	integrationDescUpdatedAt := integrationFields[10].Descriptor()
	// integration.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	integration.DefaultUpdatedAt = integrationDescUpdatedAt.Default.(func() time.Time)
	// integration.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	integration.UpdateDefaultUpdatedAt = integrationDescUpdatedAt.UpdateDefault.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[5].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescRetries is the schema descriptor for retries field.
	jobDescRetries := jobFields[6].Descriptor()
	// job.DefaultRetries holds the default value on creation for the retries field.
	job.DefaultRetries = jobDescRetries.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[7].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[15].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[16].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmconfigFields := schema.LLMConfig{}.Fields()
	_ = llmconfigFields
	// llmconfigDescEnabled is the schema descriptor for enabled field.
	llmconfigDescEnabled := llmconfigFields[7].Descriptor()
	// llmconfig.DefaultEnabled holds the default value on creation for the enabled field.
	llmconfig.DefaultEnabled = llmconfigDescEnabled.Default.(bool)
	// llmconfigDescCreatedAt is the schema descriptor for created_at field.
	llmconfigDescCreatedAt := llmconfigFields[8].Descriptor()
	// llmconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	llmconfig.DefaultCreatedAt = llmconfigDescCreatedAt.Default.(func() time.Time)
	// llmconfigDescUpdatedAt is the schema descriptor for updated_at field.
	llmconfigDescUpdatedAt := llmconfigFields[9].Descriptor()
	// llmconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	llmconfig.DefaultUpdatedAt = llmconfigDescUpdatedAt.Default.(func() time.Time)
	// llmconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	llmconfig.UpdateDefaultUpdatedAt = llmconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	quotacounterFields := schema.QuotaCounter{}.Fields()
	_ = quotacounterFields
	// quotacounterDescCount is the schema descriptor for count field.
	quotacounterDescCount := quotacounterFields[4].Descriptor()
	// quotacounter.DefaultCount holds the default value on creation for the count field.
	quotacounter.DefaultCount = quotacounterDescCount.Default.(int)
	// quotacounterDescCreatedAt is the schema descriptor for created_at field.
	quotacounterDescCreatedAt := quotacounterFields[7].Descriptor()
	// quotacounter.DefaultCreatedAt holds the default value on creation for the created_at field.
	quotacounter.DefaultCreatedAt = quotacounterDescCreatedAt.Default.(func() time.Time)
	// quotacounterDescUpdatedAt is the schema descriptor for updated_at field.
	quotacounterDescUpdatedAt := quotacounterFields[8].Descriptor()
	// quotacounter.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quotacounter.DefaultUpdatedAt = quotacounterDescUpdatedAt.Default.(func() time.Time)
	// quotacounter.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quotacounter.UpdateDefaultUpdatedAt = quotacounterDescUpdatedAt.UpdateDefault.(func() time.Time)
	securityeventFields := schema.SecurityEvent{}.Fields()
	_ = securityeventFields
	// securityeventDescMessagePreview is the schema descriptor for message_preview field.
	securityeventDescMessagePreview := securityeventFields[4].Descriptor()
	// securityevent.MessagePreviewValidator is a validator for the "message_preview" field. It is called by the builders before save.
	securityevent.MessagePreviewValidator = securityeventDescMessagePreview.Validators[0].(func(string) error)
	// securityeventDescCreatedAt is the schema descriptor for created_at field.
	securityeventDescCreatedAt := securityeventFields[6].Descriptor()
	// securityevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	securityevent.DefaultCreatedAt = securityeventDescCreatedAt.Default.(func() time.Time)
	turncommentFields := schema.TurnComment{}.Fields()
	_ = turncommentFields
	// turncommentDescBody is the schema descriptor for body field.
	turncommentDescBody := turncommentFields[3].Descriptor()
	// turncomment.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	turncomment.BodyValidator = turncommentDescBody.Validators[0].(func(string) error)
	// turncommentDescCreatedAt is the schema descriptor for created_at field.
	turncommentDescCreatedAt := turncommentFields[4].Descriptor()
	// turncomment.DefaultCreatedAt holds the default value on creation for the created_at field.
	turncomment.DefaultCreatedAt = turncommentDescCreatedAt.Default.(func() time.Time)
	turnfeedbackFields := schema.TurnFeedback{}.Fields()
	_ = turnfeedbackFields
	// turnfeedbackDescCreatedAt is the schema descriptor for created_at field.
	turnfeedbackDescCreatedAt := turnfeedbackFields[4].Descriptor()
	// turnfeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	turnfeedback.DefaultCreatedAt = turnfeedbackDescCreatedAt.Default.(func() time.Time)
	// turnfeedbackDescUpdatedAt is the schema descriptor for updated_at field.
	turnfeedbackDescUpdatedAt := turnfeedbackFields[5].Descriptor()
	// turnfeedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	turnfeedback.DefaultUpdatedAt = turnfeedbackDescUpdatedAt.Default.(func() time.Time)
	// turnfeedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	turnfeedback.UpdateDefaultUpdatedAt = turnfeedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	turnstepFields := schema.TurnStep{}.Fields()
	_ = turnstepFields
	// turnstepDescCreatedAt is the schema descriptor for created_at field.
	turnstepDescCreatedAt := turnstepFields[7].Descriptor()
	// turnstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	turnstep.DefaultCreatedAt = turnstepDescCreatedAt.Default.(func() time.Time)
}
