// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "origin", Type: field.TypeEnum, Enums: []string{"web", "slack", "other"}, Default: "web"},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "external_channel_id", Type: field.TypeString, Nullable: true},
		{Name: "external_thread_ts", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1]},
			},
			{
				Name:    "chatsession_workspace_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[2]},
			},
			{
				Name:    "chatsession_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[7]},
			},
			{
				Name:    "chatsession_workspace_id_origin_external_channel_id_external_thread_ts",
				Unique:  true,
				Columns: []*schema.Column{ChatSessionsColumns[1], ChatSessionsColumns[3], ChatSessionsColumns[5], ChatSessionsColumns[6]},
				Annotation: &entsql.IndexAnnotation{
					Where: "origin = 'slack'",
				},
			},
		},
	}
	// ChatTurnsColumns holds the columns for the "chat_turns" table.
	ChatTurnsColumns = []*schema.Column{
		{Name: "turn_id", Type: field.TypeString, Unique: true},
		{Name: "user_message", Type: field.TypeString, Size: 2147483647},
		{Name: "final_response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ChatTurnsTable holds the schema information for the "chat_turns" table.
	ChatTurnsTable = &schema.Table{
		Name:       "chat_turns",
		Columns:    ChatTurnsColumns,
		PrimaryKey: []*schema.Column{ChatTurnsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_turns_chat_sessions_turns",
				Columns:    []*schema.Column{ChatTurnsColumns[7]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatturn_session_id",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnsColumns[7]},
			},
			{
				Name:    "chatturn_status",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnsColumns[3]},
			},
			{
				Name:    "chatturn_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnsColumns[7], ChatTurnsColumns[5]},
			},
		},
	}
	// IntegrationsColumns holds the columns for the "integrations" table.
	IntegrationsColumns = []*schema.Column{
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"grafana", "datadog", "cloudwatch", "newrelic", "github"}},
		{Name: "name", Type: field.TypeString},
		{Name: "encrypted_credentials", Type: field.TypeBytes},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "health_status", Type: field.TypeEnum, Enums: []string{"unknown", "healthy", "unhealthy"}, Default: "unknown"},
		{Name: "last_health_check_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntegrationsTable holds the schema information for the "integrations" table.
	IntegrationsTable = &schema.Table{
		Name:       "integrations",
		Columns:    IntegrationsColumns,
		PrimaryKey: []*schema.Column{IntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integration_workspace_id",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[1]},
			},
			{
				Name:    "integration_workspace_id_provider",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[1], IntegrationsColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"web", "slack", "other"}, Default: "web"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "running", "waiting_input", "completed", "failed"}, Default: "queued"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "retries", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "backoff_until", Type: field.TypeTime, Nullable: true},
		{Name: "requested_context", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "turn_id", Type: field.TypeString, Unique: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_chat_turns_job",
				Columns:    []*schema.Column{JobsColumns[16]},
				RefColumns: []*schema.Column{ChatTurnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[3]},
			},
			{
				Name:    "job_status_backoff_until",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
			{
				Name:    "job_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[13]},
			},
			{
				Name:    "job_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[4], JobsColumns[14]},
			},
		},
	}
	// LlmConfigsColumns holds the columns for the "llm_configs" table.
	LlmConfigsColumns = []*schema.Column{
		{Name: "llm_config_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeEnum, Enums: []string{"openai", "azure_openai", "gemini"}},
		{Name: "model", Type: field.TypeString},
		{Name: "encrypted_api_key", Type: field.TypeBytes},
		{Name: "base_url", Type: field.TypeString, Nullable: true},
		{Name: "api_version", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LlmConfigsTable holds the schema information for the "llm_configs" table.
	LlmConfigsTable = &schema.Table{
		Name:       "llm_configs",
		Columns:    LlmConfigsColumns,
		PrimaryKey: []*schema.Column{LlmConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmconfig_workspace_id",
				Unique:  true,
				Columns: []*schema.Column{LlmConfigsColumns[1]},
			},
		},
	}
	// QuotaCountersColumns holds the columns for the "quota_counters" table.
	QuotaCountersColumns = []*schema.Column{
		{Name: "quota_counter_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "resource", Type: field.TypeString},
		{Name: "window_key", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "limit_value", Type: field.TypeInt},
		{Name: "reset_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QuotaCountersTable holds the schema information for the "quota_counters" table.
	QuotaCountersTable = &schema.Table{
		Name:       "quota_counters",
		Columns:    QuotaCountersColumns,
		PrimaryKey: []*schema.Column{QuotaCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotacounter_workspace_id_resource_window_key",
				Unique:  true,
				Columns: []*schema.Column{QuotaCountersColumns[1], QuotaCountersColumns[2], QuotaCountersColumns[3]},
			},
		},
	}
	// SecurityEventsColumns holds the columns for the "security_events" table.
	SecurityEventsColumns = []*schema.Column{
		{Name: "security_event_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"prompt_injection", "guard_degraded"}},
		{Name: "message_preview", Type: field.TypeString, Size: 300},
		{Name: "detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SecurityEventsTable holds the schema information for the "security_events" table.
	SecurityEventsTable = &schema.Table{
		Name:       "security_events",
		Columns:    SecurityEventsColumns,
		PrimaryKey: []*schema.Column{SecurityEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "securityevent_workspace_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[1], SecurityEventsColumns[6]},
			},
			{
				Name:    "securityevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{SecurityEventsColumns[3]},
			},
		},
	}
	// TurnCommentsColumns holds the columns for the "turn_comments" table.
	TurnCommentsColumns = []*schema.Column{
		{Name: "comment_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "turn_id", Type: field.TypeString},
	}
	// TurnCommentsTable holds the schema information for the "turn_comments" table.
	TurnCommentsTable = &schema.Table{
		Name:       "turn_comments",
		Columns:    TurnCommentsColumns,
		PrimaryKey: []*schema.Column{TurnCommentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "turn_comments_chat_turns_comments",
				Columns:    []*schema.Column{TurnCommentsColumns[4]},
				RefColumns: []*schema.Column{ChatTurnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "turncomment_turn_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TurnCommentsColumns[4], TurnCommentsColumns[3]},
			},
		},
	}
	// TurnFeedbacksColumns holds the columns for the "turn_feedbacks" table.
	TurnFeedbacksColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "turn_id", Type: field.TypeString},
	}
	// TurnFeedbacksTable holds the schema information for the "turn_feedbacks" table.
	TurnFeedbacksTable = &schema.Table{
		Name:       "turn_feedbacks",
		Columns:    TurnFeedbacksColumns,
		PrimaryKey: []*schema.Column{TurnFeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "turn_feedbacks_chat_turns_feedback",
				Columns:    []*schema.Column{TurnFeedbacksColumns[5]},
				RefColumns: []*schema.Column{ChatTurnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "turnfeedback_turn_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TurnFeedbacksColumns[5], TurnFeedbacksColumns[1]},
			},
		},
	}
	// TurnStepsColumns holds the columns for the "turn_steps" table.
	TurnStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "step_type", Type: field.TypeEnum, Enums: []string{"status", "tool_call", "thinking"}},
		{Name: "tool_name", Type: field.TypeString, Nullable: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "step_status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed"}, Default: "pending"},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "turn_id", Type: field.TypeString},
	}
	// TurnStepsTable holds the schema information for the "turn_steps" table.
	TurnStepsTable = &schema.Table{
		Name:       "turn_steps",
		Columns:    TurnStepsColumns,
		PrimaryKey: []*schema.Column{TurnStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "turn_steps_chat_turns_steps",
				Columns:    []*schema.Column{TurnStepsColumns[7]},
				RefColumns: []*schema.Column{ChatTurnsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "turnstep_turn_id",
				Unique:  false,
				Columns: []*schema.Column{TurnStepsColumns[7]},
			},
			{
				Name:    "turnstep_turn_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{TurnStepsColumns[7], TurnStepsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatSessionsTable,
		ChatTurnsTable,
		IntegrationsTable,
		JobsTable,
		LlmConfigsTable,
		QuotaCountersTable,
		SecurityEventsTable,
		TurnCommentsTable,
		TurnFeedbacksTable,
		TurnStepsTable,
	}
)

func init() {
	ChatTurnsTable.ForeignKeys[0].RefTable = ChatSessionsTable
	JobsTable.ForeignKeys[0].RefTable = ChatTurnsTable
	TurnCommentsTable.ForeignKeys[0].RefTable = ChatTurnsTable
	TurnFeedbacksTable.ForeignKeys[0].RefTable = ChatTurnsTable
	TurnStepsTable.ForeignKeys[0].RefTable = ChatTurnsTable
}
