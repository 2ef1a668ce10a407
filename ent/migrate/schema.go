// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActivitiesColumns holds the columns for the "activities" table.
	ActivitiesColumns = []*schema.Column{
		{Name: "activity_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "activity_type", Type: field.TypeEnum, Enums: []string{"area", "business", "direction", "project", "initiative", "task", "milestone", "habit", "learning", "event_series"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "idea", "active", "paused", "completed", "cancelled", "archived"}, Default: "draft"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "materialized_path", Type: field.TypeString, Default: ""},
		{Name: "owner_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "client_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "source_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "starts_at", Type: field.TypeTime, Nullable: true},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "confirmation_count", Type: field.TypeInt, Default: 0},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ActivitiesTable holds the schema information for the "activities" table.
	ActivitiesTable = &schema.Table{
		Name:       "activities",
		Columns:    ActivitiesColumns,
		PrimaryKey: []*schema.Column{ActivitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activity_parent_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[6]},
			},
			{
				Name:    "activity_activity_type_status",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[2], ActivitiesColumns[3]},
			},
			{
				Name:    "activity_owner_entity_id",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[9]},
			},
			{
				Name:    "activity_materialized_path",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[8]},
			},
			{
				Name:    "activity_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ActivitiesColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// ActivityClosuresColumns holds the columns for the "activity_closures" table.
	ActivityClosuresColumns = []*schema.Column{
		{Name: "closure_id", Type: field.TypeString, Unique: true},
		{Name: "ancestor_id", Type: field.TypeString},
		{Name: "descendant_id", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt},
	}
	// ActivityClosuresTable holds the schema information for the "activity_closures" table.
	ActivityClosuresTable = &schema.Table{
		Name:       "activity_closures",
		Columns:    ActivityClosuresColumns,
		PrimaryKey: []*schema.Column{ActivityClosuresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityclosure_ancestor_id_descendant_id",
				Unique:  true,
				Columns: []*schema.Column{ActivityClosuresColumns[1], ActivityClosuresColumns[2]},
			},
			{
				Name:    "activityclosure_descendant_id",
				Unique:  false,
				Columns: []*schema.Column{ActivityClosuresColumns[2]},
			},
		},
	}
	// CommitmentsColumns holds the columns for the "commitments" table.
	CommitmentsColumns = []*schema.Column{
		{Name: "commitment_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"promise", "request", "agreement", "deadline", "reminder", "recurring"}, Default: "promise"},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending", "in_progress", "completed", "cancelled", "overdue", "deferred"}, Default: "draft"},
		{Name: "from_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "to_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "activity_id", Type: field.TypeString, Nullable: true},
		{Name: "source_message_id", Type: field.TypeString, Nullable: true},
		{Name: "source_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "recurrence_rule", Type: field.TypeString, Nullable: true},
		{Name: "next_reminder_at", Type: field.TypeTime, Nullable: true},
		{Name: "reminder_count", Type: field.TypeInt, Default: 0},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "confirmation_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// CommitmentsTable holds the schema information for the "commitments" table.
	CommitmentsTable = &schema.Table{
		Name:       "commitments",
		Columns:    CommitmentsColumns,
		PrimaryKey: []*schema.Column{CommitmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "commitment_status",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[4]},
			},
			{
				Name:    "commitment_from_entity_id",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[5]},
			},
			{
				Name:    "commitment_to_entity_id",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[6]},
			},
			{
				Name:    "commitment_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[4], CommitmentsColumns[10]},
			},
			{
				Name:    "commitment_next_reminder_at",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "next_reminder_at IS NOT NULL AND deleted_at IS NULL",
				},
			},
			{
				Name:    "commitment_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{CommitmentsColumns[21]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// DataQualityReportsColumns holds the columns for the "data_quality_reports" table.
	DataQualityReportsColumns = []*schema.Column{
		{Name: "report_id", Type: field.TypeString, Unique: true},
		{Name: "triggered_by", Type: field.TypeEnum, Enums: []string{"schedule", "manual"}, Default: "schedule"},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "resolutions", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DataQualityReportsTable holds the schema information for the "data_quality_reports" table.
	DataQualityReportsTable = &schema.Table{
		Name:       "data_quality_reports",
		Columns:    DataQualityReportsColumns,
		PrimaryKey: []*schema.Column{DataQualityReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "dataqualityreport_created_at",
				Unique:  false,
				Columns: []*schema.Column{DataQualityReportsColumns[5]},
			},
		},
	}
	// EmbeddingJobsColumns holds the columns for the "embedding_jobs" table.
	EmbeddingJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "target_kind", Type: field.TypeEnum, Enums: []string{"message", "fact", "activity", "commitment", "segment", "summary"}},
		{Name: "target_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_attempt_at", Type: field.TypeTime},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// EmbeddingJobsTable holds the schema information for the "embedding_jobs" table.
	EmbeddingJobsTable = &schema.Table{
		Name:       "embedding_jobs",
		Columns:    EmbeddingJobsColumns,
		PrimaryKey: []*schema.Column{EmbeddingJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "embeddingjob_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{EmbeddingJobsColumns[3], EmbeddingJobsColumns[5]},
			},
			{
				Name:    "embeddingjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{EmbeddingJobsColumns[3], EmbeddingJobsColumns[9]},
			},
			{
				Name:    "embeddingjob_target_kind_target_id",
				Unique:  false,
				Columns: []*schema.Column{EmbeddingJobsColumns[1], EmbeddingJobsColumns[2]},
			},
		},
	}
	// EntitiesColumns holds the columns for the "entities" table.
	EntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"person", "organization"}},
		{Name: "name", Type: field.TypeString},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_owner", Type: field.TypeBool, Default: false},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "creation_source", Type: field.TypeEnum, Enums: []string{"manual", "extracted", "imported"}, Default: "manual"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "organization_id", Type: field.TypeString, Nullable: true},
	}
	// EntitiesTable holds the schema information for the "entities" table.
	EntitiesTable = &schema.Table{
		Name:       "entities",
		Columns:    EntitiesColumns,
		PrimaryKey: []*schema.Column{EntitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entities_entities_members",
				Columns:    []*schema.Column{EntitiesColumns[10]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entity_type",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[1]},
			},
			{
				Name:    "entity_name",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[2]},
			},
			{
				Name:    "entity_type_name",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[1], EntitiesColumns[2]},
			},
			{
				Name:    "entity_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[8]},
			},
			{
				Name:    "entity_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{EntitiesColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EntityFactsColumns holds the columns for the "entity_facts" table.
	EntityFactsColumns = []*schema.Column{
		{Name: "fact_id", Type: field.TypeString, Unique: true},
		{Name: "fact_type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Nullable: true},
		{Name: "value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "value_date", Type: field.TypeTime, Nullable: true},
		{Name: "value_json", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"manual", "extracted", "imported", "inferred"}, Default: "manual"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 1},
		{Name: "source_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "source_message_id", Type: field.TypeString, Nullable: true},
		{Name: "valid_from", Type: field.TypeTime, Nullable: true},
		{Name: "valid_until", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active"}, Default: "draft"},
		{Name: "rank", Type: field.TypeEnum, Enums: []string{"preferred", "normal", "deprecated"}, Default: "normal"},
		{Name: "superseded_by", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "review_reason", Type: field.TypeString, Nullable: true},
		{Name: "confirmation_count", Type: field.TypeInt, Default: 0},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "entity_id", Type: field.TypeString},
	}
	// EntityFactsTable holds the schema information for the "entity_facts" table.
	EntityFactsTable = &schema.Table{
		Name:       "entity_facts",
		Columns:    EntityFactsColumns,
		PrimaryKey: []*schema.Column{EntityFactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_facts_entities_facts",
				Columns:    []*schema.Column{EntityFactsColumns[23]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityfact_entity_id_fact_type",
				Unique:  false,
				Columns: []*schema.Column{EntityFactsColumns[23], EntityFactsColumns[1]},
			},
			{
				Name:    "entityfact_status",
				Unique:  false,
				Columns: []*schema.Column{EntityFactsColumns[12]},
			},
			{
				Name:    "entityfact_fact_type",
				Unique:  false,
				Columns: []*schema.Column{EntityFactsColumns[1]},
			},
			{
				Name:    "entityfact_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{EntityFactsColumns[22]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// EntityIdentifiersColumns holds the columns for the "entity_identifiers" table.
	EntityIdentifiersColumns = []*schema.Column{
		{Name: "identifier_id", Type: field.TypeString, Unique: true},
		{Name: "identifier_type", Type: field.TypeString},
		{Name: "identifier_value", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "entity_id", Type: field.TypeString},
	}
	// EntityIdentifiersTable holds the schema information for the "entity_identifiers" table.
	EntityIdentifiersTable = &schema.Table{
		Name:       "entity_identifiers",
		Columns:    EntityIdentifiersColumns,
		PrimaryKey: []*schema.Column{EntityIdentifiersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "entity_identifiers_entities_identifiers",
				Columns:    []*schema.Column{EntityIdentifiersColumns[5]},
				RefColumns: []*schema.Column{EntitiesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "entityidentifier_identifier_type_identifier_value",
				Unique:  true,
				Columns: []*schema.Column{EntityIdentifiersColumns[1], EntityIdentifiersColumns[2]},
			},
			{
				Name:    "entityidentifier_entity_id",
				Unique:  false,
				Columns: []*schema.Column{EntityIdentifiersColumns[5]},
			},
		},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"telegram_session", "phone_call", "video_meeting"}},
		{Name: "source", Type: field.TypeString},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "archived"}, Default: "active"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_message_at", Type: field.TypeTime},
		{Name: "needs_resegmentation", Type: field.TypeBool, Default: false},
		{Name: "source_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_source_chat_id_topic_id_status",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[2], InteractionsColumns[3], InteractionsColumns[4], InteractionsColumns[5]},
			},
			{
				Name:    "interaction_status",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[5]},
			},
			{
				Name:    "interaction_started_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[6]},
			},
			{
				Name:    "interaction_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[8]},
			},
		},
	}
	// InteractionParticipantsColumns holds the columns for the "interaction_participants" table.
	InteractionParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"initiator", "recipient", "participant", "self"}, Default: "participant"},
		{Name: "identifier_type", Type: field.TypeString},
		{Name: "identifier_value", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString},
	}
	// InteractionParticipantsTable holds the schema information for the "interaction_participants" table.
	InteractionParticipantsTable = &schema.Table{
		Name:       "interaction_participants",
		Columns:    InteractionParticipantsColumns,
		PrimaryKey: []*schema.Column{InteractionParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interaction_participants_interactions_participants",
				Columns:    []*schema.Column{InteractionParticipantsColumns[7]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interactionparticipant_interaction_id_identifier_type_identifier_value",
				Unique:  true,
				Columns: []*schema.Column{InteractionParticipantsColumns[7], InteractionParticipantsColumns[3], InteractionParticipantsColumns[4]},
			},
			{
				Name:    "interactionparticipant_entity_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionParticipantsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "recipient_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "sender_identifier_type", Type: field.TypeString},
		{Name: "sender_identifier_value", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "is_outgoing", Type: field.TypeBool, Default: false},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "source_message_id", Type: field.TypeString, Nullable: true},
		{Name: "reply_to_message_id", Type: field.TypeString, Nullable: true},
		{Name: "media_type", Type: field.TypeString, Nullable: true},
		{Name: "media_url", Type: field.TypeString, Nullable: true},
		{Name: "chat_type", Type: field.TypeString, Nullable: true},
		{Name: "topic_id", Type: field.TypeString, Nullable: true},
		{Name: "extraction_status", Type: field.TypeEnum, Enums: []string{"unprocessed", "pending", "processed", "failed"}, Default: "unprocessed"},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_interactions_messages",
				Columns:    []*schema.Column{MessagesColumns[17]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_interaction_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[17], MessagesColumns[7]},
			},
			{
				Name:    "message_sender_entity_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
			{
				Name:    "message_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[14]},
			},
		},
	}
	// PendingApprovalsColumns holds the columns for the "pending_approvals" table.
	PendingApprovalsColumns = []*schema.Column{
		{Name: "approval_id", Type: field.TypeString, Unique: true},
		{Name: "item_type", Type: field.TypeEnum, Enums: []string{"fact", "project", "task", "commitment"}},
		{Name: "target_id", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "source_quote", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source_interaction_id", Type: field.TypeString, Nullable: true},
		{Name: "source_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
	}
	// PendingApprovalsTable holds the schema information for the "pending_approvals" table.
	PendingApprovalsTable = &schema.Table{
		Name:       "pending_approvals",
		Columns:    PendingApprovalsColumns,
		PrimaryKey: []*schema.Column{PendingApprovalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingapproval_batch_id_status",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[3], PendingApprovalsColumns[4]},
			},
			{
				Name:    "pendingapproval_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[4], PendingApprovalsColumns[10]},
			},
			{
				Name:    "pendingapproval_item_type_target_id",
				Unique:  false,
				Columns: []*schema.Column{PendingApprovalsColumns[1], PendingApprovalsColumns[2]},
			},
		},
	}
	// PendingEntityResolutionsColumns holds the columns for the "pending_entity_resolutions" table.
	PendingEntityResolutionsColumns = []*schema.Column{
		{Name: "resolution_id", Type: field.TypeString, Unique: true},
		{Name: "identifier_type", Type: field.TypeString},
		{Name: "identifier_value", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "resolved", "merged"}, Default: "pending"},
		{Name: "resolution", Type: field.TypeEnum, Nullable: true, Enums: []string{"manual", "auto"}},
		{Name: "resolved_entity_id", Type: field.TypeString, Nullable: true},
		{Name: "suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "sample_message_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "first_seen_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
	}
	// PendingEntityResolutionsTable holds the schema information for the "pending_entity_resolutions" table.
	PendingEntityResolutionsTable = &schema.Table{
		Name:       "pending_entity_resolutions",
		Columns:    PendingEntityResolutionsColumns,
		PrimaryKey: []*schema.Column{PendingEntityResolutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pendingentityresolution_identifier_type_identifier_value",
				Unique:  true,
				Columns: []*schema.Column{PendingEntityResolutionsColumns[1], PendingEntityResolutionsColumns[2]},
			},
			{
				Name:    "pendingentityresolution_status",
				Unique:  false,
				Columns: []*schema.Column{PendingEntityResolutionsColumns[4]},
			},
		},
	}
	// TopicalSegmentsColumns holds the columns for the "topical_segments" table.
	TopicalSegmentsColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString, Unique: true},
		{Name: "chat_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "keywords", Type: field.TypeJSON, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "participant_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "primary_participant_id", Type: field.TypeString, Nullable: true},
		{Name: "message_count", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "merged", "superseded"}, Default: "active"},
		{Name: "extraction_status", Type: field.TypeEnum, Enums: []string{"unprocessed", "pending", "processed", "failed"}, Default: "unprocessed"},
		{Name: "extraction_error", Type: field.TypeString, Nullable: true},
		{Name: "extraction_attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_extraction_at", Type: field.TypeTime, Nullable: true},
		{Name: "batch_id", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "related_segment_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_item_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "embedding", Type: field.TypeOther, Nullable: true, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString, Nullable: true},
	}
	// TopicalSegmentsTable holds the schema information for the "topical_segments" table.
	TopicalSegmentsTable = &schema.Table{
		Name:       "topical_segments",
		Columns:    TopicalSegmentsColumns,
		PrimaryKey: []*schema.Column{TopicalSegmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "topical_segments_interactions_segments",
				Columns:    []*schema.Column{TopicalSegmentsColumns[22]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "topicalsegment_chat_id",
				Unique:  false,
				Columns: []*schema.Column{TopicalSegmentsColumns[1]},
			},
			{
				Name:    "topicalsegment_status_extraction_status",
				Unique:  false,
				Columns: []*schema.Column{TopicalSegmentsColumns[10], TopicalSegmentsColumns[11]},
			},
			{
				Name:    "topicalsegment_started_at",
				Unique:  false,
				Columns: []*schema.Column{TopicalSegmentsColumns[8]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// SegmentMessagesColumns holds the columns for the "segment_messages" table.
	SegmentMessagesColumns = []*schema.Column{
		{Name: "segment_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
	}
	// SegmentMessagesTable holds the schema information for the "segment_messages" table.
	SegmentMessagesTable = &schema.Table{
		Name:       "segment_messages",
		Columns:    SegmentMessagesColumns,
		PrimaryKey: []*schema.Column{SegmentMessagesColumns[0], SegmentMessagesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "segment_messages_segment_id",
				Columns:    []*schema.Column{SegmentMessagesColumns[0]},
				RefColumns: []*schema.Column{TopicalSegmentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "segment_messages_message_id",
				Columns:    []*schema.Column{SegmentMessagesColumns[1]},
				RefColumns: []*schema.Column{MessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActivitiesTable,
		ActivityClosuresTable,
		CommitmentsTable,
		DataQualityReportsTable,
		EmbeddingJobsTable,
		EntitiesTable,
		EntityFactsTable,
		EntityIdentifiersTable,
		InteractionsTable,
		InteractionParticipantsTable,
		MessagesTable,
		PendingApprovalsTable,
		PendingEntityResolutionsTable,
		TopicalSegmentsTable,
		UsersTable,
		SegmentMessagesTable,
	}
)

func init() {
	EntitiesTable.ForeignKeys[0].RefTable = EntitiesTable
	EntityFactsTable.ForeignKeys[0].RefTable = EntitiesTable
	EntityIdentifiersTable.ForeignKeys[0].RefTable = EntitiesTable
	InteractionParticipantsTable.ForeignKeys[0].RefTable = InteractionsTable
	MessagesTable.ForeignKeys[0].RefTable = InteractionsTable
	TopicalSegmentsTable.ForeignKeys[0].RefTable = InteractionsTable
	SegmentMessagesTable.ForeignKeys[0].RefTable = TopicalSegmentsTable
	SegmentMessagesTable.ForeignKeys[1].RefTable = MessagesTable
}
