// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/embeddingjob"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityfact"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/pendingentityresolution"
	"github.com/memograph/memograph/ent/schema"
	"github.com/memograph/memograph/ent/topicalsegment"
	"github.com/memograph/memograph/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescPriority is the schema descriptor for priority field.
	activityDescPriority := activityFields[4].Descriptor()
	// activity.DefaultPriority holds the default value on creation for the priority field.
	activity.DefaultPriority = activityDescPriority.Default.(int)
	// activityDescDepth is the schema descriptor for depth field.
	activityDescDepth := activityFields[7].Descriptor()
	// activity.DefaultDepth holds the default value on creation for the depth field.
	activity.DefaultDepth = activityDescDepth.Default.(int)
	// activityDescMaterializedPath is the schema descriptor for materialized_path field.
	activityDescMaterializedPath := activityFields[8].Descriptor()
	// activity.DefaultMaterializedPath holds the default value on creation for the materialized_path field.
	activity.DefaultMaterializedPath = activityDescMaterializedPath.Default.(string)
	// activityDescNeedsReview is the schema descriptor for needs_review field.
	activityDescNeedsReview := activityFields[17].Descriptor()
	// activity.DefaultNeedsReview holds the default value on creation for the needs_review field.
	activity.DefaultNeedsReview = activityDescNeedsReview.Default.(bool)
	// activityDescConfirmationCount is the schema descriptor for confirmation_count field.
	activityDescConfirmationCount := activityFields[18].Descriptor()
	// activity.DefaultConfirmationCount holds the default value on creation for the confirmation_count field.
	activity.DefaultConfirmationCount = activityDescConfirmationCount.Default.(int)
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[20].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescUpdatedAt is the schema descriptor for updated_at field.
	activityDescUpdatedAt := activityFields[21].Descriptor()
	// activity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activity.DefaultUpdatedAt = activityDescUpdatedAt.Default.(func() time.Time)
	// activity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activity.UpdateDefaultUpdatedAt = activityDescUpdatedAt.UpdateDefault.(func() time.Time)
	commitmentFields := schema.Commitment{}.Fields()
	_ = commitmentFields
	// commitmentDescReminderCount is the schema descriptor for reminder_count field.
	commitmentDescReminderCount := commitmentFields[13].Descriptor()
	// commitment.DefaultReminderCount holds the default value on creation for the reminder_count field.
	commitment.DefaultReminderCount = commitmentDescReminderCount.Default.(int)
	// commitmentDescConfidence is the schema descriptor for confidence field.
	commitmentDescConfidence := commitmentFields[14].Descriptor()
	// commitment.DefaultConfidence holds the default value on creation for the confidence field.
	commitment.DefaultConfidence = commitmentDescConfidence.Default.(float64)
	// commitment.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	commitment.ConfidenceValidator = commitmentDescConfidence.Validators[0].(func(float64) error)
	// commitmentDescNeedsReview is the schema descriptor for needs_review field.
	commitmentDescNeedsReview := commitmentFields[15].Descriptor()
	// commitment.DefaultNeedsReview holds the default value on creation for the needs_review field.
	commitment.DefaultNeedsReview = commitmentDescNeedsReview.Default.(bool)
	// commitmentDescConfirmationCount is the schema descriptor for confirmation_count field.
	commitmentDescConfirmationCount := commitmentFields[16].Descriptor()
	// commitment.DefaultConfirmationCount holds the default value on creation for the confirmation_count field.
	commitment.DefaultConfirmationCount = commitmentDescConfirmationCount.Default.(int)
	// commitmentDescCreatedAt is the schema descriptor for created_at field.
	commitmentDescCreatedAt := commitmentFields[19].Descriptor()
	// commitment.DefaultCreatedAt holds the default value on creation for the created_at field.
	commitment.DefaultCreatedAt = commitmentDescCreatedAt.Default.(func() time.Time)
	// commitmentDescUpdatedAt is the schema descriptor for updated_at field.
	commitmentDescUpdatedAt := commitmentFields[20].Descriptor()
	// commitment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	commitment.DefaultUpdatedAt = commitmentDescUpdatedAt.Default.(func() time.Time)
	// commitment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	commitment.UpdateDefaultUpdatedAt = commitmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	dataqualityreportFields := schema.DataQualityReport{}.Fields()
	_ = dataqualityreportFields
	// dataqualityreportDescCreatedAt is the schema descriptor for created_at field.
	dataqualityreportDescCreatedAt := dataqualityreportFields[5].Descriptor()
	// dataqualityreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	dataqualityreport.DefaultCreatedAt = dataqualityreportDescCreatedAt.Default.(func() time.Time)
	embeddingjobFields := schema.EmbeddingJob{}.Fields()
	_ = embeddingjobFields
	// embeddingjobDescAttempts is the schema descriptor for attempts field.
	embeddingjobDescAttempts := embeddingjobFields[4].Descriptor()
	// embeddingjob.DefaultAttempts holds the default value on creation for the attempts field.
	embeddingjob.DefaultAttempts = embeddingjobDescAttempts.Default.(int)
	// embeddingjobDescNextAttemptAt is the schema descriptor for next_attempt_at field.
	embeddingjobDescNextAttemptAt := embeddingjobFields[5].Descriptor()
	// embeddingjob.DefaultNextAttemptAt holds the default value on creation for the next_attempt_at field.
	embeddingjob.DefaultNextAttemptAt = embeddingjobDescNextAttemptAt.Default.(func() time.Time)
	// embeddingjobDescCreatedAt is the schema descriptor for created_at field.
	embeddingjobDescCreatedAt := embeddingjobFields[9].Descriptor()
	// embeddingjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	embeddingjob.DefaultCreatedAt = embeddingjobDescCreatedAt.Default.(func() time.Time)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescIsOwner is the schema descriptor for is_owner field.
	entityDescIsOwner := entityFields[5].Descriptor()
	// entity.DefaultIsOwner holds the default value on creation for the is_owner field.
	entity.DefaultIsOwner = entityDescIsOwner.Default.(bool)
	// entityDescIsBot is the schema descriptor for is_bot field.
	entityDescIsBot := entityFields[6].Descriptor()
	// entity.DefaultIsBot holds the default value on creation for the is_bot field.
	entity.DefaultIsBot = entityDescIsBot.Default.(bool)
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[8].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescUpdatedAt is the schema descriptor for updated_at field.
	entityDescUpdatedAt := entityFields[9].Descriptor()
	// entity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entity.DefaultUpdatedAt = entityDescUpdatedAt.Default.(func() time.Time)
	// entity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entity.UpdateDefaultUpdatedAt = entityDescUpdatedAt.UpdateDefault.(func() time.Time)
	entityfactFields := schema.EntityFact{}.Fields()
	_ = entityfactFields
	// entityfactDescConfidence is the schema descriptor for confidence field.
	entityfactDescConfidence := entityfactFields[8].Descriptor()
	// entityfact.DefaultConfidence holds the default value on creation for the confidence field.
	entityfact.DefaultConfidence = entityfactDescConfidence.Default.(float64)
	// entityfact.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entityfact.ConfidenceValidator = entityfactDescConfidence.Validators[0].(func(float64) error)
	// entityfactDescNeedsReview is the schema descriptor for needs_review field.
	entityfactDescNeedsReview := entityfactFields[16].Descriptor()
	// entityfact.DefaultNeedsReview holds the default value on creation for the needs_review field.
	entityfact.DefaultNeedsReview = entityfactDescNeedsReview.Default.(bool)
	// entityfactDescConfirmationCount is the schema descriptor for confirmation_count field.
	entityfactDescConfirmationCount := entityfactFields[18].Descriptor()
	// entityfact.DefaultConfirmationCount holds the default value on creation for the confirmation_count field.
	entityfact.DefaultConfirmationCount = entityfactDescConfirmationCount.Default.(int)
	// entityfactDescCreatedAt is the schema descriptor for created_at field.
	entityfactDescCreatedAt := entityfactFields[21].Descriptor()
	// entityfact.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityfact.DefaultCreatedAt = entityfactDescCreatedAt.Default.(func() time.Time)
	// entityfactDescUpdatedAt is the schema descriptor for updated_at field.
	entityfactDescUpdatedAt := entityfactFields[22].Descriptor()
	// entityfact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	entityfact.DefaultUpdatedAt = entityfactDescUpdatedAt.Default.(func() time.Time)
	// entityfact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	entityfact.UpdateDefaultUpdatedAt = entityfactDescUpdatedAt.UpdateDefault.(func() time.Time)
	entityidentifierFields := schema.EntityIdentifier{}.Fields()
	_ = entityidentifierFields
	// entityidentifierDescCreatedAt is the schema descriptor for created_at field.
	entityidentifierDescCreatedAt := entityidentifierFields[5].Descriptor()
	// entityidentifier.DefaultCreatedAt holds the default value on creation for the created_at field.
	entityidentifier.DefaultCreatedAt = entityidentifierDescCreatedAt.Default.(func() time.Time)
	interactionFields := schema.Interaction{}.Fields()
	_ = interactionFields
	// interactionDescTopicID is the schema descriptor for topic_id field.
	interactionDescTopicID := interactionFields[4].Descriptor()
	// interaction.DefaultTopicID holds the default value on creation for the topic_id field.
	interaction.DefaultTopicID = interactionDescTopicID.Default.(string)
	// interactionDescNeedsResegmentation is the schema descriptor for needs_resegmentation field.
	interactionDescNeedsResegmentation := interactionFields[9].Descriptor()
	// interaction.DefaultNeedsResegmentation holds the default value on creation for the needs_resegmentation field.
	interaction.DefaultNeedsResegmentation = interactionDescNeedsResegmentation.Default.(bool)
	// interactionDescCreatedAt is the schema descriptor for created_at field.
	interactionDescCreatedAt := interactionFields[11].Descriptor()
	// interaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	interaction.DefaultCreatedAt = interactionDescCreatedAt.Default.(func() time.Time)
	// interactionDescUpdatedAt is the schema descriptor for updated_at field.
	interactionDescUpdatedAt := interactionFields[12].Descriptor()
	// interaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	interaction.DefaultUpdatedAt = interactionDescUpdatedAt.Default.(func() time.Time)
	// interaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	interaction.UpdateDefaultUpdatedAt = interactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	interactionparticipantFields := schema.InteractionParticipant{}.Fields()
	_ = interactionparticipantFields
	// interactionparticipantDescCreatedAt is the schema descriptor for created_at field.
	interactionparticipantDescCreatedAt := interactionparticipantFields[7].Descriptor()
	// interactionparticipant.DefaultCreatedAt holds the default value on creation for the created_at field.
	interactionparticipant.DefaultCreatedAt = interactionparticipantDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescIsOutgoing is the schema descriptor for is_outgoing field.
	messageDescIsOutgoing := messageFields[7].Descriptor()
	// message.DefaultIsOutgoing holds the default value on creation for the is_outgoing field.
	message.DefaultIsOutgoing = messageDescIsOutgoing.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[17].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	pendingapprovalFields := schema.PendingApproval{}.Fields()
	_ = pendingapprovalFields
	// pendingapprovalDescConfidence is the schema descriptor for confidence field.
	pendingapprovalDescConfidence := pendingapprovalFields[5].Descriptor()
	// pendingapproval.DefaultConfidence holds the default value on creation for the confidence field.
	pendingapproval.DefaultConfidence = pendingapprovalDescConfidence.Default.(float64)
	// pendingapproval.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	pendingapproval.ConfidenceValidator = pendingapprovalDescConfidence.Validators[0].(func(float64) error)
	// pendingapprovalDescCreatedAt is the schema descriptor for created_at field.
	pendingapprovalDescCreatedAt := pendingapprovalFields[10].Descriptor()
	// pendingapproval.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendingapproval.DefaultCreatedAt = pendingapprovalDescCreatedAt.Default.(func() time.Time)
	pendingentityresolutionFields := schema.PendingEntityResolution{}.Fields()
	_ = pendingentityresolutionFields
	// pendingentityresolutionDescFirstSeenAt is the schema descriptor for first_seen_at field.
	pendingentityresolutionDescFirstSeenAt := pendingentityresolutionFields[9].Descriptor()
	// pendingentityresolution.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	pendingentityresolution.DefaultFirstSeenAt = pendingentityresolutionDescFirstSeenAt.Default.(func() time.Time)
	topicalsegmentFields := schema.TopicalSegment{}.Fields()
	_ = topicalsegmentFields
	// topicalsegmentDescMessageCount is the schema descriptor for message_count field.
	topicalsegmentDescMessageCount := topicalsegmentFields[8].Descriptor()
	// topicalsegment.DefaultMessageCount holds the default value on creation for the message_count field.
	topicalsegment.DefaultMessageCount = topicalsegmentDescMessageCount.Default.(int)
	// topicalsegmentDescExtractionAttempts is the schema descriptor for extraction_attempts field.
	topicalsegmentDescExtractionAttempts := topicalsegmentFields[14].Descriptor()
	// topicalsegment.DefaultExtractionAttempts holds the default value on creation for the extraction_attempts field.
	topicalsegment.DefaultExtractionAttempts = topicalsegmentDescExtractionAttempts.Default.(int)
	// topicalsegmentDescConfidence is the schema descriptor for confidence field.
	topicalsegmentDescConfidence := topicalsegmentFields[17].Descriptor()
	// topicalsegment.DefaultConfidence holds the default value on creation for the confidence field.
	topicalsegment.DefaultConfidence = topicalsegmentDescConfidence.Default.(float64)
	// topicalsegmentDescCreatedAt is the schema descriptor for created_at field.
	topicalsegmentDescCreatedAt := topicalsegmentFields[21].Descriptor()
	// topicalsegment.DefaultCreatedAt holds the default value on creation for the created_at field.
	topicalsegment.DefaultCreatedAt = topicalsegmentDescCreatedAt.Default.(func() time.Time)
	// topicalsegmentDescUpdatedAt is the schema descriptor for updated_at field.
	topicalsegmentDescUpdatedAt := topicalsegmentFields[22].Descriptor()
	// topicalsegment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	topicalsegment.DefaultUpdatedAt = topicalsegmentDescUpdatedAt.Default.(func() time.Time)
	// topicalsegment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	topicalsegment.UpdateDefaultUpdatedAt = topicalsegmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[3].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
