// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Activity is the predicate function for activity builders.
type Activity func(*sql.Selector)

// ActivityClosure is the predicate function for activityclosure builders.
type ActivityClosure func(*sql.Selector)

// Commitment is the predicate function for commitment builders.
type Commitment func(*sql.Selector)

// DataQualityReport is the predicate function for dataqualityreport builders.
type DataQualityReport func(*sql.Selector)

// EmbeddingJob is the predicate function for embeddingjob builders.
type EmbeddingJob func(*sql.Selector)

// Entity is the predicate function for entity builders.
type Entity func(*sql.Selector)

// EntityFact is the predicate function for entityfact builders.
type EntityFact func(*sql.Selector)

// EntityIdentifier is the predicate function for entityidentifier builders.
type EntityIdentifier func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// InteractionParticipant is the predicate function for interactionparticipant builders.
type InteractionParticipant func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// PendingApproval is the predicate function for pendingapproval builders.
type PendingApproval func(*sql.Selector)

// PendingEntityResolution is the predicate function for pendingentityresolution builders.
type PendingEntityResolution func(*sql.Selector)

// TopicalSegment is the predicate function for topicalsegment builders.
type TopicalSegment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
