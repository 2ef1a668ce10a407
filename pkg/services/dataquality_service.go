package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/memograph/memograph/ent"
	"github.com/memograph/memograph/ent/activity"
	"github.com/memograph/memograph/ent/commitment"
	"github.com/memograph/memograph/ent/dataqualityreport"
	"github.com/memograph/memograph/ent/entity"
	"github.com/memograph/memograph/ent/entityidentifier"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/pkg/normalize"
)

// auditPageSize bounds each scan page so the auditor never loads a full
// table at once.
const auditPageSize = 500

// DuplicateGroup is a set of entities sharing a normalized name.
type DuplicateGroup struct {
	NormalizedName string   `json:"normalized_name"`
	EntityType     string   `json:"entity_type"`
	EntityIDs      []string `json:"entity_ids"`
}

// AuditReport is the in-memory shape of one auditor run.
type AuditReport struct {
	ID              string                   `json:"id"`
	DuplicateGroups []DuplicateGroup         `json:"duplicate_groups"`
	OrphanedTasks   []string                 `json:"orphaned_tasks"`
	MissingClients  []string                 `json:"missing_clients"`
	FillRates       map[string]float64       `json:"fill_rates"`
	Resolutions     []map[string]interface{} `json:"resolutions,omitempty"`
}

// DataQualityService detects and repairs graph hygiene problems: duplicate
// entities, orphaned tasks, projects without clients, sparse fields.
type DataQualityService struct {
	client     *ent.Client
	entities   *EntityService
	activities *ActivityService
}

// NewDataQualityService creates a new DataQualityService.
func NewDataQualityService(client *ent.Client, entities *EntityService, activities *ActivityService) *DataQualityService {
	return &DataQualityService{
		client:     client,
		entities:   entities,
		activities: activities,
	}
}

// RunAudit scans for issues and persists a report row.
func (s *DataQualityService) RunAudit(ctx context.Context, triggeredBy string) (*AuditReport, error) {
	report := &AuditReport{FillRates: map[string]float64{}}

	groups, err := s.duplicateGroups(ctx)
	if err != nil {
		return nil, err
	}
	report.DuplicateGroups = groups

	orphans, err := s.orphanedTaskIDs(ctx)
	if err != nil {
		return nil, err
	}
	report.OrphanedTasks = orphans

	clientless, err := s.missingClientIDs(ctx)
	if err != nil {
		return nil, err
	}
	report.MissingClients = clientless

	if err := s.fillRates(ctx, report.FillRates); err != nil {
		return nil, err
	}

	saved, err := s.persist(ctx, triggeredBy, report)
	if err != nil {
		return nil, err
	}
	report.ID = saved.ID

	slog.Info("Data quality audit completed",
		"report_id", saved.ID,
		"duplicate_groups", len(groups),
		"orphaned_tasks", len(orphans),
		"missing_clients", len(clientless))
	return report, nil
}

// AutoFix runs the full remediation chain (merge duplicates, re-home
// orphans, resolve missing clients) and persists a report including
// resolutions. Per-item failures are recorded, not fatal.
func (s *DataQualityService) AutoFix(ctx context.Context) (*AuditReport, error) {
	report := &AuditReport{FillRates: map[string]float64{}}

	if err := s.mergeDuplicates(ctx, report); err != nil {
		return nil, err
	}
	if err := s.assignOrphans(ctx, report); err != nil {
		return nil, err
	}
	if err := s.resolveClients(ctx, report); err != nil {
		return nil, err
	}
	if err := s.fillRates(ctx, report.FillRates); err != nil {
		return nil, err
	}

	saved, err := s.persist(ctx, "manual", report)
	if err != nil {
		return nil, err
	}
	report.ID = saved.ID
	return report, nil
}

// AutoMergeDuplicates merges every duplicate name group, leaving orphans
// and clientless projects alone, and persists a report of the outcome.
func (s *DataQualityService) AutoMergeDuplicates(ctx context.Context) (*AuditReport, error) {
	return s.runRemediation(ctx, s.mergeDuplicates)
}

// AutoAssignOrphans re-homes every parentless task and persists a report.
func (s *DataQualityService) AutoAssignOrphans(ctx context.Context) (*AuditReport, error) {
	return s.runRemediation(ctx, s.assignOrphans)
}

// AutoResolveClients fills in missing project clients from their source
// interaction rosters and persists a report.
func (s *DataQualityService) AutoResolveClients(ctx context.Context) (*AuditReport, error) {
	return s.runRemediation(ctx, s.resolveClients)
}

func (s *DataQualityService) runRemediation(ctx context.Context, step func(context.Context, *AuditReport) error) (*AuditReport, error) {
	report := &AuditReport{FillRates: map[string]float64{}}
	if err := step(ctx, report); err != nil {
		return nil, err
	}
	saved, err := s.persist(ctx, "manual", report)
	if err != nil {
		return nil, err
	}
	report.ID = saved.ID
	return report, nil
}

func (s *DataQualityService) mergeDuplicates(ctx context.Context, report *AuditReport) error {
	groups, err := s.duplicateGroups(ctx)
	if err != nil {
		return err
	}
	report.DuplicateGroups = groups
	for _, g := range groups {
		report.Resolutions = append(report.Resolutions, s.autoMergeGroup(ctx, g))
	}
	return nil
}

func (s *DataQualityService) assignOrphans(ctx context.Context, report *AuditReport) error {
	orphans, err := s.orphanedTaskIDs(ctx)
	if err != nil {
		return err
	}
	report.OrphanedTasks = orphans
	for _, taskID := range orphans {
		report.Resolutions = append(report.Resolutions, s.resolveOrphan(ctx, taskID))
	}
	return nil
}

func (s *DataQualityService) resolveClients(ctx context.Context, report *AuditReport) error {
	clientless, err := s.missingClientIDs(ctx)
	if err != nil {
		return err
	}
	report.MissingClients = clientless
	for _, projectID := range clientless {
		report.Resolutions = append(report.Resolutions, s.resolveMissingClient(ctx, projectID))
	}
	return nil
}

// duplicateGroups pages through active entities and groups them by
// normalized name within type.
func (s *DataQualityService) duplicateGroups(ctx context.Context) ([]DuplicateGroup, error) {
	type key struct {
		name string
		typ  string
	}
	byName := make(map[key][]string)

	cursor := ""
	for {
		query := s.client.Entity.Query().
			Where(entity.DeletedAtIsNil()).
			Order(ent.Asc(entity.FieldID)).
			Limit(auditPageSize)
		if cursor != "" {
			query = query.Where(entity.IDGT(cursor))
		}
		page, err := query.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entities: %w", err)
		}
		if len(page) == 0 {
			break
		}
		for _, e := range page {
			k := key{name: normalize.Name(e.Name), typ: e.Type.String()}
			byName[k] = append(byName[k], e.ID)
		}
		cursor = page[len(page)-1].ID
	}

	var groups []DuplicateGroup
	for k, ids := range byName {
		if len(ids) < 2 {
			continue
		}
		sort.Strings(ids)
		groups = append(groups, DuplicateGroup{
			NormalizedName: k.name,
			EntityType:     k.typ,
			EntityIDs:      ids,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].NormalizedName < groups[j].NormalizedName
	})
	return groups, nil
}

func (s *DataQualityService) orphanedTaskIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.Activity.Query().
		Where(
			activity.ActivityTypeEQ(activity.ActivityTypeTask),
			activity.ParentIDIsNil(),
			activity.DeletedAtIsNil(),
			activity.StatusNEQ(activity.StatusDraft),
		).
		Order(ent.Asc(activity.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orphaned tasks: %w", err)
	}
	return ids, nil
}

func (s *DataQualityService) missingClientIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.Activity.Query().
		Where(
			activity.ActivityTypeEQ(activity.ActivityTypeProject),
			activity.ClientEntityIDIsNil(),
			activity.DeletedAtIsNil(),
			activity.StatusNEQ(activity.StatusDraft),
		).
		Order(ent.Asc(activity.FieldCreatedAt)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan clientless projects: %w", err)
	}
	return ids, nil
}

func (s *DataQualityService) fillRates(ctx context.Context, out map[string]float64) error {
	entityTotal, err := s.client.Entity.Query().
		Where(entity.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count entities: %w", err)
	}
	if entityTotal > 0 {
		withNotes, err := s.client.Entity.Query().
			Where(entity.DeletedAtIsNil(), entity.NotesNEQ("")).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count entity notes: %w", err)
		}
		withOrg, err := s.client.Entity.Query().
			Where(entity.DeletedAtIsNil(), entity.OrganizationIDNotNil()).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count entity organizations: %w", err)
		}
		out["entities.notes"] = float64(withNotes) / float64(entityTotal)
		out["entities.organization_id"] = float64(withOrg) / float64(entityTotal)
	}

	activityTotal, err := s.client.Activity.Query().
		Where(activity.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count activities: %w", err)
	}
	if activityTotal > 0 {
		withDue, err := s.client.Activity.Query().
			Where(activity.DeletedAtIsNil(), activity.DueAtNotNil()).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count activity due dates: %w", err)
		}
		out["activities.due_at"] = float64(withDue) / float64(activityTotal)
	}

	commitmentTotal, err := s.client.Commitment.Query().
		Where(commitment.DeletedAtIsNil()).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count commitments: %w", err)
	}
	if commitmentTotal > 0 {
		withDue, err := s.client.Commitment.Query().
			Where(commitment.DeletedAtIsNil(), commitment.DueDateNotNil()).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count commitment due dates: %w", err)
		}
		out["commitments.due_date"] = float64(withDue) / float64(commitmentTotal)
	}
	return nil
}

// autoMergeGroup merges a duplicate group into its keeper: most members,
// then most identifiers, then oldest.
func (s *DataQualityService) autoMergeGroup(ctx context.Context, g DuplicateGroup) map[string]interface{} {
	resolution := map[string]interface{}{
		"action": "auto_merge",
		"group":  g.NormalizedName,
	}

	keeper, err := s.pickKeeper(ctx, g.EntityIDs)
	if err != nil {
		resolution["error"] = err.Error()
		return resolution
	}
	resolution["keeper_id"] = keeper

	merged := make([]string, 0, len(g.EntityIDs)-1)
	var failures []string
	for _, id := range g.EntityIDs {
		if id == keeper {
			continue
		}
		if _, err := s.entities.Merge(ctx, id, keeper); err != nil {
			slog.Warn("Auto-merge failed",
				"source_id", id,
				"target_id", keeper,
				"error", err)
			failures = append(failures, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		merged = append(merged, id)
	}
	resolution["merged_ids"] = merged
	if len(failures) > 0 {
		resolution["failures"] = failures
	}
	return resolution
}

func (s *DataQualityService) pickKeeper(ctx context.Context, ids []string) (string, error) {
	type stats struct {
		id          string
		members     int
		identifiers int
		createdAt   time.Time
	}
	all := make([]stats, 0, len(ids))
	for _, id := range ids {
		e, err := s.client.Entity.Get(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to load candidate %s: %w", id, err)
		}
		members, err := s.client.Entity.Query().
			Where(entity.OrganizationIDEQ(id), entity.DeletedAtIsNil()).
			Count(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to count members: %w", err)
		}
		identifiers, err := s.client.EntityIdentifier.Query().
			Where(entityidentifier.EntityIDEQ(id)).
			Count(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to count identifiers: %w", err)
		}
		all = append(all, stats{id: id, members: members, identifiers: identifiers, createdAt: e.CreatedAt})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].members != all[j].members {
			return all[i].members > all[j].members
		}
		if all[i].identifiers != all[j].identifiers {
			return all[i].identifiers > all[j].identifiers
		}
		return all[i].createdAt.Before(all[j].createdAt)
	})
	return all[0].id, nil
}

// resolveOrphan walks the parent-assignment chain for one task: name
// containment, then shared draft batch, then the owner's single active
// project, then the fallback parking project.
func (s *DataQualityService) resolveOrphan(ctx context.Context, taskID string) map[string]interface{} {
	resolution := map[string]interface{}{
		"action":  "orphan_assignment",
		"task_id": taskID,
	}

	task, err := s.client.Activity.Get(ctx, taskID)
	if err != nil {
		resolution["error"] = err.Error()
		return resolution
	}

	parentID, reason, err := s.findOrphanParent(ctx, task)
	if err != nil {
		resolution["error"] = err.Error()
		return resolution
	}
	if _, err := s.activities.Reparent(ctx, taskID, parentID); err != nil {
		resolution["error"] = err.Error()
		return resolution
	}
	resolution["parent_id"] = parentID
	resolution["reason"] = reason
	return resolution
}

func (s *DataQualityService) findOrphanParent(ctx context.Context, task *ent.Activity) (string, string, error) {
	projects, err := s.client.Activity.Query().
		Where(
			activity.ActivityTypeEQ(activity.ActivityTypeProject),
			activity.StatusEQ(activity.StatusActive),
			activity.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to load active projects: %w", err)
	}

	taskName := normalize.Name(task.Name)
	for _, p := range projects {
		projectName := normalize.Name(p.Name)
		if projectName == "" || taskName == "" {
			continue
		}
		if containsEither(taskName, projectName) {
			return p.ID, "name_containment", nil
		}
	}

	if batchID, ok := task.Metadata["draft_batch_id"].(string); ok && batchID != "" {
		for _, p := range projects {
			if pb, ok := p.Metadata["draft_batch_id"].(string); ok && pb == batchID {
				return p.ID, "draft_batch", nil
			}
		}
	}

	if task.OwnerEntityID != nil {
		var owned []*ent.Activity
		for _, p := range projects {
			if p.OwnerEntityID != nil && *p.OwnerEntityID == *task.OwnerEntityID {
				owned = append(owned, p)
			}
		}
		if len(owned) == 1 {
			return owned[0].ID, "single_owner_project", nil
		}
	}

	owner := ""
	if task.OwnerEntityID != nil {
		owner = *task.OwnerEntityID
	}
	fallback, err := s.activities.EnsureUnsortedTasks(ctx, owner)
	if err != nil {
		return "", "", err
	}
	return fallback.ID, "unsorted_tasks", nil
}

func containsEither(a, b string) bool {
	return len(a) >= 3 && len(b) >= 3 &&
		(strings.Contains(a, b) || strings.Contains(b, a))
}

// resolveMissingClient derives a client from the project's source
// interaction roster: the single distinct organization reachable from the
// participants wins.
func (s *DataQualityService) resolveMissingClient(ctx context.Context, projectID string) map[string]interface{} {
	resolution := map[string]interface{}{
		"action":     "client_assignment",
		"project_id": projectID,
	}

	project, err := s.client.Activity.Get(ctx, projectID)
	if err != nil {
		resolution["error"] = err.Error()
		return resolution
	}
	if project.SourceInteractionID == nil {
		resolution["skipped"] = "no source interaction"
		return resolution
	}

	participants, err := s.client.InteractionParticipant.Query().
		Where(
			interactionparticipant.InteractionIDEQ(*project.SourceInteractionID),
			interactionparticipant.EntityIDNotNil(),
		).
		All(ctx)
	if err != nil {
		resolution["error"] = err.Error()
		return resolution
	}

	orgs := make(map[string]struct{})
	for _, p := range participants {
		e, err := s.client.Entity.Get(ctx, *p.EntityID)
		if err != nil {
			continue
		}
		if e.Type == entity.TypeOrganization {
			orgs[e.ID] = struct{}{}
		} else if e.OrganizationID != nil {
			orgs[*e.OrganizationID] = struct{}{}
		}
	}
	if len(orgs) != 1 {
		resolution["skipped"] = fmt.Sprintf("%d candidate organizations", len(orgs))
		return resolution
	}

	var clientID string
	for id := range orgs {
		clientID = id
	}
	if err := s.client.Activity.UpdateOneID(projectID).
		SetClientEntityID(clientID).
		Exec(ctx); err != nil {
		resolution["error"] = err.Error()
		return resolution
	}
	resolution["client_entity_id"] = clientID
	return resolution
}

func (s *DataQualityService) persist(ctx context.Context, triggeredBy string, report *AuditReport) (*ent.DataQualityReport, error) {
	issues := []map[string]interface{}{}
	for _, g := range report.DuplicateGroups {
		issues = append(issues, map[string]interface{}{
			"kind":       "duplicate_group",
			"name":       g.NormalizedName,
			"type":       g.EntityType,
			"entity_ids": g.EntityIDs,
		})
	}
	for _, id := range report.OrphanedTasks {
		issues = append(issues, map[string]interface{}{"kind": "orphaned_task", "activity_id": id})
	}
	for _, id := range report.MissingClients {
		issues = append(issues, map[string]interface{}{"kind": "missing_client", "activity_id": id})
	}

	metrics := map[string]interface{}{
		"duplicate_groups": len(report.DuplicateGroups),
		"orphaned_tasks":   len(report.OrphanedTasks),
		"missing_clients":  len(report.MissingClients),
		"fill_rates":       report.FillRates,
	}

	builder := s.client.DataQualityReport.Create().
		SetID(uuid.New().String()).
		SetTriggeredBy(dataqualityreport.TriggeredBy(triggeredBy)).
		SetMetrics(metrics).
		SetIssues(issues)
	if len(report.Resolutions) > 0 {
		builder.SetResolutions(report.Resolutions)
	}
	saved, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}
	return saved, nil
}

// ListReports returns recent audit reports, newest first.
func (s *DataQualityService) ListReports(ctx context.Context, limit int) ([]*ent.DataQualityReport, error) {
	if limit <= 0 {
		limit = 20
	}
	reports, err := s.client.DataQualityReport.Query().
		Order(ent.Desc(dataqualityreport.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
