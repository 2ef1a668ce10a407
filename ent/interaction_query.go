// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/interaction"
	"github.com/memograph/memograph/ent/interactionparticipant"
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
)

// InteractionQuery is the builder for querying Interaction entities.
type InteractionQuery struct {
	config
	ctx              *QueryContext
	order            []interaction.OrderOption
	inters           []Interceptor
	predicates       []predicate.Interaction
	withMessages     *MessageQuery
	withParticipants *InteractionParticipantQuery
	withSegments     *TopicalSegmentQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InteractionQuery builder.
func (_q *InteractionQuery) Where(ps ...predicate.Interaction) *InteractionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InteractionQuery) Limit(limit int) *InteractionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InteractionQuery) Offset(offset int) *InteractionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InteractionQuery) Unique(unique bool) *InteractionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InteractionQuery) Order(o ...interaction.OrderOption) *InteractionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *InteractionQuery) QueryMessages() *MessageQuery {
	query := (&MessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, selector),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.MessagesTable, interaction.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryParticipants chains the current query on the "participants" edge.
func (_q *InteractionQuery) QueryParticipants() *InteractionParticipantQuery {
	query := (&InteractionParticipantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, selector),
			sqlgraph.To(interactionparticipant.Table, interactionparticipant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.ParticipantsTable, interaction.ParticipantsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySegments chains the current query on the "segments" edge.
func (_q *InteractionQuery) QuerySegments() *TopicalSegmentQuery {
	query := (&TopicalSegmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(interaction.Table, interaction.FieldID, selector),
			sqlgraph.To(topicalsegment.Table, topicalsegment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, interaction.SegmentsTable, interaction.SegmentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Interaction entity from the query.
// Returns a *NotFoundError when no Interaction was found.
func (_q *InteractionQuery) First(ctx context.Context) (*Interaction, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{interaction.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InteractionQuery) FirstX(ctx context.Context) *Interaction {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Interaction ID from the query.
// Returns a *NotFoundError when no Interaction ID was found.
func (_q *InteractionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{interaction.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InteractionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Interaction entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Interaction entity is found.
// Returns a *NotFoundError when no Interaction entities are found.
func (_q *InteractionQuery) Only(ctx context.Context) (*Interaction, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{interaction.Label}
	default:
		return nil, &NotSingularError{interaction.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InteractionQuery) OnlyX(ctx context.Context) *Interaction {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Interaction ID in the query.
// Returns a *NotSingularError when more than one Interaction ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InteractionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{interaction.Label}
	default:
		err = &NotSingularError{interaction.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InteractionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Interactions.
func (_q *InteractionQuery) All(ctx context.Context) ([]*Interaction, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Interaction, *InteractionQuery]()
	return withInterceptors[[]*Interaction](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InteractionQuery) AllX(ctx context.Context) []*Interaction {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Interaction IDs.
func (_q *InteractionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(interaction.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InteractionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InteractionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InteractionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InteractionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InteractionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *InteractionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InteractionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InteractionQuery) Clone() *InteractionQuery {
	if _q == nil {
		return nil
	}
	return &InteractionQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]interaction.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Interaction{}, _q.predicates...),
		withMessages:     _q.withMessages.Clone(),
		withParticipants: _q.withParticipants.Clone(),
		withSegments:     _q.withSegments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionQuery) WithMessages(opts ...func(*MessageQuery)) *InteractionQuery {
	query := (&MessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithParticipants tells the query-builder to eager-load the nodes that are connected to
// the "participants" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionQuery) WithParticipants(opts ...func(*InteractionParticipantQuery)) *InteractionQuery {
	query := (&InteractionParticipantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withParticipants = query
	return _q
}

// WithSegments tells the query-builder to eager-load the nodes that are connected to
// the "segments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InteractionQuery) WithSegments(opts ...func(*TopicalSegmentQuery)) *InteractionQuery {
	query := (&TopicalSegmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSegments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Type interaction.Type `json:"type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Interaction.Query().
//		GroupBy(interaction.FieldType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InteractionQuery) GroupBy(field string, fields ...string) *InteractionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InteractionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = interaction.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Type interaction.Type `json:"type,omitempty"`
//	}
//
//	client.Interaction.Query().
//		Select(interaction.FieldType).
//		Scan(ctx, &v)
func (_q *InteractionQuery) Select(fields ...string) *InteractionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InteractionSelect{InteractionQuery: _q}
	sbuild.label = interaction.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InteractionSelect configured with the given aggregations.
func (_q *InteractionQuery) Aggregate(fns ...AggregateFunc) *InteractionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InteractionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !interaction.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *InteractionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Interaction, error) {
	var (
		nodes       = []*Interaction{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withMessages != nil,
			_q.withParticipants != nil,
			_q.withSegments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Interaction).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Interaction{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *Interaction) { n.Edges.Messages = []*Message{} },
			func(n *Interaction, e *Message) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withParticipants; query != nil {
		if err := _q.loadParticipants(ctx, query, nodes,
			func(n *Interaction) { n.Edges.Participants = []*InteractionParticipant{} },
			func(n *Interaction, e *InteractionParticipant) {
				n.Edges.Participants = append(n.Edges.Participants, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withSegments; query != nil {
		if err := _q.loadSegments(ctx, query, nodes,
			func(n *Interaction) { n.Edges.Segments = []*TopicalSegment{} },
			func(n *Interaction, e *TopicalSegment) { n.Edges.Segments = append(n.Edges.Segments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InteractionQuery) loadMessages(ctx context.Context, query *MessageQuery, nodes []*Interaction, init func(*Interaction), assign func(*Interaction, *Message)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interaction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(message.FieldInteractionID)
	}
	query.Where(predicate.Message(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interaction.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InteractionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interaction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InteractionQuery) loadParticipants(ctx context.Context, query *InteractionParticipantQuery, nodes []*Interaction, init func(*Interaction), assign func(*Interaction, *InteractionParticipant)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interaction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(interactionparticipant.FieldInteractionID)
	}
	query.Where(predicate.InteractionParticipant(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interaction.ParticipantsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InteractionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interaction_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InteractionQuery) loadSegments(ctx context.Context, query *TopicalSegmentQuery, nodes []*Interaction, init func(*Interaction), assign func(*Interaction, *TopicalSegment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Interaction)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(topicalsegment.FieldInteractionID)
	}
	query.Where(predicate.TopicalSegment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(interaction.SegmentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InteractionID
		if fk == nil {
			return fmt.Errorf(`foreign-key "interaction_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "interaction_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InteractionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InteractionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for i := range fields {
			if fields[i] != interaction.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *InteractionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(interaction.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = interaction.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *InteractionQuery) ForUpdate(opts ...sql.LockOption) *InteractionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *InteractionQuery) ForShare(opts ...sql.LockOption) *InteractionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// InteractionGroupBy is the group-by builder for Interaction entities.
type InteractionGroupBy struct {
	selector
	build *InteractionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InteractionGroupBy) Aggregate(fns ...AggregateFunc) *InteractionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InteractionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InteractionQuery, *InteractionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InteractionGroupBy) sqlScan(ctx context.Context, root *InteractionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// InteractionSelect is the builder for selecting fields of Interaction entities.
type InteractionSelect struct {
	*InteractionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InteractionSelect) Aggregate(fns ...AggregateFunc) *InteractionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InteractionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InteractionQuery, *InteractionSelect](ctx, _s.InteractionQuery, _s, _s.inters, v)
}

func (_s *InteractionSelect) sqlScan(ctx context.Context, root *InteractionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
