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
	"github.com/memograph/memograph/ent/message"
	"github.com/memograph/memograph/ent/predicate"
	"github.com/memograph/memograph/ent/topicalsegment"
)

// TopicalSegmentQuery is the builder for querying TopicalSegment entities.
type TopicalSegmentQuery struct {
	config
	ctx             *QueryContext
	order           []topicalsegment.OrderOption
	inters          []Interceptor
	predicates      []predicate.TopicalSegment
	withInteraction *InteractionQuery
	withMessages    *MessageQuery
	modifiers       []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TopicalSegmentQuery builder.
func (_q *TopicalSegmentQuery) Where(ps ...predicate.TopicalSegment) *TopicalSegmentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TopicalSegmentQuery) Limit(limit int) *TopicalSegmentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TopicalSegmentQuery) Offset(offset int) *TopicalSegmentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TopicalSegmentQuery) Unique(unique bool) *TopicalSegmentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TopicalSegmentQuery) Order(o ...topicalsegment.OrderOption) *TopicalSegmentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryInteraction chains the current query on the "interaction" edge.
func (_q *TopicalSegmentQuery) QueryInteraction() *InteractionQuery {
	query := (&InteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(topicalsegment.Table, topicalsegment.FieldID, selector),
			sqlgraph.To(interaction.Table, interaction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, topicalsegment.InteractionTable, topicalsegment.InteractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *TopicalSegmentQuery) QueryMessages() *MessageQuery {
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
			sqlgraph.From(topicalsegment.Table, topicalsegment.FieldID, selector),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, topicalsegment.MessagesTable, topicalsegment.MessagesPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TopicalSegment entity from the query.
// Returns a *NotFoundError when no TopicalSegment was found.
func (_q *TopicalSegmentQuery) First(ctx context.Context) (*TopicalSegment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{topicalsegment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TopicalSegmentQuery) FirstX(ctx context.Context) *TopicalSegment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TopicalSegment ID from the query.
// Returns a *NotFoundError when no TopicalSegment ID was found.
func (_q *TopicalSegmentQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{topicalsegment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TopicalSegmentQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TopicalSegment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TopicalSegment entity is found.
// Returns a *NotFoundError when no TopicalSegment entities are found.
func (_q *TopicalSegmentQuery) Only(ctx context.Context) (*TopicalSegment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{topicalsegment.Label}
	default:
		return nil, &NotSingularError{topicalsegment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TopicalSegmentQuery) OnlyX(ctx context.Context) *TopicalSegment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TopicalSegment ID in the query.
// Returns a *NotSingularError when more than one TopicalSegment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TopicalSegmentQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{topicalsegment.Label}
	default:
		err = &NotSingularError{topicalsegment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TopicalSegmentQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TopicalSegments.
func (_q *TopicalSegmentQuery) All(ctx context.Context) ([]*TopicalSegment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TopicalSegment, *TopicalSegmentQuery]()
	return withInterceptors[[]*TopicalSegment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TopicalSegmentQuery) AllX(ctx context.Context) []*TopicalSegment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TopicalSegment IDs.
func (_q *TopicalSegmentQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(topicalsegment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TopicalSegmentQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TopicalSegmentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TopicalSegmentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TopicalSegmentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TopicalSegmentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TopicalSegmentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TopicalSegmentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TopicalSegmentQuery) Clone() *TopicalSegmentQuery {
	if _q == nil {
		return nil
	}
	return &TopicalSegmentQuery{
		config:          _q.config,
		ctx:             _q.ctx.Clone(),
		order:           append([]topicalsegment.OrderOption{}, _q.order...),
		inters:          append([]Interceptor{}, _q.inters...),
		predicates:      append([]predicate.TopicalSegment{}, _q.predicates...),
		withInteraction: _q.withInteraction.Clone(),
		withMessages:    _q.withMessages.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithInteraction tells the query-builder to eager-load the nodes that are connected to
// the "interaction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicalSegmentQuery) WithInteraction(opts ...func(*InteractionQuery)) *TopicalSegmentQuery {
	query := (&InteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInteraction = query
	return _q
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TopicalSegmentQuery) WithMessages(opts ...func(*MessageQuery)) *TopicalSegmentQuery {
	query := (&MessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ChatID string `json:"chat_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TopicalSegment.Query().
//		GroupBy(topicalsegment.FieldChatID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TopicalSegmentQuery) GroupBy(field string, fields ...string) *TopicalSegmentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TopicalSegmentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = topicalsegment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ChatID string `json:"chat_id,omitempty"`
//	}
//
//	client.TopicalSegment.Query().
//		Select(topicalsegment.FieldChatID).
//		Scan(ctx, &v)
func (_q *TopicalSegmentQuery) Select(fields ...string) *TopicalSegmentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TopicalSegmentSelect{TopicalSegmentQuery: _q}
	sbuild.label = topicalsegment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TopicalSegmentSelect configured with the given aggregations.
func (_q *TopicalSegmentQuery) Aggregate(fns ...AggregateFunc) *TopicalSegmentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TopicalSegmentQuery) prepareQuery(ctx context.Context) error {
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
		if !topicalsegment.ValidColumn(f) {
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

func (_q *TopicalSegmentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TopicalSegment, error) {
	var (
		nodes       = []*TopicalSegment{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withInteraction != nil,
			_q.withMessages != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TopicalSegment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TopicalSegment{config: _q.config}
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
	if query := _q.withInteraction; query != nil {
		if err := _q.loadInteraction(ctx, query, nodes, nil,
			func(n *TopicalSegment, e *Interaction) { n.Edges.Interaction = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *TopicalSegment) { n.Edges.Messages = []*Message{} },
			func(n *TopicalSegment, e *Message) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TopicalSegmentQuery) loadInteraction(ctx context.Context, query *InteractionQuery, nodes []*TopicalSegment, init func(*TopicalSegment), assign func(*TopicalSegment, *Interaction)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TopicalSegment)
	for i := range nodes {
		if nodes[i].InteractionID == nil {
			continue
		}
		fk := *nodes[i].InteractionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(interaction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "interaction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TopicalSegmentQuery) loadMessages(ctx context.Context, query *MessageQuery, nodes []*TopicalSegment, init func(*TopicalSegment), assign func(*TopicalSegment, *Message)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[string]*TopicalSegment)
	nids := make(map[string]map[*TopicalSegment]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(topicalsegment.MessagesTable)
		s.Join(joinT).On(s.C(message.FieldID), joinT.C(topicalsegment.MessagesPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(topicalsegment.MessagesPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(topicalsegment.MessagesPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullString)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := values[0].(*sql.NullString).String
				inValue := values[1].(*sql.NullString).String
				if nids[inValue] == nil {
					nids[inValue] = map[*TopicalSegment]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Message](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "messages" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *TopicalSegmentQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *TopicalSegmentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(topicalsegment.Table, topicalsegment.Columns, sqlgraph.NewFieldSpec(topicalsegment.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicalsegment.FieldID)
		for i := range fields {
			if fields[i] != topicalsegment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withInteraction != nil {
			_spec.Node.AddColumnOnce(topicalsegment.FieldInteractionID)
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

func (_q *TopicalSegmentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(topicalsegment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = topicalsegment.Columns
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
func (_q *TopicalSegmentQuery) ForUpdate(opts ...sql.LockOption) *TopicalSegmentQuery {
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
func (_q *TopicalSegmentQuery) ForShare(opts ...sql.LockOption) *TopicalSegmentQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TopicalSegmentGroupBy is the group-by builder for TopicalSegment entities.
type TopicalSegmentGroupBy struct {
	selector
	build *TopicalSegmentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TopicalSegmentGroupBy) Aggregate(fns ...AggregateFunc) *TopicalSegmentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TopicalSegmentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicalSegmentQuery, *TopicalSegmentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TopicalSegmentGroupBy) sqlScan(ctx context.Context, root *TopicalSegmentQuery, v any) error {
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

// TopicalSegmentSelect is the builder for selecting fields of TopicalSegment entities.
type TopicalSegmentSelect struct {
	*TopicalSegmentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TopicalSegmentSelect) Aggregate(fns ...AggregateFunc) *TopicalSegmentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TopicalSegmentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TopicalSegmentQuery, *TopicalSegmentSelect](ctx, _s.TopicalSegmentQuery, _s, _s.inters, v)
}

func (_s *TopicalSegmentSelect) sqlScan(ctx context.Context, root *TopicalSegmentQuery, v any) error {
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
