// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/memograph/memograph/ent/pendingapproval"
	"github.com/memograph/memograph/ent/predicate"
)

// PendingApprovalQuery is the builder for querying PendingApproval entities.
type PendingApprovalQuery struct {
	config
	ctx        *QueryContext
	order      []pendingapproval.OrderOption
	inters     []Interceptor
	predicates []predicate.PendingApproval
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PendingApprovalQuery builder.
func (_q *PendingApprovalQuery) Where(ps ...predicate.PendingApproval) *PendingApprovalQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PendingApprovalQuery) Limit(limit int) *PendingApprovalQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PendingApprovalQuery) Offset(offset int) *PendingApprovalQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PendingApprovalQuery) Unique(unique bool) *PendingApprovalQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PendingApprovalQuery) Order(o ...pendingapproval.OrderOption) *PendingApprovalQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first PendingApproval entity from the query.
// Returns a *NotFoundError when no PendingApproval was found.
func (_q *PendingApprovalQuery) First(ctx context.Context) (*PendingApproval, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pendingapproval.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PendingApprovalQuery) FirstX(ctx context.Context) *PendingApproval {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PendingApproval ID from the query.
// Returns a *NotFoundError when no PendingApproval ID was found.
func (_q *PendingApprovalQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pendingapproval.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PendingApprovalQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PendingApproval entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PendingApproval entity is found.
// Returns a *NotFoundError when no PendingApproval entities are found.
func (_q *PendingApprovalQuery) Only(ctx context.Context) (*PendingApproval, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pendingapproval.Label}
	default:
		return nil, &NotSingularError{pendingapproval.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PendingApprovalQuery) OnlyX(ctx context.Context) *PendingApproval {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PendingApproval ID in the query.
// Returns a *NotSingularError when more than one PendingApproval ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PendingApprovalQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pendingapproval.Label}
	default:
		err = &NotSingularError{pendingapproval.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PendingApprovalQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PendingApprovals.
func (_q *PendingApprovalQuery) All(ctx context.Context) ([]*PendingApproval, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PendingApproval, *PendingApprovalQuery]()
	return withInterceptors[[]*PendingApproval](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PendingApprovalQuery) AllX(ctx context.Context) []*PendingApproval {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PendingApproval IDs.
func (_q *PendingApprovalQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pendingapproval.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PendingApprovalQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PendingApprovalQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PendingApprovalQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PendingApprovalQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PendingApprovalQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PendingApprovalQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PendingApprovalQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PendingApprovalQuery) Clone() *PendingApprovalQuery {
	if _q == nil {
		return nil
	}
	return &PendingApprovalQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]pendingapproval.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PendingApproval{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ItemType pendingapproval.ItemType `json:"item_type,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PendingApproval.Query().
//		GroupBy(pendingapproval.FieldItemType).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PendingApprovalQuery) GroupBy(field string, fields ...string) *PendingApprovalGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PendingApprovalGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pendingapproval.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ItemType pendingapproval.ItemType `json:"item_type,omitempty"`
//	}
//
//	client.PendingApproval.Query().
//		Select(pendingapproval.FieldItemType).
//		Scan(ctx, &v)
func (_q *PendingApprovalQuery) Select(fields ...string) *PendingApprovalSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PendingApprovalSelect{PendingApprovalQuery: _q}
	sbuild.label = pendingapproval.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PendingApprovalSelect configured with the given aggregations.
func (_q *PendingApprovalQuery) Aggregate(fns ...AggregateFunc) *PendingApprovalSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PendingApprovalQuery) prepareQuery(ctx context.Context) error {
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
		if !pendingapproval.ValidColumn(f) {
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

func (_q *PendingApprovalQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PendingApproval, error) {
	var (
		nodes = []*PendingApproval{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PendingApproval).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PendingApproval{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *PendingApprovalQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *PendingApprovalQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingapproval.FieldID)
		for i := range fields {
			if fields[i] != pendingapproval.FieldID {
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

func (_q *PendingApprovalQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pendingapproval.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pendingapproval.Columns
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
func (_q *PendingApprovalQuery) ForUpdate(opts ...sql.LockOption) *PendingApprovalQuery {
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
func (_q *PendingApprovalQuery) ForShare(opts ...sql.LockOption) *PendingApprovalQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PendingApprovalGroupBy is the group-by builder for PendingApproval entities.
type PendingApprovalGroupBy struct {
	selector
	build *PendingApprovalQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PendingApprovalGroupBy) Aggregate(fns ...AggregateFunc) *PendingApprovalGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PendingApprovalGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PendingApprovalQuery, *PendingApprovalGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PendingApprovalGroupBy) sqlScan(ctx context.Context, root *PendingApprovalQuery, v any) error {
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

// PendingApprovalSelect is the builder for selecting fields of PendingApproval entities.
type PendingApprovalSelect struct {
	*PendingApprovalQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PendingApprovalSelect) Aggregate(fns ...AggregateFunc) *PendingApprovalSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PendingApprovalSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PendingApprovalQuery, *PendingApprovalSelect](ctx, _s.PendingApprovalQuery, _s, _s.inters, v)
}

func (_s *PendingApprovalSelect) sqlScan(ctx context.Context, root *PendingApprovalQuery, v any) error {
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
