// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/gen/ent/category"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/predicate"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ReportUpdate) SetTitle(v string) *ReportUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTitle(v *string) *ReportUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetReferenceDate sets the "reference_date" field.
func (_u *ReportUpdate) SetReferenceDate(v time.Time) *ReportUpdate {
	_u.mutation.SetReferenceDate(v)
	return _u
}

// SetNillableReferenceDate sets the "reference_date" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableReferenceDate(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetReferenceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *ReportUpdate) SetDueDate(v time.Time) *ReportUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDueDate(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *ReportUpdate) ClearDueDate() *ReportUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *ReportUpdate) SetTotalValue(v decimal.Decimal) *ReportUpdate {
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableTotalValue(v *decimal.Decimal) *ReportUpdate {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v string) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *string) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReportUpdate) SetCategoryID(v uuid.UUID) *ReportUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCategoryID(v *uuid.UUID) *ReportUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdate) SetCreatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableCreatedAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ReportUpdate) SetCategory(v *Category) *ReportUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddImportIDs adds the "imports" edge to the InvoiceImport entity by IDs.
func (_u *ReportUpdate) AddImportIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.AddImportIDs(ids...)
	return _u
}

// AddImports adds the "imports" edges to the InvoiceImport entity.
func (_u *ReportUpdate) AddImports(v ...*InvoiceImport) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ReportUpdate) ClearCategory() *ReportUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearImports clears all "imports" edges to the InvoiceImport entity.
func (_u *ReportUpdate) ClearImports() *ReportUpdate {
	_u.mutation.ClearImports()
	return _u
}

// RemoveImportIDs removes the "imports" edge to InvoiceImport entities by IDs.
func (_u *ReportUpdate) RemoveImportIDs(ids ...uuid.UUID) *ReportUpdate {
	_u.mutation.RemoveImportIDs(ids...)
	return _u
}

// RemoveImports removes "imports" edges to InvoiceImport entities.
func (_u *ReportUpdate) RemoveImports(v ...*InvoiceImport) *ReportUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.category"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceDate(); ok {
		_spec.SetField(report.FieldReferenceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(report.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(report.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(report.FieldTotalValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportsIDs(); len(nodes) > 0 && !_u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetTitle sets the "title" field.
func (_u *ReportUpdateOne) SetTitle(v string) *ReportUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTitle(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetReferenceDate sets the "reference_date" field.
func (_u *ReportUpdateOne) SetReferenceDate(v time.Time) *ReportUpdateOne {
	_u.mutation.SetReferenceDate(v)
	return _u
}

// SetNillableReferenceDate sets the "reference_date" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableReferenceDate(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetReferenceDate(*v)
	}
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *ReportUpdateOne) SetDueDate(v time.Time) *ReportUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDueDate(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *ReportUpdateOne) ClearDueDate() *ReportUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *ReportUpdateOne) SetTotalValue(v decimal.Decimal) *ReportUpdateOne {
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableTotalValue(v *decimal.Decimal) *ReportUpdateOne {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v string) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *ReportUpdateOne) SetCategoryID(v uuid.UUID) *ReportUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCategoryID(v *uuid.UUID) *ReportUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReportUpdateOne) SetCreatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableCreatedAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *ReportUpdateOne) SetCategory(v *Category) *ReportUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddImportIDs adds the "imports" edge to the InvoiceImport entity by IDs.
func (_u *ReportUpdateOne) AddImportIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.AddImportIDs(ids...)
	return _u
}

// AddImports adds the "imports" edges to the InvoiceImport entity.
func (_u *ReportUpdateOne) AddImports(v ...*InvoiceImport) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImportIDs(ids...)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *ReportUpdateOne) ClearCategory() *ReportUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearImports clears all "imports" edges to the InvoiceImport entity.
func (_u *ReportUpdateOne) ClearImports() *ReportUpdateOne {
	_u.mutation.ClearImports()
	return _u
}

// RemoveImportIDs removes the "imports" edge to InvoiceImport entities by IDs.
func (_u *ReportUpdateOne) RemoveImportIDs(ids ...uuid.UUID) *ReportUpdateOne {
	_u.mutation.RemoveImportIDs(ids...)
	return _u
}

// RemoveImports removes "imports" edges to InvoiceImport entities.
func (_u *ReportUpdateOne) RemoveImports(v ...*InvoiceImport) *ReportUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImportIDs(ids...)
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := report.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Report.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.category"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(report.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReferenceDate(); ok {
		_spec.SetField(report.FieldReferenceDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(report.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(report.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(report.FieldTotalValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(report.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.CategoryTable,
			Columns: []string{report.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImportsIDs(); len(nodes) > 0 && !_u.mutation.ImportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   report.ImportsTable,
			Columns: []string{report.ImportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
