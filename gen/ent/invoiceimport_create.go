// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

// InvoiceImportCreate is the builder for creating a InvoiceImport entity.
type InvoiceImportCreate struct {
	config
	mutation *InvoiceImportMutation
	hooks    []Hook
}

// SetFilePath sets the "file_path" field.
func (_c *InvoiceImportCreate) SetFilePath(v string) *InvoiceImportCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileHash sets the "file_hash" field.
func (_c *InvoiceImportCreate) SetFileHash(v string) *InvoiceImportCreate {
	_c.mutation.SetFileHash(v)
	return _c
}

// SetYear sets the "year" field.
func (_c *InvoiceImportCreate) SetYear(v int) *InvoiceImportCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *InvoiceImportCreate) SetCity(v string) *InvoiceImportCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetCarrier sets the "carrier" field.
func (_c *InvoiceImportCreate) SetCarrier(v string) *InvoiceImportCreate {
	_c.mutation.SetCarrier(v)
	return _c
}

// SetMonth sets the "month" field.
func (_c *InvoiceImportCreate) SetMonth(v string) *InvoiceImportCreate {
	_c.mutation.SetMonth(v)
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *InvoiceImportCreate) SetInvoiceNumber(v string) *InvoiceImportCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableInvoiceNumber(v *string) *InvoiceImportCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *InvoiceImportCreate) SetDueDate(v time.Time) *InvoiceImportCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableDueDate(v *time.Time) *InvoiceImportCreate {
	if v != nil {
		_c.SetDueDate(*v)
	}
	return _c
}

// SetTotalValue sets the "total_value" field.
func (_c *InvoiceImportCreate) SetTotalValue(v decimal.Decimal) *InvoiceImportCreate {
	_c.mutation.SetTotalValue(v)
	return _c
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableTotalValue(v *decimal.Decimal) *InvoiceImportCreate {
	if v != nil {
		_c.SetTotalValue(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvoiceImportCreate) SetStatus(v string) *InvoiceImportCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableStatus(v *string) *InvoiceImportCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *InvoiceImportCreate) SetErrorCode(v string) *InvoiceImportCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableErrorCode(v *string) *InvoiceImportCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvoiceImportCreate) SetErrorMessage(v string) *InvoiceImportCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableErrorMessage(v *string) *InvoiceImportCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *InvoiceImportCreate) SetConfidenceScore(v int) *InvoiceImportCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableConfidenceScore(v *int) *InvoiceImportCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *InvoiceImportCreate) SetReportID(v uuid.UUID) *InvoiceImportCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableReportID(v *uuid.UUID) *InvoiceImportCreate {
	if v != nil {
		_c.SetReportID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceImportCreate) SetCreatedAt(v time.Time) *InvoiceImportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableCreatedAt(v *time.Time) *InvoiceImportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceImportCreate) SetUpdatedAt(v time.Time) *InvoiceImportCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceImportCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceImportCreate) SetID(v uuid.UUID) *InvoiceImportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceImportCreate) SetNillableID(v *uuid.UUID) *InvoiceImportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReport sets the "report" edge to the Report entity.
func (_c *InvoiceImportCreate) SetReport(v *Report) *InvoiceImportCreate {
	return _c.SetReportID(v.ID)
}

// Mutation returns the InvoiceImportMutation object of the builder.
func (_c *InvoiceImportCreate) Mutation() *InvoiceImportMutation {
	return _c.mutation
}

// Save creates the InvoiceImport in the database.
func (_c *InvoiceImportCreate) Save(ctx context.Context) (*InvoiceImport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceImportCreate) SaveX(ctx context.Context) *InvoiceImport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceImportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceImportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceImportCreate) defaults() {
	if _, ok := _c.mutation.TotalValue(); !ok {
		v := invoiceimport.DefaultTotalValue
		_c.mutation.SetTotalValue(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := invoiceimport.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := invoiceimport.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoiceimport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoiceimport.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoiceimport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceImportCreate) check() error {
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "InvoiceImport.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := invoiceimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileHash(); !ok {
		return &ValidationError{Name: "file_hash", err: errors.New(`ent: missing required field "InvoiceImport.file_hash"`)}
	}
	if v, ok := _c.mutation.FileHash(); ok {
		if err := invoiceimport.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Year(); !ok {
		return &ValidationError{Name: "year", err: errors.New(`ent: missing required field "InvoiceImport.year"`)}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "InvoiceImport.city"`)}
	}
	if _, ok := _c.mutation.Carrier(); !ok {
		return &ValidationError{Name: "carrier", err: errors.New(`ent: missing required field "InvoiceImport.carrier"`)}
	}
	if _, ok := _c.mutation.Month(); !ok {
		return &ValidationError{Name: "month", err: errors.New(`ent: missing required field "InvoiceImport.month"`)}
	}
	if _, ok := _c.mutation.TotalValue(); !ok {
		return &ValidationError{Name: "total_value", err: errors.New(`ent: missing required field "InvoiceImport.total_value"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InvoiceImport.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := invoiceimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "InvoiceImport.confidence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InvoiceImport.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "InvoiceImport.updated_at"`)}
	}
	return nil
}

func (_c *InvoiceImportCreate) sqlSave(ctx context.Context) (*InvoiceImport, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceImportCreate) createSpec() (*InvoiceImport, *sqlgraph.CreateSpec) {
	var (
		_node = &InvoiceImport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoiceimport.Table, sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(invoiceimport.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileHash(); ok {
		_spec.SetField(invoiceimport.FieldFileHash, field.TypeString, value)
		_node.FileHash = value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(invoiceimport.FieldYear, field.TypeInt, value)
		_node.Year = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(invoiceimport.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.Carrier(); ok {
		_spec.SetField(invoiceimport.FieldCarrier, field.TypeString, value)
		_node.Carrier = value
	}
	if value, ok := _c.mutation.Month(); ok {
		_spec.SetField(invoiceimport.FieldMonth, field.TypeString, value)
		_node.Month = value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceimport.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(invoiceimport.FieldDueDate, field.TypeTime, value)
		_node.DueDate = &value
	}
	if value, ok := _c.mutation.TotalValue(); ok {
		_spec.SetField(invoiceimport.FieldTotalValue, field.TypeOther, value)
		_node.TotalValue = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(invoiceimport.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(invoiceimport.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(invoiceimport.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceimport.FieldConfidenceScore, field.TypeInt, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceimport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceimport.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReportIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoiceimport.ReportTable,
			Columns: []string{invoiceimport.ReportColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ReportID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceImportCreateBulk is the builder for creating many InvoiceImport entities in bulk.
type InvoiceImportCreateBulk struct {
	config
	err      error
	builders []*InvoiceImportCreate
}

// Save creates the InvoiceImport entities in the database.
func (_c *InvoiceImportCreateBulk) Save(ctx context.Context) ([]*InvoiceImport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InvoiceImport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceImportMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceImportCreateBulk) SaveX(ctx context.Context) []*InvoiceImport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceImportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceImportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
