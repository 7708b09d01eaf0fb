// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/predicate"
)

// InvoiceImportDelete is the builder for deleting a InvoiceImport entity.
type InvoiceImportDelete struct {
	config
	hooks    []Hook
	mutation *InvoiceImportMutation
}

// Where appends a list predicates to the InvoiceImportDelete builder.
func (_d *InvoiceImportDelete) Where(ps ...predicate.InvoiceImport) *InvoiceImportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InvoiceImportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceImportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InvoiceImportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(invoiceimport.Table, sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// InvoiceImportDeleteOne is the builder for deleting a single InvoiceImport entity.
type InvoiceImportDeleteOne struct {
	_d *InvoiceImportDelete
}

// Where appends a list predicates to the InvoiceImportDelete builder.
func (_d *InvoiceImportDeleteOne) Where(ps ...predicate.InvoiceImport) *InvoiceImportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InvoiceImportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{invoiceimport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InvoiceImportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
