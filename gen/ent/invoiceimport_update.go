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
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/predicate"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

// InvoiceImportUpdate is the builder for updating InvoiceImport entities.
type InvoiceImportUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceImportMutation
}

// Where appends a list predicates to the InvoiceImportUpdate builder.
func (_u *InvoiceImportUpdate) Where(ps ...predicate.InvoiceImport) *InvoiceImportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceImportUpdate) SetFilePath(v string) *InvoiceImportUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableFilePath(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *InvoiceImportUpdate) SetFileHash(v string) *InvoiceImportUpdate {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableFileHash(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *InvoiceImportUpdate) SetYear(v int) *InvoiceImportUpdate {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableYear(v *int) *InvoiceImportUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *InvoiceImportUpdate) AddYear(v int) *InvoiceImportUpdate {
	_u.mutation.AddYear(v)
	return _u
}

// SetCity sets the "city" field.
func (_u *InvoiceImportUpdate) SetCity(v string) *InvoiceImportUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableCity(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *InvoiceImportUpdate) SetCarrier(v string) *InvoiceImportUpdate {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableCarrier(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *InvoiceImportUpdate) SetMonth(v string) *InvoiceImportUpdate {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableMonth(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceImportUpdate) SetInvoiceNumber(v string) *InvoiceImportUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableInvoiceNumber(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceImportUpdate) ClearInvoiceNumber() *InvoiceImportUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceImportUpdate) SetDueDate(v time.Time) *InvoiceImportUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableDueDate(v *time.Time) *InvoiceImportUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceImportUpdate) ClearDueDate() *InvoiceImportUpdate {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *InvoiceImportUpdate) SetTotalValue(v decimal.Decimal) *InvoiceImportUpdate {
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableTotalValue(v *decimal.Decimal) *InvoiceImportUpdate {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceImportUpdate) SetStatus(v string) *InvoiceImportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableStatus(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *InvoiceImportUpdate) SetErrorCode(v string) *InvoiceImportUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableErrorCode(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *InvoiceImportUpdate) ClearErrorCode() *InvoiceImportUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvoiceImportUpdate) SetErrorMessage(v string) *InvoiceImportUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableErrorMessage(v *string) *InvoiceImportUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvoiceImportUpdate) ClearErrorMessage() *InvoiceImportUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceImportUpdate) SetConfidenceScore(v int) *InvoiceImportUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableConfidenceScore(v *int) *InvoiceImportUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceImportUpdate) AddConfidenceScore(v int) *InvoiceImportUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InvoiceImportUpdate) SetReportID(v uuid.UUID) *InvoiceImportUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableReportID(v *uuid.UUID) *InvoiceImportUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *InvoiceImportUpdate) ClearReportID() *InvoiceImportUpdate {
	_u.mutation.ClearReportID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceImportUpdate) SetCreatedAt(v time.Time) *InvoiceImportUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceImportUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceImportUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceImportUpdate) SetUpdatedAt(v time.Time) *InvoiceImportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *InvoiceImportUpdate) SetReport(v *Report) *InvoiceImportUpdate {
	return _u.SetReportID(v.ID)
}

// Mutation returns the InvoiceImportMutation object of the builder.
func (_u *InvoiceImportUpdate) Mutation() *InvoiceImportMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *InvoiceImportUpdate) ClearReport() *InvoiceImportUpdate {
	_u.mutation.ClearReport()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceImportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceImportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceImportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceImportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceImportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoiceimport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceImportUpdate) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := invoiceimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := invoiceimport.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoiceimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceImportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceimport.Table, invoiceimport.Columns, sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoiceimport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(invoiceimport.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(invoiceimport.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(invoiceimport.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(invoiceimport.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(invoiceimport.FieldCarrier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(invoiceimport.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceimport.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoiceimport.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoiceimport.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoiceimport.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(invoiceimport.FieldTotalValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoiceimport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(invoiceimport.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(invoiceimport.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(invoiceimport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(invoiceimport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceimport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceimport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceimport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceimport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceimport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceImportUpdateOne is the builder for updating a single InvoiceImport entity.
type InvoiceImportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceImportMutation
}

// SetFilePath sets the "file_path" field.
func (_u *InvoiceImportUpdateOne) SetFilePath(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableFilePath(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileHash sets the "file_hash" field.
func (_u *InvoiceImportUpdateOne) SetFileHash(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetFileHash(v)
	return _u
}

// SetNillableFileHash sets the "file_hash" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableFileHash(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetFileHash(*v)
	}
	return _u
}

// SetYear sets the "year" field.
func (_u *InvoiceImportUpdateOne) SetYear(v int) *InvoiceImportUpdateOne {
	_u.mutation.ResetYear()
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableYear(v *int) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// AddYear adds value to the "year" field.
func (_u *InvoiceImportUpdateOne) AddYear(v int) *InvoiceImportUpdateOne {
	_u.mutation.AddYear(v)
	return _u
}

// SetCity sets the "city" field.
func (_u *InvoiceImportUpdateOne) SetCity(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableCity(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetCarrier sets the "carrier" field.
func (_u *InvoiceImportUpdateOne) SetCarrier(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetCarrier(v)
	return _u
}

// SetNillableCarrier sets the "carrier" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableCarrier(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetCarrier(*v)
	}
	return _u
}

// SetMonth sets the "month" field.
func (_u *InvoiceImportUpdateOne) SetMonth(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetMonth(v)
	return _u
}

// SetNillableMonth sets the "month" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableMonth(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetMonth(*v)
	}
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceImportUpdateOne) SetInvoiceNumber(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *InvoiceImportUpdateOne) ClearInvoiceNumber() *InvoiceImportUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *InvoiceImportUpdateOne) SetDueDate(v time.Time) *InvoiceImportUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableDueDate(v *time.Time) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// ClearDueDate clears the value of the "due_date" field.
func (_u *InvoiceImportUpdateOne) ClearDueDate() *InvoiceImportUpdateOne {
	_u.mutation.ClearDueDate()
	return _u
}

// SetTotalValue sets the "total_value" field.
func (_u *InvoiceImportUpdateOne) SetTotalValue(v decimal.Decimal) *InvoiceImportUpdateOne {
	_u.mutation.SetTotalValue(v)
	return _u
}

// SetNillableTotalValue sets the "total_value" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableTotalValue(v *decimal.Decimal) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetTotalValue(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvoiceImportUpdateOne) SetStatus(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableStatus(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *InvoiceImportUpdateOne) SetErrorCode(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableErrorCode(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *InvoiceImportUpdateOne) ClearErrorCode() *InvoiceImportUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvoiceImportUpdateOne) SetErrorMessage(v string) *InvoiceImportUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableErrorMessage(v *string) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvoiceImportUpdateOne) ClearErrorMessage() *InvoiceImportUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InvoiceImportUpdateOne) SetConfidenceScore(v int) *InvoiceImportUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableConfidenceScore(v *int) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InvoiceImportUpdateOne) AddConfidenceScore(v int) *InvoiceImportUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *InvoiceImportUpdateOne) SetReportID(v uuid.UUID) *InvoiceImportUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableReportID(v *uuid.UUID) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// ClearReportID clears the value of the "report_id" field.
func (_u *InvoiceImportUpdateOne) ClearReportID() *InvoiceImportUpdateOne {
	_u.mutation.ClearReportID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceImportUpdateOne) SetCreatedAt(v time.Time) *InvoiceImportUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceImportUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceImportUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceImportUpdateOne) SetUpdatedAt(v time.Time) *InvoiceImportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetReport sets the "report" edge to the Report entity.
func (_u *InvoiceImportUpdateOne) SetReport(v *Report) *InvoiceImportUpdateOne {
	return _u.SetReportID(v.ID)
}

// Mutation returns the InvoiceImportMutation object of the builder.
func (_u *InvoiceImportUpdateOne) Mutation() *InvoiceImportMutation {
	return _u.mutation
}

// ClearReport clears the "report" edge to the Report entity.
func (_u *InvoiceImportUpdateOne) ClearReport() *InvoiceImportUpdateOne {
	_u.mutation.ClearReport()
	return _u
}

// Where appends a list predicates to the InvoiceImportUpdate builder.
func (_u *InvoiceImportUpdateOne) Where(ps ...predicate.InvoiceImport) *InvoiceImportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceImportUpdateOne) Select(field string, fields ...string) *InvoiceImportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InvoiceImport entity.
func (_u *InvoiceImportUpdateOne) Save(ctx context.Context) (*InvoiceImport, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceImportUpdateOne) SaveX(ctx context.Context) *InvoiceImport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceImportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceImportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceImportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoiceimport.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceImportUpdateOne) check() error {
	if v, ok := _u.mutation.FilePath(); ok {
		if err := invoiceimport.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHash(); ok {
		if err := invoiceimport.FileHashValidator(v); err != nil {
			return &ValidationError{Name: "file_hash", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.file_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := invoiceimport.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InvoiceImport.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceImportUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceImport, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoiceimport.Table, invoiceimport.Columns, sqlgraph.NewFieldSpec(invoiceimport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceImport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoiceimport.FieldID)
		for _, f := range fields {
			if !invoiceimport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoiceimport.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(invoiceimport.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHash(); ok {
		_spec.SetField(invoiceimport.FieldFileHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(invoiceimport.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYear(); ok {
		_spec.AddField(invoiceimport.FieldYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(invoiceimport.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Carrier(); ok {
		_spec.SetField(invoiceimport.FieldCarrier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Month(); ok {
		_spec.SetField(invoiceimport.FieldMonth, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoiceimport.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(invoiceimport.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(invoiceimport.FieldDueDate, field.TypeTime, value)
	}
	if _u.mutation.DueDateCleared() {
		_spec.ClearField(invoiceimport.FieldDueDate, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalValue(); ok {
		_spec.SetField(invoiceimport.FieldTotalValue, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(invoiceimport.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(invoiceimport.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(invoiceimport.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(invoiceimport.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(invoiceimport.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(invoiceimport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(invoiceimport.FieldConfidenceScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoiceimport.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoiceimport.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReportCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InvoiceImport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoiceimport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
