// Code generated by ent, DO NOT EDIT.

package invoiceimport

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldID, id))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldFilePath, v))
}

// FileHash applies equality check predicate on the "file_hash" field. It's identical to FileHashEQ.
func FileHash(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldFileHash, v))
}

// Year applies equality check predicate on the "year" field. It's identical to YearEQ.
func Year(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldYear, v))
}

// City applies equality check predicate on the "city" field. It's identical to CityEQ.
func City(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCity, v))
}

// Carrier applies equality check predicate on the "carrier" field. It's identical to CarrierEQ.
func Carrier(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCarrier, v))
}

// Month applies equality check predicate on the "month" field. It's identical to MonthEQ.
func Month(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldMonth, v))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldInvoiceNumber, v))
}

// DueDate applies equality check predicate on the "due_date" field. It's identical to DueDateEQ.
func DueDate(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldDueDate, v))
}

// TotalValue applies equality check predicate on the "total_value" field. It's identical to TotalValueEQ.
func TotalValue(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldTotalValue, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldStatus, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldErrorMessage, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldConfidenceScore, v))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldReportID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldUpdatedAt, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldFilePath, v))
}

// FileHashEQ applies the EQ predicate on the "file_hash" field.
func FileHashEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldFileHash, v))
}

// FileHashNEQ applies the NEQ predicate on the "file_hash" field.
func FileHashNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldFileHash, v))
}

// FileHashIn applies the In predicate on the "file_hash" field.
func FileHashIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldFileHash, vs...))
}

// FileHashNotIn applies the NotIn predicate on the "file_hash" field.
func FileHashNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldFileHash, vs...))
}

// FileHashGT applies the GT predicate on the "file_hash" field.
func FileHashGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldFileHash, v))
}

// FileHashGTE applies the GTE predicate on the "file_hash" field.
func FileHashGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldFileHash, v))
}

// FileHashLT applies the LT predicate on the "file_hash" field.
func FileHashLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldFileHash, v))
}

// FileHashLTE applies the LTE predicate on the "file_hash" field.
func FileHashLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldFileHash, v))
}

// FileHashContains applies the Contains predicate on the "file_hash" field.
func FileHashContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldFileHash, v))
}

// FileHashHasPrefix applies the HasPrefix predicate on the "file_hash" field.
func FileHashHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldFileHash, v))
}

// FileHashHasSuffix applies the HasSuffix predicate on the "file_hash" field.
func FileHashHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldFileHash, v))
}

// FileHashEqualFold applies the EqualFold predicate on the "file_hash" field.
func FileHashEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldFileHash, v))
}

// FileHashContainsFold applies the ContainsFold predicate on the "file_hash" field.
func FileHashContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldFileHash, v))
}

// YearEQ applies the EQ predicate on the "year" field.
func YearEQ(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldYear, v))
}

// YearNEQ applies the NEQ predicate on the "year" field.
func YearNEQ(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldYear, v))
}

// YearIn applies the In predicate on the "year" field.
func YearIn(vs ...int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldYear, vs...))
}

// YearNotIn applies the NotIn predicate on the "year" field.
func YearNotIn(vs ...int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldYear, vs...))
}

// YearGT applies the GT predicate on the "year" field.
func YearGT(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldYear, v))
}

// YearGTE applies the GTE predicate on the "year" field.
func YearGTE(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldYear, v))
}

// YearLT applies the LT predicate on the "year" field.
func YearLT(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldYear, v))
}

// YearLTE applies the LTE predicate on the "year" field.
func YearLTE(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldYear, v))
}

// CityEQ applies the EQ predicate on the "city" field.
func CityEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCity, v))
}

// CityNEQ applies the NEQ predicate on the "city" field.
func CityNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldCity, v))
}

// CityIn applies the In predicate on the "city" field.
func CityIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldCity, vs...))
}

// CityNotIn applies the NotIn predicate on the "city" field.
func CityNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldCity, vs...))
}

// CityGT applies the GT predicate on the "city" field.
func CityGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldCity, v))
}

// CityGTE applies the GTE predicate on the "city" field.
func CityGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldCity, v))
}

// CityLT applies the LT predicate on the "city" field.
func CityLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldCity, v))
}

// CityLTE applies the LTE predicate on the "city" field.
func CityLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldCity, v))
}

// CityContains applies the Contains predicate on the "city" field.
func CityContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldCity, v))
}

// CityHasPrefix applies the HasPrefix predicate on the "city" field.
func CityHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldCity, v))
}

// CityHasSuffix applies the HasSuffix predicate on the "city" field.
func CityHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldCity, v))
}

// CityEqualFold applies the EqualFold predicate on the "city" field.
func CityEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldCity, v))
}

// CityContainsFold applies the ContainsFold predicate on the "city" field.
func CityContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldCity, v))
}

// CarrierEQ applies the EQ predicate on the "carrier" field.
func CarrierEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCarrier, v))
}

// CarrierNEQ applies the NEQ predicate on the "carrier" field.
func CarrierNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldCarrier, v))
}

// CarrierIn applies the In predicate on the "carrier" field.
func CarrierIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldCarrier, vs...))
}

// CarrierNotIn applies the NotIn predicate on the "carrier" field.
func CarrierNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldCarrier, vs...))
}

// CarrierGT applies the GT predicate on the "carrier" field.
func CarrierGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldCarrier, v))
}

// CarrierGTE applies the GTE predicate on the "carrier" field.
func CarrierGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldCarrier, v))
}

// CarrierLT applies the LT predicate on the "carrier" field.
func CarrierLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldCarrier, v))
}

// CarrierLTE applies the LTE predicate on the "carrier" field.
func CarrierLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldCarrier, v))
}

// CarrierContains applies the Contains predicate on the "carrier" field.
func CarrierContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldCarrier, v))
}

// CarrierHasPrefix applies the HasPrefix predicate on the "carrier" field.
func CarrierHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldCarrier, v))
}

// CarrierHasSuffix applies the HasSuffix predicate on the "carrier" field.
func CarrierHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldCarrier, v))
}

// CarrierEqualFold applies the EqualFold predicate on the "carrier" field.
func CarrierEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldCarrier, v))
}

// CarrierContainsFold applies the ContainsFold predicate on the "carrier" field.
func CarrierContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldCarrier, v))
}

// MonthEQ applies the EQ predicate on the "month" field.
func MonthEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldMonth, v))
}

// MonthNEQ applies the NEQ predicate on the "month" field.
func MonthNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldMonth, v))
}

// MonthIn applies the In predicate on the "month" field.
func MonthIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldMonth, vs...))
}

// MonthNotIn applies the NotIn predicate on the "month" field.
func MonthNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldMonth, vs...))
}

// MonthGT applies the GT predicate on the "month" field.
func MonthGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldMonth, v))
}

// MonthGTE applies the GTE predicate on the "month" field.
func MonthGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldMonth, v))
}

// MonthLT applies the LT predicate on the "month" field.
func MonthLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldMonth, v))
}

// MonthLTE applies the LTE predicate on the "month" field.
func MonthLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldMonth, v))
}

// MonthContains applies the Contains predicate on the "month" field.
func MonthContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldMonth, v))
}

// MonthHasPrefix applies the HasPrefix predicate on the "month" field.
func MonthHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldMonth, v))
}

// MonthHasSuffix applies the HasSuffix predicate on the "month" field.
func MonthHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldMonth, v))
}

// MonthEqualFold applies the EqualFold predicate on the "month" field.
func MonthEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldMonth, v))
}

// MonthContainsFold applies the ContainsFold predicate on the "month" field.
func MonthContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldMonth, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberIsNil applies the IsNil predicate on the "invoice_number" field.
func InvoiceNumberIsNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIsNull(FieldInvoiceNumber))
}

// InvoiceNumberNotNil applies the NotNil predicate on the "invoice_number" field.
func InvoiceNumberNotNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotNull(FieldInvoiceNumber))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// DueDateEQ applies the EQ predicate on the "due_date" field.
func DueDateEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldDueDate, v))
}

// DueDateNEQ applies the NEQ predicate on the "due_date" field.
func DueDateNEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldDueDate, v))
}

// DueDateIn applies the In predicate on the "due_date" field.
func DueDateIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldDueDate, vs...))
}

// DueDateNotIn applies the NotIn predicate on the "due_date" field.
func DueDateNotIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldDueDate, vs...))
}

// DueDateGT applies the GT predicate on the "due_date" field.
func DueDateGT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldDueDate, v))
}

// DueDateGTE applies the GTE predicate on the "due_date" field.
func DueDateGTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldDueDate, v))
}

// DueDateLT applies the LT predicate on the "due_date" field.
func DueDateLT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldDueDate, v))
}

// DueDateLTE applies the LTE predicate on the "due_date" field.
func DueDateLTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldDueDate, v))
}

// DueDateIsNil applies the IsNil predicate on the "due_date" field.
func DueDateIsNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIsNull(FieldDueDate))
}

// DueDateNotNil applies the NotNil predicate on the "due_date" field.
func DueDateNotNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotNull(FieldDueDate))
}

// TotalValueEQ applies the EQ predicate on the "total_value" field.
func TotalValueEQ(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldTotalValue, v))
}

// TotalValueNEQ applies the NEQ predicate on the "total_value" field.
func TotalValueNEQ(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldTotalValue, v))
}

// TotalValueIn applies the In predicate on the "total_value" field.
func TotalValueIn(vs ...decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldTotalValue, vs...))
}

// TotalValueNotIn applies the NotIn predicate on the "total_value" field.
func TotalValueNotIn(vs ...decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldTotalValue, vs...))
}

// TotalValueGT applies the GT predicate on the "total_value" field.
func TotalValueGT(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldTotalValue, v))
}

// TotalValueGTE applies the GTE predicate on the "total_value" field.
func TotalValueGTE(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldTotalValue, v))
}

// TotalValueLT applies the LT predicate on the "total_value" field.
func TotalValueLT(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldTotalValue, v))
}

// TotalValueLTE applies the LTE predicate on the "total_value" field.
func TotalValueLTE(v decimal.Decimal) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldTotalValue, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldErrorCode, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v int) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldConfidenceScore, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...uuid.UUID) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDIsNil applies the IsNil predicate on the "report_id" field.
func ReportIDIsNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIsNull(FieldReportID))
}

// ReportIDNotNil applies the NotNil predicate on the "report_id" field.
func ReportIDNotNil() predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotNull(FieldReportID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasReport applies the HasEdge predicate on the "report" edge.
func HasReport() predicate.InvoiceImport {
	return predicate.InvoiceImport(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReportTable, ReportColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportWith applies the HasEdge predicate on the "report" edge with a given conditions (other predicates).
func HasReportWith(preds ...predicate.Report) predicate.InvoiceImport {
	return predicate.InvoiceImport(func(s *sql.Selector) {
		step := newReportStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InvoiceImport) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InvoiceImport) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InvoiceImport) predicate.InvoiceImport {
	return predicate.InvoiceImport(sql.NotPredicates(p))
}
