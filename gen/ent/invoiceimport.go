// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

// InvoiceImport is the model entity for the InvoiceImport schema.
type InvoiceImport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// FileHash holds the value of the "file_hash" field.
	FileHash string `json:"file_hash,omitempty"`
	// Year holds the value of the "year" field.
	Year int `json:"year,omitempty"`
	// City holds the value of the "city" field.
	City string `json:"city,omitempty"`
	// Carrier holds the value of the "carrier" field.
	Carrier string `json:"carrier,omitempty"`
	// Month holds the value of the "month" field.
	Month string `json:"month,omitempty"`
	// InvoiceNumber holds the value of the "invoice_number" field.
	InvoiceNumber *string `json:"invoice_number,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// TotalValue holds the value of the "total_value" field.
	TotalValue decimal.Decimal `json:"total_value,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorCode holds the value of the "error_code" field.
	ErrorCode *string `json:"error_code,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore int `json:"confidence_score,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID *uuid.UUID `json:"report_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvoiceImportQuery when eager-loading is set.
	Edges        InvoiceImportEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvoiceImportEdges holds the relations/edges for other nodes in the graph.
type InvoiceImportEdges struct {
	// Report holds the value of the report edge.
	Report *Report `json:"report,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReportOrErr returns the Report value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvoiceImportEdges) ReportOrErr() (*Report, error) {
	if e.Report != nil {
		return e.Report, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: report.Label}
	}
	return nil, &NotLoadedError{edge: "report"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InvoiceImport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case invoiceimport.FieldReportID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case invoiceimport.FieldTotalValue:
			values[i] = new(decimal.Decimal)
		case invoiceimport.FieldYear, invoiceimport.FieldConfidenceScore:
			values[i] = new(sql.NullInt64)
		case invoiceimport.FieldFilePath, invoiceimport.FieldFileHash, invoiceimport.FieldCity, invoiceimport.FieldCarrier, invoiceimport.FieldMonth, invoiceimport.FieldInvoiceNumber, invoiceimport.FieldStatus, invoiceimport.FieldErrorCode, invoiceimport.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case invoiceimport.FieldDueDate, invoiceimport.FieldCreatedAt, invoiceimport.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case invoiceimport.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InvoiceImport fields.
func (_m *InvoiceImport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case invoiceimport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case invoiceimport.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case invoiceimport.FieldFileHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_hash", values[i])
			} else if value.Valid {
				_m.FileHash = value.String
			}
		case invoiceimport.FieldYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field year", values[i])
			} else if value.Valid {
				_m.Year = int(value.Int64)
			}
		case invoiceimport.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case invoiceimport.FieldCarrier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field carrier", values[i])
			} else if value.Valid {
				_m.Carrier = value.String
			}
		case invoiceimport.FieldMonth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field month", values[i])
			} else if value.Valid {
				_m.Month = value.String
			}
		case invoiceimport.FieldInvoiceNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field invoice_number", values[i])
			} else if value.Valid {
				_m.InvoiceNumber = new(string)
				*_m.InvoiceNumber = value.String
			}
		case invoiceimport.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case invoiceimport.FieldTotalValue:
			if value, ok := values[i].(*decimal.Decimal); !ok {
				return fmt.Errorf("unexpected type %T for field total_value", values[i])
			} else if value != nil {
				_m.TotalValue = *value
			}
		case invoiceimport.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case invoiceimport.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case invoiceimport.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case invoiceimport.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = int(value.Int64)
			}
		case invoiceimport.FieldReportID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = new(uuid.UUID)
				*_m.ReportID = *value.S.(*uuid.UUID)
			}
		case invoiceimport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case invoiceimport.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InvoiceImport.
// This includes values selected through modifiers, order, etc.
func (_m *InvoiceImport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReport queries the "report" edge of the InvoiceImport entity.
func (_m *InvoiceImport) QueryReport() *ReportQuery {
	return NewInvoiceImportClient(_m.config).QueryReport(_m)
}

// Update returns a builder for updating this InvoiceImport.
// Note that you need to call InvoiceImport.Unwrap() before calling this method if this InvoiceImport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InvoiceImport) Update() *InvoiceImportUpdateOne {
	return NewInvoiceImportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InvoiceImport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InvoiceImport) Unwrap() *InvoiceImport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InvoiceImport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InvoiceImport) String() string {
	var builder strings.Builder
	builder.WriteString("InvoiceImport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("file_hash=")
	builder.WriteString(_m.FileHash)
	builder.WriteString(", ")
	builder.WriteString("year=")
	builder.WriteString(fmt.Sprintf("%v", _m.Year))
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("carrier=")
	builder.WriteString(_m.Carrier)
	builder.WriteString(", ")
	builder.WriteString("month=")
	builder.WriteString(_m.Month)
	builder.WriteString(", ")
	if v := _m.InvoiceNumber; v != nil {
		builder.WriteString("invoice_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalValue))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	if v := _m.ReportID; v != nil {
		builder.WriteString("report_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InvoiceImports is a parsable slice of InvoiceImport.
type InvoiceImports []*InvoiceImport
