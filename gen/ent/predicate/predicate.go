// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// InvoiceImport is the predicate function for invoiceimport builders.
type InvoiceImport func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)
