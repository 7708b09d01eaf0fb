// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "entity", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "before_state", Type: field.TypeJSON, Nullable: true},
		{Name: "after_state", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
	}
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// InvoiceImportsColumns holds the columns for the "invoice_imports" table.
	InvoiceImportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_path", Type: field.TypeString},
		{Name: "file_hash", Type: field.TypeString, Unique: true, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "year", Type: field.TypeInt},
		{Name: "city", Type: field.TypeString},
		{Name: "carrier", Type: field.TypeString},
		{Name: "month", Type: field.TypeString},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_value", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "confidence_score", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "report_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceImportsTable holds the schema information for the "invoice_imports" table.
	InvoiceImportsTable = &schema.Table{
		Name:       "invoice_imports",
		Columns:    InvoiceImportsColumns,
		PrimaryKey: []*schema.Column{InvoiceImportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_imports_reports_imports",
				Columns:    []*schema.Column{InvoiceImportsColumns[16]},
				RefColumns: []*schema.Column{ReportsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// ReportsColumns holds the columns for the "reports" table.
	ReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "reference_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_value", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "numeric(12,2)", "sqlite3": "numeric(12,2)"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "category_id", Type: field.TypeUUID},
	}
	// ReportsTable holds the schema information for the "reports" table.
	ReportsTable = &schema.Table{
		Name:       "reports",
		Columns:    ReportsColumns,
		PrimaryKey: []*schema.Column{ReportsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reports_categories_reports",
				Columns:    []*schema.Column{ReportsColumns[8]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		CategoriesTable,
		InvoiceImportsTable,
		ReportsTable,
	}
)

func init() {
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	InvoiceImportsTable.ForeignKeys[0].RefTable = ReportsTable
	InvoiceImportsTable.Annotation = &entsql.Annotation{
		Table: "invoice_imports",
	}
	ReportsTable.ForeignKeys[0].RefTable = CategoriesTable
	ReportsTable.Annotation = &entsql.Annotation{
		Table: "reports",
	}
}
