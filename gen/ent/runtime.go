// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telbill/invoice-pipeline/db/ent/schema"
	"github.com/telbill/invoice-pipeline/gen/ent/auditlog"
	"github.com/telbill/invoice-pipeline/gen/ent/category"
	"github.com/telbill/invoice-pipeline/gen/ent/invoiceimport"
	"github.com/telbill/invoice-pipeline/gen/ent/report"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[2].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntity is the schema descriptor for entity field.
	auditlogDescEntity := auditlogFields[3].Descriptor()
	// auditlog.EntityValidator is a validator for the "entity" field. It is called by the builders before save.
	auditlog.EntityValidator = auditlogDescEntity.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogFields[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	invoiceimportFields := schema.InvoiceImport{}.Fields()
	_ = invoiceimportFields
	// invoiceimportDescFilePath is the schema descriptor for file_path field.
	invoiceimportDescFilePath := invoiceimportFields[1].Descriptor()
	// invoiceimport.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	invoiceimport.FilePathValidator = invoiceimportDescFilePath.Validators[0].(func(string) error)
	// invoiceimportDescFileHash is the schema descriptor for file_hash field.
	invoiceimportDescFileHash := invoiceimportFields[2].Descriptor()
	// invoiceimport.FileHashValidator is a validator for the "file_hash" field. It is called by the builders before save.
	invoiceimport.FileHashValidator = func() func(string) error {
		validators := invoiceimportDescFileHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_hash string) error {
			for _, fn := range fns {
				if err := fn(file_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceimportDescTotalValue is the schema descriptor for total_value field.
	invoiceimportDescTotalValue := invoiceimportFields[9].Descriptor()
	// invoiceimport.DefaultTotalValue holds the default value on creation for the total_value field.
	invoiceimport.DefaultTotalValue = invoiceimportDescTotalValue.Default.(decimal.Decimal)
	// invoiceimportDescStatus is the schema descriptor for status field.
	invoiceimportDescStatus := invoiceimportFields[10].Descriptor()
	// invoiceimport.DefaultStatus holds the default value on creation for the status field.
	invoiceimport.DefaultStatus = invoiceimportDescStatus.Default.(string)
	// invoiceimport.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	invoiceimport.StatusValidator = invoiceimportDescStatus.Validators[0].(func(string) error)
	// invoiceimportDescConfidenceScore is the schema descriptor for confidence_score field.
	invoiceimportDescConfidenceScore := invoiceimportFields[13].Descriptor()
	// invoiceimport.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	invoiceimport.DefaultConfidenceScore = invoiceimportDescConfidenceScore.Default.(int)
	// invoiceimportDescCreatedAt is the schema descriptor for created_at field.
	invoiceimportDescCreatedAt := invoiceimportFields[15].Descriptor()
	// invoiceimport.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoiceimport.DefaultCreatedAt = invoiceimportDescCreatedAt.Default.(func() time.Time)
	// invoiceimportDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceimportDescUpdatedAt := invoiceimportFields[16].Descriptor()
	// invoiceimport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoiceimport.DefaultUpdatedAt = invoiceimportDescUpdatedAt.Default.(func() time.Time)
	// invoiceimport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoiceimport.UpdateDefaultUpdatedAt = invoiceimportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceimportDescID is the schema descriptor for id field.
	invoiceimportDescID := invoiceimportFields[0].Descriptor()
	// invoiceimport.DefaultID holds the default value on creation for the id field.
	invoiceimport.DefaultID = invoiceimportDescID.Default.(func() uuid.UUID)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[1].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = reportDescTitle.Validators[0].(func(string) error)
	// reportDescTotalValue is the schema descriptor for total_value field.
	reportDescTotalValue := reportFields[4].Descriptor()
	// report.DefaultTotalValue holds the default value on creation for the total_value field.
	report.DefaultTotalValue = reportDescTotalValue.Default.(decimal.Decimal)
	// reportDescStatus is the schema descriptor for status field.
	reportDescStatus := reportFields[5].Descriptor()
	// report.DefaultStatus holds the default value on creation for the status field.
	report.DefaultStatus = reportDescStatus.Default.(string)
	// report.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	report.StatusValidator = reportDescStatus.Validators[0].(func(string) error)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[7].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[8].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescID is the schema descriptor for id field.
	reportDescID := reportFields[0].Descriptor()
	// report.DefaultID holds the default value on creation for the id field.
	report.DefaultID = reportDescID.Default.(func() uuid.UUID)
}
