// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/invox/invox/db/ent/schema"
	"github.com/invox/invox/gen/ent/invoice"
	"github.com/invox/invox/internal/entity"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFileID is the schema descriptor for file_id field.
	invoiceDescFileID := invoiceFields[1].Descriptor()
	// invoice.FileIDValidator is a validator for the "file_id" field. It is called by the builders before save.
	invoice.FileIDValidator = invoiceDescFileID.Validators[0].(func(string) error)
	// invoiceDescFileName is the schema descriptor for file_name field.
	invoiceDescFileName := invoiceFields[2].Descriptor()
	// invoice.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	invoice.FileNameValidator = invoiceDescFileName.Validators[0].(func(string) error)
	// invoiceDescVendorName is the schema descriptor for vendor_name field.
	invoiceDescVendorName := invoiceFields[3].Descriptor()
	// invoice.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	invoice.VendorNameValidator = invoiceDescVendorName.Validators[0].(func(string) error)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[6].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescInvoiceDate is the schema descriptor for invoice_date field.
	invoiceDescInvoiceDate := invoiceFields[7].Descriptor()
	// invoice.InvoiceDateValidator is a validator for the "invoice_date" field. It is called by the builders before save.
	invoice.InvoiceDateValidator = invoiceDescInvoiceDate.Validators[0].(func(string) error)
	// invoiceDescLineItems is the schema descriptor for line_items field.
	invoiceDescLineItems := invoiceFields[14].Descriptor()
	// invoice.DefaultLineItems holds the default value on creation for the line_items field.
	invoice.DefaultLineItems = invoiceDescLineItems.Default.([]entity.LineItem)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[15].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[16].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
