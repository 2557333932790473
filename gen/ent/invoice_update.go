// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/invox/invox/gen/ent/invoice"
	"github.com/invox/invox/gen/ent/predicate"
	"github.com/invox/invox/internal/entity"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdate) SetFileID(v string) *InvoiceUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdate) SetFileName(v string) *InvoiceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFileName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdate) SetVendorName(v string) *InvoiceUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorName(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdate) SetVendorAddress(v string) *InvoiceUpdate {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorAddress(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdate) ClearVendorAddress() *InvoiceUpdate {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdate) SetVendorTaxID(v string) *InvoiceUpdate {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableVendorTaxID(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdate) ClearVendorTaxID() *InvoiceUpdate {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdate) SetInvoiceNumber(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdate) SetInvoiceDate(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdate) SetCurrency(v string) *InvoiceUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCurrency(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdate) ClearCurrency() *InvoiceUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdate) SetSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSubtotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdate) AddSubtotal(v float64) *InvoiceUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdate) ClearSubtotal() *InvoiceUpdate {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxPercent sets the "tax_percent" field.
func (_u *InvoiceUpdate) SetTaxPercent(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxPercent()
	_u.mutation.SetTaxPercent(v)
	return _u
}

// SetNillableTaxPercent sets the "tax_percent" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxPercent(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxPercent(*v)
	}
	return _u
}

// AddTaxPercent adds value to the "tax_percent" field.
func (_u *InvoiceUpdate) AddTaxPercent(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxPercent(v)
	return _u
}

// ClearTaxPercent clears the value of the "tax_percent" field.
func (_u *InvoiceUpdate) ClearTaxPercent() *InvoiceUpdate {
	_u.mutation.ClearTaxPercent()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdate) SetTotal(v float64) *InvoiceUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTotal(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdate) AddTotal(v float64) *InvoiceUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdate) ClearTotal() *InvoiceUpdate {
	_u.mutation.ClearTotal()
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *InvoiceUpdate) SetPoNumber(v string) *InvoiceUpdate {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePoNumber(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *InvoiceUpdate) ClearPoNumber() *InvoiceUpdate {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *InvoiceUpdate) SetPoDate(v string) *InvoiceUpdate {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillablePoDate(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// ClearPoDate clears the value of the "po_date" field.
func (_u *InvoiceUpdate) ClearPoDate() *InvoiceUpdate {
	_u.mutation.ClearPoDate()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceUpdate) SetLineItems(v []entity.LineItem) *InvoiceUpdate {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceUpdate) AppendLineItems(v []entity.LineItem) *InvoiceUpdate {
	_u.mutation.AppendLineItems(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.FileID(); ok {
		if err := invoice.FileIDValidator(v); err != nil {
			return &ValidationError{Name: "file_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceDate(); ok {
		if err := invoice.InvoiceDateValidator(v); err != nil {
			return &ValidationError{Name: "invoice_date", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_date": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(invoice.FieldFileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxPercent(); ok {
		_spec.SetField(invoice.FieldTaxPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxPercent(); ok {
		_spec.AddField(invoice.FieldTaxPercent, field.TypeFloat64, value)
	}
	if _u.mutation.TaxPercentCleared() {
		_spec.ClearField(invoice.FieldTaxPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(invoice.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(invoice.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(invoice.FieldPoDate, field.TypeString, value)
	}
	if _u.mutation.PoDateCleared() {
		_spec.ClearField(invoice.FieldPoDate, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldLineItems, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetFileID sets the "file_id" field.
func (_u *InvoiceUpdateOne) SetFileID(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *InvoiceUpdateOne) SetFileName(v string) *InvoiceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFileName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *InvoiceUpdateOne) SetVendorName(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorName(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetVendorAddress sets the "vendor_address" field.
func (_u *InvoiceUpdateOne) SetVendorAddress(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorAddress(v)
	return _u
}

// SetNillableVendorAddress sets the "vendor_address" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorAddress(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorAddress(*v)
	}
	return _u
}

// ClearVendorAddress clears the value of the "vendor_address" field.
func (_u *InvoiceUpdateOne) ClearVendorAddress() *InvoiceUpdateOne {
	_u.mutation.ClearVendorAddress()
	return _u
}

// SetVendorTaxID sets the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) SetVendorTaxID(v string) *InvoiceUpdateOne {
	_u.mutation.SetVendorTaxID(v)
	return _u
}

// SetNillableVendorTaxID sets the "vendor_tax_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableVendorTaxID(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetVendorTaxID(*v)
	}
	return _u
}

// ClearVendorTaxID clears the value of the "vendor_tax_id" field.
func (_u *InvoiceUpdateOne) ClearVendorTaxID() *InvoiceUpdateOne {
	_u.mutation.ClearVendorTaxID()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *InvoiceUpdateOne) SetInvoiceNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *InvoiceUpdateOne) SetInvoiceDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *InvoiceUpdateOne) SetCurrency(v string) *InvoiceUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCurrency(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *InvoiceUpdateOne) ClearCurrency() *InvoiceUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *InvoiceUpdateOne) SetSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSubtotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *InvoiceUpdateOne) AddSubtotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// ClearSubtotal clears the value of the "subtotal" field.
func (_u *InvoiceUpdateOne) ClearSubtotal() *InvoiceUpdateOne {
	_u.mutation.ClearSubtotal()
	return _u
}

// SetTaxPercent sets the "tax_percent" field.
func (_u *InvoiceUpdateOne) SetTaxPercent(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxPercent()
	_u.mutation.SetTaxPercent(v)
	return _u
}

// SetNillableTaxPercent sets the "tax_percent" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxPercent(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxPercent(*v)
	}
	return _u
}

// AddTaxPercent adds value to the "tax_percent" field.
func (_u *InvoiceUpdateOne) AddTaxPercent(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxPercent(v)
	return _u
}

// ClearTaxPercent clears the value of the "tax_percent" field.
func (_u *InvoiceUpdateOne) ClearTaxPercent() *InvoiceUpdateOne {
	_u.mutation.ClearTaxPercent()
	return _u
}

// SetTotal sets the "total" field.
func (_u *InvoiceUpdateOne) SetTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTotal(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InvoiceUpdateOne) AddTotal(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// ClearTotal clears the value of the "total" field.
func (_u *InvoiceUpdateOne) ClearTotal() *InvoiceUpdateOne {
	_u.mutation.ClearTotal()
	return _u
}

// SetPoNumber sets the "po_number" field.
func (_u *InvoiceUpdateOne) SetPoNumber(v string) *InvoiceUpdateOne {
	_u.mutation.SetPoNumber(v)
	return _u
}

// SetNillablePoNumber sets the "po_number" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePoNumber(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPoNumber(*v)
	}
	return _u
}

// ClearPoNumber clears the value of the "po_number" field.
func (_u *InvoiceUpdateOne) ClearPoNumber() *InvoiceUpdateOne {
	_u.mutation.ClearPoNumber()
	return _u
}

// SetPoDate sets the "po_date" field.
func (_u *InvoiceUpdateOne) SetPoDate(v string) *InvoiceUpdateOne {
	_u.mutation.SetPoDate(v)
	return _u
}

// SetNillablePoDate sets the "po_date" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillablePoDate(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetPoDate(*v)
	}
	return _u
}

// ClearPoDate clears the value of the "po_date" field.
func (_u *InvoiceUpdateOne) ClearPoDate() *InvoiceUpdateOne {
	_u.mutation.ClearPoDate()
	return _u
}

// SetLineItems sets the "line_items" field.
func (_u *InvoiceUpdateOne) SetLineItems(v []entity.LineItem) *InvoiceUpdateOne {
	_u.mutation.SetLineItems(v)
	return _u
}

// AppendLineItems appends value to the "line_items" field.
func (_u *InvoiceUpdateOne) AppendLineItems(v []entity.LineItem) *InvoiceUpdateOne {
	_u.mutation.AppendLineItems(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.FileID(); ok {
		if err := invoice.FileIDValidator(v); err != nil {
			return &ValidationError{Name: "file_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := invoice.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VendorName(); ok {
		if err := invoice.VendorNameValidator(v); err != nil {
			return &ValidationError{Name: "vendor_name", err: fmt.Errorf(`ent: validator failed for field "Invoice.vendor_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceDate(); ok {
		if err := invoice.InvoiceDateValidator(v); err != nil {
			return &ValidationError{Name: "invoice_date", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_date": %w`, err)}
		}
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.FileID(); ok {
		_spec.SetField(invoice.FieldFileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(invoice.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(invoice.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorAddress(); ok {
		_spec.SetField(invoice.FieldVendorAddress, field.TypeString, value)
	}
	if _u.mutation.VendorAddressCleared() {
		_spec.ClearField(invoice.FieldVendorAddress, field.TypeString)
	}
	if value, ok := _u.mutation.VendorTaxID(); ok {
		_spec.SetField(invoice.FieldVendorTaxID, field.TypeString, value)
	}
	if _u.mutation.VendorTaxIDCleared() {
		_spec.ClearField(invoice.FieldVendorTaxID, field.TypeString)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(invoice.FieldInvoiceDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(invoice.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(invoice.FieldSubtotal, field.TypeFloat64, value)
	}
	if _u.mutation.SubtotalCleared() {
		_spec.ClearField(invoice.FieldSubtotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxPercent(); ok {
		_spec.SetField(invoice.FieldTaxPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxPercent(); ok {
		_spec.AddField(invoice.FieldTaxPercent, field.TypeFloat64, value)
	}
	if _u.mutation.TaxPercentCleared() {
		_spec.ClearField(invoice.FieldTaxPercent, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(invoice.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.TotalCleared() {
		_spec.ClearField(invoice.FieldTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PoNumber(); ok {
		_spec.SetField(invoice.FieldPoNumber, field.TypeString, value)
	}
	if _u.mutation.PoNumberCleared() {
		_spec.ClearField(invoice.FieldPoNumber, field.TypeString)
	}
	if value, ok := _u.mutation.PoDate(); ok {
		_spec.SetField(invoice.FieldPoDate, field.TypeString, value)
	}
	if _u.mutation.PoDateCleared() {
		_spec.ClearField(invoice.FieldPoDate, field.TypeString)
	}
	if value, ok := _u.mutation.LineItems(); ok {
		_spec.SetField(invoice.FieldLineItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLineItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldLineItems, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
