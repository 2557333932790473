package invoices

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invox/invox/internal/common"
	"github.com/invox/invox/internal/entity"
	"github.com/invox/invox/internal/schema"
)

// fakeGateway keeps records in memory with the same not-found semantics as the
// real repository.
type fakeGateway struct {
	records map[uuid.UUID]*entity.StoredInvoice
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{records: make(map[uuid.UUID]*entity.StoredInvoice)}
}

func (g *fakeGateway) Create(_ context.Context, rec entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	now := time.Now().UTC()
	stored := &entity.StoredInvoice{
		ID:        uuid.New(),
		FileID:    rec.FileID,
		FileName:  rec.FileName,
		Vendor:    rec.Vendor,
		Invoice:   rec.Invoice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.records[stored.ID] = stored
	return stored, nil
}

func (g *fakeGateway) Get(_ context.Context, id uuid.UUID) (*entity.StoredInvoice, error) {
	stored, ok := g.records[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	return stored, nil
}

func (g *fakeGateway) Update(_ context.Context, id uuid.UUID, rec entity.InvoiceRecord) (*entity.StoredInvoice, error) {
	stored, ok := g.records[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: %w", id, common.ErrNotFound)
	}
	stored.FileID = rec.FileID
	stored.FileName = rec.FileName
	stored.Vendor = rec.Vendor
	stored.Invoice = rec.Invoice
	stored.UpdatedAt = time.Now().UTC()
	return stored, nil
}

func (g *fakeGateway) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := g.records[id]; !ok {
		return false, nil
	}
	delete(g.records, id)
	return true, nil
}

func (g *fakeGateway) List(_ context.Context, filter string) ([]*entity.StoredInvoice, error) {
	var out []*entity.StoredInvoice
	for _, stored := range g.records {
		if filter == "" ||
			strings.Contains(strings.ToLower(stored.Vendor.Name), strings.ToLower(filter)) ||
			strings.Contains(strings.ToLower(stored.Invoice.Number), strings.ToLower(filter)) {
			out = append(out, stored)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *fakeGateway) {
	t.Helper()
	v, err := schema.NewValidator(nil)
	require.NoError(t, err)
	gw := newFakeGateway()
	return NewService(gw, v, nil), gw
}

const validJSON = `{
	"fileId": "https://example.com/inv.pdf",
	"fileName": "inv.pdf",
	"vendor": {"name": "Acme"},
	"invoice": {
		"number": "INV-001",
		"date": "2026-01-15",
		"subtotal": 100,
		"taxPercent": 18,
		"lineItems": []
	}
}`

func TestServiceCreate_DerivesTotal(t *testing.T) {
	svc, _ := newTestService(t)

	stored, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)
	require.NotNil(t, stored.Invoice.Total)
	assert.Equal(t, 118.00, *stored.Invoice.Total)
}

func TestServiceCreate_UnwrapsEnvelope(t *testing.T) {
	svc, _ := newTestService(t)

	wrapped := `{"data": ` + validJSON + `}`
	stored, err := svc.Create(context.Background(), []byte(wrapped))
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Vendor.Name)
}

func TestServiceCreate_InvalidPayload(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), []byte(`{"fileId": "x"}`))
	var valErr *schema.SchemaValidationError
	require.True(t, errors.As(err, &valErr))
}

func TestServiceCreate_MalformedJSON(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), []byte(`{`))
	var synErr *schema.JSONSyntaxError
	require.True(t, errors.As(err, &synErr))
}

func TestServiceUpdate_MergesVendorKeys(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID,
		[]byte(`{"vendor": {"address": "2 High St"}}`))
	require.NoError(t, err)

	assert.Equal(t, "Acme", updated.Vendor.Name)
	require.NotNil(t, updated.Vendor.Address)
	assert.Equal(t, "2 High St", *updated.Vendor.Address)
}

func TestServiceUpdate_RevalidationFailureAbortsWrite(t *testing.T) {
	svc, gw := newTestService(t)

	created, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID,
		[]byte(`{"vendor": {"name": ""}}`))
	var valErr *schema.SchemaValidationError
	require.True(t, errors.As(err, &valErr))

	// The stored record is untouched.
	stored, err := gw.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Vendor.Name)
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), uuid.New(), []byte(`{"fileName": "x.pdf"}`))
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestServiceUpdate_ClientTimestampsIgnored(t *testing.T) {
	svc, gw := newTestService(t)

	created, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID,
		[]byte(`{"createdAt": "1999-01-01T00:00:00Z"}`))
	require.NoError(t, err)

	stored, err := gw.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, 1999, stored.CreatedAt.Year())
}

func TestServiceDelete(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete reports false without error.
	deleted, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestServiceList_Filter(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), []byte(validJSON))
	require.NoError(t, err)

	matches, err := svc.List(context.Background(), "acme")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	none, err := svc.List(context.Background(), "globex")
	require.NoError(t, err)
	assert.Empty(t, none)
}
