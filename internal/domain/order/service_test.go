package order

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock implementations ---

type mockOrderRepo struct {
	byID      map[string]*Order
	created   []*Order
	updated   []*Order
	createErr error
	updateErr error
}

func newMockOrderRepo(orders ...*Order) *mockOrderRepo {
	byID := make(map[string]*Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	return &mockOrderRepo{byID: byID}
}

func (m *mockOrderRepo) List(_ context.Context) ([]Order, error) {
	out := make([]Order, 0, len(m.byID))
	for _, o := range m.byID {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) Get(_ context.Context, id string) (*Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Clone(), nil
}

func (m *mockOrderRepo) Create(_ context.Context, o *Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[o.ID] = o.Clone()
	m.created = append(m.created, o)
	return nil
}

func (m *mockOrderRepo) Update(_ context.Context, o *Order) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.byID[o.ID] = o.Clone()
	m.updated = append(m.updated, o)
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type mockIDSource struct {
	n   int
	err error
}

func (m *mockIDSource) Next(_ context.Context) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.n++
	return fmt.Sprintf("ORD%03d", m.n), nil
}

// --- Helpers ---

func validDraft(t *testing.T) *Draft {
	t.Helper()
	dr := NewDraft()
	dr.CustomerName = "John Smith"
	dr.CustomerPhone = "+1234567890"
	dr.AddLine()
	require.NoError(t, dr.SetLineItem(0, testItem("1", "MOS Burger", "8.50")))
	require.NoError(t, dr.SetLineQuantity(0, 2))
	return dr
}

// --- Tests ---

func TestServiceCreate(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockIDSource{})

	o, err := svc.Create(context.Background(), validDraft(t))
	require.NoError(t, err)

	assert.Equal(t, "ORD001", o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.True(t, d("17.00").Equal(o.Subtotal))
	assert.True(t, d("0").Equal(o.DiscountRate))
	assert.True(t, d("17.00").Equal(o.Total))
	assert.False(t, o.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
}

func TestServiceCreate_SequentialIDs(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockIDSource{})

	first, err := svc.Create(context.Background(), validDraft(t))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validDraft(t))
	require.NoError(t, err)

	assert.Equal(t, "ORD001", first.ID)
	assert.Equal(t, "ORD002", second.ID)
}

func TestServiceCreate_ValidationBlocksSave(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockIDSource{})

	dr := NewDraft()
	_, err := svc.Create(context.Background(), dr)
	require.ErrorIs(t, err, ErrCustomerNameRequired)

	// Nothing persisted, no id consumed.
	assert.Empty(t, repo.created)
	o, err := svc.Create(context.Background(), validDraft(t))
	require.NoError(t, err)
	assert.Equal(t, "ORD001", o.ID)
}

func TestServiceCreate_RepoError(t *testing.T) {
	repo := newMockOrderRepo()
	repo.createErr = errors.New("db write failed")
	svc := NewService(repo, &mockIDSource{})

	_, err := svc.Create(context.Background(), validDraft(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create order")

	// The failed save consumed ORD001; the sequence moves on rather than
	// reusing the id.
	repo.createErr = nil
	o, err := svc.Create(context.Background(), validDraft(t))
	require.NoError(t, err)
	assert.Equal(t, "ORD002", o.ID)
}

func TestServiceUpdate_RecomputesWholesale(t *testing.T) {
	created := time.Date(2024, 1, 20, 12, 30, 0, 0, time.UTC)
	existing := &Order{
		ID:            "ORD001",
		CustomerName:  "John Smith",
		CustomerPhone: "+1234567890",
		Lines:         []LineItem{line("1", "MOS Burger", "8.50", 2)},
		Subtotal:      d("17.00"),
		DiscountRate:  d("0"),
		Total:         d("17.00"),
		Status:        StatusPending,
		CreatedAt:     created,
	}
	repo := newMockOrderRepo(existing)
	svc := NewService(repo, &mockIDSource{n: 1})

	dr := DraftOf(existing)
	require.NoError(t, dr.SetLineQuantity(0, 7))
	dr.Status = StatusCompleted

	updated, err := svc.Update(context.Background(), "ORD001", dr)
	require.NoError(t, err)

	// 7 * 8.50 = 59.50 crosses the discount threshold.
	assert.Equal(t, "ORD001", updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.True(t, d("59.50").Equal(updated.Subtotal))
	assert.True(t, d("0.1").Equal(updated.DiscountRate))
	assert.True(t, d("53.55").Equal(updated.Total))
	assert.Equal(t, StatusCompleted, updated.Status)
	require.Len(t, repo.updated, 1)
}

func TestServiceUpdate_NotFound(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockIDSource{})

	_, err := svc.Update(context.Background(), "ORD999", validDraft(t))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestServiceCreate_IDSourceError(t *testing.T) {
	repo := newMockOrderRepo()
	svc := NewService(repo, &mockIDSource{err: errors.New("sequence unavailable")})

	_, err := svc.Create(context.Background(), validDraft(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next order id")
	assert.Empty(t, repo.created)
}
