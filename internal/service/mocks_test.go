package service

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/Raymond9734/customer-records-backend/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockStore backs both mock repositories so cascades and existence checks
// behave like the real schema
type mockStore struct {
	customers map[int64]*models.Customer
	addresses map[int64]*models.Address
	nextID    int64
	err       error
	lastList  models.CustomerFilter
}

func newMockStore() *mockStore {
	return &mockStore{
		customers: map[int64]*models.Customer{},
		addresses: map[int64]*models.Address{},
	}
}

func (m *mockStore) id() int64 {
	m.nextID++
	return m.nextID
}

type mockCustomerRepository struct{ *mockStore }

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if m.err != nil {
		return m.err
	}
	for _, c := range m.customers {
		if c.PhoneNumber == customer.PhoneNumber {
			return models.ErrConflictWithMsg(models.MsgDuplicatePhone)
		}
	}
	customer.ID = m.id()
	stored := *customer
	m.customers[customer.ID] = &stored
	return nil
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	return c, nil
}

func (m *mockCustomerRepository) GetWithAddresses(ctx context.Context, id int64) (*models.CustomerDetail, error) {
	c, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	addresses, _ := (&mockAddressRepository{m.mockStore}).ListByCustomer(ctx, id)
	return &models.CustomerDetail{Customer: *c, Addresses: addresses}, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter models.CustomerFilter) ([]*models.CustomerSummary, int64, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	m.lastList = filter

	ids := make([]int64, 0, len(m.customers))
	for id := range m.customers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := []*models.CustomerSummary{}
	for _, id := range ids {
		all = append(all, &models.CustomerSummary{Customer: *m.customers[id]})
	}

	start := models.CalculateOffset(filter.Page, filter.Limit)
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if end > len(all) {
		end = len(all)
	}

	return all[start:end], int64(len(all)), nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.customers[customer.ID]; !ok {
		return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	stored := *customer
	m.customers[customer.ID] = &stored
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.customers[id]; !ok {
		return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	delete(m.customers, id)
	for aid, a := range m.addresses {
		if a.CustomerID == id {
			delete(m.addresses, aid)
		}
	}
	return nil
}

type mockAddressRepository struct{ *mockStore }

func (m *mockAddressRepository) CreateForCustomer(ctx context.Context, address *models.Address) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.customers[address.CustomerID]; !ok {
		return models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	address.ID = m.id()
	stored := *address
	m.addresses[address.ID] = &stored
	return nil
}

func (m *mockAddressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*models.Address, error) {
	if _, ok := m.customers[customerID]; !ok {
		return nil, models.ErrNotFoundWithMsg(models.MsgCustomerNotFound)
	}
	list := []*models.Address{}
	for _, a := range m.addresses {
		if a.CustomerID == customerID {
			list = append(list, a)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *mockAddressRepository) Update(ctx context.Context, address *models.Address) error {
	existing, ok := m.addresses[address.ID]
	if !ok {
		return models.ErrNotFoundWithMsg(models.MsgAddressNotFound)
	}
	address.CustomerID = existing.CustomerID
	stored := *address
	m.addresses[address.ID] = &stored
	return nil
}

func (m *mockAddressRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.addresses[id]; !ok {
		return models.ErrNotFoundWithMsg(models.MsgAddressNotFound)
	}
	delete(m.addresses, id)
	return nil
}
