package routes

import (
	"context"
	"sort"
	"sync"

	"fooddelivery/models"
)

// In-memory stand-ins for the MongoDB repositories.

type memUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return models.ErrDuplicateUser
		}
	}
	m.users = append(m.users, *u)
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID.Hex() == id {
			u := u
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memUsers) List(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User{}, m.users...), nil
}

type memAdmins struct {
	mu     sync.Mutex
	admins []models.Admin
}

func (m *memAdmins) Create(_ context.Context, a *models.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.admins {
		if existing.Username == a.Username {
			return models.ErrDuplicateUser
		}
	}
	m.admins = append(m.admins, *a)
	return nil
}

func (m *memAdmins) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if a.Username == username {
			a := a
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func (m *memSessions) Create(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *memSessions) FindByID(_ context.Context, id string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &s, nil
}

func (m *memSessions) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

type memCart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func (m *memCart) Insert(_ context.Context, item *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *item)
	return nil
}

func (m *memCart) DeleteOwned(_ context.Context, owner, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.UserID == owner && it.ID.Hex() == itemID {
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return nil
}

func (m *memCart) ListByOwner(_ context.Context, owner string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CartItem{}
	for _, it := range m.items {
		if it.UserID == owner {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCart) DeleteAllByOwner(_ context.Context, owner string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	kept := m.items[:0]
	for _, it := range m.items {
		if it.UserID == owner {
			n++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return n, nil
}

type memOrders struct {
	mu     sync.Mutex
	orders map[string]models.Order
}

func (m *memOrders) Insert(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.orders[o.OrderID]; exists {
		return models.ErrDuplicateOrder
	}
	m.orders[o.OrderID] = *o
	return nil
}

func (m *memOrders) FindByOrderID(_ context.Context, orderID string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &o, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, orderID string, from, to models.OrderStatus) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || o.Status() != from {
		return nil, models.ErrInvalidTransition
	}
	o.OrderStatus = to
	m.orders[orderID] = o
	return &o, nil
}

func (m *memOrders) list(keep func(models.Order) bool) []models.Order {
	out := []models.Order{}
	for _, o := range m.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out
}

func (m *memOrders) ListByOwner(_ context.Context, owner string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list(func(o models.Order) bool { return o.OrderedBy == owner }), nil
}

func (m *memOrders) ListAll(context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list(func(models.Order) bool { return true }), nil
}

func (m *memOrders) Delete(_ context.Context, orderID, owner string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[orderID]
	if !ok || (owner != "" && o.OrderedBy != owner) {
		return 0, nil
	}
	delete(m.orders, orderID)
	return 1, nil
}

func (m *memOrders) ShippedSummary(context.Context) (models.ShippedSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var s models.ShippedSummary
	for _, o := range m.orders {
		if o.Status() == models.StatusShipped {
			s.Count++
			s.TotalAmount += o.OrderAmount
		}
	}
	return s, nil
}

type memFeedback struct {
	mu    sync.Mutex
	items []models.Feedback
}

func (m *memFeedback) Insert(_ context.Context, fb *models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *fb)
	return nil
}

func (m *memFeedback) List(context.Context) ([]models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Feedback{}, m.items...), nil
}

func (m *memFeedback) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, fb := range m.items {
		if fb.ID.Hex() != id {
			kept = append(kept, fb)
		}
	}
	m.items = kept
	return nil
}

type memMenu struct {
	mu    sync.Mutex
	items []models.MenuItem
}

func (m *memMenu) Insert(_ context.Context, item *models.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, *item)
	return nil
}

func (m *memMenu) List(_ context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.MenuItem{}
	for _, it := range m.items {
		if !onlyAvailable || it.Available {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memMenu) Update(_ context.Context, id string, patch models.MenuItemPatch) (*models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID.Hex() != id {
			continue
		}
		if patch.Name != nil {
			it.Name = *patch.Name
		}
		if patch.Price != nil {
			it.Price = *patch.Price
		}
		if patch.Available != nil {
			it.Available = *patch.Available
		}
		m.items[i] = it
		return &it, nil
	}
	return nil, models.ErrNotFound
}

func (m *memMenu) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ID.Hex() != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	return nil
}

type fakeStore struct {
	err error
}

func (f fakeStore) Ping(context.Context) error {
	return f.err
}
