package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"elegance/internal/domain/model"
	repo "elegance/internal/repository"
)

// =====================
// インメモリのフェイク（DBの不変条件をそのまま再現する）
// =====================

type memProductRepo struct {
	mu       sync.Mutex
	products map[int64]model.Product
}

func newMemProductRepo(products ...model.Product) *memProductRepo {
	m := &memProductRepo{products: map[int64]model.Product{}}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProductRepo) SetPrice(id int64, price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.products[id]
	p.Price = price
	m.products[id] = p
}

func (m *memProductRepo) List(ctx context.Context, f repo.ProductListFilter) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Featured && !p.IsFeatured {
			continue
		}
		if f.Bestseller && !p.IsBestseller {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (m *memProductRepo) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

type memCategoryRepo struct {
	categories []model.Category
}

func (m *memCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	return m.categories, nil
}

// カート。(session, product) のユニーク制約と加算Upsertを再現する。
type memCartRepo struct {
	mu       sync.Mutex
	nextID   int64
	items    map[string]map[int64]*model.CartItem
	products *memProductRepo
}

func newMemCartRepo(products *memProductRepo) *memCartRepo {
	return &memCartRepo{items: map[string]map[int64]*model.CartItem{}, products: products}
}

func (m *memCartRepo) AddOrIncrement(ctx context.Context, sessionID string, productID int64, qty int64) (model.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bySession, ok := m.items[sessionID]
	if !ok {
		bySession = map[int64]*model.CartItem{}
		m.items[sessionID] = bySession
	}

	it, ok := bySession[productID]
	if ok {
		it.Quantity += qty
	} else {
		m.nextID++
		it = &model.CartItem{
			ID:        m.nextID,
			SessionID: sessionID,
			ProductID: productID,
			Quantity:  qty,
		}
		bySession[productID] = it
	}

	out := *it
	if p, ok := m.products.products[productID]; ok {
		cp := p
		out.Product = &cp
	}
	return out, nil
}

func (m *memCartRepo) UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[sessionID][productID]
	if !ok {
		return repo.ErrNotFound
	}
	it.Quantity = qty
	return nil
}

func (m *memCartRepo) Remove(ctx context.Context, sessionID string, productID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items[sessionID], productID)
	return nil
}

func (m *memCartRepo) ListBySession(ctx context.Context, sessionID string) ([]model.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CartItem, 0, len(m.items[sessionID]))
	for _, it := range m.items[sessionID] {
		cp := *it
		if p, ok := m.products.products[it.ProductID]; ok {
			pp := p
			cp.Product = &pp
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCartRepo) ClearBySession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, sessionID)
	return nil
}

// お気に入り。重複挿入は握りつぶす。
type memWishlistRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[string]map[int64]model.WishlistItem
}

func newMemWishlistRepo() *memWishlistRepo {
	return &memWishlistRepo{items: map[string]map[int64]model.WishlistItem{}}
}

func (m *memWishlistRepo) Add(ctx context.Context, sessionID string, productID int64) (model.WishlistItem, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bySession, ok := m.items[sessionID]
	if !ok {
		bySession = map[int64]model.WishlistItem{}
		m.items[sessionID] = bySession
	}
	if existing, ok := bySession[productID]; ok {
		return existing, false, nil
	}
	m.nextID++
	it := model.WishlistItem{ID: m.nextID, SessionID: sessionID, ProductID: productID}
	bySession[productID] = it
	return it, true, nil
}

func (m *memWishlistRepo) Remove(ctx context.Context, sessionID string, productID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[sessionID][productID]; !ok {
		return false, nil
	}
	delete(m.items[sessionID], productID)
	return true, nil
}

func (m *memWishlistRepo) ListBySession(ctx context.Context, sessionID string) ([]model.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.WishlistItem, 0, len(m.items[sessionID]))
	for _, it := range m.items[sessionID] {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// 注文。order_numberのユニーク制約を再現し、衝突注入もできる。
type memOrderStore struct {
	mu            sync.Mutex
	nextID        int64
	orders        map[int64]model.Order
	itemsByOrder  map[int64][]model.OrderItem
	conflictTimes int // 先頭N回のCreateをErrConflictにする
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{
		orders:       map[int64]model.Order{},
		itemsByOrder: map[int64][]model.OrderItem{},
	}
}

type memOrderRepo struct{ store *memOrderStore }

func (m *memOrderRepo) Create(ctx context.Context, order model.Order) (model.Order, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflictTimes > 0 {
		s.conflictTimes--
		return model.Order{}, repo.ErrConflict
	}
	for _, o := range s.orders {
		if o.OrderNumber == order.OrderNumber {
			return model.Order{}, repo.ErrConflict
		}
	}

	s.nextID++
	order.ID = s.nextID
	order.CreatedAt = time.Now()
	s.orders[order.ID] = order
	return order, nil
}

func (m *memOrderRepo) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.OrderNumber == orderNumber {
			o.Items = append([]model.OrderItem{}, s.itemsByOrder[o.ID]...)
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (m *memOrderRepo) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Order{}
	for _, o := range s.orders {
		if o.CustomerEmail == email {
			o.Items = append([]model.OrderItem{}, s.itemsByOrder[o.ID]...)
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return model.Order{}, repo.ErrNotFound
	}
	o.Items = append([]model.OrderItem{}, s.itemsByOrder[orderID]...)
	return o, nil
}

func (m *memOrderRepo) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return repo.ErrNotFound
	}
	o.Status = status
	s.orders[orderID] = o
	return nil
}

type memOrderItemRepo struct{ store *memOrderStore }

func (m *memOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	s := m.store
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.OrderItem, 0, len(items))
	for i, it := range items {
		it.OrderID = orderID
		it.ID = int64(len(s.itemsByOrder[orderID]) + i + 1)
		s.itemsByOrder[orderID] = append(s.itemsByOrder[orderID], it)
		out = append(out, it)
	}
	return out, nil
}

// Txフェイク。コミット/ロールバックはしないが同じリポジトリ群を配る。
type memTx struct {
	orders     *memOrderRepo
	orderItems *memOrderItemRepo
	cart       *memCartRepo
}

func (m *memTx) Orders() repo.OrderRepository         { return m.orders }
func (m *memTx) OrderItems() repo.OrderItemRepository { return m.orderItems }
func (m *memTx) Cart() repo.CartRepository            { return m.cart }

func (m *memTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m)
}

// =====================
// clock / idGen
// =====================

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func (c *fixedClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type seqIDGen struct {
	mu sync.Mutex
	n  int
}

// uuid風の文字列を順に返す（先頭4文字がサフィックスに使われる）
func (g *seqIDGen) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	const hex = "0123456789abcdef"
	a := hex[g.n%16]
	b := hex[(g.n/16)%16]
	return string([]byte{a, b, 'c', 'd'}) + "-0000-0000-0000-000000000000"
}
