package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/milktea/internal/domain/errors"
	"github.com/polkiloo/milktea/internal/domain/model"
)

// CatalogRepositoryStub serves catalog entries from in-memory slices.
type CatalogRepositoryStub struct {
	Drinks   []model.Drink
	Sizes    []model.Size
	Flavors  []model.Flavor
	Toppings []model.Topping
	Err      error
}

// NewCatalogRepositoryStub returns a stub holding a small reference menu.
func NewCatalogRepositoryStub() *CatalogRepositoryStub {
	return &CatalogRepositoryStub{
		Drinks: []model.Drink{
			{ID: 1, Name: "Classic Milk Tea", BasePrice: decimal.RequireFromString("4.50"), Available: true},
			{ID: 2, Name: "Jasmine Green Tea", BasePrice: decimal.RequireFromString("4.00"), Available: true},
			{ID: 3, Name: "Seasonal Special", BasePrice: decimal.RequireFromString("6.00"), Available: false},
		},
		Sizes: []model.Size{
			{ID: 1, Name: "Small (12oz)", PriceMultiplier: decimal.RequireFromString("0.85")},
			{ID: 2, Name: "Medium (16oz)", PriceMultiplier: decimal.RequireFromString("1.00")},
			{ID: 3, Name: "Large (20oz)", PriceMultiplier: decimal.RequireFromString("1.25")},
		},
		Flavors: []model.Flavor{
			{ID: 1, Name: "Original", AdditionalPrice: decimal.Zero},
			{ID: 2, Name: "Taro", AdditionalPrice: decimal.RequireFromString("0.50")},
		},
		Toppings: []model.Topping{
			{ID: 1, Name: "Tapioca Pearls", Price: decimal.RequireFromString("0.75")},
			{ID: 2, Name: "Grass Jelly", Price: decimal.RequireFromString("0.60")},
		},
	}
}

// ListAvailableDrinks returns drinks flagged available.
func (s *CatalogRepositoryStub) ListAvailableDrinks(context.Context) ([]model.Drink, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Drink
	for _, d := range s.Drinks {
		if d.Available {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListSizes returns configured sizes.
func (s *CatalogRepositoryStub) ListSizes(context.Context) ([]model.Size, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Sizes, nil
}

// ListFlavors returns configured flavors.
func (s *CatalogRepositoryStub) ListFlavors(context.Context) ([]model.Flavor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Flavors, nil
}

// ListToppings returns configured toppings.
func (s *CatalogRepositoryStub) ListToppings(context.Context) ([]model.Topping, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Toppings, nil
}

// GetDrink looks drink up by id regardless of availability.
func (s *CatalogRepositoryStub) GetDrink(_ context.Context, id int64) (*model.Drink, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, d := range s.Drinks {
		if d.ID == id {
			drink := d
			return &drink, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetSize looks size up by id.
func (s *CatalogRepositoryStub) GetSize(_ context.Context, id int64) (*model.Size, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, v := range s.Sizes {
		if v.ID == id {
			size := v
			return &size, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetFlavor looks flavor up by id.
func (s *CatalogRepositoryStub) GetFlavor(_ context.Context, id int64) (*model.Flavor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, v := range s.Flavors {
		if v.ID == id {
			flavor := v
			return &flavor, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetToppings returns the known toppings among ids, ordered by id.
func (s *CatalogRepositoryStub) GetToppings(_ context.Context, ids []int64) ([]model.Topping, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []model.Topping
	for _, t := range s.Toppings {
		if _, ok := want[t.ID]; ok {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// TransitionCall records TransitionStatus invocations.
type TransitionCall struct {
	Number string
	From   model.OrderStatus
	To     model.OrderStatus
}

// OrderRepositoryStub keeps orders in memory and allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, model.NewOrder) (*model.Order, error)
	GetByNumberFn      func(context.Context, string) (*model.Order, error)
	NumberExistsFn     func(context.Context, string) (bool, error)
	TransitionStatusFn func(context.Context, string, model.OrderStatus, model.OrderStatus) (bool, error)

	mu          sync.Mutex
	orders      map[string]*model.Order
	nextID      int64
	Created     []model.NewOrder
	Transitions []TransitionCall
}

// NewOrderRepositoryStub constructs stub with initialized storage.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{orders: make(map[string]*model.Order)}
}

// Put stores an order directly, bypassing Create.
func (s *OrderRepositoryStub) Put(order model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[string]*model.Order)
	}
	o := order
	s.orders[order.Number] = &o
}

// Create stores the order as placed unless the number is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, in model.NewOrder) (*model.Order, error) {
	s.mu.Lock()
	s.Created = append(s.Created, in)
	s.mu.Unlock()
	if s.CreateFn != nil {
		return s.CreateFn(ctx, in)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.orders == nil {
		s.orders = make(map[string]*model.Order)
	}
	if _, exists := s.orders[in.Number]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	s.nextID++
	now := time.Now().UTC()
	payment := in.Payment
	payment.ID = s.nextID
	payment.OrderID = s.nextID
	payment.CreatedAt = now
	items := make([]model.OrderItem, len(in.Items))
	for i, item := range in.Items {
		item.ID = int64(i + 1)
		item.OrderID = s.nextID
		items[i] = item
	}
	order := &model.Order{
		ID:          s.nextID,
		Number:      in.Number,
		Status:      model.OrderStatusPlaced,
		TotalAmount: in.TotalAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       items,
		Payment:     &payment,
	}
	s.orders[in.Number] = order
	cp := *order
	return &cp, nil
}

// GetByNumber returns a copy of stored order.
func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.GetByNumberFn != nil {
		return s.GetByNumberFn(ctx, number)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[number]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domainErrors.ErrNotFound
}

// NumberExists reports whether number is stored.
func (s *OrderRepositoryStub) NumberExists(ctx context.Context, number string) (bool, error) {
	if s.NumberExistsFn != nil {
		return s.NumberExistsFn(ctx, number)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.orders[number]
	return ok, nil
}

// TransitionStatus applies compare-and-set on stored status.
func (s *OrderRepositoryStub) TransitionStatus(ctx context.Context, number string, from, to model.OrderStatus) (bool, error) {
	s.mu.Lock()
	s.Transitions = append(s.Transitions, TransitionCall{Number: number, From: from, To: to})
	s.mu.Unlock()
	if s.TransitionStatusFn != nil {
		return s.TransitionStatusFn(ctx, number, from, to)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[number]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return true, nil
}

// Status returns stored status of an order.
func (s *OrderRepositoryStub) Status(number string) model.OrderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[number]; ok {
		return o.Status
	}
	return ""
}

// Len returns number of stored orders.
func (s *OrderRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// SequenceGenerator yields predefined order numbers, then repeats the last one.
type SequenceGenerator struct {
	mu      sync.Mutex
	Numbers []string
	Err     error
	calls   int
}

// Next returns next number in sequence.
func (g *SequenceGenerator) Next() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	if len(g.Numbers) == 0 {
		return "000000", nil
	}
	i := g.calls
	if i >= len(g.Numbers) {
		i = len(g.Numbers) - 1
	}
	g.calls++
	return g.Numbers[i], nil
}

// Calls returns how many numbers were drawn.
func (g *SequenceGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}
