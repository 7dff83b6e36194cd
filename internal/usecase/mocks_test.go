package usecase

import (
	"context"

	"github.com/Husam600/nd035-c4-Security-and-DevOps/internal/entity"
)

type fakeUserRepo struct {
	users     map[string]*entity.User
	nextID    int64
	createErr error
	created   []entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}, nextID: 1}
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	r.created = append(r.created, *user)
	return nil
}

type fakeItemRepo struct {
	items map[int64]entity.Item
	calls int
}

func newFakeItemRepo(items ...entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: map[int64]entity.Item{}}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*entity.Item, error) {
	r.calls++
	it, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &it, nil
}

func (r *fakeItemRepo) FindByName(_ context.Context, name string) ([]entity.Item, error) {
	var out []entity.Item
	for _, it := range r.items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]entity.Item, error) {
	out := make([]entity.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

type fakeCartRepo struct {
	carts   map[int64]*entity.Cart
	saved   []entity.Cart
	saveErr error
}

func newFakeCartRepo(carts ...*entity.Cart) *fakeCartRepo {
	r := &fakeCartRepo{carts: map[int64]*entity.Cart{}}
	for _, c := range carts {
		r.carts[c.UserID] = c
	}
	return r
}

func (r *fakeCartRepo) FindByUser(_ context.Context, userID int64) (*entity.Cart, error) {
	c, ok := r.carts[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	// hand back a copy, like a real store would
	cp := *c
	cp.Items = append([]entity.Item(nil), c.Items...)
	return &cp, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *entity.Cart) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *cart
	cp.Items = append([]entity.Item(nil), cart.Items...)
	r.carts[cart.UserID] = &cp
	r.saved = append(r.saved, cp)
	return nil
}

type fakeOrderRepo struct {
	orders  []entity.Order
	saveErr error
}

func (r *fakeOrderRepo) Save(_ context.Context, order *entity.Order) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *order
	cp.Items = append([]entity.Item(nil), order.Items...)
	r.orders = append(r.orders, cp)
	return nil
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID int64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeEvents struct {
	published []OrderSubmittedMsg
	err       error
}

func (e *fakeEvents) PublishSubmitted(_ context.Context, msg OrderSubmittedMsg) error {
	if e.err != nil {
		return e.err
	}
	e.published = append(e.published, msg)
	return nil
}

type fakeItemCache struct {
	items   map[int64]entity.Item
	sets    int
	deletes int
}

func newFakeItemCache() *fakeItemCache {
	return &fakeItemCache{items: map[int64]entity.Item{}}
}

func (c *fakeItemCache) Get(_ context.Context, id int64) (*entity.Item, error) {
	it, ok := c.items[id]
	if !ok {
		return nil, ErrCacheMiss
	}
	return &it, nil
}

func (c *fakeItemCache) Set(_ context.Context, item *entity.Item) error {
	c.sets++
	c.items[item.ID] = *item
	return nil
}

func (c *fakeItemCache) Delete(_ context.Context, id int64) error {
	c.deletes++
	delete(c.items, id)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
