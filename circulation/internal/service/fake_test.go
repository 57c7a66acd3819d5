package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/circulation-service/circulation/internal/errs"
	"github.com/Astemirdum/circulation-service/circulation/internal/model"
	"github.com/Astemirdum/circulation-service/circulation/internal/repository"
)

var errStorage = errors.New("connection reset by peer")

type memData struct {
	nextID    int64
	assets    map[int64]model.Asset
	cards     map[int64]model.Card
	patrons   map[int64]model.Patron
	checkouts map[int64]model.Checkout
	history   []model.CheckoutHistory
	holds     map[int64]model.Hold
}

func (d *memData) clone() memData {
	c := *d
	c.history = append([]model.CheckoutHistory(nil), d.history...)
	c.assets = cloneMap(d.assets)
	c.cards = cloneMap(d.cards)
	c.patrons = cloneMap(d.patrons)
	c.checkouts = cloneMap(d.checkouts)
	c.holds = cloneMap(d.holds)
	return c
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	c := make(map[K]V, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// memRepo is an in-memory repository.Repository. One mutex stands in for the
// per-asset row lock and a failed transaction restores the snapshot taken
// when it began.
type memRepo struct {
	*memStore
	mu sync.Mutex
	// statuses never change after construction
	statuses []model.Status
	data     *memData
	// failOn makes the named store method return the error.
	failOn map[string]error
	// inTx is set while a WithinAssetTx callback runs.
	inTx atomic.Bool
}

func newMemRepo() *memRepo {
	r := &memRepo{
		statuses: []model.Status{
			{ID: 1, Name: "Available"},
			{ID: 2, Name: "CheckedOut"},
			{ID: 3, Name: "On Hold"},
			{ID: 4, Name: "Lost"},
		},
		data: &memData{
			assets:    map[int64]model.Asset{},
			cards:     map[int64]model.Card{},
			patrons:   map[int64]model.Patron{},
			checkouts: map[int64]model.Checkout{},
			holds:     map[int64]model.Hold{},
		},
		failOn: map[string]error{},
	}
	r.memStore = &memStore{repo: r, lock: &r.mu}
	return r
}

func (r *memRepo) addAsset(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.assets[id] = model.Asset{ID: id, Title: "asset", StatusID: 1, Status: "Available"}
}

func (r *memRepo) addCard(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data.cards[id] = model.Card{ID: id}
	r.data.patrons[id] = model.Patron{ID: id, FirstName: "first", LastName: "last", CardID: id}
}

func (r *memRepo) fail(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failOn[op] = err
}

func (r *memRepo) snapshot() memData {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data.clone()
}

// StatusByName takes no lock since statuses are immutable.
func (r *memRepo) StatusByName(_ context.Context, name string) (model.Status, error) {
	for _, st := range r.statuses {
		if st.Name == name {
			return st, nil
		}
	}
	return model.Status{}, errors.Wrap(errs.ErrNotFound, name)
}

func (r *memRepo) WithinAssetTx(ctx context.Context, assetID int64, fn func(ctx context.Context, tx repository.Store) error) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data.assets[assetID]; !ok {
		return errors.Wrapf(errs.ErrNotFound, "asset %d", assetID)
	}
	snap := r.data.clone()
	r.inTx.Store(true)
	defer func() {
		r.inTx.Store(false)
		if err != nil {
			*r.data = snap
		}
	}()
	return fn(ctx, &memStore{repo: r, lock: nopLocker{}})
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

type memStore struct {
	repo *memRepo
	lock sync.Locker
}

func (s *memStore) enter(op string) (*memData, error) {
	s.lock.Lock()
	if err, ok := s.repo.failOn[op]; ok {
		return nil, err
	}
	return s.repo.data, nil
}

func (s *memStore) id() int64 {
	s.repo.data.nextID++
	return s.repo.data.nextID
}

func (s *memStore) GetAsset(_ context.Context, assetID int64) (model.Asset, error) {
	d, err := s.enter("GetAsset")
	defer s.lock.Unlock()
	if err != nil {
		return model.Asset{}, err
	}
	a, ok := d.assets[assetID]
	if !ok {
		return model.Asset{}, errors.Wrapf(errs.ErrNotFound, "asset %d", assetID)
	}
	return a, nil
}

func (s *memStore) SetAssetStatus(_ context.Context, assetID int64, statusID int) error {
	d, err := s.enter("SetAssetStatus")
	defer s.lock.Unlock()
	if err != nil {
		return err
	}
	a, ok := d.assets[assetID]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "asset %d", assetID)
	}
	for _, st := range s.repo.statuses {
		if st.ID == statusID {
			a.StatusID, a.Status = st.ID, st.Name
			d.assets[assetID] = a
			return nil
		}
	}
	return errors.Wrapf(errs.ErrNotFound, "status %d", statusID)
}

func (s *memStore) GetCard(_ context.Context, cardID int64) (model.Card, error) {
	d, err := s.enter("GetCard")
	defer s.lock.Unlock()
	if err != nil {
		return model.Card{}, err
	}
	c, ok := d.cards[cardID]
	if !ok {
		return model.Card{}, errors.Wrapf(errs.ErrNotFound, "card %d", cardID)
	}
	return c, nil
}

func (s *memStore) PatronByCard(_ context.Context, cardID int64) (model.Patron, error) {
	d, err := s.enter("PatronByCard")
	defer s.lock.Unlock()
	if err != nil {
		return model.Patron{}, err
	}
	p, ok := d.patrons[cardID]
	if !ok {
		return model.Patron{}, errors.Wrapf(errs.ErrNotFound, "patron of card %d", cardID)
	}
	return p, nil
}

func (s *memStore) GetCheckout(_ context.Context, id int64) (model.Checkout, error) {
	d, err := s.enter("GetCheckout")
	defer s.lock.Unlock()
	if err != nil {
		return model.Checkout{}, err
	}
	c, ok := d.checkouts[id]
	if !ok {
		return model.Checkout{}, errors.Wrapf(errs.ErrNotFound, "checkout %d", id)
	}
	return c, nil
}

func (s *memStore) ActiveCheckout(_ context.Context, assetID int64) (model.Checkout, error) {
	d, err := s.enter("ActiveCheckout")
	defer s.lock.Unlock()
	if err != nil {
		return model.Checkout{}, err
	}
	for _, c := range d.checkouts {
		if c.AssetID == assetID {
			return c, nil
		}
	}
	return model.Checkout{}, errors.Wrapf(errs.ErrNotFound, "checkout of asset %d", assetID)
}

func (s *memStore) LatestCheckout(ctx context.Context, assetID int64) (model.Checkout, error) {
	return s.ActiveCheckout(ctx, assetID)
}

func (s *memStore) ListCheckouts(_ context.Context, p model.PageRequest) (model.Page[model.Checkout], error) {
	d, err := s.enter("ListCheckouts")
	defer s.lock.Unlock()
	if err != nil {
		return model.Page[model.Checkout]{}, err
	}
	items := make([]model.Checkout, 0, len(d.checkouts))
	for _, c := range d.checkouts {
		items = append(items, c)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Since.Equal(items[j].Since) {
			return items[i].Since.Before(items[j].Since)
		}
		return items[i].ID < items[j].ID
	})
	return pageOf(items, p)
}

func (s *memStore) CreateCheckout(_ context.Context, c model.Checkout) (model.Checkout, error) {
	d, err := s.enter("CreateCheckout")
	defer s.lock.Unlock()
	if err != nil {
		return model.Checkout{}, err
	}
	for _, other := range d.checkouts {
		if other.AssetID == c.AssetID {
			return model.Checkout{}, errors.Wrap(errs.ErrConflict, "checkouts_asset_id_key")
		}
	}
	c.ID = s.id()
	d.checkouts[c.ID] = c
	return c, nil
}

func (s *memStore) DeleteCheckout(_ context.Context, id int64) error {
	d, err := s.enter("DeleteCheckout")
	defer s.lock.Unlock()
	if err != nil {
		return err
	}
	if _, ok := d.checkouts[id]; !ok {
		return errors.Wrapf(errs.ErrNotFound, "checkout %d", id)
	}
	delete(d.checkouts, id)
	return nil
}

func (s *memStore) CreateHistory(_ context.Context, h model.CheckoutHistory) (model.CheckoutHistory, error) {
	d, err := s.enter("CreateHistory")
	defer s.lock.Unlock()
	if err != nil {
		return model.CheckoutHistory{}, err
	}
	for _, other := range d.history {
		if other.AssetID == h.AssetID && other.CheckedIn == nil {
			return model.CheckoutHistory{}, errors.Wrap(errs.ErrConflict, "checkout_histories_open_uidx")
		}
	}
	h.ID = s.id()
	d.history = append(d.history, h)
	return h, nil
}

func (s *memStore) CloseHistory(_ context.Context, assetID int64, checkedIn time.Time) (model.CheckoutHistory, error) {
	d, err := s.enter("CloseHistory")
	defer s.lock.Unlock()
	if err != nil {
		return model.CheckoutHistory{}, err
	}
	for i, h := range d.history {
		if h.AssetID == assetID && h.CheckedIn == nil {
			in := checkedIn
			d.history[i].CheckedIn = &in
			return d.history[i], nil
		}
	}
	return model.CheckoutHistory{}, errors.Wrapf(errs.ErrNotFound, "open history of asset %d", assetID)
}

func (s *memStore) ListHistory(_ context.Context, assetID int64, p model.PageRequest) (model.Page[model.CheckoutHistory], error) {
	d, err := s.enter("ListHistory")
	defer s.lock.Unlock()
	if err != nil {
		return model.Page[model.CheckoutHistory]{}, err
	}
	var items []model.CheckoutHistory
	for _, h := range d.history {
		if h.AssetID == assetID {
			items = append(items, h)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CheckedOut.Equal(items[j].CheckedOut) {
			return items[i].CheckedOut.After(items[j].CheckedOut)
		}
		return items[i].ID > items[j].ID
	})
	return pageOf(items, p)
}

func (s *memStore) GetHold(_ context.Context, id int64) (model.Hold, error) {
	d, err := s.enter("GetHold")
	defer s.lock.Unlock()
	if err != nil {
		return model.Hold{}, err
	}
	h, ok := d.holds[id]
	if !ok {
		return model.Hold{}, errors.Wrapf(errs.ErrNotFound, "hold %d", id)
	}
	return h, nil
}

func (s *memStore) queue(d *memData, assetID int64) []model.Hold {
	var q []model.Hold
	for _, h := range d.holds {
		if h.AssetID == assetID {
			q = append(q, h)
		}
	}
	sort.Slice(q, func(i, j int) bool {
		if !q[i].HoldPlaced.Equal(q[j].HoldPlaced) {
			return q[i].HoldPlaced.Before(q[j].HoldPlaced)
		}
		return q[i].ID < q[j].ID
	})
	return q
}

func (s *memStore) EarliestHold(_ context.Context, assetID int64) (model.Hold, error) {
	d, err := s.enter("EarliestHold")
	defer s.lock.Unlock()
	if err != nil {
		return model.Hold{}, err
	}
	q := s.queue(d, assetID)
	if len(q) == 0 {
		return model.Hold{}, errors.Wrapf(errs.ErrNotFound, "hold on asset %d", assetID)
	}
	return q[0], nil
}

func (s *memStore) CountHolds(_ context.Context, assetID int64) (int, error) {
	d, err := s.enter("CountHolds")
	defer s.lock.Unlock()
	if err != nil {
		return 0, err
	}
	return len(s.queue(d, assetID)), nil
}

func (s *memStore) HasHold(_ context.Context, assetID, cardID int64) (bool, error) {
	d, err := s.enter("HasHold")
	defer s.lock.Unlock()
	if err != nil {
		return false, err
	}
	for _, h := range d.holds {
		if h.AssetID == assetID && h.CardID == cardID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStore) ListHolds(_ context.Context, assetID int64, p model.PageRequest) (model.Page[model.Hold], error) {
	d, err := s.enter("ListHolds")
	defer s.lock.Unlock()
	if err != nil {
		return model.Page[model.Hold]{}, err
	}
	return pageOf(s.queue(d, assetID), p)
}

func (s *memStore) CreateHold(_ context.Context, h model.Hold) (model.Hold, error) {
	d, err := s.enter("CreateHold")
	defer s.lock.Unlock()
	if err != nil {
		return model.Hold{}, err
	}
	h.ID = s.id()
	d.holds[h.ID] = h
	return h, nil
}

func (s *memStore) DeleteHold(_ context.Context, id int64) error {
	d, err := s.enter("DeleteHold")
	defer s.lock.Unlock()
	if err != nil {
		return err
	}
	if _, ok := d.holds[id]; !ok {
		return errors.Wrapf(errs.ErrNotFound, "hold %d", id)
	}
	delete(d.holds, id)
	return nil
}

func pageOf[T any](items []T, p model.PageRequest) (model.Page[T], error) {
	if !p.Valid() {
		return model.Page[T]{}, errs.ErrInvalidPage
	}
	total := len(items)
	if !p.All() {
		from := min((p.Page-1)*p.Size, total)
		to := min(from+p.Size, total)
		items = items[from:to]
	}
	out := append([]T{}, items...)
	return model.Page[T]{
		Paging: model.Paging{Page: p.Page, PageSize: p.Size, TotalElements: total},
		Items:  out,
	}, nil
}
