package browser

import (
	"context"
	"fmt"
	"sync"

	"coin-browser-go/internal/models"
	"coin-browser-go/internal/store"

	"github.com/shopspring/decimal"
)

// fakeGateway is a scripted CoinGateway that records every call. Hooks
// replace the default behavior and may block to hold a call in flight.
type fakeGateway struct {
	mu sync.Mutex

	// coins per filter key, paged by ListCoins
	catalog map[string][]models.Coin
	images  map[int][]string
	details map[int]*models.CoinDetail

	countries   []models.Country
	collections []models.Collection

	listHook   func(ctx context.Context, p store.ListCoinsParams) (*models.CoinPage, error)
	countHook  func(ctx context.Context, p store.CountParams) (*models.Counters, error)
	detailHook func(ctx context.Context, id int) (*models.CoinDetail, error)
	imagesHook func(ctx context.Context, id int) (*models.CoinImages, error)
	countryErr error
	collectErr error

	listCalls    []store.ListCoinsParams
	countCalls   []store.CountParams
	detailCalls  []int
	imageCalls   map[int]int
	refCalls     int
	listInFlight int
	maxListInFl  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		catalog:    make(map[string][]models.Coin),
		images:     make(map[int][]string),
		details:    make(map[int]*models.CoinDetail),
		imageCalls: make(map[int]int),
	}
}

func filterKey(countryId, collectionId *int, search string) string {
	key := func(p *int) string {
		if p == nil {
			return "*"
		}
		return fmt.Sprint(*p)
	}
	return key(countryId) + "/" + key(collectionId) + "/" + search
}

func makeCoins(firstId, n int) []models.Coin {
	coins := make([]models.Coin, 0, n)
	for i := 0; i < n; i++ {
		id := firstId + i
		coins = append(coins, models.Coin{Id: id, Title: fmt.Sprintf("Coin %d", id), Count: 1})
	}
	return coins
}

func (f *fakeGateway) ListCoins(ctx context.Context, p store.ListCoinsParams) (*models.CoinPage, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, p)
	f.listInFlight++
	if f.listInFlight > f.maxListInFl {
		f.maxListInFl = f.listInFlight
	}
	hook := f.listHook
	all := f.catalog[filterKey(p.CountryId, p.CollectionId, p.SearchText)]
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.listInFlight--
		f.mu.Unlock()
	}()

	if hook != nil {
		return hook(ctx, p)
	}
	start := (p.Page - 1) * p.PageSize
	end := start + p.PageSize
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}
	return &models.CoinPage{
		Coins:    append([]models.Coin(nil), all[start:end]...),
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}

func (f *fakeGateway) CountCoins(ctx context.Context, p store.CountParams) (*models.Counters, error) {
	f.mu.Lock()
	f.countCalls = append(f.countCalls, p)
	hook := f.countHook
	all := f.catalog[filterKey(p.CountryId, p.CollectionId, p.SearchText)]
	f.mu.Unlock()

	if hook != nil {
		return hook(ctx, p)
	}
	total := 0
	for _, c := range all {
		total += c.Count
	}
	return &models.Counters{
		TotalCount:  total,
		UniqueCount: len(all),
		TotalPrice:  decimal.NewFromInt(int64(total)),
		MarketPrice: decimal.Zero,
	}, nil
}

func (f *fakeGateway) GetCoinDetail(ctx context.Context, id int) (*models.CoinDetail, error) {
	f.mu.Lock()
	f.detailCalls = append(f.detailCalls, id)
	hook := f.detailHook
	d, ok := f.details[id]
	f.mu.Unlock()

	if hook != nil {
		return hook(ctx, id)
	}
	if !ok {
		return nil, store.ErrNotFound
	}
	return d, nil
}

func (f *fakeGateway) GetCoinImages(ctx context.Context, id int) (*models.CoinImages, error) {
	f.mu.Lock()
	f.imageCalls[id]++
	hook := f.imagesHook
	imgs := f.images[id]
	f.mu.Unlock()

	if hook != nil {
		return hook(ctx, id)
	}
	return &models.CoinImages{CoinId: id, Images: imgs}, nil
}

func (f *fakeGateway) ListCountries(ctx context.Context) ([]models.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refCalls++
	if f.countryErr != nil {
		return nil, f.countryErr
	}
	return append([]models.Country(nil), f.countries...), nil
}

func (f *fakeGateway) ListCollections(ctx context.Context) ([]models.Collection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.collectErr != nil {
		return nil, f.collectErr
	}
	return append([]models.Collection(nil), f.collections...), nil
}

func (f *fakeGateway) Close() {}

func (f *fakeGateway) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeGateway) lastListCall() store.ListCoinsParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls[len(f.listCalls)-1]
}

func (f *fakeGateway) countCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.countCalls)
}

func (f *fakeGateway) lastCountCall() store.CountParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countCalls[len(f.countCalls)-1]
}

func (f *fakeGateway) imageCallCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imageCalls[id]
}

func (f *fakeGateway) setListHook(h func(ctx context.Context, p store.ListCoinsParams) (*models.CoinPage, error)) {
	f.mu.Lock()
	f.listHook = h
	f.mu.Unlock()
}

func intPtr(v int) *int { return &v }
