package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"raahi/internal/models/db_models"
	"raahi/pkg/utils"
)

type fakeGateway struct {
	mu       sync.Mutex
	result   utils.LLMResult
	provider utils.LLMProvider
	calls    int
	prompts  []string
}

func (f *fakeGateway) Call(_ context.Context, prompt, _ string) utils.LLMResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.result
}

func (f *fakeGateway) Provider() utils.LLMProvider { return f.provider }

type fakeContextService struct {
	bundle ContextBundle
	err    error
	cities []string
}

func (f *fakeContextService) Aggregate(_ context.Context, city string) (ContextBundle, error) {
	f.cities = append(f.cities, city)
	return f.bundle, f.err
}

type fakeWeatherRepo struct {
	rows    []db_models.Weather
	err     error
	deleted bool
}

func (f *fakeWeatherRepo) List(context.Context) ([]db_models.Weather, error) { return f.rows, f.err }

func (f *fakeWeatherRepo) InsertMany(_ context.Context, rows []db_models.Weather) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeWeatherRepo) DeleteAll(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.rows = nil
	return nil
}

type fakeCrowdRepo struct {
	rows    []db_models.Crowd
	err     error
	deleted bool
}

func (f *fakeCrowdRepo) List(context.Context) ([]db_models.Crowd, error) { return f.rows, f.err }

func (f *fakeCrowdRepo) InsertMany(_ context.Context, rows []db_models.Crowd) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeCrowdRepo) DeleteAll(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.rows = nil
	return nil
}

type fakeCurrencyRepo struct {
	rows    []db_models.Currency
	err     error
	deleted bool
}

func (f *fakeCurrencyRepo) List(context.Context) ([]db_models.Currency, error) { return f.rows, f.err }

func (f *fakeCurrencyRepo) InsertMany(_ context.Context, rows []db_models.Currency) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeCurrencyRepo) DeleteAll(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.rows = nil
	return nil
}

type fakeHotelRepo struct {
	rows    []db_models.Hotel
	err     error
	deleted bool
}

func (f *fakeHotelRepo) List(context.Context) ([]db_models.Hotel, error) { return f.rows, f.err }

func (f *fakeHotelRepo) InsertMany(_ context.Context, rows []db_models.Hotel) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakeHotelRepo) DeleteAll(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.rows = nil
	return nil
}

type fakePOIRepo struct {
	rows     []db_models.POI
	err      error
	deleted  bool
	mu       sync.Mutex
	byCities []string
}

func (f *fakePOIRepo) List(context.Context) ([]db_models.POI, error) { return f.rows, f.err }

func (f *fakePOIRepo) InsertMany(_ context.Context, rows []db_models.POI) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rows...)
	return nil
}

func (f *fakePOIRepo) DeleteAll(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.rows = nil
	return nil
}

func (f *fakePOIRepo) ListByCity(_ context.Context, city string) ([]db_models.POI, error) {
	f.mu.Lock()
	f.byCities = append(f.byCities, city)
	f.mu.Unlock()
	return f.rows, f.err
}

type fakeAccountRepo struct {
	byID map[uuid.UUID]*db_models.Account
	err  error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: map[uuid.UUID]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	account.ID = uuid.New()
	stored := *account
	f.byID[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	stored := *account
	f.byID[account.ID] = &stored
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	if a, ok := f.byID[parsed]; ok {
		found := *a
		return &found, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.byID {
		if a.Email == email {
			found := *a
			return &found, nil
		}
	}
	return nil, nil
}

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
