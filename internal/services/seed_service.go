package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/sync/errgroup"

	"raahi/internal/models/db_models"
	"raahi/internal/repositories"
)

// DefaultSeedCount is the number of generated rows per random dataset.
const DefaultSeedCount = 100

type SeedSummary struct {
	Weather  int
	Crowd    int
	Currency int
	Hotels   int
	POIs     int
}

type SeedServiceInterface interface {
	// Seed replaces the reference datasets with generated rows. Accounts are
	// left alone.
	Seed(ctx context.Context) (SeedSummary, error)
}

type SeedService struct {
	weatherRepo  repositories.WeatherRepository
	crowdRepo    repositories.CrowdRepository
	currencyRepo repositories.CurrencyRepository
	hotelRepo    repositories.HotelRepository
	poiRepo      repositories.POIRepository
	faker        *gofakeit.Faker
	count        int
}

func NewSeedService(
	weatherRepo repositories.WeatherRepository,
	crowdRepo repositories.CrowdRepository,
	currencyRepo repositories.CurrencyRepository,
	hotelRepo repositories.HotelRepository,
	poiRepo repositories.POIRepository,
	faker *gofakeit.Faker,
	count int,
) SeedServiceInterface {
	if count <= 0 {
		count = DefaultSeedCount
	}
	return &SeedService{
		weatherRepo:  weatherRepo,
		crowdRepo:    crowdRepo,
		currencyRepo: currencyRepo,
		hotelRepo:    hotelRepo,
		poiRepo:      poiRepo,
		faker:        faker,
		count:        count,
	}
}

type seedCoord struct{ lat, lng float64 }

var (
	seedCities = []string{"Agra", "Varanasi", "Manali", "Jaipur", "Goa"}

	seedCityCenters = map[string]seedCoord{
		"Agra":     {27.1767, 78.0081},
		"Varanasi": {25.3176, 82.9739},
		"Manali":   {32.2396, 77.1887},
		"Jaipur":   {26.9124, 75.7873},
		"Goa":      {15.2993, 74.124},
	}

	seedCityPlaces = map[string][]string{
		"Agra":     {"Taj Mahal", "Agra Fort", "Mehtab Bagh"},
		"Varanasi": {"Kashi Vishwanath Temple", "Dashashwamedh Ghat", "Sarnath"},
		"Manali":   {"Hadimba Temple", "Solang Valley", "Old Manali"},
		"Jaipur":   {"Hawa Mahal", "Amber Fort", "City Palace"},
		"Goa":      {"Baga Beach", "Fort Aguada", "Basilica of Bom Jesus"},
	}

	seedConditions         = []string{"Sunny", "Rain", "Cloudy", "Fog", "Storm", "Haze", "Thunderstorm"}
	seedForecastConditions = []string{"Sunny", "Rain", "Cloudy", "Fog"}
	seedCrowdLevels        = []string{"Low", "Medium", "High"}
	seedHotelBrands        = []string{"Taj", "Oberoi", "ITC", "Leela", "Trident", "Vivanta", "Radisson", "Hyatt", "Lemon Tree", "Fortune"}
	seedAmenities          = []string{"Reception", "Free Wifi", "Power backup", "AC", "CCTV", "Parking", "Elevator", "Restaurant"}
	seedBadges             = []string{"Good", "Very Good", "Excellent"}

	seedRateRanges = []struct {
		code     string
		min, max float64
	}{
		{"USD", 0.011, 0.013},
		{"EUR", 0.01, 0.012},
		{"GBP", 0.009, 0.011},
		{"AED", 0.04, 0.045},
		{"JPY", 1.6, 1.8},
	}
)

// seedPOIs is a fixed itinerary catalogue; it is not randomised.
var seedPOIs = []db_models.POI{
	{Name: "Hawa Mahal", City: "Jaipur", Time: "9:00 AM", Tip: "Best light in the morning.", Category: "historical"},
	{Name: "City Palace", City: "Jaipur", Time: "11:00 AM", Tip: "Combo ticket with Jantar Mantar.", Category: "historical"},
	{Name: "Amber Fort", City: "Jaipur", Time: "3:00 PM", Tip: "Stay for sunset views.", Category: "historical"},
	{Name: "Baga Beach", City: "Goa", Time: "10:00 AM", Tip: "Water sports open by mid-morning.", Category: "beach"},
	{Name: "Fort Aguada", City: "Goa", Time: "1:00 PM", Tip: "Great sea views and photos.", Category: "historical"},
	{Name: "Candolim", City: "Goa", Time: "5:30 PM", Tip: "Beach shacks for sunset snacks.", Category: "beach"},
	{Name: "India Gate", City: "Delhi", Time: "9:30 AM", Tip: "Walk the lawns if weather permits.", Category: "historical"},
	{Name: "Qutub Minar", City: "Delhi", Time: "12:00 PM", Tip: "Carry water; open courtyards.", Category: "historical"},
	{Name: "Humayun's Tomb", City: "Delhi", Time: "3:30 PM", Tip: "Beautiful Mughal gardens.", Category: "historical"},
	{Name: "Taj Mahal", City: "Agra", Time: "8:00 AM", Tip: "Visit early to avoid crowds.", Category: "historical"},
	{Name: "Agra Fort", City: "Agra", Time: "11:00 AM", Tip: "Explore the Mughal architecture.", Category: "historical"},
	{Name: "Fatehpur Sikri", City: "Agra", Time: "2:00 PM", Tip: "Ghost city with beautiful palaces.", Category: "historical"},
	{Name: "Kashi Vishwanath Temple", City: "Varanasi", Time: "6:00 AM", Tip: "Morning aarti is spectacular.", Category: "religious"},
	{Name: "Ganges River", City: "Varanasi", Time: "7:00 AM", Tip: "Boat ride at sunrise.", Category: "religious"},
	{Name: "Sarnath", City: "Varanasi", Time: "10:00 AM", Tip: "Where Buddha gave his first sermon.", Category: "religious"},
	{Name: "Rohtang Pass", City: "Manali", Time: "9:00 AM", Tip: "Stunning mountain views.", Category: "nature"},
	{Name: "Solang Valley", City: "Manali", Time: "11:00 AM", Tip: "Adventure activities available.", Category: "nature"},
	{Name: "Hadimba Temple", City: "Manali", Time: "3:00 PM", Tip: "Ancient wooden temple.", Category: "religious"},
}

func (s *SeedService) Seed(ctx context.Context) (SeedSummary, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.weatherRepo.DeleteAll(gctx) })
	g.Go(func() error { return s.crowdRepo.DeleteAll(gctx) })
	g.Go(func() error { return s.currencyRepo.DeleteAll(gctx) })
	g.Go(func() error { return s.hotelRepo.DeleteAll(gctx) })
	g.Go(func() error { return s.poiRepo.DeleteAll(gctx) })
	if err := g.Wait(); err != nil {
		return SeedSummary{}, fmt.Errorf("clear datasets: %w", err)
	}
	log.Printf("Cleared reference datasets")

	var summary SeedSummary

	weather := generateWeather(s.faker, s.count)
	if err := s.weatherRepo.InsertMany(ctx, weather); err != nil {
		return summary, fmt.Errorf("insert weather: %w", err)
	}
	summary.Weather = len(weather)

	crowd := generateCrowd(s.faker, s.count)
	if err := s.crowdRepo.InsertMany(ctx, crowd); err != nil {
		return summary, fmt.Errorf("insert crowd: %w", err)
	}
	summary.Crowd = len(crowd)

	currency := generateCurrency(s.faker, s.count)
	if err := s.currencyRepo.InsertMany(ctx, currency); err != nil {
		return summary, fmt.Errorf("insert currency: %w", err)
	}
	summary.Currency = len(currency)

	hotels := generateHotels(s.faker, s.count)
	if err := s.hotelRepo.InsertMany(ctx, hotels); err != nil {
		return summary, fmt.Errorf("insert hotels: %w", err)
	}
	summary.Hotels = len(hotels)

	pois := make([]db_models.POI, len(seedPOIs))
	copy(pois, seedPOIs)
	if err := s.poiRepo.InsertMany(ctx, pois); err != nil {
		return summary, fmt.Errorf("insert pois: %w", err)
	}
	summary.POIs = len(pois)

	log.Printf("Seeded weather=%d crowd=%d currency=%d hotels=%d pois=%d",
		summary.Weather, summary.Crowd, summary.Currency, summary.Hotels, summary.POIs)
	return summary, nil
}

func recentTime(f *gofakeit.Faker) time.Time {
	now := time.Now()
	return f.DateRange(now.Add(-7*24*time.Hour), now)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func generateWeather(f *gofakeit.Faker, n int) []db_models.Weather {
	rows := make([]db_models.Weather, 0, n)
	for i := 0; i < n; i++ {
		forecast := make([]db_models.ForecastDay, 3)
		for d := range forecast {
			forecast[d] = db_models.ForecastDay{
				Day:       f.WeekDay(),
				Temp:      float64(f.IntRange(5, 45)),
				Condition: f.RandomString(seedForecastConditions),
			}
		}
		rows = append(rows, db_models.Weather{
			City:        f.RandomString(seedCities),
			Temperature: float64(f.IntRange(5, 45)),
			Condition:   f.RandomString(seedConditions),
			Humidity:    float64(f.IntRange(20, 95)),
			Forecast:    forecast,
			LastUpdated: recentTime(f),
		})
	}
	return rows
}

func generateCrowd(f *gofakeit.Faker, n int) []db_models.Crowd {
	rows := make([]db_models.Crowd, 0, n)
	for i := 0; i < n; i++ {
		city := f.RandomString(seedCities)
		rows = append(rows, db_models.Crowd{
			Place:       f.RandomString(seedCityPlaces[city]),
			CrowdLevel:  f.RandomString(seedCrowdLevels),
			Percent:     float64(f.IntRange(10, 100)),
			LastUpdated: recentTime(f),
		})
	}
	return rows
}

func generateCurrency(f *gofakeit.Faker, n int) []db_models.Currency {
	rows := make([]db_models.Currency, 0, n)
	for i := 0; i < n; i++ {
		rates := make(map[string]any, len(seedRateRanges))
		for _, r := range seedRateRanges {
			rates[r.code] = roundTo(f.Float64Range(r.min, r.max), 4)
		}
		rows = append(rows, db_models.Currency{
			Base:        "INR",
			Rates:       rates,
			LastUpdated: recentTime(f),
		})
	}
	return rows
}

func generateHotels(f *gofakeit.Faker, n int) []db_models.Hotel {
	rows := make([]db_models.Hotel, 0, n)
	for i := 0; i < n; i++ {
		city := f.RandomString(seedCities)
		center := seedCityCenters[city]

		amenities := make([]string, len(seedAmenities))
		copy(amenities, seedAmenities)
		f.ShuffleStrings(amenities)
		amenities = amenities[:f.IntRange(3, 6)]

		available := f.Bool()
		rows = append(rows, db_models.Hotel{
			Name:        fmt.Sprintf("%s %s Hotel", f.RandomString(seedHotelBrands), city),
			Location:    city,
			Price:       float64(f.IntRange(1200, 12000)),
			Rating:      roundTo(f.Float64Range(2, 5), 1),
			Available:   &available,
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", f.LetterN(10)),
			Amenities:   amenities,
			Reviews:     f.IntRange(50, 1200),
			Badge:       f.RandomString(seedBadges),
			SocialProof: fmt.Sprintf("%d people booked this hotel today", f.IntRange(3, 30)),
			Latitude:    roundTo(center.lat+f.Float64Range(-0.045, 0.045), 6),
			Longitude:   roundTo(center.lng+f.Float64Range(-0.045, 0.045), 6),
		})
	}
	return rows
}
