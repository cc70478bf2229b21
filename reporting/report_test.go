package reporting

import (
	"path/filepath"
	"testing"
	"time"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createMenuItem(t *testing.T, db *gorm.DB, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Price: price, Category: "Main Course", IsAvailable: true}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to create menu item %q: %v", name, err)
	}
	return item
}

func createOrder(t *testing.T, db *gorm.DB, when time.Time, total float64, items []models.OrderItem) models.Order {
	t.Helper()
	order := models.Order{
		Reference:     when.Format("20060102150405.000000000"),
		CustomerName:  "Test Customer",
		CustomerPhone: "9999999999",
		TotalPrice:    total,
		Status:        models.StatusPendingConfirmation,
		OrderDate:     when,
		Items:         items,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	return order
}

func TestWindow(t *testing.T) {
	ref := time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		period    string
		wantStart time.Time
		wantErr   bool
	}{
		{
			name:      "daily covers the reference day",
			period:    PeriodDaily,
			wantStart: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "weekly covers seven days inclusive",
			period:    PeriodWeekly,
			wantStart: time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monthly covers thirty days inclusive",
			period:    PeriodMonthly,
			wantStart: time.Date(2026, 7, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "unknown period rejected",
			period:  "yearly",
			wantErr: true,
		},
		{
			name:    "empty period rejected",
			period:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := Window(tt.period, ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Window(%q) expected error, got none", tt.period)
				}
				return
			}
			if err != nil {
				t.Fatalf("Window(%q) returned error: %v", tt.period, err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(ref) {
				t.Errorf("end = %v, want %v", end, ref)
			}
		})
	}
}

func TestGenerateEmptyWindow(t *testing.T) {
	db := newTestDB(t)

	report, err := Generate(db, PeriodDaily, time.Date(2026, 8, 15, 23, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if report.TotalOrders != 0 {
		t.Errorf("TotalOrders = %d, want 0", report.TotalOrders)
	}
	if report.AverageOrderValue != 0 {
		t.Errorf("AverageOrderValue = %v, want 0", report.AverageOrderValue)
	}
	if report.TotalItemsSold != 0 {
		t.Errorf("TotalItemsSold = %d, want 0", report.TotalItemsSold)
	}
	if len(report.TopSellingItems) != 0 {
		t.Errorf("TopSellingItems = %v, want empty", report.TopSellingItems)
	}
	for _, bucket := range []string{BucketMorning, BucketAfternoon, BucketEvening, BucketLateNight} {
		if report.PeakTimes[bucket] != 0 {
			t.Errorf("PeakTimes[%s] = %d, want 0", bucket, report.PeakTimes[bucket])
		}
	}
}

func TestGenerateDailyTotalsAndPeakTimes(t *testing.T) {
	db := newTestDB(t)
	tikka := createMenuItem(t, db, "Chicken Tikka Masala", 280)
	chai := createMenuItem(t, db, "Masala Chai", 40)

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	createOrder(t, db, day.Add(14*time.Hour+30*time.Minute), 280, []models.OrderItem{
		{MenuItemID: tikka.ID, Quantity: 1, Price: tikka.Price},
	})
	createOrder(t, db, day.Add(20*time.Hour), 100, []models.OrderItem{
		{MenuItemID: chai.ID, Quantity: 2, Price: chai.Price},
	})
	// Previous day, must not be counted
	createOrder(t, db, day.Add(-2*time.Hour), 500, []models.OrderItem{
		{MenuItemID: tikka.ID, Quantity: 3, Price: tikka.Price},
	})

	report, err := Generate(db, PeriodDaily, day.Add(23*time.Hour+59*time.Minute))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if report.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", report.TotalOrders)
	}
	if report.TotalRevenue != 380 {
		t.Errorf("TotalRevenue = %v, want 380", report.TotalRevenue)
	}
	if report.TotalItemsSold != 3 {
		t.Errorf("TotalItemsSold = %d, want 3", report.TotalItemsSold)
	}
	if report.AverageOrderValue != 190 {
		t.Errorf("AverageOrderValue = %v, want 190", report.AverageOrderValue)
	}

	wantPeaks := map[string]int{
		BucketMorning:   0,
		BucketAfternoon: 1,
		BucketEvening:   1,
		BucketLateNight: 0,
	}
	for bucket, want := range wantPeaks {
		if report.PeakTimes[bucket] != want {
			t.Errorf("PeakTimes[%s] = %d, want %d", bucket, report.PeakTimes[bucket], want)
		}
	}
}

func TestGeneratePeakTimeBuckets(t *testing.T) {
	db := newTestDB(t)
	item := createMenuItem(t, db, "Samosa", 50)

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	hours := map[int]string{
		2:  BucketLateNight,
		6:  BucketMorning,
		11: BucketMorning,
		12: BucketAfternoon,
		17: BucketAfternoon,
		18: BucketEvening,
		23: BucketEvening,
	}
	for h := range hours {
		createOrder(t, db, day.Add(time.Duration(h)*time.Hour), 50, []models.OrderItem{
			{MenuItemID: item.ID, Quantity: 1, Price: item.Price},
		})
	}

	report, err := Generate(db, PeriodDaily, day.Add(24*time.Hour-time.Second))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := map[string]int{
		BucketLateNight: 1,
		BucketMorning:   2,
		BucketAfternoon: 2,
		BucketEvening:   2,
	}
	for bucket, count := range want {
		if report.PeakTimes[bucket] != count {
			t.Errorf("PeakTimes[%s] = %d, want %d", bucket, report.PeakTimes[bucket], count)
		}
	}
}

func TestGenerateTopSellers(t *testing.T) {
	db := newTestDB(t)

	quantities := map[string]int{
		"Fish Curry":    10,
		"Aloo Gobi":     5,
		"Garlic Naan":   5,
		"Jeera Rice":    3,
		"Mango Lassi":   2,
		"Tandoori Roti": 1,
	}
	when := time.Date(2026, 8, 15, 13, 0, 0, 0, time.UTC)
	for name, qty := range quantities {
		item := createMenuItem(t, db, name, 100)
		createOrder(t, db, when, float64(qty)*100, []models.OrderItem{
			{MenuItemID: item.ID, Quantity: qty, Price: item.Price},
		})
		when = when.Add(time.Minute)
	}

	report, err := Generate(db, PeriodDaily, when)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	want := []ItemSales{
		{Name: "Fish Curry", Quantity: 10},
		{Name: "Aloo Gobi", Quantity: 5},  // tie with Garlic Naan, name ascending
		{Name: "Garlic Naan", Quantity: 5},
		{Name: "Jeera Rice", Quantity: 3},
		{Name: "Mango Lassi", Quantity: 2},
	}
	if len(report.TopSellingItems) != len(want) {
		t.Fatalf("TopSellingItems has %d entries, want %d: %v",
			len(report.TopSellingItems), len(want), report.TopSellingItems)
	}
	for i, w := range want {
		if report.TopSellingItems[i] != w {
			t.Errorf("TopSellingItems[%d] = %v, want %v", i, report.TopSellingItems[i], w)
		}
	}
}

func TestGenerateWeeklyIncludesWholeWindow(t *testing.T) {
	db := newTestDB(t)
	item := createMenuItem(t, db, "Kheer", 90)

	ref := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	inWindow := []time.Time{
		ref,
		ref.AddDate(0, 0, -6), // first day of the window
		ref.AddDate(0, 0, -3),
	}
	outOfWindow := []time.Time{
		ref.AddDate(0, 0, -7),
		ref.Add(time.Hour), // after the reference instant
	}
	for _, when := range append(inWindow, outOfWindow...) {
		createOrder(t, db, when, 90, []models.OrderItem{
			{MenuItemID: item.ID, Quantity: 1, Price: item.Price},
		})
	}

	report, err := Generate(db, PeriodWeekly, ref)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if report.TotalOrders != len(inWindow) {
		t.Errorf("TotalOrders = %d, want %d", report.TotalOrders, len(inWindow))
	}
}
