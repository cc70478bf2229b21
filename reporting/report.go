package reporting

import (
	"errors"
	"sort"
	"time"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// ErrInvalidPeriod is returned for any period other than daily, weekly or monthly.
var ErrInvalidPeriod = errors.New("invalid period: must be daily, weekly or monthly")

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Peak-time bucket names, by hour of day: Morning [6,12), Afternoon [12,18),
// Evening [18,24), Late Night [0,6).
const (
	BucketMorning   = "Morning"
	BucketAfternoon = "Afternoon"
	BucketEvening   = "Evening"
	BucketLateNight = "Late Night"
)

// ItemSales is one entry of the top-sellers ranking
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Report is the aggregated view of all orders in a time window
type Report struct {
	Period            string         `json:"period"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           time.Time      `json:"end_date"`
	TotalOrders       int            `json:"total_orders"`
	TotalRevenue      float64        `json:"total_revenue"`
	TotalItemsSold    int            `json:"total_items_sold"`
	AverageOrderValue float64        `json:"average_order_value"`
	TopSellingItems   []ItemSales    `json:"top_selling_items"`
	PeakTimes         map[string]int `json:"peak_times"`
}

// topN caps the top-sellers ranking
const topN = 5

// Window computes the inclusive [start, end] range for a period anchored at
// ref: daily covers the day of ref, weekly the 7 days ending at ref, monthly
// the 30 days ending at ref.
func Window(period string, ref time.Time) (start, end time.Time, err error) {
	end = ref
	switch period {
	case PeriodDaily:
		start = startOfDay(ref)
	case PeriodWeekly:
		start = startOfDay(ref.AddDate(0, 0, -6))
	case PeriodMonthly:
		start = startOfDay(ref.AddDate(0, 0, -29))
	default:
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	return start, end, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Generate builds a sales report for the given period anchored at ref.
// Read-only: it never writes to the store.
func Generate(db *gorm.DB, period string, ref time.Time) (*Report, error) {
	start, end, err := Window(period, ref)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := db.Preload("Items.MenuItem").
		Where("order_date BETWEEN ? AND ?", start, end).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	report := &Report{
		Period:    period,
		StartDate: start,
		EndDate:   end,
		PeakTimes: map[string]int{
			BucketMorning:   0,
			BucketAfternoon: 0,
			BucketEvening:   0,
			BucketLateNight: 0,
		},
	}

	soldByName := map[string]int{}
	for _, o := range orders {
		report.TotalOrders++
		report.TotalRevenue += o.TotalPrice
		report.PeakTimes[bucketFor(o.OrderDate.Hour())]++
		for _, item := range o.Items {
			report.TotalItemsSold += item.Quantity
			soldByName[item.MenuItem.Name] += item.Quantity
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}
	report.TopSellingItems = rankTopSellers(soldByName)

	return report, nil
}

func bucketFor(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketAfternoon
	case hour >= 18:
		return BucketEvening
	default:
		return BucketLateNight
	}
}

// rankTopSellers sorts by summed quantity descending; equal quantities order
// by item name ascending so the ranking is deterministic.
func rankTopSellers(soldByName map[string]int) []ItemSales {
	ranked := make([]ItemSales, 0, len(soldByName))
	for name, qty := range soldByName {
		ranked = append(ranked, ItemSales{Name: name, Quantity: qty})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
