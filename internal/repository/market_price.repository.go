package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

const lbPerKg = 2.20462

// commodityContract maps a commodity name to its futures contract and
// the factor converting the quoted unit to $/kg (CME meat and grain
// contracts quote in cents/lb and cents/bushel respectively).
type commodityContract struct {
	Symbol     string
	PerKgRatio float64
}

var commodityContracts = map[string]commodityContract{
	"live_cattle":    {Symbol: "LE=F", PerKgRatio: lbPerKg / 100},
	"feeder_cattle":  {Symbol: "GF=F", PerKgRatio: lbPerKg / 100},
	"lean_hogs":      {Symbol: "HE=F", PerKgRatio: lbPerKg / 100},
	"corn":           {Symbol: "ZC=F", PerKgRatio: 1.0 / 2540}, // cents per 25.4kg bushel
	"wheat":          {Symbol: "ZW=F", PerKgRatio: 1.0 / 2720},
	"soybeans":       {Symbol: "ZS=F", PerKgRatio: 1.0 / 2720},
}

// MarketPriceRepository suggests a price_per_kg assumption from recent
// futures settles so scenario forms don't start from a blank guess.
type MarketPriceRepository interface {
	SuggestPricePerKg(commodity string) (float64, error)
	SupportedCommodities() []string
}

type marketPriceRepositoryHandler struct{}

func NewMarketPriceRepository() MarketPriceRepository {
	return marketPriceRepositoryHandler{}
}

func (h marketPriceRepositoryHandler) SupportedCommodities() []string {
	out := make([]string, 0, len(commodityContracts))
	for name := range commodityContracts {
		out = append(out, name)
	}
	return out
}

func (h marketPriceRepositoryHandler) SuggestPricePerKg(commodity string) (float64, error) {
	contract, ok := commodityContracts[strings.ToLower(commodity)]
	if !ok {
		return 0, fmt.Errorf("unknown commodity %q", commodity)
	}

	now := time.Now()
	start := now.AddDate(0, 0, -7)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   contract.Symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	lastClose := 0.0
	for iter.Next() {
		lastClose = iter.Bar().AdjClose.InexactFloat64()
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get quotes for %s: %w", contract.Symbol, err)
	}
	if lastClose <= 0 {
		return 0, fmt.Errorf("no recent settles for %s", contract.Symbol)
	}

	return lastClose * contract.PerKgRatio, nil
}
