package dto

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEggLogRequest defines the data needed to record a manual egg log.
// Sold/price/total are optional: a plain collection day leaves them zero,
// a cash sale fills them in.
type CreateEggLogRequest struct {
	Date           string          `json:"date" binding:"required,datetime=2006-01-02"`
	CollectedCount int64           `json:"collectedCount" binding:"required,min=1"`
	SoldCount      int64           `json:"soldCount" binding:"min=0"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	TotalSale      decimal.Decimal `json:"totalSale"`
}

// EggLogResponse defines the data returned for an egg log.
type EggLogResponse struct {
	EggLogID       string          `json:"eggLogID"`
	LedgerID       string          `json:"ledgerID,omitempty"`
	Date           string          `json:"date"`
	CollectedCount int64           `json:"collectedCount"`
	SoldCount      int64           `json:"soldCount"`
	SalePrice      decimal.Decimal `json:"salePrice"`
	TotalSale      decimal.Decimal `json:"totalSale"`
	Generated      bool            `json:"generated"`
}

// ToEggLogResponse converts a domain.EggLog to EggLogResponse.
func ToEggLogResponse(l *domain.EggLog) EggLogResponse {
	return EggLogResponse{
		EggLogID:       l.EggLogID,
		LedgerID:       l.LedgerID,
		Date:           l.Date,
		CollectedCount: l.CollectedCount,
		SoldCount:      l.SoldCount,
		SalePrice:      l.SalePrice,
		TotalSale:      l.TotalSale,
		Generated:      l.IsGenerated(),
	}
}

// ToListEggLogResponse converts a slice of domain.EggLog.
func ToListEggLogResponse(logs []domain.EggLog) []EggLogResponse {
	res := make([]EggLogResponse, len(logs))
	for i, l := range logs {
		res[i] = ToEggLogResponse(&l)
	}
	return res
}

// InventoryResponse reports the current stock position.
type InventoryResponse struct {
	CurrentInventory int64 `json:"currentInventory"`
}

// InventoryStatsResponse reports stock movement around one date.
type InventoryStatsResponse struct {
	Date             string `json:"date"`
	OpeningInventory int64  `json:"openingInventory"`
	ClosingInventory int64  `json:"closingInventory"`
	TodayCollected   int64  `json:"todayCollected"`
	TodaySold        int64  `json:"todaySold"`
}

// ToInventoryStatsResponse converts domain.InventoryStats.
func ToInventoryStatsResponse(date string, s domain.InventoryStats) InventoryStatsResponse {
	return InventoryStatsResponse{
		Date:             date,
		OpeningInventory: s.OpeningInventory,
		ClosingInventory: s.ClosingInventory,
		TodayCollected:   s.TodayCollected,
		TodaySold:        s.TodaySold,
	}
}
