package mapping

import (
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/core/domain"
	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/models"
)

// ToModelEggLog converts a domain egg log to its persisted shape.
func ToModelEggLog(d domain.EggLog) models.EggLog {
	return models.EggLog{
		ID:             d.EggLogID,
		LedgerID:       d.LedgerID,
		Date:           d.Date,
		CollectedCount: d.CollectedCount,
		SoldCount:      d.SoldCount,
		SalePrice:      d.SalePrice,
		TotalSale:      d.TotalSale,
	}
}

// ToDomainEggLog converts a persisted egg log back to the domain shape.
func ToDomainEggLog(m models.EggLog) domain.EggLog {
	return domain.EggLog{
		EggLogID:       m.ID,
		LedgerID:       m.LedgerID,
		Date:           m.Date,
		CollectedCount: m.CollectedCount,
		SoldCount:      m.SoldCount,
		SalePrice:      m.SalePrice,
		TotalSale:      m.TotalSale,
	}
}

// ToModelEggLogs converts a slice of domain egg logs.
func ToModelEggLogs(ds []domain.EggLog) []models.EggLog {
	ms := make([]models.EggLog, len(ds))
	for i, d := range ds {
		ms[i] = ToModelEggLog(d)
	}
	return ms
}

// ToDomainEggLogs converts a slice of persisted egg logs.
func ToDomainEggLogs(ms []models.EggLog) []domain.EggLog {
	ds := make([]domain.EggLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEggLog(m)
	}
	return ds
}
