package services

import (
	"context"
	"io"

	"github.com/ammarazeem12aa-gif/Nova-Farms/internal/dto"
)

// Collection names accepted by the tabular import/export operations.
const (
	CollectionEggs      = "eggs"
	CollectionCustomers = "customers"
	CollectionLedger    = "ledger"
	CollectionExpenses  = "expenses"
	CollectionPayees    = "payees"
)

// BackupSvcFacade defines full-backup and tabular interchange operations.
// A failed restore or import leaves every collection untouched.
type BackupSvcFacade interface {
	// ExportBackup snapshots all five collections into the backup document.
	ExportBackup(ctx context.Context) (*dto.BackupDocument, error)

	// RestoreBackup replaces all collections from a backup document. The
	// document must carry eggLogs, customers and ledger; expenses and payees
	// may be absent and restore as empty.
	RestoreBackup(ctx context.Context, data dto.BackupData) error

	// ExportCSV renders one collection as header-plus-rows CSV.
	ExportCSV(ctx context.Context, collection string) ([]byte, error)

	// ImportCSV replaces one collection from CSV. Ledger rows naming unknown
	// customers are skipped; expense rows naming unknown payees import
	// without a payee reference.
	ImportCSV(ctx context.Context, collection string, r io.Reader) (dto.ImportResultResponse, error)
}
