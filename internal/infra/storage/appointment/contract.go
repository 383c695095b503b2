package appointment

import (
	"github.com/salonbelleza/turnos-service/pkg/dbmetrics"
)

// Reuse the executor interfaces from dbmetrics so the repository works with
// *sql.DB, *sql.Tx and the metrics wrappers interchangeably.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
