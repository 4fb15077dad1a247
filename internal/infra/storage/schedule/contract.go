package schedule

import (
	"github.com/Totaedandan/auame/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor

// DB соединение, которое умеет открывать транзакции (*dbmetrics.DB)
type DB interface {
	DBExecutor
	dbmetrics.TxBeginner
}
