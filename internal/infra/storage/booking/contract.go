package booking

import (
	"github.com/Totaedandan/auame/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// DB соединение, которое умеет открывать транзакции (*dbmetrics.DB)
type DB interface {
	DBExecutor
	dbmetrics.TxBeginner
}
