package entity

import "time"

// StockBalance es el saldo actual de un producto en una ubicación, derivado
// del kardex (tabla materializada). Invariante: CurrentQty es igual a la suma
// de los Qty de todos los asientos del par (producto, ubicación).
// Solo el proyector de saldos escribe sobre esta entidad.
type StockBalance struct {
	ProductID   string
	LocationID  string
	CurrentQty  int64
	LastUpdated time.Time
}
