package entity

import (
	"github.com/shopspring/decimal"
)

// BranchOffer es un par (producto, sucursal) con su propio precio y stock.
// Los tags JSON siguen el contrato del backend (nombres en español).
type BranchOffer struct {
	BranchID   int             `json:"sucursal_id"`
	BranchName string          `json:"nombre"`
	UnitPrice  decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
}

// Product es un producto del catálogo con sus ofertas por sucursal, tal
// como lo devuelve la búsqueda. No se persiste en el storefront más allá
// del resultado vigente.
type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"nombre"`
	Brand       string        `json:"marca,omitempty"`
	ImageBase64 string        `json:"imagen_base64,omitempty"`
	Branches    []BranchOffer `json:"sucursales_info"`
}
