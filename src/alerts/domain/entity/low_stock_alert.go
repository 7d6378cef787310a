package entity

import "fmt"

// LowStockAlert es una notificación push de stock bajo: el stock de una
// oferta de sucursal cayó bajo el umbral definido en el backend.
type LowStockAlert struct {
	ProductName  string `json:"product_name"`
	BranchName   string `json:"branch_name"`
	CurrentStock int    `json:"current_stock"`
}

// Message devuelve el texto de la notificación tal como se muestra al
// usuario.
func (a LowStockAlert) Message() string {
	return fmt.Sprintf("¡Alerta de Stock Bajo! Producto %q en %q. Stock actual: %d",
		a.ProductName, a.BranchName, a.CurrentStock)
}
