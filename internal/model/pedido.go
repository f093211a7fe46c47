package model

import "time"

// Order statuses, in the storefront's wire language.
const (
	StatusPending    = "pendiente"
	StatusProcessing = "en proceso"
	StatusShipped    = "enviado"
	StatusDelivered  = "entregado"
	StatusCancelled  = "cancelado"
)

// ValidStatuses lists the accepted order statuses in the order they are
// reported back to admin clients.
var ValidStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

// IsValidStatus reports whether estado is one of the five accepted
// order statuses.
func IsValidStatus(estado string) bool {
	for _, s := range ValidStatuses {
		if s == estado {
			return true
		}
	}
	return false
}

// OrderItem is a single product/quantity pair inside an order.
type OrderItem struct {
	ProductID string `json:"productoId"`
	Quantity  int    `json:"cantidad"`
}

// Order represents a placed order. CustomerID references a User; the
// reference is not cascaded, so deleting the user leaves it dangling.
type Order struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"clienteId"`
	Items           []OrderItem `json:"productosPedido"`
	DeliveryAddress string      `json:"direccionEntrega"`
	PlacedAt        time.Time   `json:"fechaPedido"`
	Status          string      `json:"estado"`
}
