package entity

import "time"

// Direction sentido de un movimiento.
type Direction string

const (
	DirectionIN  Direction = "IN"  // entrada
	DirectionOUT Direction = "OUT" // salida
)

// Valid indica si la dirección es IN u OUT.
func (d Direction) Valid() bool {
	return d == DirectionIN || d == DirectionOUT
}

// Closing aplica la fórmula de cierre: apertura + cantidad (IN) o apertura - cantidad (OUT).
func (d Direction) Closing(opening, quantity int) int {
	if d == DirectionOUT {
		return opening - quantity
	}
	return opening + quantity
}

// Signed devuelve la cantidad con signo según la dirección.
func (d Direction) Signed(quantity int) int {
	if d == DirectionOUT {
		return -quantity
	}
	return quantity
}

// Movement hecho inmutable del ledger. Nunca se actualiza ni se borra.
type Movement struct {
	ID              string
	ItemID          string
	Location        string
	Direction       Direction
	Quantity        int // siempre positiva
	Memo            string
	Actor           string
	IdempotencyKey  string // único global
	OpeningQuantity int
	ClosingQuantity int
	FromLocation    string
	ToLocation      string
	EventID         string // salida de evento y su devolución; vacío si no aplica
	CreatedAt       time.Time
}

// SameRequest indica si el movimiento registrado corresponde a la misma solicitud:
// ítem, ubicación, dirección, cantidad y par de ubicaciones.
func (m *Movement) SameRequest(itemID, location string, direction Direction, quantity int, from, to string) bool {
	return m.ItemID == itemID &&
		m.Location == location &&
		m.Direction == direction &&
		m.Quantity == quantity &&
		m.FromLocation == from &&
		m.ToLocation == to
}

// MovementFilter filtros para el historial de movimientos.
type MovementFilter struct {
	ItemID   string
	Location string
	Artist   string
	EventID  string
	// OpenEvents restringe a salidas de evento que aún no tienen devolución.
	OpenEvents bool
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// EventState estado de un evento: la salida que lo abrió y si ya fue devuelto.
type EventState struct {
	EventID     string
	ItemID      string
	OutQuantity int
	Open        bool
}
