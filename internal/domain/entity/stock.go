package entity

import "time"

// Stock cantidad de un ítem en una ubicación. Puede ser negativa (anomalía visible, nunca se recorta).
type Stock struct {
	ItemID    string
	Location  string
	Quantity  int
	UpdatedAt time.Time
}

// StockAnomaly registro de stock por debajo de cero junto con la identidad del ítem.
type StockAnomaly struct {
	Stock
	Identity ItemIdentity
}

// ArtistTotal cantidad total de un artista sumando todas las ubicaciones.
type ArtistTotal struct {
	Artist   string
	Quantity int
}
