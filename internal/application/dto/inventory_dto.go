package dto

import "time"

// ItemRef identifica un ítem por ID o por la tupla (artist, category, album_version, option).
type ItemRef struct {
	ItemID       string `json:"item_id,omitempty"`
	Artist       string `json:"artist,omitempty"`
	Category     string `json:"category,omitempty"`
	AlbumVersion string `json:"album_version,omitempty"`
	Option       string `json:"option,omitempty"`
}

// MovementRequest body para POST /api/inventory/movements.
type MovementRequest struct {
	ItemRef
	Location       string `json:"location"`
	Direction      string `json:"direction"` // IN | OUT
	Quantity       int    `json:"quantity"`
	Memo           string `json:"memo"`
	Barcode        string `json:"barcode,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// Event salida de evento (o devolución si direction=IN y event_id indica el evento).
	Event   bool   `json:"event,omitempty"`
	EventID string `json:"event_id,omitempty"`
}

// StockTakeRequest body para POST /api/inventory/stock-takes.
type StockTakeRequest struct {
	ItemRef
	Location       string `json:"location"`
	Counted        int    `json:"counted"`
	Memo           string `json:"memo"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	ItemRef
	FromLocation   string `json:"from_location"`
	ToLocation     string `json:"to_location"`
	Quantity       int    `json:"quantity"`
	Memo           string `json:"memo"`
	Barcode        string `json:"barcode,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"` // clave base; los tramos usan {base}-out / {base}-in
}

// BulkTransferLine línea de un lote de traslados.
type BulkTransferLine struct {
	ItemRef
	Index        *int   `json:"index,omitempty"` // posición original, para reintentar solo las fallidas
	FromLocation string `json:"from_location"`
	Quantity     int    `json:"quantity"`
	Memo         string `json:"memo,omitempty"`
	Barcode      string `json:"barcode,omitempty"`
}

// BulkTransferRequest body para POST /api/inventory/transfers/bulk.
type BulkTransferRequest struct {
	ToLocation     string             `json:"to_location"`
	Memo           string             `json:"memo"`
	IdempotencyKey string             `json:"idempotency_key,omitempty"`
	Items          []BulkTransferLine `json:"items"`
}

// BarcodeRequest body para POST /api/items/barcode.
type BarcodeRequest struct {
	ItemRef
	Barcode string `json:"barcode"`
}

// ItemResponse salida de un ítem.
type ItemResponse struct {
	ID           string `json:"id"`
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
	Option       string `json:"option"`
	Barcode      string `json:"barcode,omitempty"`
}

// BarcodeConflictResponse ítem que ya tiene el código asignado.
type BarcodeConflictResponse struct {
	Barcode      string `json:"barcode"`
	ItemID       string `json:"item_id"`
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
}

// StockResponse cantidad en una ubicación.
type StockResponse struct {
	ItemID    string    `json:"item_id"`
	Location  string    `json:"location"`
	Quantity  int       `json:"quantity"`
	Anomaly   bool      `json:"anomaly"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// ItemStockResponse ítem con sus cantidades por ubicación.
type ItemStockResponse struct {
	Item   ItemResponse    `json:"item"`
	Stocks []StockResponse `json:"stocks"`
	Total  int             `json:"total"`
}

// AnomalyResponse registro con cantidad negativa.
type AnomalyResponse struct {
	StockResponse
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
	Option       string `json:"option"`
}

// MovementResponse salida del historial.
type MovementResponse struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	Location        string    `json:"location"`
	Direction       string    `json:"direction"`
	Quantity        int       `json:"quantity"`
	Memo            string    `json:"memo"`
	Actor           string    `json:"actor"`
	IdempotencyKey  string    `json:"idempotency_key"`
	OpeningQuantity int       `json:"opening_quantity"`
	ClosingQuantity int       `json:"closing_quantity"`
	FromLocation    string    `json:"from_location"`
	ToLocation      string    `json:"to_location"`
	EventID         string    `json:"event_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ArtistTotalResponse total por artista.
type ArtistTotalResponse struct {
	Artist   string `json:"artist"`
	Quantity int    `json:"quantity"`
}

// NetMovementResponse neto de entradas menos salidas por ítem y ubicación.
type NetMovementResponse struct {
	ItemID       string `json:"item_id"`
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
	Option       string `json:"option"`
	Location     string `json:"location"`
	Net          int    `json:"net"`
}

// PeriodRequest entrada para iniciar un período (YYYY-MM; vacío = mes actual).
type PeriodRequest struct {
	Period string `json:"period"`
}

// PeriodResponse período vigente tras la operación.
type PeriodResponse struct {
	Requested string    `json:"requested"`
	Current   string    `json:"current"`
	CreatedAt time.Time `json:"created_at"`
	Created   bool      `json:"created"`
}

// PeriodOpeningResponse cantidad de apertura de un ítem en una ubicación.
type PeriodOpeningResponse struct {
	ItemID       string `json:"item_id"`
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
	Option       string `json:"option"`
	Location     string `json:"location"`
	Quantity     int    `json:"quantity"`
}

// PeriodOpeningsResponse aperturas de un período.
type PeriodOpeningsResponse struct {
	Period   string                  `json:"period"`
	Openings []PeriodOpeningResponse `json:"openings"`
}
