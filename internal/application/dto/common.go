package dto

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Step indica el paso del ledger que rechazó la operación.
type ErrorResponse struct {
	Code     string                   `json:"code"`
	Message  string                   `json:"message"`
	Step     string                   `json:"step,omitempty"`
	Conflict *BarcodeConflictResponse `json:"conflict,omitempty"`
	Result   any                      `json:"result,omitempty"`
}
