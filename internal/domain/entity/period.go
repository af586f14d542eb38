package entity

import "time"

// PeriodLayout formato de un período mensual (YYYY-MM).
const PeriodLayout = "2006-01"

// Period mes de trabajo. Al iniciarlo se congela el stock vigente como apertura.
type Period struct {
	Period    string
	CreatedAt time.Time
}

// PeriodOpening cantidad de apertura de un ítem en una ubicación para un período.
type PeriodOpening struct {
	Period   string
	ItemID   string
	Identity ItemIdentity
	Location string
	Quantity int
}

// ValidPeriod indica si p tiene el formato YYYY-MM.
func ValidPeriod(p string) bool {
	_, err := time.Parse(PeriodLayout, p)
	return err == nil
}

// NetMovement neto de entradas menos salidas de un ítem en una ubicación.
type NetMovement struct {
	ItemID   string
	Identity ItemIdentity
	Location string
	Net      int
}
