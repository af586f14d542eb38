// Package access decide si una sesión puede mover stock entre dos ubicaciones.
package access

import (
	"strings"

	"github.com/jhoicas/album-inventory/internal/domain"
	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

// Authorize aplica la política de alcance de ubicaciones.
// Roles sin restricción pasan siempre; roles con alcance exigen from == primaria y to ∈ sububicaciones.
// Un rol con alcance sin política configurada se deniega.
func Authorize(session entity.Session, from, to string) error {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case entity.IsUnrestricted(session.Role):
		return nil
	case entity.IsScoped(session.Role):
		if session.Scope == nil {
			return domain.NewAuthorizationError(domain.StepAuthorize, "el rol requiere un alcance de ubicaciones y no hay ninguno configurado")
		}
		if from != session.Scope.PrimaryLocation {
			return domain.NewAuthorizationError(domain.StepAuthorize, "origen '"+from+"' fuera del alcance del usuario")
		}
		if !session.Scope.Allows(from, to) {
			return domain.NewAuthorizationError(domain.StepAuthorize, "destino '"+to+"' fuera del alcance del usuario")
		}
		return nil
	case session.Role == entity.RoleViewer:
		return domain.NewAuthorizationError(domain.StepAuthorize, "el rol viewer es de solo lectura")
	}
	return domain.NewAuthorizationError(domain.StepAuthorize, "rol desconocido: "+session.Role)
}

// AuthorizeLocation variante para movimientos en una sola ubicación (entradas/salidas directas).
// Un rol con alcance solo puede operar sobre su ubicación primaria o sus sububicaciones.
func AuthorizeLocation(session entity.Session, location string) error {
	location = strings.TrimSpace(location)
	if !entity.IsScoped(session.Role) {
		return Authorize(session, location, location)
	}
	if session.Scope == nil {
		return domain.NewAuthorizationError(domain.StepAuthorize, "el rol requiere un alcance de ubicaciones y no hay ninguno configurado")
	}
	if location == session.Scope.PrimaryLocation {
		return nil
	}
	for _, loc := range session.Scope.SubLocations {
		if loc == location {
			return nil
		}
	}
	return domain.NewAuthorizationError(domain.StepAuthorize, "ubicación '"+location+"' fuera del alcance del usuario")
}

// CanChangeBarcode solo el rol de mayor privilegio puede reemplazar un código ya asignado.
func CanChangeBarcode(role string) bool {
	return role == entity.RoleFullAdmin
}
