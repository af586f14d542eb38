package entity

// Roles de usuario.
const (
	RoleFullAdmin      = "full-admin"
	RoleOperator       = "operator"
	RoleScopedOperator = "scoped-operator"
	RoleScopedManager  = "scoped-manager"
	RoleViewer         = "viewer"
)

// LocationScope política de ubicaciones de un usuario con rol restringido.
type LocationScope struct {
	UserID          string
	PrimaryLocation string
	SubLocations    []string
}

// Allows indica si el par origen/destino cae dentro del alcance.
func (s LocationScope) Allows(from, to string) bool {
	if from != s.PrimaryLocation {
		return false
	}
	for _, loc := range s.SubLocations {
		if loc == to {
			return true
		}
	}
	return false
}

// Session datos del usuario autenticado que llegan desde el colaborador de autenticación.
type Session struct {
	UserID string
	Role   string
	Scope  *LocationScope // nil si no hay política configurada
}

// IsScoped indica si el rol está restringido por ubicaciones.
func IsScoped(role string) bool {
	return role == RoleScopedOperator || role == RoleScopedManager
}

// IsUnrestricted indica si el rol opera sobre cualquier ubicación.
func IsUnrestricted(role string) bool {
	return role == RoleFullAdmin || role == RoleOperator
}

// ValidRole indica si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	return IsScoped(role) || IsUnrestricted(role) || role == RoleViewer
}
