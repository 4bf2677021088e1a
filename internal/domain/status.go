package domain

import "strings"

// Lot lifecycle states.
const (
	LotStatusInProduction = "IN_PRODUCTION"
	LotStatusAvailable    = "AVAILABLE"
	LotStatusSold         = "SOLD"
	LotStatusExpired      = "EXPIRED"
)

// Supply movement directions.
const (
	MovementIn  = "IN"
	MovementOut = "OUT"
)

// User roles.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

var lotStatusLabels = map[string]string{
	LotStatusInProduction: "En Producción",
	LotStatusAvailable:    "Disponible",
	LotStatusSold:         "Vendido",
	LotStatusExpired:      "Caducado",
}

var lotStatusCodes = map[string]string{
	"en producción": LotStatusInProduction,
	"disponible":    LotStatusAvailable,
	"vendido":       LotStatusSold,
	"caducado":      LotStatusExpired,
}

// LotStatusLabel returns a human-readable label for a lot state.
func LotStatusLabel(status string) string {
	if label, ok := lotStatusLabels[status]; ok {
		return label
	}

	return "Desconocido"
}

// ParseLotStatus returns the lot state for a given label (case-insensitive).
func ParseLotStatus(label string) (string, bool) {
	status, ok := lotStatusCodes[strings.ToLower(label)]

	return status, ok
}

// ValidLotStatus reports whether status is one of the known lifecycle states.
func ValidLotStatus(status string) bool {
	_, ok := lotStatusLabels[status]
	return ok
}
