package models

// UnassignedID is the reserved identifier of the protected placeholder rows.
// Orders whose driver or client was deleted are re-pointed to it, so it must
// never collide with a generated id and must never be deletable itself.
const UnassignedID int64 = -404

type Driver struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Car  string `json:"car"`
}
