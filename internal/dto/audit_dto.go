package dto

// Inconsistencia is one drift finding between a denormalized column and the
// value recomputed from the payment journal.
type Inconsistencia struct {
	Tipo     string `json:"tipo"` // "balance_cliente" | "pago_venta"
	EntityID string `json:"entity_id"`
	Actual   int64  `json:"actual"`
	Esperado int64  `json:"esperado"`
	Detalle  string `json:"detalle"`
}

type ReporteConsistencia struct {
	Status      string           `json:"status"` // "ok" | "inconsistente"
	IssuesCount int              `json:"issues_count"`
	Issues      []Inconsistencia `json:"issues"`
}
