package inventory

import "github.com/zogen/backoffice-api/internal/domain/entity"

// ApplyMovement calcula la nueva existencia al aplicar un movimiento sobre la
// cantidad actual. Entradas suman, salidas restan y ajustes aplican su delta
// con signo; el resultado nunca baja de cero (recorte, no rechazo).
func ApplyMovement(current int, mov entity.Movement) int {
	next := current
	switch mov.Type {
	case entity.MovementTypeEntrada:
		next = current + mov.Quantity
	case entity.MovementTypeSalida:
		next = current - mov.Quantity
	case entity.MovementTypeAjuste:
		next = current + mov.Delta
	}
	if next < 0 {
		return 0
	}
	return next
}

// ReplayQuantity reconstruye la existencia de un par (almacén, producto)
// reproduciendo sus movimientos en orden cronológico, partiendo de cero.
// El recorte en cero se aplica paso a paso, igual que en el registro en vivo.
func ReplayQuantity(chronological []entity.Movement) int {
	q := 0
	for _, m := range chronological {
		q = ApplyMovement(q, m)
	}
	return q
}

// StockStatus deriva el estado de presentación de una existencia:
// "optimo" cuando cantidad >= stockMinimo, "reorden" en caso contrario.
// Función pura, sin estado.
func StockStatus(quantity, minimumStock int) string {
	if quantity >= minimumStock {
		return entity.StockStatusOptimo
	}
	return entity.StockStatusReorden
}
