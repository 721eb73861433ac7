package entity

import "github.com/shopspring/decimal"

// Porcentajes de descuento por volumen
var (
	discountTwentyPercent = decimal.NewFromFloat(0.20)
	discountTenPercent    = decimal.NewFromFloat(0.10)
)

// CalculateDiscount calcula el descuento por volumen para un item.
// Reglas de negocio (evaluadas de arriba hacia abajo):
//   - 10 a 20 items idénticos: 20% de descuento
//   - 4 a 9 items idénticos: 10% de descuento
//   - menos de 4 items: sin descuento
//
// Función pura, sin efectos. El caller garantiza quantity en [1, 20].
func CalculateDiscount(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	switch {
	case quantity >= 10 && quantity <= 20:
		return subtotal.Mul(discountTwentyPercent)
	case quantity >= 4:
		return subtotal.Mul(discountTenPercent)
	default:
		return decimal.Zero
	}
}
