// Package pricing implementa la aritmética comercial de la plataforma
// (servicio de dominio puro, sin I/O). Todo monto es decimal de punto fijo;
// el redondeo monetario es siempre a 2 decimales.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RoundCurrency redondea un monto a 2 decimales.
// Idempotente: RoundCurrency(RoundCurrency(x)) == RoundCurrency(x).
func RoundCurrency(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// ApplyMarginPerLine aplica el markup a un valor base: base * (1 + margen/100),
// redondeado a 2 decimales. Margen cero es no-op módulo redondeo. Valores base
// negativos pasan sin validar: las reglas de negocio viven en la capa de política.
func ApplyMarginPerLine(base, marginPercent decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(marginPercent.Div(hundred))
	return RoundCurrency(base.Mul(factor))
}

// DecimalFromString convierte la representación textual de un monto a decimal.
// Cadenas vacías o inválidas producen cero: los campos opcionales de un payload
// de precios nunca deben romper el cálculo.
func DecimalFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
