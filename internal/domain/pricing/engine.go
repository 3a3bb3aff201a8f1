package pricing

import "github.com/shopspring/decimal"

// Input son los componentes lado-compra de una entidad comercial más el margen.
// Los campos en cero simplemente no aportan al total.
type Input struct {
	BaseOpsTotal  decimal.Decimal
	TransportRate decimal.Decimal
	CatalogTotal  decimal.Decimal
	CustomTotal   decimal.Decimal
	MarginPercent decimal.Decimal
}

// SellLines son los cuatro componentes lado-venta, cada uno con el markup
// aplicado por línea.
type SellLines struct {
	BaseOpsTotal   decimal.Decimal
	TransportTotal decimal.Decimal
	CatalogTotal   decimal.Decimal
	CustomTotal    decimal.Decimal
}

// Summary es el resultado completo del motor de precios.
//
// LogisticsSubTotal es deliberadamente lado-compra (base + transporte +
// catálogo): es el subtotal de costo que ve logística, no un monto de venta.
type Summary struct {
	SellLines         SellLines
	ServiceFee        decimal.Decimal // venta catálogo + venta custom
	LogisticsSubTotal decimal.Decimal // compra: base + transporte + catálogo
	BaseSubTotal      decimal.Decimal // compra: suma de los cuatro componentes
	FinalTotal        decimal.Decimal // venta: suma de los cuatro componentes
	MarginAmount      decimal.Decimal // FinalTotal - BaseSubTotal
}

// Compute calcula el resumen comercial completo a partir de los costos
// lado-compra y el porcentaje de margen.
//
// El markup se aplica por componente, nunca sobre el agregado: sumar compra y
// luego marcar la suma solo coincide cuando el margen es uniforme y el redondeo
// exacto. El cálculo por línea evita deriva silenciosa cuando aguas abajo se
// filtran líneas de forma distinta (ej. el listado excluye anuladas y los
// totales del registro de precios no).
func Compute(in Input) Summary {
	sell := SellLines{
		BaseOpsTotal:   ApplyMarginPerLine(in.BaseOpsTotal, in.MarginPercent),
		TransportTotal: ApplyMarginPerLine(in.TransportRate, in.MarginPercent),
		CatalogTotal:   ApplyMarginPerLine(in.CatalogTotal, in.MarginPercent),
		CustomTotal:    ApplyMarginPerLine(in.CustomTotal, in.MarginPercent),
	}

	baseSubTotal := RoundCurrency(in.BaseOpsTotal.Add(in.TransportRate).Add(in.CatalogTotal).Add(in.CustomTotal))
	finalTotal := RoundCurrency(sell.BaseOpsTotal.Add(sell.TransportTotal).Add(sell.CatalogTotal).Add(sell.CustomTotal))

	return Summary{
		SellLines:         sell,
		ServiceFee:        RoundCurrency(sell.CatalogTotal.Add(sell.CustomTotal)),
		LogisticsSubTotal: RoundCurrency(in.BaseOpsTotal.Add(in.TransportRate).Add(in.CatalogTotal)),
		BaseSubTotal:      baseSubTotal,
		FinalTotal:        finalTotal,
		MarginAmount:      RoundCurrency(finalTotal.Sub(baseSubTotal)),
	}
}
