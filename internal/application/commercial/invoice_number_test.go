package commercial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Numeración de facturas: secuencia diaria por plataforma con formato
// INV-YYYYMMDD-### sobre fecha UTC. El formato es contractual (aparece en
// claves S3 y correos), así que estos tests fijan valores exactos.
// ──────────────────────────────────────────────────────────────────────────────

var testNumberingDate = time.Date(2026, 4, 15, 10, 30, 0, 0, time.UTC)

func numberingUseCase(repo *fakeInvoiceRepo) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: repo}
}

func TestNextInvoiceNumber_PrimeraDelDia(t *testing.T) {
	uc := numberingUseCase(&fakeInvoiceRepo{lastNumber: ""})

	number, err := uc.nextInvoiceNumber("plat-1", testNumberingDate)

	require.NoError(t, err)
	assert.Equal(t, "INV-20260415-001", number, "la secuencia arranca en 001 cada día")
}

func TestNextInvoiceNumber_Incrementa(t *testing.T) {
	uc := numberingUseCase(&fakeInvoiceRepo{lastNumber: "INV-20260415-007"})

	number, err := uc.nextInvoiceNumber("plat-1", testNumberingDate)

	require.NoError(t, err)
	assert.Equal(t, "INV-20260415-008", number)
}

func TestNextInvoiceNumber_SecuenciaAgotada(t *testing.T) {
	uc := numberingUseCase(&fakeInvoiceRepo{lastNumber: "INV-20260415-999"})

	_, err := uc.nextInvoiceNumber("plat-1", testNumberingDate)

	assert.ErrorIs(t, err, domain.ErrConflict, "el número 1000 no cabe en la secuencia diaria")
}

func TestNextInvoiceNumber_NumeroCorrupto(t *testing.T) {
	uc := numberingUseCase(&fakeInvoiceRepo{lastNumber: "INV-20260415-XYZ"})

	_, err := uc.nextInvoiceNumber("plat-1", testNumberingDate)

	assert.Error(t, err, "un número persistido ilegible debe fallar, nunca reiniciar la secuencia")
}

// TestNextInvoiceNumber_FechaSiempreUTC verifica que la fecha del número se
// toma en UTC: las 8 p.m. en UTC-5 ya son el día siguiente.
func TestNextInvoiceNumber_FechaSiempreUTC(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*3600)
	lateEvening := time.Date(2026, 4, 15, 20, 0, 0, 0, bogota) // 2026-04-16 01:00 UTC

	uc := numberingUseCase(&fakeInvoiceRepo{lastNumber: ""})
	number, err := uc.nextInvoiceNumber("plat-1", lateEvening)

	require.NoError(t, err)
	assert.Equal(t, "INV-20260416-001", number)
}
