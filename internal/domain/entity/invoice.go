package entity

import "time"

// Invoice representa la factura de una entidad comercial. Se crea una sola vez
// por entidad (constraint único por plataforma+contexto); regenerar reusa el
// Number y reemplaza el PDF. Una vez PaidAt no es nil la factura queda
// congelada: ninguna regeneración es válida.
type Invoice struct {
	ID          string
	PlatformID  string
	ContextType string // ORDER | SERVICE_REQUEST
	ContextID   string
	Number      string // formato externo INV-YYYYMMDD-###, secuencia diaria por plataforma
	PDFURL      string
	PaidAt      *time.Time
	GeneratedBy string // usuario que generó/regeneró por última vez
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
