package entity

import "time"

// Estados operativos de una solicitud de servicio.
const (
	RequestDraft      = "DRAFT"
	RequestSubmitted  = "SUBMITTED"
	RequestInReview   = "IN_REVIEW"
	RequestApproved   = "APPROVED"
	RequestInProgress = "IN_PROGRESS"
	RequestCompleted  = "COMPLETED"
	RequestCancelled  = "CANCELLED"
)

// ServiceRequest representa una solicitud de servicio (montaje, transporte
// adicional, personal, etc.). A diferencia de Order no tiene venue propio y su
// facturabilidad depende de BillingMode.
type ServiceRequest struct {
	ID               string
	PlatformID       string
	CompanyID        string
	ReferenceID      string
	Title            string
	Description      string
	Status           string // ver constantes Request*
	BillingMode      string // INTERNAL_ONLY | CLIENT_BILLABLE
	CommercialStatus string // ver constantes Commercial*
	ContactName      string
	ContactEmail     string
	ContactPhone     string
	RequestedFor     *time.Time // fecha objetivo del servicio
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
