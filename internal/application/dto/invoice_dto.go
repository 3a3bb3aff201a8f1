package dto

import "time"

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID          string     `json:"id"`
	ContextType string     `json:"context_type"`
	ContextID   string     `json:"context_id"`
	Number      string     `json:"number"` // INV-YYYYMMDD-###
	PDFURL      string     `json:"pdf_url"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	GeneratedBy string     `json:"generated_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EstimateResponse resultado de generar una cotización en PDF.
type EstimateResponse struct {
	ContextType string `json:"context_type"`
	ContextID   string `json:"context_id"`
	PDFURL      string `json:"pdf_url"`
}
