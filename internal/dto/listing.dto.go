package dto

import "time"

type VisitListDTO struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	ProjectID  *string   `json:"project_id"`
	Summary    string    `json:"summary"`
}

type ProjectListDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ClientName    string    `json:"client_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Value         float64   `json:"value"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
}

type ReportSummaryDTO struct {
	RealizedRevenue string           `json:"realized_revenue"`
	PendingRevenue  string           `json:"pending_revenue"`
	PaidProjects    []ProjectListDTO `json:"paid_projects"`
	PendingProjects []ProjectListDTO `json:"pending_projects"`
}
