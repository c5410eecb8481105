package summary

import "context"

// Repository - published summaries read by the external UI
type Repository interface {
	Publish(ctx context.Context, summaries []EmployeeSummary) error
	Load(ctx context.Context) ([]EmployeeSummary, error)
}
