package vacation

import "context"

// VacationService defines business logic for vacation requests and their
// average-earnings payment.
type VacationService interface {
	// Create files a request and computes its payment from the trailing
	// 12-month payroll history. A failed history lookup degrades to a zero
	// payment instead of blocking the request.
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	Get(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter RequestFilter) ([]RequestResponse, error)

	// UpdateStatus moves a pending request to approved/rejected, or an
	// approved request to completed.
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (RequestResponse, error)
}
