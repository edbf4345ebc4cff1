package interfaces

import (
	"context"

	"smarthaus/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository resolves the selected quote (with its line items) for a
// project. The milestone engine never writes quotes.
type IQuoteRepository interface {
	GetSelectedByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
}
