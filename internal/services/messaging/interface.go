package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dicetray/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRollResultMessage returns the localized title and body for a roll
	GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly localized error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetLabel returns a localized label for a message key
	GetLabel(ctx context.Context, input *GetLabelInput) (*GetLabelOutput, error)
}
