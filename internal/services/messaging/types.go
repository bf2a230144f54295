package messaging

// Key identifies a user-facing string in the catalog
type Key string

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	// Locale is the requested locale, unknown locales fall back to en-US
	Locale string

	// SetName is the rolled set, empty for ad-hoc rolls
	SetName string

	// Values are the rolled face values in order
	Values []int

	// Total is the sum of Values
	Total int

	// ShowTotal is true for multi-die rolls
	ShowTotal bool
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string

	// TotalLine is the localized total, empty when not shown
	TotalLine string

	// Locale is the locale that was used
	Locale string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	Locale string

	// Err is the error returned by a service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
	Locale  string
}

// GetLabelInput is the input for GetLabel
type GetLabelInput struct {
	Locale string
	Key    Key
	Args   []any
}

// GetLabelOutput is the output for GetLabel
type GetLabelOutput struct {
	Label  string
	Locale string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// DefaultLocale is used when a request has no locale
	DefaultLocale string
}
