package roller

// RollerError is a custom error type for roller errors
type RollerError string

// Error implements the error interface
func (e RollerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        RollerError = "config cannot be nil"
	ErrNilTableRepo     RollerError = "table repository cannot be nil"
	ErrNilRollRepo      RollerError = "roll repository cannot be nil"
	ErrNilDiceRoller    RollerError = "dice roller cannot be nil"
	ErrNilClock         RollerError = "clock cannot be nil"
	ErrNilUUIDGenerator RollerError = "UUID generator cannot be nil"
	ErrNilRenderer      RollerError = "face renderer cannot be nil"
	ErrMissingTableID   RollerError = "table ID is required"
	ErrInvalidSetCount  RollerError = "set count must be between 1 and 12"
	ErrInvalidDiceCount RollerError = "dice count must be between 1 and 12"
	ErrInvalidSides     RollerError = "sides must be between 2 and 50"
	ErrInvalidColor     RollerError = "invalid color"
	ErrSetNotFound      RollerError = "dice set not found"
	ErrTableNotFound    RollerError = "table not found"
	ErrNoRollYet        RollerError = "dice set has not been rolled yet"
	ErrInvalidContainer RollerError = "container dimensions must be between 1 and 4096"
	ErrInvalidFormat    RollerError = "unsupported image format"
	ErrInvalidFaceValue RollerError = "face value must be between 1 and sides"
	ErrInvalidSize      RollerError = "image size must be between 1 and 2048"
	ErrNilRollSet       RollerError = "roll set cannot be nil"
	ErrInvalidRollSet   RollerError = "roll set contains an invalid die face"
)
