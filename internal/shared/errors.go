package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// repository errors
const (
	ErrInvalidName      = Error("invalid name")
	ErrUnknownMigration = Error("unknown migration command")
	ErrSchemaOutdated   = Error("database schema is outdated")
)

// service errors
const (
	ErrTaskNotFound     = Error("task not found")
	ErrProgressNotFound = Error("progress not found")
	ErrInvalidOrder     = Error("invalid order clause")
)
