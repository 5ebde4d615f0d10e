package errorx

type Code int

// Unknown hides the real cause of an unclassified failure from the client. The
// cause must be logged before returning this value.
var Unknown = Error{Code: Internal, Message: "Request failed"}

const (
	// Common codes
	BadRequest    Code = 100001
	NotFound      Code = 100004
	AlreadyExists Code = 100006
	Internal      Code = 100007
	Unavailable   Code = 100008
)
