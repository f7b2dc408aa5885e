package suite

import "fmt"

// Status is an OpenFX result code. The dispatcher itself only ever produces
// StatusOK and StatusFailed; the remaining codes exist for the property and
// parameter store surfaces, which follow the host's conventions.
type Status int

const (
	StatusOK                    Status = 0
	StatusFailed                Status = 1
	StatusErrFatal              Status = 2
	StatusErrUnknown            Status = 3
	StatusErrMissingHostFeature Status = 4
	StatusErrUnsupported        Status = 5
	StatusErrExists             Status = 6
	StatusErrFormat             Status = 7
	StatusErrMemory             Status = 8
	StatusErrBadHandle          Status = 9
	StatusErrBadIndex           Status = 10
	StatusErrValue              Status = 11
	StatusReplyYes              Status = 12
	StatusReplyNo               Status = 13
	StatusReplyDefault          Status = 14
)

// String returns the OpenFX name of the status code
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "kOfxStatOK"
	case StatusFailed:
		return "kOfxStatFailed"
	case StatusErrFatal:
		return "kOfxStatErrFatal"
	case StatusErrUnknown:
		return "kOfxStatErrUnknown"
	case StatusErrMissingHostFeature:
		return "kOfxStatErrMissingHostFeature"
	case StatusErrUnsupported:
		return "kOfxStatErrUnsupported"
	case StatusErrExists:
		return "kOfxStatErrExists"
	case StatusErrFormat:
		return "kOfxStatErrFormat"
	case StatusErrMemory:
		return "kOfxStatErrMemory"
	case StatusErrBadHandle:
		return "kOfxStatErrBadHandle"
	case StatusErrBadIndex:
		return "kOfxStatErrBadIndex"
	case StatusErrValue:
		return "kOfxStatErrValue"
	case StatusReplyYes:
		return "kOfxStatReplyYes"
	case StatusReplyNo:
		return "kOfxStatReplyNo"
	case StatusReplyDefault:
		return "kOfxStatReplyDefault"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// IsOK returns true for StatusOK
func (s Status) IsOK() bool {
	return s == StatusOK
}
