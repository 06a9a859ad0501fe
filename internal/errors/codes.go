package errors

import "google.golang.org/grpc/codes"

// Code classifies an error. Every code has exactly one gRPC status code.
type Code string

// Error codes
const (
	CodeOK               Code = "OK"
	CodeCanceled         Code = "CANCELED"
	CodeDeadlineExceeded Code = "DEADLINE_EXCEEDED"
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeNotFound         Code = "NOT_FOUND"
	CodeUnavailable      Code = "UNAVAILABLE"
	CodeInternal         Code = "INTERNAL"
)

var grpcCodes = map[Code]codes.Code{
	CodeOK:               codes.OK,
	CodeCanceled:         codes.Canceled,
	CodeDeadlineExceeded: codes.DeadlineExceeded,
	CodeInvalidArgument:  codes.InvalidArgument,
	CodeNotFound:         codes.NotFound,
	CodeUnavailable:      codes.Unavailable,
	CodeInternal:         codes.Internal,
}

// String returns the code name
func (c Code) String() string {
	return string(c)
}

// GRPCCode returns the matching gRPC status code, Unknown for unlisted codes
func (c Code) GRPCCode() codes.Code {
	if code, ok := grpcCodes[c]; ok {
		return code
	}
	return codes.Unknown
}

// codeFromGRPC is the inverse of GRPCCode. Status codes the sheet never
// produces collapse to CodeInternal.
func codeFromGRPC(grpcCode codes.Code) Code {
	for code, mapped := range grpcCodes {
		if mapped == grpcCode {
			return code
		}
	}
	return CodeInternal
}
