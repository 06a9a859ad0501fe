package errors

import (
	"encoding/json"

	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err to a status error. Metadata rides along as a
// structpb.Struct detail. Status errors pass through unchanged.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	st := status.New(GetCode(err).GRPCCode(), GetMessage(err))
	if details := metaToStruct(GetMeta(err)); details != nil {
		if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

// FromGRPCError rebuilds an *Error from a status error, metadata included.
// Errors that are not statuses are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	coded := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			coded.Meta = meta.AsMap()
			break
		}
	}
	return coded
}

// metaToStruct goes through JSON so nested values like map[string][]string
// convert cleanly
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	if len(meta) == 0 {
		return nil
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil
	}
	return out
}
