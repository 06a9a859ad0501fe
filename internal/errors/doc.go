// Package errors provides coded errors for the rpg-sheet project.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form metadata. Codes map one to one onto gRPC status codes so the
// sheet service can hand them to clients unchanged.
//
// # Basic Usage
//
//	err := errors.InvalidArgumentf("unknown weapon: %s", id).
//	    WithMeta("field", "weapon")
//
//	if err := repo.AppendHistory(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to record history")
//	}
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    // start a fresh session
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("style_rank", rank, 0, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Engine: reject bad dice parameters and unknown selectors with InvalidArgument,
// naming the offending field in the message and in the "field" metadata key.
//
// Repositories: return NotFound for missing sessions and wrap Redis failures.
//
// Handlers: convert with ToGRPCError before returning.
package errors
