// Package v1alpha1 handles the sheet gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// HandlerConfig holds dependencies for the sheet handler
type HandlerConfig struct {
	SheetService sheet.Service

	// DefaultSessionID is used when a request names no session
	DefaultSessionID string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.SheetService == nil {
		return errors.InvalidArgument("sheet service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	sheetService     sheet.Service
	defaultSessionID string
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new sheet handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		sheetService:     cfg.SheetService,
		defaultSessionID: cfg.DefaultSessionID,
	}, nil
}

func (h *Handler) sessionID(requested string) string {
	if requested != "" {
		return requested
	}
	return h.defaultSessionID
}

// respond encodes a response document
func respond(v interface{}) (*structpb.Struct, error) {
	out, err := EncodeStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// GetSheet renders the sheet for a session and situation
func (h *Handler) GetSheet(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req GetSheetRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.GetSheet(ctx, &sheet.GetSheetInput{
		SessionID: h.sessionID(req.SessionID),
		Context:   req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(convertSheet(out))
}

// ListSkills returns the skill table
func (h *Handler) ListSkills(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListSkillsRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.ListSkills(ctx, &sheet.ListSkillsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListSkillsResponse{Skills: convertSkills(out.Skills)})
}

// RollSkill rolls one skill and records it
func (h *Handler) RollSkill(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req RollSkillRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	out, err := h.sheetService.RollSkill(ctx, &sheet.RollSkillInput{
		SessionID: h.sessionID(req.SessionID),
		Skill:     req.Skill,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RollSkillResponse{
		Check: out.Check,
		Entry: convertEntry(out.Entry),
	})
}

// ResolveAction resolves an ability and records it
func (h *Handler) ResolveAction(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ResolveActionRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Ability == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ability is required"))
	}

	out, err := h.sheetService.ResolveAction(ctx, &sheet.ResolveActionInput{
		SessionID: h.sessionID(req.SessionID),
		Ability:   req.Ability,
		Context:   req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ResolveActionResponse{
		Record: out.Record,
		Entry:  convertEntry(out.Entry),
	})
}

// ListHistory lists the newest history entries
func (h *Handler) ListHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ListHistoryRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.ListHistory(ctx, &sheet.ListHistoryInput{
		SessionID: h.sessionID(req.SessionID),
		Limit:     req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListHistoryResponse{Entries: convertEntries(out.Entries)})
}

// ClearHistory empties the history of a session
func (h *Handler) ClearHistory(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req ClearHistoryRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.ClearHistory(ctx, &sheet.ClearHistoryInput{
		SessionID: h.sessionID(req.SessionID),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ClearHistoryResponse{EntriesDeleted: out.EntriesDeleted})
}

// UpdateResources stores the current pools
func (h *Handler) UpdateResources(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req UpdateResourcesRequest
	if err := DecodeStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.sheetService.UpdateResources(ctx, &sheet.UpdateResourcesInput{
		SessionID: h.sessionID(req.SessionID),
		Resources: req.Resources,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&UpdateResourcesResponse{Resources: out.Resources})
}
