package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgsheet.v1alpha1.SheetService"

// Full method names
const (
	SheetService_GetSheet_FullMethodName        = "/" + ServiceName + "/GetSheet"
	SheetService_ListSkills_FullMethodName      = "/" + ServiceName + "/ListSkills"
	SheetService_RollSkill_FullMethodName       = "/" + ServiceName + "/RollSkill"
	SheetService_ResolveAction_FullMethodName   = "/" + ServiceName + "/ResolveAction"
	SheetService_ListHistory_FullMethodName     = "/" + ServiceName + "/ListHistory"
	SheetService_ClearHistory_FullMethodName    = "/" + ServiceName + "/ClearHistory"
	SheetService_UpdateResources_FullMethodName = "/" + ServiceName + "/UpdateResources"
)

// SheetServiceServer is the server API for the sheet service.
// Requests and responses are google.protobuf.Struct documents.
type SheetServiceServer interface {
	GetSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListSkills(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResolveAction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClearHistory(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateResources(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSheetServiceServer registers srv on s
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&SheetService_ServiceDesc, srv)
}

type unaryMethod func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SheetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SheetService_ServiceDesc is the grpc.ServiceDesc for the sheet service
var SheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetSheet",
			Handler:    unaryHandler(SheetService_GetSheet_FullMethodName, SheetServiceServer.GetSheet),
		},
		{
			MethodName: "ListSkills",
			Handler:    unaryHandler(SheetService_ListSkills_FullMethodName, SheetServiceServer.ListSkills),
		},
		{
			MethodName: "RollSkill",
			Handler:    unaryHandler(SheetService_RollSkill_FullMethodName, SheetServiceServer.RollSkill),
		},
		{
			MethodName: "ResolveAction",
			Handler:    unaryHandler(SheetService_ResolveAction_FullMethodName, SheetServiceServer.ResolveAction),
		},
		{
			MethodName: "ListHistory",
			Handler:    unaryHandler(SheetService_ListHistory_FullMethodName, SheetServiceServer.ListHistory),
		},
		{
			MethodName: "ClearHistory",
			Handler:    unaryHandler(SheetService_ClearHistory_FullMethodName, SheetServiceServer.ClearHistory),
		},
		{
			MethodName: "UpdateResources",
			Handler:    unaryHandler(SheetService_UpdateResources_FullMethodName, SheetServiceServer.UpdateResources),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgsheet/v1alpha1/sheet.proto",
}

// SheetServiceClient is the client API for the sheet service
type SheetServiceClient interface {
	GetSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListSkills(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RollSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ResolveAction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	UpdateResources(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSheetServiceClient creates a client over cc
func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc: cc}
}

func (c *sheetServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts []grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetSheet(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_GetSheet_FullMethodName, in, opts)
}

func (c *sheetServiceClient) ListSkills(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_ListSkills_FullMethodName, in, opts)
}

func (c *sheetServiceClient) RollSkill(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_RollSkill_FullMethodName, in, opts)
}

func (c *sheetServiceClient) ResolveAction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_ResolveAction_FullMethodName, in, opts)
}

func (c *sheetServiceClient) ListHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_ListHistory_FullMethodName, in, opts)
}

func (c *sheetServiceClient) ClearHistory(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_ClearHistory_FullMethodName, in, opts)
}

func (c *sheetServiceClient) UpdateResources(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SheetService_UpdateResources_FullMethodName, in, opts)
}
