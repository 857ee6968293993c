// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: engine.proto

package enginepb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	EngineService_GetOverlap_FullMethodName         = "/multiseed.engine.v1.EngineService/GetOverlap"
	EngineService_GetCoreHamiltonian_FullMethodName = "/multiseed.engine.v1.EngineService/GetCoreHamiltonian"
	EngineService_BuildFock_FullMethodName          = "/multiseed.engine.v1.EngineService/BuildFock"
	EngineService_OneNewtonStep_FullMethodName      = "/multiseed.engine.v1.EngineService/OneNewtonStep"
	EngineService_EnergyElectronic_FullMethodName   = "/multiseed.engine.v1.EngineService/EnergyElectronic"
	EngineService_EnergyTotal_FullMethodName        = "/multiseed.engine.v1.EngineService/EnergyTotal"
	EngineService_Occupation_FullMethodName         = "/multiseed.engine.v1.EngineService/Occupation"
	EngineService_SecularSolve_FullMethodName       = "/multiseed.engine.v1.EngineService/SecularSolve"
)

// EngineServiceClient is the client API for EngineService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EngineServiceClient interface {
	GetOverlap(ctx context.Context, in *GetOverlapRequest, opts ...grpc.CallOption) (*MatrixResponse, error)
	GetCoreHamiltonian(ctx context.Context, in *GetCoreHamiltonianRequest, opts ...grpc.CallOption) (*MatrixResponse, error)
	BuildFock(ctx context.Context, in *BuildFockRequest, opts ...grpc.CallOption) (*MatrixResponse, error)
	OneNewtonStep(ctx context.Context, in *NewtonStepRequest, opts ...grpc.CallOption) (*NewtonStepResponse, error)
	EnergyElectronic(ctx context.Context, in *EnergyRequest, opts ...grpc.CallOption) (*EnergyResponse, error)
	EnergyTotal(ctx context.Context, in *EnergyRequest, opts ...grpc.CallOption) (*EnergyResponse, error)
	Occupation(ctx context.Context, in *OccupationRequest, opts ...grpc.CallOption) (*OccupationResponse, error)
	SecularSolve(ctx context.Context, in *SecularSolveRequest, opts ...grpc.CallOption) (*SecularSolveResponse, error)
}

type engineServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEngineServiceClient(cc grpc.ClientConnInterface) EngineServiceClient {
	return &engineServiceClient{cc}
}

func (c *engineServiceClient) GetOverlap(ctx context.Context, in *GetOverlapRequest, opts ...grpc.CallOption) (*MatrixResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MatrixResponse)
	err := c.cc.Invoke(ctx, EngineService_GetOverlap_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) GetCoreHamiltonian(ctx context.Context, in *GetCoreHamiltonianRequest, opts ...grpc.CallOption) (*MatrixResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MatrixResponse)
	err := c.cc.Invoke(ctx, EngineService_GetCoreHamiltonian_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) BuildFock(ctx context.Context, in *BuildFockRequest, opts ...grpc.CallOption) (*MatrixResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(MatrixResponse)
	err := c.cc.Invoke(ctx, EngineService_BuildFock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) OneNewtonStep(ctx context.Context, in *NewtonStepRequest, opts ...grpc.CallOption) (*NewtonStepResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(NewtonStepResponse)
	err := c.cc.Invoke(ctx, EngineService_OneNewtonStep_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) EnergyElectronic(ctx context.Context, in *EnergyRequest, opts ...grpc.CallOption) (*EnergyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnergyResponse)
	err := c.cc.Invoke(ctx, EngineService_EnergyElectronic_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) EnergyTotal(ctx context.Context, in *EnergyRequest, opts ...grpc.CallOption) (*EnergyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnergyResponse)
	err := c.cc.Invoke(ctx, EngineService_EnergyTotal_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) Occupation(ctx context.Context, in *OccupationRequest, opts ...grpc.CallOption) (*OccupationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(OccupationResponse)
	err := c.cc.Invoke(ctx, EngineService_Occupation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *engineServiceClient) SecularSolve(ctx context.Context, in *SecularSolveRequest, opts ...grpc.CallOption) (*SecularSolveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SecularSolveResponse)
	err := c.cc.Invoke(ctx, EngineService_SecularSolve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EngineServiceServer is the server API for EngineService service.
// All implementations must embed UnimplementedEngineServiceServer
// for forward compatibility.
type EngineServiceServer interface {
	GetOverlap(context.Context, *GetOverlapRequest) (*MatrixResponse, error)
	GetCoreHamiltonian(context.Context, *GetCoreHamiltonianRequest) (*MatrixResponse, error)
	BuildFock(context.Context, *BuildFockRequest) (*MatrixResponse, error)
	OneNewtonStep(context.Context, *NewtonStepRequest) (*NewtonStepResponse, error)
	EnergyElectronic(context.Context, *EnergyRequest) (*EnergyResponse, error)
	EnergyTotal(context.Context, *EnergyRequest) (*EnergyResponse, error)
	Occupation(context.Context, *OccupationRequest) (*OccupationResponse, error)
	SecularSolve(context.Context, *SecularSolveRequest) (*SecularSolveResponse, error)
	mustEmbedUnimplementedEngineServiceServer()
}

// UnimplementedEngineServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEngineServiceServer struct{}

func (UnimplementedEngineServiceServer) GetOverlap(context.Context, *GetOverlapRequest) (*MatrixResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOverlap not implemented")
}
func (UnimplementedEngineServiceServer) GetCoreHamiltonian(context.Context, *GetCoreHamiltonianRequest) (*MatrixResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCoreHamiltonian not implemented")
}
func (UnimplementedEngineServiceServer) BuildFock(context.Context, *BuildFockRequest) (*MatrixResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method BuildFock not implemented")
}
func (UnimplementedEngineServiceServer) OneNewtonStep(context.Context, *NewtonStepRequest) (*NewtonStepResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OneNewtonStep not implemented")
}
func (UnimplementedEngineServiceServer) EnergyElectronic(context.Context, *EnergyRequest) (*EnergyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EnergyElectronic not implemented")
}
func (UnimplementedEngineServiceServer) EnergyTotal(context.Context, *EnergyRequest) (*EnergyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EnergyTotal not implemented")
}
func (UnimplementedEngineServiceServer) Occupation(context.Context, *OccupationRequest) (*OccupationResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Occupation not implemented")
}
func (UnimplementedEngineServiceServer) SecularSolve(context.Context, *SecularSolveRequest) (*SecularSolveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SecularSolve not implemented")
}
func (UnimplementedEngineServiceServer) mustEmbedUnimplementedEngineServiceServer() {}
func (UnimplementedEngineServiceServer) testEmbeddedByValue()                       {}

// UnsafeEngineServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EngineServiceServer will
// result in compilation errors.
type UnsafeEngineServiceServer interface {
	mustEmbedUnimplementedEngineServiceServer()
}

func RegisterEngineServiceServer(s grpc.ServiceRegistrar, srv EngineServiceServer) {
	// If the following call panics, it indicates UnimplementedEngineServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EngineService_ServiceDesc, srv)
}

func _EngineService_GetOverlap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetOverlapRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).GetOverlap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_GetOverlap_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).GetOverlap(ctx, req.(*GetOverlapRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_GetCoreHamiltonian_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCoreHamiltonianRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).GetCoreHamiltonian(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_GetCoreHamiltonian_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).GetCoreHamiltonian(ctx, req.(*GetCoreHamiltonianRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_BuildFock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuildFockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).BuildFock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_BuildFock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).BuildFock(ctx, req.(*BuildFockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_OneNewtonStep_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NewtonStepRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).OneNewtonStep(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_OneNewtonStep_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).OneNewtonStep(ctx, req.(*NewtonStepRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_EnergyElectronic_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnergyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).EnergyElectronic(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_EnergyElectronic_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).EnergyElectronic(ctx, req.(*EnergyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_EnergyTotal_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnergyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).EnergyTotal(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_EnergyTotal_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).EnergyTotal(ctx, req.(*EnergyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_Occupation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OccupationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).Occupation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_Occupation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).Occupation(ctx, req.(*OccupationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EngineService_SecularSolve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SecularSolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EngineServiceServer).SecularSolve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EngineService_SecularSolve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EngineServiceServer).SecularSolve(ctx, req.(*SecularSolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EngineService_ServiceDesc is the grpc.ServiceDesc for EngineService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EngineService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "multiseed.engine.v1.EngineService",
	HandlerType: (*EngineServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetOverlap",
			Handler:    _EngineService_GetOverlap_Handler,
		},
		{
			MethodName: "GetCoreHamiltonian",
			Handler:    _EngineService_GetCoreHamiltonian_Handler,
		},
		{
			MethodName: "BuildFock",
			Handler:    _EngineService_BuildFock_Handler,
		},
		{
			MethodName: "OneNewtonStep",
			Handler:    _EngineService_OneNewtonStep_Handler,
		},
		{
			MethodName: "EnergyElectronic",
			Handler:    _EngineService_EnergyElectronic_Handler,
		},
		{
			MethodName: "EnergyTotal",
			Handler:    _EngineService_EnergyTotal_Handler,
		},
		{
			MethodName: "Occupation",
			Handler:    _EngineService_Occupation_Handler,
		},
		{
			MethodName: "SecularSolve",
			Handler:    _EngineService_SecularSolve_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "engine.proto",
}
