// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: claims/v1/claims.proto

package claimsv1

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
	ClaimsService_SubmitClaim_FullMethodName       = "/claims.v1.ClaimsService/SubmitClaim"
	ClaimsService_GetClaim_FullMethodName          = "/claims.v1.ClaimsService/GetClaim"
	ClaimsService_ListClaims_FullMethodName        = "/claims.v1.ClaimsService/ListClaims"
	ClaimsService_UpdateClaimStatus_FullMethodName = "/claims.v1.ClaimsService/UpdateClaimStatus"
	ClaimsService_ExportClaims_FullMethodName      = "/claims.v1.ClaimsService/ExportClaims"
)

// ClaimsServiceClient is the client API for ClaimsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ClaimsServiceClient interface {
	SubmitClaim(ctx context.Context, in *SubmitClaimRequest, opts ...grpc.CallOption) (*SubmitClaimResponse, error)
	GetClaim(ctx context.Context, in *GetClaimRequest, opts ...grpc.CallOption) (*GetClaimResponse, error)
	ListClaims(ctx context.Context, in *ListClaimsRequest, opts ...grpc.CallOption) (*ListClaimsResponse, error)
	UpdateClaimStatus(ctx context.Context, in *UpdateClaimStatusRequest, opts ...grpc.CallOption) (*UpdateClaimStatusResponse, error)
	ExportClaims(ctx context.Context, in *ExportClaimsRequest, opts ...grpc.CallOption) (*ExportClaimsResponse, error)
}

type claimsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClaimsServiceClient(cc grpc.ClientConnInterface) ClaimsServiceClient {
	return &claimsServiceClient{cc}
}

func (c *claimsServiceClient) SubmitClaim(ctx context.Context, in *SubmitClaimRequest, opts ...grpc.CallOption) (*SubmitClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_SubmitClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) GetClaim(ctx context.Context, in *GetClaimRequest, opts ...grpc.CallOption) (*GetClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetClaimResponse)
	err := c.cc.Invoke(ctx, ClaimsService_GetClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ListClaims(ctx context.Context, in *ListClaimsRequest, opts ...grpc.CallOption) (*ListClaimsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListClaimsResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ListClaims_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) UpdateClaimStatus(ctx context.Context, in *UpdateClaimStatusRequest, opts ...grpc.CallOption) (*UpdateClaimStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateClaimStatusResponse)
	err := c.cc.Invoke(ctx, ClaimsService_UpdateClaimStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *claimsServiceClient) ExportClaims(ctx context.Context, in *ExportClaimsRequest, opts ...grpc.CallOption) (*ExportClaimsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportClaimsResponse)
	err := c.cc.Invoke(ctx, ClaimsService_ExportClaims_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClaimsServiceServer is the server API for ClaimsService service.
// All implementations must embed UnimplementedClaimsServiceServer
// for forward compatibility.
type ClaimsServiceServer interface {
	SubmitClaim(context.Context, *SubmitClaimRequest) (*SubmitClaimResponse, error)
	GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error)
	ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error)
	UpdateClaimStatus(context.Context, *UpdateClaimStatusRequest) (*UpdateClaimStatusResponse, error)
	ExportClaims(context.Context, *ExportClaimsRequest) (*ExportClaimsResponse, error)
	mustEmbedUnimplementedClaimsServiceServer()
}

// UnimplementedClaimsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedClaimsServiceServer struct{}

func (UnimplementedClaimsServiceServer) SubmitClaim(context.Context, *SubmitClaimRequest) (*SubmitClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitClaim not implemented")
}
func (UnimplementedClaimsServiceServer) GetClaim(context.Context, *GetClaimRequest) (*GetClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetClaim not implemented")
}
func (UnimplementedClaimsServiceServer) ListClaims(context.Context, *ListClaimsRequest) (*ListClaimsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListClaims not implemented")
}
func (UnimplementedClaimsServiceServer) UpdateClaimStatus(context.Context, *UpdateClaimStatusRequest) (*UpdateClaimStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateClaimStatus not implemented")
}
func (UnimplementedClaimsServiceServer) ExportClaims(context.Context, *ExportClaimsRequest) (*ExportClaimsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportClaims not implemented")
}
func (UnimplementedClaimsServiceServer) mustEmbedUnimplementedClaimsServiceServer() {}
func (UnimplementedClaimsServiceServer) testEmbeddedByValue()                       {}

// UnsafeClaimsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ClaimsServiceServer will
// result in compilation errors.
type UnsafeClaimsServiceServer interface {
	mustEmbedUnimplementedClaimsServiceServer()
}

func RegisterClaimsServiceServer(s grpc.ServiceRegistrar, srv ClaimsServiceServer) {
	// If the following call pancis, it indicates UnimplementedClaimsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ClaimsService_ServiceDesc, srv)
}

func _ClaimsService_SubmitClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).SubmitClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_SubmitClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).SubmitClaim(ctx, req.(*SubmitClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_GetClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).GetClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_GetClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).GetClaim(ctx, req.(*GetClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ListClaims_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClaimsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ListClaims(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ListClaims_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ListClaims(ctx, req.(*ListClaimsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_UpdateClaimStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateClaimStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).UpdateClaimStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_UpdateClaimStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).UpdateClaimStatus(ctx, req.(*UpdateClaimStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ClaimsService_ExportClaims_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportClaimsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClaimsServiceServer).ExportClaims(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClaimsService_ExportClaims_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ClaimsServiceServer).ExportClaims(ctx, req.(*ExportClaimsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ClaimsService_ServiceDesc is the grpc.ServiceDesc for ClaimsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ClaimsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "claims.v1.ClaimsService",
	HandlerType: (*ClaimsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitClaim",
			Handler:    _ClaimsService_SubmitClaim_Handler,
		},
		{
			MethodName: "GetClaim",
			Handler:    _ClaimsService_GetClaim_Handler,
		},
		{
			MethodName: "ListClaims",
			Handler:    _ClaimsService_ListClaims_Handler,
		},
		{
			MethodName: "UpdateClaimStatus",
			Handler:    _ClaimsService_UpdateClaimStatus_Handler,
		},
		{
			MethodName: "ExportClaims",
			Handler:    _ClaimsService_ExportClaims_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "claims/v1/claims.proto",
}

const (
	DocumentsService_UploadDocument_FullMethodName = "/claims.v1.DocumentsService/UploadDocument"
	DocumentsService_VerifyClaim_FullMethodName    = "/claims.v1.DocumentsService/VerifyClaim"
	DocumentsService_GetDocumentURL_FullMethodName = "/claims.v1.DocumentsService/GetDocumentURL"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DocumentsServiceClient interface {
	UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error)
	VerifyClaim(ctx context.Context, in *VerifyClaimRequest, opts ...grpc.CallOption) (*VerifyClaimResponse, error)
	GetDocumentURL(ctx context.Context, in *GetDocumentURLRequest, opts ...grpc.CallOption) (*GetDocumentURLResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) UploadDocument(ctx context.Context, in *UploadDocumentRequest, opts ...grpc.CallOption) (*UploadDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_UploadDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) VerifyClaim(ctx context.Context, in *VerifyClaimRequest, opts ...grpc.CallOption) (*VerifyClaimResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyClaimResponse)
	err := c.cc.Invoke(ctx, DocumentsService_VerifyClaim_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocumentURL(ctx context.Context, in *GetDocumentURLRequest, opts ...grpc.CallOption) (*GetDocumentURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentURLResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocumentURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
type DocumentsServiceServer interface {
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	VerifyClaim(context.Context, *VerifyClaimRequest) (*VerifyClaimResponse, error)
	GetDocumentURL(context.Context, *GetDocumentURLRequest) (*GetDocumentURLResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) VerifyClaim(context.Context, *VerifyClaimRequest) (*VerifyClaimResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method VerifyClaim not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocumentURL(context.Context, *GetDocumentURLRequest) (*GetDocumentURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentURL not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_UploadDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_VerifyClaim_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyClaimRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).VerifyClaim(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_VerifyClaim_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).VerifyClaim(ctx, req.(*VerifyClaimRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocumentURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocumentURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocumentURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocumentURL(ctx, req.(*GetDocumentURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "claims.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadDocument",
			Handler:    _DocumentsService_UploadDocument_Handler,
		},
		{
			MethodName: "VerifyClaim",
			Handler:    _DocumentsService_VerifyClaim_Handler,
		},
		{
			MethodName: "GetDocumentURL",
			Handler:    _DocumentsService_GetDocumentURL_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "claims/v1/claims.proto",
}
