package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of moneytransfer.v1.LedgerService
const (
	LedgerService_CreateAccount_FullMethodName = "/moneytransfer.v1.LedgerService/CreateAccount"
	LedgerService_GetBalance_FullMethodName    = "/moneytransfer.v1.LedgerService/GetBalance"
	LedgerService_Deposit_FullMethodName       = "/moneytransfer.v1.LedgerService/Deposit"
	LedgerService_Withdraw_FullMethodName      = "/moneytransfer.v1.LedgerService/Withdraw"
	LedgerService_Transfer_FullMethodName      = "/moneytransfer.v1.LedgerService/Transfer"
)

// Struct field names used by the Deposit, Withdraw and Transfer requests
const (
	FieldAccountID = "account_id"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldAmount    = "amount"
)

// LedgerServiceServer is the server API for the LedgerService.
// Messages are protobuf well-known types, so no generated code is needed:
//   - CreateAccount: StringValue(id) -> StringValue(id)
//   - GetBalance:    StringValue(id) -> StringValue(amount, e.g. "12.34")
//   - Deposit:       Struct{account_id, amount} -> Empty
//   - Withdraw:      Struct{account_id, amount} -> Empty
//   - Transfer:      Struct{from, to, amount} -> Empty
type LedgerServiceServer interface {
	CreateAccount(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	GetBalance(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Deposit(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Withdraw(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Transfer(context.Context, *structpb.Struct) (*emptypb.Empty, error)
}

// RegisterLedgerServiceServer registers srv on s
func RegisterLedgerServiceServer(s grpc.ServiceRegistrar, srv LedgerServiceServer) {
	s.RegisterService(&LedgerService_ServiceDesc, srv)
}

// LedgerService_ServiceDesc is the grpc.ServiceDesc for LedgerService
var LedgerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "moneytransfer.v1.LedgerService",
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAccount",
			Handler: unaryHandler(LedgerService_CreateAccount_FullMethodName, newStringValue,
				LedgerServiceServer.CreateAccount),
		},
		{
			MethodName: "GetBalance",
			Handler: unaryHandler(LedgerService_GetBalance_FullMethodName, newStringValue,
				LedgerServiceServer.GetBalance),
		},
		{
			MethodName: "Deposit",
			Handler:    unaryHandler(LedgerService_Deposit_FullMethodName, newStruct, LedgerServiceServer.Deposit),
		},
		{
			MethodName: "Withdraw",
			Handler:    unaryHandler(LedgerService_Withdraw_FullMethodName, newStruct, LedgerServiceServer.Withdraw),
		},
		{
			MethodName: "Transfer",
			Handler:    unaryHandler(LedgerService_Transfer_FullMethodName, newStruct, LedgerServiceServer.Transfer),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "",
}

func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }

func newStruct() *structpb.Struct { return new(structpb.Struct) }

// unaryHandler adapts a typed server method to the grpc method handler signature,
// running the server's unary interceptor chain when one is installed
func unaryHandler[Req proto.Message, Resp any](
	fullMethod string,
	newReq func() Req,
	call func(LedgerServiceServer, context.Context, Req) (Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LedgerServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(LedgerServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// LedgerServiceClient is the client API for the LedgerService
type LedgerServiceClient interface {
	CreateAccount(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	GetBalance(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Deposit(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Withdraw(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Transfer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type ledgerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewLedgerServiceClient creates a client bound to cc
func NewLedgerServiceClient(cc grpc.ClientConnInterface) LedgerServiceClient {
	return &ledgerServiceClient{cc: cc}
}

func (c *ledgerServiceClient) CreateAccount(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, LedgerService_CreateAccount_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) GetBalance(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, LedgerService_GetBalance_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Deposit(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, LedgerService_Deposit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Withdraw(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, LedgerService_Withdraw_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Transfer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, LedgerService_Transfer_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// NewAmountRequest builds the Deposit/Withdraw request message
func NewAmountRequest(accountID, amount string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldAccountID: structpb.NewStringValue(accountID),
		FieldAmount:    structpb.NewStringValue(amount),
	}}
}

// NewTransferRequest builds the Transfer request message
func NewTransferRequest(from, to, amount string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldFrom:   structpb.NewStringValue(from),
		FieldTo:     structpb.NewStringValue(to),
		FieldAmount: structpb.NewStringValue(amount),
	}}
}
