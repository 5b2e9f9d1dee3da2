package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "passbook.v1.BankService"

// Full method names
const (
	LoginMethod        = "/" + ServiceName + "/Login"
	LogoutMethod       = "/" + ServiceName + "/Logout"
	DepositMethod      = "/" + ServiceName + "/Deposit"
	WithdrawMethod     = "/" + ServiceName + "/Withdraw"
	TransferMethod     = "/" + ServiceName + "/Transfer"
	OverviewMethod     = "/" + ServiceName + "/Overview"
	TransactionsMethod = "/" + ServiceName + "/Transactions"
	PassbookMethod     = "/" + ServiceName + "/Passbook"
	ThankYouMethod     = "/" + ServiceName + "/ThankYou"
)

// BankServiceServer is the server API for the BankService service.
// Requests and responses are google.protobuf.Struct messages.
type BankServiceServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Deposit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Withdraw(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Transfer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Overview(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Transactions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Passbook(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ThankYou(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(BankServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

// unaryHandler adapts a BankServiceServer method to a grpc.MethodHandler
func unaryHandler(fullMethod string, call unaryMethod) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BankServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BankServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BankServiceDesc is the grpc.ServiceDesc for the BankService service
var BankServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BankServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, BankServiceServer.Login)},
		{MethodName: "Logout", Handler: unaryHandler(LogoutMethod, BankServiceServer.Logout)},
		{MethodName: "Deposit", Handler: unaryHandler(DepositMethod, BankServiceServer.Deposit)},
		{MethodName: "Withdraw", Handler: unaryHandler(WithdrawMethod, BankServiceServer.Withdraw)},
		{MethodName: "Transfer", Handler: unaryHandler(TransferMethod, BankServiceServer.Transfer)},
		{MethodName: "Overview", Handler: unaryHandler(OverviewMethod, BankServiceServer.Overview)},
		{MethodName: "Transactions", Handler: unaryHandler(TransactionsMethod, BankServiceServer.Transactions)},
		{MethodName: "Passbook", Handler: unaryHandler(PassbookMethod, BankServiceServer.Passbook)},
		{MethodName: "ThankYou", Handler: unaryHandler(ThankYouMethod, BankServiceServer.ThankYou)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterBankServiceServer registers srv on s
func RegisterBankServiceServer(s grpc.ServiceRegistrar, srv BankServiceServer) {
	s.RegisterService(&BankServiceDesc, srv)
}
