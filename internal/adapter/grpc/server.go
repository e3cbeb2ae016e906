package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/moneytransfer/internal/domain"
)

// Server implements the LedgerService gRPC server
type Server struct {
	Ledger domain.Ledger
}

var _ LedgerServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(ledger domain.Ledger) *Server {
	return &Server{Ledger: ledger}
}

// CreateAccount handles the CreateAccount RPC
func (s *Server) CreateAccount(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	id, err := parseAccountID(req.GetValue())
	if err != nil {
		return nil, mapError(err)
	}

	created, err := s.Ledger.CreateAccount(id)
	if err != nil {
		return nil, mapError(err)
	}

	return wrapperspb.String(created.String()), nil
}

// GetBalance handles the GetBalance RPC
func (s *Server) GetBalance(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	id, err := parseAccountID(req.GetValue())
	if err != nil {
		return nil, mapError(err)
	}

	balance, err := s.Ledger.GetBalance(id)
	if err != nil {
		return nil, mapError(err)
	}

	return wrapperspb.String(balance.String()), nil
}

// Deposit handles the Deposit RPC
func (s *Server) Deposit(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, amount, err := amountRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.Ledger.Deposit(id, amount); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// Withdraw handles the Withdraw RPC
func (s *Server) Withdraw(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	id, amount, err := amountRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.Ledger.Withdraw(id, amount); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// Transfer handles the Transfer RPC
func (s *Server) Transfer(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	rawFrom, err := stringField(req, FieldFrom)
	if err != nil {
		return nil, err
	}
	rawTo, err := stringField(req, FieldTo)
	if err != nil {
		return nil, err
	}
	rawAmount, err := stringField(req, FieldAmount)
	if err != nil {
		return nil, err
	}

	from, err := parseAccountID(rawFrom)
	if err != nil {
		return nil, mapError(err)
	}
	to, err := parseAccountID(rawTo)
	if err != nil {
		return nil, mapError(err)
	}
	amount, err := domain.ParseMoney(rawAmount)
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.Ledger.Transfer(from, to, amount); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

func parseAccountID(raw string) (domain.AccountID, error) {
	id := domain.AccountID(raw)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// amountRequest extracts the account_id and amount fields of a Deposit or Withdraw request
func amountRequest(req *structpb.Struct) (domain.AccountID, domain.Money, error) {
	rawID, err := stringField(req, FieldAccountID)
	if err != nil {
		return "", domain.Money{}, err
	}
	rawAmount, err := stringField(req, FieldAmount)
	if err != nil {
		return "", domain.Money{}, err
	}

	id, err := parseAccountID(rawID)
	if err != nil {
		return "", domain.Money{}, mapError(err)
	}
	amount, err := domain.ParseMoney(rawAmount)
	if err != nil {
		return "", domain.Money{}, mapError(err)
	}

	return id, amount, nil
}

// stringField returns a string-typed field of req.
// Amounts travel as strings so no precision is lost to float64.
func stringField(req *structpb.Struct, name string) (string, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %q", name)
	}

	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %q must be a string", name)
	}

	return sv.StringValue, nil
}

// mapError maps ledger errors to gRPC status codes
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidAccountID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrAccountExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		// Unexpected faults are not echoed to the caller
		return status.Error(codes.Internal, "internal error")
	}
}
