package tictactoe

import (
	"context"

	"google.golang.org/genproto/googleapis/api/httpbody"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "tictactoe.v1.TicTacToeService"

const (
	NewGameMethod           = "/" + ServiceName + "/NewGame"
	GetGameMethod           = "/" + ServiceName + "/GetGame"
	ListGamesMethod         = "/" + ServiceName + "/ListGames"
	PlayMethod              = "/" + ServiceName + "/Play"
	JumpToMethod            = "/" + ServiceName + "/JumpTo"
	GetBoardMethod          = "/" + ServiceName + "/GetBoard"
	DeleteGameMethod        = "/" + ServiceName + "/DeleteGame"
	StreamGameUpdatesMethod = "/" + ServiceName + "/StreamGameUpdates"
)

// StreamGameUpdatesServer is the server side of StreamGameUpdates.
type StreamGameUpdatesServer = grpc.ServerStreamingServer[GameUpdate]

// StreamGameUpdatesClient is the client side of StreamGameUpdates.
type StreamGameUpdatesClient = grpc.ServerStreamingClient[GameUpdate]

// TicTacToeServiceServer is the server API for the service.
// Implementations must embed UnimplementedTicTacToeServiceServer.
type TicTacToeServiceServer interface {
	NewGame(context.Context, *NewGameRequest) (*NewGameResponse, error)
	GetGame(context.Context, *GetGameRequest) (*GetGameResponse, error)
	ListGames(context.Context, *ListGamesRequest) (*ListGamesResponse, error)
	Play(context.Context, *PlayRequest) (*PlayResponse, error)
	JumpTo(context.Context, *JumpToRequest) (*JumpToResponse, error)
	GetBoard(context.Context, *GetBoardRequest) (*httpbody.HttpBody, error)
	DeleteGame(context.Context, *DeleteGameRequest) (*DeleteGameResponse, error)
	StreamGameUpdates(*StreamGameUpdatesRequest, StreamGameUpdatesServer) error
	mustEmbedUnimplementedTicTacToeServiceServer()
}

// UnimplementedTicTacToeServiceServer answers every RPC with Unimplemented.
type UnimplementedTicTacToeServiceServer struct{}

func (UnimplementedTicTacToeServiceServer) NewGame(context.Context, *NewGameRequest) (*NewGameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method NewGame not implemented")
}
func (UnimplementedTicTacToeServiceServer) GetGame(context.Context, *GetGameRequest) (*GetGameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetGame not implemented")
}
func (UnimplementedTicTacToeServiceServer) ListGames(context.Context, *ListGamesRequest) (*ListGamesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGames not implemented")
}
func (UnimplementedTicTacToeServiceServer) Play(context.Context, *PlayRequest) (*PlayResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Play not implemented")
}
func (UnimplementedTicTacToeServiceServer) JumpTo(context.Context, *JumpToRequest) (*JumpToResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method JumpTo not implemented")
}
func (UnimplementedTicTacToeServiceServer) GetBoard(context.Context, *GetBoardRequest) (*httpbody.HttpBody, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBoard not implemented")
}
func (UnimplementedTicTacToeServiceServer) DeleteGame(context.Context, *DeleteGameRequest) (*DeleteGameResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteGame not implemented")
}
func (UnimplementedTicTacToeServiceServer) StreamGameUpdates(*StreamGameUpdatesRequest, StreamGameUpdatesServer) error {
	return status.Error(codes.Unimplemented, "method StreamGameUpdates not implemented")
}
func (UnimplementedTicTacToeServiceServer) mustEmbedUnimplementedTicTacToeServiceServer() {}

// RegisterTicTacToeServiceServer registers srv on s.
func RegisterTicTacToeServiceServer(s grpc.ServiceRegistrar, srv TicTacToeServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodDesc handler.
func unaryHandler[Req any, Resp any](method string, call func(TicTacToeServiceServer, context.Context, *Req) (Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TicTacToeServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TicTacToeServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func streamGameUpdatesHandler(srv any, stream grpc.ServerStream) error {
	in := new(StreamGameUpdatesRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(TicTacToeServiceServer).StreamGameUpdates(in, &grpc.GenericServerStream[StreamGameUpdatesRequest, GameUpdate]{ServerStream: stream})
}

// ServiceDesc describes the service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TicTacToeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "NewGame",
			Handler:    unaryHandler(NewGameMethod, TicTacToeServiceServer.NewGame),
		},
		{
			MethodName: "GetGame",
			Handler:    unaryHandler(GetGameMethod, TicTacToeServiceServer.GetGame),
		},
		{
			MethodName: "ListGames",
			Handler:    unaryHandler(ListGamesMethod, TicTacToeServiceServer.ListGames),
		},
		{
			MethodName: "Play",
			Handler:    unaryHandler(PlayMethod, TicTacToeServiceServer.Play),
		},
		{
			MethodName: "JumpTo",
			Handler:    unaryHandler(JumpToMethod, TicTacToeServiceServer.JumpTo),
		},
		{
			MethodName: "GetBoard",
			Handler:    unaryHandler(GetBoardMethod, TicTacToeServiceServer.GetBoard),
		},
		{
			MethodName: "DeleteGame",
			Handler:    unaryHandler(DeleteGameMethod, TicTacToeServiceServer.DeleteGame),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamGameUpdates",
			Handler:       streamGameUpdatesHandler,
			ServerStreams: true,
		},
	},
	Metadata: "tictactoe/v1/tictactoe.proto",
}

// TicTacToeServiceClient is the client API for the service.
type TicTacToeServiceClient interface {
	NewGame(ctx context.Context, in *NewGameRequest, opts ...grpc.CallOption) (*NewGameResponse, error)
	GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error)
	ListGames(ctx context.Context, in *ListGamesRequest, opts ...grpc.CallOption) (*ListGamesResponse, error)
	Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*PlayResponse, error)
	JumpTo(ctx context.Context, in *JumpToRequest, opts ...grpc.CallOption) (*JumpToResponse, error)
	GetBoard(ctx context.Context, in *GetBoardRequest, opts ...grpc.CallOption) (*httpbody.HttpBody, error)
	DeleteGame(ctx context.Context, in *DeleteGameRequest, opts ...grpc.CallOption) (*DeleteGameResponse, error)
	StreamGameUpdates(ctx context.Context, in *StreamGameUpdatesRequest, opts ...grpc.CallOption) (StreamGameUpdatesClient, error)
}

type ticTacToeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTicTacToeServiceClient wraps a connection. Every call is sent with the
// json content-subtype.
func NewTicTacToeServiceClient(cc grpc.ClientConnInterface) TicTacToeServiceClient {
	return &ticTacToeServiceClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ticTacToeServiceClient) NewGame(ctx context.Context, in *NewGameRequest, opts ...grpc.CallOption) (*NewGameResponse, error) {
	return invoke[NewGameResponse](ctx, c.cc, NewGameMethod, in, opts)
}

func (c *ticTacToeServiceClient) GetGame(ctx context.Context, in *GetGameRequest, opts ...grpc.CallOption) (*GetGameResponse, error) {
	return invoke[GetGameResponse](ctx, c.cc, GetGameMethod, in, opts)
}

func (c *ticTacToeServiceClient) ListGames(ctx context.Context, in *ListGamesRequest, opts ...grpc.CallOption) (*ListGamesResponse, error) {
	return invoke[ListGamesResponse](ctx, c.cc, ListGamesMethod, in, opts)
}

func (c *ticTacToeServiceClient) Play(ctx context.Context, in *PlayRequest, opts ...grpc.CallOption) (*PlayResponse, error) {
	return invoke[PlayResponse](ctx, c.cc, PlayMethod, in, opts)
}

func (c *ticTacToeServiceClient) JumpTo(ctx context.Context, in *JumpToRequest, opts ...grpc.CallOption) (*JumpToResponse, error) {
	return invoke[JumpToResponse](ctx, c.cc, JumpToMethod, in, opts)
}

func (c *ticTacToeServiceClient) GetBoard(ctx context.Context, in *GetBoardRequest, opts ...grpc.CallOption) (*httpbody.HttpBody, error) {
	return invoke[httpbody.HttpBody](ctx, c.cc, GetBoardMethod, in, opts)
}

func (c *ticTacToeServiceClient) DeleteGame(ctx context.Context, in *DeleteGameRequest, opts ...grpc.CallOption) (*DeleteGameResponse, error) {
	return invoke[DeleteGameResponse](ctx, c.cc, DeleteGameMethod, in, opts)
}

func (c *ticTacToeServiceClient) StreamGameUpdates(ctx context.Context, in *StreamGameUpdatesRequest, opts ...grpc.CallOption) (StreamGameUpdatesClient, error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], StreamGameUpdatesMethod, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamGameUpdatesRequest, GameUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
