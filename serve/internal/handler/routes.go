package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
)

func Routes(serverCtx *svc.ServiceContext) []rest.Route {
	return []rest.Route{
		{
			Method:  http.MethodPost,
			Path:    "/games",
			Handler: CreateGameHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/games/:id",
			Handler: GetGameHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:id/place",
			Handler: PlaceArrowHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:id/rotate",
			Handler: RotateArrowHandler(serverCtx),
		},
		{
			Method:  http.MethodPost,
			Path:    "/games/:id/undo",
			Handler: UndoHandler(serverCtx),
		},
		{
			Method:  http.MethodGet,
			Path:    "/games/:id/suggest",
			Handler: SuggestHandler(serverCtx),
		},
	}
}

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(Routes(serverCtx))
}
