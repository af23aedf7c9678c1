package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"github.com/HuXin0817/circuit-lines/serve/internal/logic"
	"github.com/HuXin0817/circuit-lines/serve/internal/svc"
	"github.com/HuXin0817/circuit-lines/serve/internal/types"
)

func PlaceArrowHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MoveRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, badRequest(err))
			return
		}

		l := logic.NewPlaceArrowLogic(r.Context(), svcCtx)
		resp, err := l.PlaceArrow(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
