package web

import (
	"errors"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/errs"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// CandidateRoutes 挂在候选人角色的分组下面
func (h *Handler) CandidateRoutes(g *gin.RouterGroup) {
	g.POST("/profile/save", ginx.BS[Profile](h.Save))
	g.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) Save(ctx *ginx.Context, req Profile, sess session.Session) (ginx.Result, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" {
		return ginx.Result{Code: errs.InvalidProfile.Code, Msg: errs.InvalidProfile.Msg}, nil
	}
	err := h.svc.Save(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{Data: newProfile(c)}, nil
	case errors.Is(err, service.ErrProfileNotFound):
		return ginx.Result{Code: errs.ProfileNotFound.Code, Msg: errs.ProfileNotFound.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
