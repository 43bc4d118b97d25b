package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hand-recorder/internal/hand"
	"github.com/wfunc/hand-recorder/internal/service"
	ws "github.com/wfunc/hand-recorder/internal/websocket"
)

// SessionHandler 录入会话处理器
type SessionHandler struct {
	handService service.HandService
	hub         *ws.Hub
}

// NewSessionHandler 创建录入会话处理器
func NewSessionHandler(handService service.HandService, hub *ws.Hub) *SessionHandler {
	return &SessionHandler{
		handService: handService,
		hub:         hub,
	}
}

// ConfigureSeatsRequest 座位配置请求
type ConfigureSeatsRequest struct {
	Seats    []string `json:"seats" binding:"required"`
	HeroSeat string   `json:"hero_seat"`
}

// SetStreetRequest 切换街请求
type SetStreetRequest struct {
	Street string `json:"street" binding:"required"`
}

// SelectSeatRequest 手动选择行动座位请求
type SelectSeatRequest struct {
	Seat string `json:"seat" binding:"required"`
}

// RecordActionRequest 记录动作请求
type RecordActionRequest struct {
	Kind   string `json:"kind" binding:"required"`
	Amount string `json:"amount"`
}

// CreateSession 创建录入会话
// @Summary 创建录入会话
// @Tags Session
// @Produce json
// @Security Bearer
// @Success 200 {object} hand.Snapshot
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	_, snapshot, err := h.handService.CreateSession(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Code:    "SESSION_LIMIT",
			Message: err.Error(),
		})
		return
	}

	h.attachPush(c, snapshot.SessionID)
	c.JSON(http.StatusOK, snapshot)
}

// GetSession 获取会话状态快照
// @Summary 获取会话状态
// @Tags Session
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Success 200 {object} hand.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// DeleteSession 结束录入会话
// @Summary 结束录入会话
// @Tags Session
// @Security Bearer
// @Param id path string true "会话ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.handService.RemoveSession(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "SESSION_NOT_FOUND",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "会话已结束"})
}

// ConfigureSeats 配置本手牌的座位
// @Summary 配置座位
// @Tags Session
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Param request body ConfigureSeatsRequest true "座位配置"
// @Success 200 {object} hand.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/seats [put]
func (h *SessionHandler) ConfigureSeats(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req ConfigureSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	seats := make([]hand.Seat, 0, len(req.Seats))
	for _, s := range req.Seats {
		seat := hand.Seat(s)
		if !hand.KnownSeat(seat) {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    "INVALID_SEAT",
				Message: "无效的座位: " + s,
			})
			return
		}
		seats = append(seats, seat)
	}

	snapshot, err := session.ConfigureSeats(seats, hand.Seat(req.HeroSeat))
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SetStreet 切换当前街
// @Summary 切换街
// @Tags Session
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Param request body SetStreetRequest true "目标街"
// @Success 200 {object} hand.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/street [put]
func (h *SessionHandler) SetStreet(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SetStreetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	street, valid := hand.ParseStreet(req.Street)
	if !valid {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_STREET",
			Message: "无效的街名: " + req.Street,
		})
		return
	}

	snapshot, err := session.SetStreet(street)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SelectActor 手动选择行动座位
// @Summary 手动选择行动座位
// @Tags Session
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Param request body SelectSeatRequest true "目标座位"
// @Success 200 {object} hand.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/actor [put]
func (h *SessionHandler) SelectActor(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SelectSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	seat := hand.Seat(req.Seat)
	if !hand.KnownSeat(seat) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_SEAT",
			Message: "无效的座位: " + req.Seat,
		})
		return
	}

	snapshot, err := session.SelectSeat(seat)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RecordAction 记录当前行动座位的动作
// @Summary 记录动作
// @Tags Session
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Param request body RecordActionRequest true "动作"
// @Success 200 {object} hand.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/actions [post]
func (h *SessionHandler) RecordAction(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req RecordActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	action, err := hand.NewAction(hand.ActionKind(req.Kind), req.Amount)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	snapshot, err := session.RecordAction(action)
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Undo 撤销最近一条动作
// @Summary 撤销动作
// @Tags Session
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Success 200 {object} hand.Snapshot
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/undo [post]
func (h *SessionHandler) Undo(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	snapshot, err := session.Undo()
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// SaveHand 保存当前牌局并重置会话
// @Summary 保存牌局
// @Tags Session
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Param request body hand.SaveRequest true "牌局信息"
// @Success 200 {object} models.HandRecord
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/save [post]
func (h *SessionHandler) SaveHand(c *gin.Context) {
	var req hand.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	record, err := h.handService.SaveHand(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.sessionError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ResetHand 清空当前牌局状态
// @Summary 重置牌局
// @Tags Session
// @Produce json
// @Security Bearer
// @Param id path string true "会话ID"
// @Success 200 {object} hand.Snapshot
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) ResetHand(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	snapshot, err := session.ResetHand()
	if err != nil {
		h.sessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// session 按路径参数查找会话，找不到时写出404
func (h *SessionHandler) session(c *gin.Context) (*hand.Session, bool) {
	session, err := h.handService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "SESSION_NOT_FOUND",
			Message: err.Error(),
		})
		return nil, false
	}
	return session, true
}

// attachPush 注册会话状态变更的WebSocket推送
func (h *SessionHandler) attachPush(c *gin.Context, sessionID string) {
	if h.hub == nil {
		return
	}
	session, err := h.handService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		return
	}
	session.OnChange(func(snapshot *hand.Snapshot) {
		h.hub.PushSnapshot(sessionID, snapshot)
	})
}

// badRequest 写出请求解析错误
func (h *SessionHandler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: "请求参数错误",
		Details: err.Error(),
	})
}

// sessionError 将会话错误映射为HTTP响应。
// 校验错误原样返回原因文本，供录入端直接展示。
func (h *SessionHandler) sessionError(c *gin.Context, err error) {
	switch {
	case err == hand.ErrSessionNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "SESSION_NOT_FOUND",
			Message: err.Error(),
		})
	case hand.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		})
	}
}
