package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hand-recorder/internal/service"
)

// HistoryHandler 牌局历史处理器
type HistoryHandler struct {
	handService service.HandService
}

// NewHistoryHandler 创建牌局历史处理器
func NewHistoryHandler(handService service.HandService) *HistoryHandler {
	return &HistoryHandler{
		handService: handService,
	}
}

// HandListResponse 牌局列表响应
type HandListResponse struct {
	Hands    interface{} `json:"hands"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// ListHands 分页列出已保存的牌局
// @Summary 牌局历史列表
// @Tags History
// @Produce json
// @Security Bearer
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} HandListResponse
// @Router /api/v1/hands [get]
func (h *HistoryHandler) ListHands(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, total, err := h.handService.ListHands(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "LIST_FAILED",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HandListResponse{
		Hands:    records,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetHand 获取牌局详情
// @Summary 牌局详情
// @Tags History
// @Produce json
// @Security Bearer
// @Param id path int true "记录ID"
// @Success 200 {object} models.HandRecord
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/hands/{id} [get]
func (h *HistoryHandler) GetHand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST",
			Message: "无效的记录ID",
		})
		return
	}

	record, err := h.handService.GetHand(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "RECORD_NOT_FOUND",
			Message: "记录不存在",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteHand 删除牌局记录
// @Summary 删除牌局
// @Tags History
// @Security Bearer
// @Param id path int true "记录ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/hands/{id} [delete]
func (h *HistoryHandler) DeleteHand(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_REQUEST",
			Message: "无效的记录ID",
		})
		return
	}

	if err := h.handService.DeleteHand(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "RECORD_NOT_FOUND",
			Message: "记录不存在",
		})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "记录已删除"})
}
