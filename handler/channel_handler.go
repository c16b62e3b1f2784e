package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-iptv-portal/common"
	"go-iptv-portal/model"
	"go-iptv-portal/service"
)

// ChannelHandler serves the projected channel catalog to authenticated
// clients. The session gate runs as middleware in front of it.
type ChannelHandler struct {
	service *service.ChannelService
}

func NewChannelHandler(service *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: service}
}

// ListChannels godoc
// @Summary      List channels
// @Description  Returns the channel catalog projected down to public fields.
// @Tags         channels
// @Produce      json
// @Success      200  {object}  model.ChannelListResponse
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /channels [get]
func (h *ChannelHandler) ListChannels(w http.ResponseWriter, r *http.Request) *common.AppError {
	if r.Method != http.MethodGet {
		return common.NewAppError(http.StatusMethodNotAllowed, "Method not allowed", nil)
	}

	channels, err := h.service.ListChannels()
	if err != nil {
		if errors.Is(err, common.ErrCatalogNotFound) {
			return common.NewAppError(http.StatusNotFound, "Channel catalog not available", err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not load channels", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ChannelListResponse{Success: true, Channels: channels})
	return nil
}
