package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/request"
	"voicefront/internal/handler/dto/response"
	"voicefront/internal/handler/httperr"
	"voicefront/internal/usecase/queries"
)

type AvailabilityHandler struct {
	availability *queries.AvailabilityQuery
}

func NewAvailabilityHandler(availability *queries.AvailabilityQuery) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// Check godoc
//
//	@Summary	Check availability for an item, on specific dates or over the coming days
//	@Tags		availability
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.Availability	false	"availability request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	503		{object}	response.Voice
//	@Router		/api/availability [post]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req request.Availability
	if !bind(c, &req) {
		return
	}

	result, err := h.availability.Execute(c.Request.Context(), queries.AvailabilityInput{
		Item:     req.Item,
		Date:     req.Date,
		EndDate:  req.EndDate,
		Quantity: req.Quantity,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.AvailabilityVoice(result))
}
