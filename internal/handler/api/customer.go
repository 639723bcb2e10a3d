package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/request"
	"voicefront/internal/handler/dto/response"
	"voicefront/internal/handler/httperr"
	"voicefront/internal/usecase/queries"
)

type CustomerHandler struct {
	lookup *queries.CustomerLookupQuery
}

func NewCustomerHandler(lookup *queries.CustomerLookupQuery) *CustomerHandler {
	return &CustomerHandler{lookup: lookup}
}

// Lookup godoc
//
//	@Summary	Look up a customer's bookings by email or phone
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.CustomerLookup	false	"lookup request"
//	@Success	200		{object}	response.Voice
//	@Failure	400		{object}	response.Voice
//	@Failure	404		{object}	response.Voice
//	@Router		/api/customers/lookup [post]
func (h *CustomerHandler) Lookup(c *gin.Context) {
	var req request.CustomerLookup
	if !bind(c, &req) {
		return
	}

	view, err := h.lookup.Execute(c.Request.Context(), queries.CustomerLookupInput{
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		httperr.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.CustomerVoice(view))
}
