package handler

import (
	"github.com/abhishek622/interviewPrep/internal/selection"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListInterviews returns the interview records matching position and client
func (h *Handler) ListInterviews(c *gin.Context) {
	var q model.ListInterviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	all := h.Catalog.Interviews()
	filtered := selection.FilterInterviews(all, q.Position, q.Client)

	response.OK(c, model.InterviewsRes{
		Interviews: filtered,
		Showing:    len(filtered),
		Total:      len(all),
		LoadError:  h.Catalog.LoadError(),
	})
}

// InterviewFilters returns the available positions and clients
func (h *Handler) InterviewFilters(c *gin.Context) {
	all := h.Catalog.Interviews()
	response.OK(c, model.InterviewFiltersRes{
		Positions: selection.UniquePositions(all),
		Clients:   selection.UniqueClients(all),
	})
}
