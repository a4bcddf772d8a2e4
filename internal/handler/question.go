package handler

import (
	"github.com/abhishek622/interviewPrep/internal/selection"
	"github.com/abhishek622/interviewPrep/pkg/model"
	"github.com/abhishek622/interviewPrep/pkg/response"
	"github.com/gin-gonic/gin"
)

// ListQuestions returns the catalog filtered by keyword, or the questions of
// the active mock interview
func (h *Handler) ListQuestions(c *gin.Context) {
	var q model.ListQuestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	ctrl, _ := h.controller(c)
	if ctrl == nil {
		response.Unauthorized(c, "")
		return
	}

	questions, mock := ctrl.Questions(q.Keyword)
	response.OK(c, model.QuestionsRes{
		Questions: questions,
		Total:     len(questions),
		MockMode:  mock,
		LoadError: h.Catalog.LoadError(),
	})
}

// ListKeywords returns the distinct keywords for the filter bar
func (h *Handler) ListKeywords(c *gin.Context) {
	response.OK(c, model.KeywordsRes{Keywords: selection.UniqueKeywords(h.Catalog.Questions())})
}
