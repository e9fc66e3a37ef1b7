package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sameer-B786/portfolio/internal/application/usecase/content"
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
)

// Skills routes address categories and skills by position. Index shifts after
// deletion are part of the contract; the surface re-reads the working state
// after every call.

func (h *ContentHandler) AddSkillCategory(c *gin.Context) {
	var req AddSkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill category", err))
		return
	}

	var added bool
	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills, added = content.AddSkillCategory(m.Skills, req.Title)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	if !added {
		c.Error(apperror.NewConflict("skill category", "title", req.Title))
		return
	}
	h.GetWorkingState(c)
}

func (h *ContentHandler) RenameSkillCategory(c *gin.Context) {
	catIdx, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	var req RenameSkillCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for category rename", err))
		return
	}

	var renamed bool
	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills, renamed = content.RenameSkillCategory(m.Skills, catIdx, req.Title)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	if !renamed {
		c.Error(apperror.NewConflict("skill category", "title", req.Title))
		return
	}
	h.GetWorkingState(c)
}

func (h *ContentHandler) DeleteSkillCategory(c *gin.Context) {
	catIdx, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills = content.RemoveSkillCategory(m.Skills, catIdx)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

func (h *ContentHandler) AddSkill(c *gin.Context) {
	catIdx, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill", err))
		return
	}

	skill := portfolio.Skill{Name: req.Name, Icon: req.Icon, Color: req.Color}
	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills = content.AddSkill(m.Skills, catIdx, skill)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

func (h *ContentHandler) UpdateSkill(c *gin.Context) {
	catIdx, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	skillIdx, ok := indexParam(c, "skill")
	if !ok {
		return
	}
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill update", err))
		return
	}

	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills = content.UpdateSkill(m.Skills, catIdx, skillIdx, req.Field, req.Value)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

func (h *ContentHandler) DeleteSkill(c *gin.Context) {
	catIdx, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	skillIdx, ok := indexParam(c, "skill")
	if !ok {
		return
	}
	mutate := func(m *portfolio.PortfolioModel) {
		m.Skills = content.DeleteSkill(m.Skills, catIdx, skillIdx)
	}
	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

func indexParam(c *gin.Context, name string) (int, bool) {
	idx, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.Error(apperror.NewInvalidInput("index '"+name+"' must be an integer", err))
		return 0, false
	}
	return idx, true
}
