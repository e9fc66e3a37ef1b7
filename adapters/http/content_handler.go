package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sameer-B786/portfolio/internal/application/usecase/content"
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

type ContentHandler struct {
	session *content.EditSession
	store   portfolio.Store
	ids     *portfolio.IDGenerator
	logger  logger.Logger
}

func NewContentHandler(session *content.EditSession, store portfolio.Store, ids *portfolio.IDGenerator, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		session: session,
		store:   store,
		ids:     ids,
		logger:  log,
	}
}

// GetWorkingState returns the working copy plus the dirty signal for the
// editing surface.
func (h *ContentHandler) GetWorkingState(c *gin.Context) {
	c.JSON(http.StatusOK, WorkingStateResponse{
		Model:    h.session.Working(),
		Dirty:    h.session.Dirty(),
		Autosave: h.session.Autosave(),
	})
}

// SetField replaces one top-level field or socials sub-field.
func (h *ContentHandler) SetField(c *gin.Context) {
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for field update", err))
		return
	}

	mutate, ok := fieldMutator(req.Field, req.Value)
	if !ok {
		c.Error(apperror.NewInvalidInput("unknown field '"+req.Field+"'", nil))
		return
	}

	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

func fieldMutator(field, value string) (content.Mutator, bool) {
	switch field {
	case "name":
		return func(m *portfolio.PortfolioModel) { m.Name = value }, true
	case "tagline":
		return func(m *portfolio.PortfolioModel) { m.Tagline = value }, true
	case "about":
		return func(m *portfolio.PortfolioModel) { m.About = value }, true
	case "resumeUrl":
		return func(m *portfolio.PortfolioModel) { m.ResumeURL = value }, true
	case "heroImage":
		return func(m *portfolio.PortfolioModel) { m.HeroImage = value }, true
	case "socials.github":
		return func(m *portfolio.PortfolioModel) { m.Socials.Github = value }, true
	case "socials.linkedin":
		return func(m *portfolio.PortfolioModel) { m.Socials.Linkedin = value }, true
	case "socials.twitter":
		return func(m *portfolio.PortfolioModel) { m.Socials.Twitter = value }, true
	case "socials.email":
		return func(m *portfolio.PortfolioModel) { m.Socials.Email = value }, true
	default:
		return nil, false
	}
}

// AddRecord prepends a freshly constructed record to the named collection
// and returns its id.
func (h *ContentHandler) AddRecord(c *gin.Context) {
	collection := c.Param("collection")
	id := h.ids.Next()

	var mutate content.Mutator
	switch collection {
	case "experiences":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Experiences = content.Add(m.Experiences, func() portfolio.Experience { return portfolio.NewExperience(id) })
		}
	case "education":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Education = content.Add(m.Education, func() portfolio.Education { return portfolio.NewEducation(id) })
		}
	case "projects":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Projects = content.Add(m.Projects, func() portfolio.Project { return portfolio.NewProject(id) })
		}
	case "certificates":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Certificates = content.Add(m.Certificates, func() portfolio.Certificate { return portfolio.NewCertificate(id) })
		}
	default:
		c.Error(apperror.NewNotFound("collection", collection))
		return
	}

	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, AddRecordResponse{ID: id})
}

// UpdateRecord replaces one field of the identified record. An unknown id is
// a no-op, mirroring the editor's contract.
func (h *ContentHandler) UpdateRecord(c *gin.Context) {
	collection := c.Param("collection")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("record id must be numeric", err))
		return
	}

	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for record update", err))
		return
	}

	var mutate content.Mutator
	switch collection {
	case "experiences":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Experiences = content.Update(m.Experiences, id, req.Field, req.Value)
		}
	case "education":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Education = content.Update(m.Education, id, req.Field, req.Value)
		}
	case "projects":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Projects = content.Update(m.Projects, id, req.Field, req.Value)
		}
	case "certificates":
		mutate = func(m *portfolio.PortfolioModel) {
			m.Certificates = content.Update(m.Certificates, id, req.Field, req.Value)
		}
	default:
		c.Error(apperror.NewNotFound("collection", collection))
		return
	}

	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

// DeleteRecord excludes the identified record; unknown ids are no-ops.
// Deletion confirmation belongs to the surface, not here.
func (h *ContentHandler) DeleteRecord(c *gin.Context) {
	collection := c.Param("collection")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NewInvalidInput("record id must be numeric", err))
		return
	}

	var mutate content.Mutator
	switch collection {
	case "experiences":
		mutate = func(m *portfolio.PortfolioModel) { m.Experiences = content.Remove(m.Experiences, id) }
	case "education":
		mutate = func(m *portfolio.PortfolioModel) { m.Education = content.Remove(m.Education, id) }
	case "projects":
		mutate = func(m *portfolio.PortfolioModel) { m.Projects = content.Remove(m.Projects, id) }
	case "certificates":
		mutate = func(m *portfolio.PortfolioModel) { m.Certificates = content.Remove(m.Certificates, id) }
	default:
		c.Error(apperror.NewNotFound("collection", collection))
		return
	}

	if err := h.session.Apply(c.Request.Context(), mutate); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

// Commit persists the working copy under the explicit commit policy.
func (h *ContentHandler) Commit(c *gin.Context) {
	if err := h.session.Commit(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	h.GetWorkingState(c)
}

// Export returns the committed document for backup.
func (h *ContentHandler) Export(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Committed())
}

// Import replaces the stored document with the uploaded one, run through the
// same merge rule as a normal load so partial or old-schema backups restore
// to a complete model.
func (h *ContentHandler) Import(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Error(apperror.NewInvalidInput("reading import payload failed", err))
		return
	}

	model, err := portfolio.MergeWithDefaults(payload)
	if err != nil {
		c.Error(apperror.NewInvalidInput("import payload is not valid JSON", err))
		return
	}

	if err := h.store.Save(c.Request.Context(), model); err != nil {
		c.Error(err)
		return
	}
	h.session.Reset(model)
	h.GetWorkingState(c)
}
