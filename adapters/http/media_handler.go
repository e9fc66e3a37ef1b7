package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/Sameer-B786/portfolio/internal/application/usecase/media"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

type MediaHandler struct {
	ingestUseCase *mediaUC.IngestUseCase
	logger        logger.Logger
}

func NewMediaHandler(uc *mediaUC.IngestUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{ingestUseCase: uc, logger: log}
}

// Ingest accepts a multipart upload and applies the resulting data URI to
// the targeted field. Record targets pass the record id so interleaved
// uploads land on the right record.
func (h *MediaHandler) Ingest(c *gin.Context) {
	target := c.PostForm("target")

	var recordID int64
	if raw := c.PostForm("record_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.NewInvalidInput("record_id must be numeric", err))
			return
		}
		recordID = id
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("multipart field 'file' is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInvalidInput("opening uploaded file failed", err))
		return
	}
	defer file.Close()

	input := mediaUC.IngestInput{Target: target, RecordID: recordID, File: file}
	output, err := h.ingestUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data_uri": output.DataURI})
}
