// Package media turns uploaded files into data-URI strings stored inside the
// portfolio model. The core contract is opaque: whatever produced the string,
// ingestion resolves into exactly one field update.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/Sameer-B786/portfolio/internal/application/usecase/content"
	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

// Targets for an ingested data URI. Record targets are addressed by id, so
// uploads completing out of order can never touch an unrelated record.
const (
	TargetResume      = "resume"
	TargetHero        = "hero"
	TargetProject     = "project"
	TargetCertificate = "certificate"
)

type IngestUseCase struct {
	session  *content.EditSession
	maxBytes int64
	logger   logger.Logger
}

func NewIngestUseCase(session *content.EditSession, maxBytes int64, log logger.Logger) *IngestUseCase {
	return &IngestUseCase{session: session, maxBytes: maxBytes, logger: log}
}

type IngestInput struct {
	Target   string
	RecordID int64 // project/certificate targets only
	File     io.Reader
}

type IngestOutput struct {
	DataURI string
}

// Execute reads the whole file, encodes it as a data URI and applies it to
// the targeted field. A read failure resolves into no Apply at all, so a
// broken upload never leaves partial state behind.
func (uc *IngestUseCase) Execute(ctx context.Context, input IngestInput) (*IngestOutput, error) {
	data, err := io.ReadAll(io.LimitReader(input.File, uc.maxBytes+1))
	if err != nil {
		return nil, apperror.NewInvalidInput("reading uploaded file failed", err)
	}
	if int64(len(data)) > uc.maxBytes {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("file exceeds %d bytes", uc.maxBytes), nil)
	}

	mime := mimetype.Detect(data)
	dataURI := fmt.Sprintf("data:%s;base64,%s", mime.String(), base64.StdEncoding.EncodeToString(data))

	mutate, err := uc.mutatorFor(input, dataURI)
	if err != nil {
		return nil, err
	}

	if err := uc.session.Apply(ctx, mutate); err != nil {
		return nil, err
	}

	uc.logger.Debug("ingested file",
		zap.String("target", input.Target),
		zap.Int64("record_id", input.RecordID),
		zap.String("mime", mime.String()),
		zap.Int("bytes", len(data)),
	)
	return &IngestOutput{DataURI: dataURI}, nil
}

func (uc *IngestUseCase) mutatorFor(input IngestInput, dataURI string) (content.Mutator, error) {
	switch input.Target {
	case TargetResume:
		return func(m *portfolio.PortfolioModel) { m.ResumeURL = dataURI }, nil
	case TargetHero:
		return func(m *portfolio.PortfolioModel) { m.HeroImage = dataURI }, nil
	case TargetProject:
		id := input.RecordID
		return func(m *portfolio.PortfolioModel) {
			m.Projects = content.Update(m.Projects, id, "image", dataURI)
		}, nil
	case TargetCertificate:
		id := input.RecordID
		return func(m *portfolio.PortfolioModel) {
			m.Certificates = content.Update(m.Certificates, id, "image", dataURI)
		}, nil
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown ingest target '%s'", input.Target), nil)
	}
}
