package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/domain"
	"github.com/alexanderramin/genbaflow/internal/llm"
	"go.uber.org/zap"
)

// ReportFallbackText is returned when the service answers with an empty body,
// so callers always have something to display.
const ReportFallbackText = "レポート生成に失敗しました。"

// ReportService turns a report snapshot into shareable prose.
type ReportService interface {
	// Generate composes the prompt for data and returns the generated text.
	// Service and configuration errors are returned wrapped; nothing is retried.
	Generate(ctx context.Context, data domain.DailyReportData) (string, error)
}

type reportService struct {
	client llm.LLMClient
	logger *zap.Logger
}

// NewReportService creates a ReportService backed by an LLM client.
func NewReportService(client llm.LLMClient, logger *zap.Logger) ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportService{client: client, logger: logger}
}

func (s *reportService) Generate(ctx context.Context, data domain.DailyReportData) (string, error) {
	prompt := ComposeReportPrompt(data)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskDailyReport,
		UserPrompt: prompt,
	})
	if err != nil {
		s.logger.Error("daily report generation failed",
			zap.String("project", data.ProjectName),
			zap.String("date", data.Date),
			zap.Error(err))
		return "", fmt.Errorf("generating daily report: %w", err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		s.logger.Warn("generation service returned empty text", zap.String("model", resp.Model))
		return ReportFallbackText, nil
	}
	return resp.Text, nil
}
