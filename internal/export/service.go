package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/claimdesk/claims-intake/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	claimRepo repository.ClaimRepository
	logger    *slog.Logger
}

func NewService(claimRepo repository.ClaimRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{claimRepo: claimRepo, logger: logger}
}

// ExportClaimsXLSX returns an XLSX workbook (as bytes) for the matching claims.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all matching claims.
func (s *Service) ExportClaimsXLSX(ctx context.Context, filter repository.ListClaimsFilter) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	if filter.FromDate != nil {
		f := time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC)
		filter.FromDate = &f
	}
	if filter.ToDate != nil {
		t := time.Date(filter.ToDate.Year(), filter.ToDate.Month(), filter.ToDate.Day(), 0, 0, 0, 0, time.UTC)
		filter.ToDate = &t
	}
	if filter.FromDate != nil && filter.ToDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		filter.ToDate = &t
	}

	claims, err := s.claimRepo.ListClaims(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Claims"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Claim ID",
		"Policy Number",
		"Claimant",
		"Claim Type",
		"Incident Date",
		"Amount",
		"Status",
		"Fraud Risk Score",
		"Risk Level",
		"Recommendation",
		"Verification Status",
		"Overall Confidence",
		"Key Findings",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range claims {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.ID.String())
		write(2, c.PolicyNumber)
		write(3, c.FullName)
		write(4, string(c.ClaimType))
		if !c.IncidentDate.IsZero() {
			write(5, c.IncidentDate.Format("2006-01-02"))
		} else {
			write(5, "")
		}
		write(6, fmt.Sprintf("%.2f", c.Amount))
		write(7, string(c.Status))
		write(8, c.FraudRiskScore)
		write(9, string(c.RiskLevel))
		write(10, string(c.Recommendation))
		write(11, string(c.VerificationStatus))
		write(12, fmt.Sprintf("%.1f", c.OverallConfidence))
		write(13, truncate(strings.Join(c.KeyFindings, "; "), 140))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // claim id
	_ = f.SetColWidth(sheet, "B", "C", 22) // policy, claimant
	_ = f.SetColWidth(sheet, "D", "E", 14) // type, date
	_ = f.SetColWidth(sheet, "F", "H", 12) // amount, status, score
	_ = f.SetColWidth(sheet, "I", "L", 16) // assessment columns
	_ = f.SetColWidth(sheet, "M", "M", 48) // findings

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(claims),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
