package analysis

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findoc-analyzer/internal/common"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTestPDF(t *testing.T, content string) string {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "", 12)
	doc.Cell(40, 10, content)
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	require.NoError(t, doc.OutputFileAndClose(path))
	return path
}

func TestReadFinancialDocumentTool(t *testing.T) {
	ts := NewToolset(discardLogger())
	path := writeTestPDF(t, "Operating margin: 23%")

	text, err := ts.ReadFinancialDocument(t.Context(), ReadDocumentArgs{Path: path})
	require.NoError(t, err)
	assert.Contains(t, text, "Operating margin: 23%")
}

func TestReadFinancialDocumentToolMissingFile(t *testing.T) {
	ts := NewToolset(discardLogger())

	_, err := ts.ReadFinancialDocument(t.Context(), ReadDocumentArgs{Path: filepath.Join(t.TempDir(), "missing.pdf")})
	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestAnalyzeInvestmentToolNormalizesWhitespace(t *testing.T) {
	ts := NewToolset(discardLogger())

	out, err := ts.AnalyzeInvestment(t.Context(), DocumentDataArgs{
		FinancialDocumentData: "  revenue   up\n\n12%  ",
	})
	require.NoError(t, err)
	// "revenue up 12%" after whitespace collapsing.
	assert.Contains(t, out, "data_length: 14")
	assert.Contains(t, out, "Data processed successfully")
}

func TestAssessRiskTool(t *testing.T) {
	ts := NewToolset(discardLogger())

	out, err := ts.AssessRisk(t.Context(), DocumentDataArgs{FinancialDocumentData: "anything"})
	require.NoError(t, err)
	assert.Contains(t, out, "risk_level: Moderate")
	assert.Contains(t, out, "Diversification")
}

func TestTaskInputSubstitution(t *testing.T) {
	input := AnalyzeFinancialDocument.Input("What is the revenue?", "data/financial_document_abc.pdf")

	assert.Contains(t, input, "What is the revenue?")
	assert.Contains(t, input, "data/financial_document_abc.pdf")
	assert.NotContains(t, input, "{query}")
	assert.NotContains(t, input, "{file_path}")
	assert.Contains(t, input, "Expected output:")
}
