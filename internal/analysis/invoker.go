package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nlpodyssey/openai-agents-go/agents"

	"findoc-analyzer/internal/common"
)

// Analyzer is the boundary the request handler depends on. The production
// implementation delegates to the agent framework; tests swap in a stub.
type Analyzer interface {
	Analyze(ctx context.Context, query, documentPath string) (string, error)
}

// AgentAnalyzer runs the document-analysis task on the financial analyst
// agent. One call is one sequential task run; any multi-step reasoning, tool
// iteration or retrying inside is the framework's business.
type AgentAnalyzer struct {
	agents *Agents
	cfg    common.AnalysisConfig
	log    *slog.Logger
}

func NewAgentAnalyzer(ag *Agents, cfg common.AnalysisConfig, log *slog.Logger) *AgentAnalyzer {
	return &AgentAnalyzer{agents: ag, cfg: cfg, log: log}
}

// Analyze produces the free-text report for one stored document. The run is
// bounded by the configured timeout; every failure mode (backend error,
// timeout, tool failure) surfaces as common.ErrAnalysisBackend.
func (a *AgentAnalyzer) Analyze(ctx context.Context, query, documentPath string) (string, error) {
	rid := common.RequestIDFromContext(ctx)
	if rid == "" {
		rid = uuid.New().String()
	}
	start := time.Now()

	a.log.Info("analysis.run.start",
		"run_id", rid,
		"query_len", len(query),
		"path", documentPath,
	)

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	runner := agents.Runner{Config: agents.RunConfig{
		MaxTurns:     a.cfg.MaxTurns,
		WorkflowName: "Financial document analysis",
	}}

	result, err := runner.Run(ctx, a.agents.FinancialAnalyst, AnalyzeFinancialDocument.Input(query, documentPath))
	if err != nil {
		a.log.Error("analysis.run.failed",
			"run_id", rid,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("%w: %v", common.ErrAnalysisBackend, err)
	}

	report, ok := result.FinalOutput.(string)
	if !ok {
		report = fmt.Sprint(result.FinalOutput)
	}

	a.log.Info("analysis.run.ok",
		"run_id", rid,
		"report_len", len(report),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// Verify runs the verification task on the verifier agent and returns its
// structured report.
func (a *AgentAnalyzer) Verify(ctx context.Context, query, documentPath string) (VerificationReport, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	runner := agents.Runner{Config: agents.RunConfig{
		MaxTurns:     a.cfg.MaxTurns,
		WorkflowName: "Financial document verification",
	}}

	result, err := runner.Run(ctx, a.agents.Verifier, Verification.Input(query, documentPath))
	if err != nil {
		return VerificationReport{}, fmt.Errorf("%w: %v", common.ErrAnalysisBackend, err)
	}

	report, ok := result.FinalOutput.(VerificationReport)
	if !ok {
		return VerificationReport{}, fmt.Errorf("%w: unexpected verifier output %T", common.ErrAnalysisBackend, result.FinalOutput)
	}
	return report, nil
}
