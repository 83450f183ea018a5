package analysis

import (
	"github.com/nlpodyssey/openai-agents-go/agents"
	"github.com/nlpodyssey/openai-agents-go/modelsettings"
	"github.com/openai/openai-go/v3/packages/param"

	"findoc-analyzer/internal/common"
)

const financialAnalystInstructions = "You are a senior financial analyst with over 15 years in investment banking " +
	"and corporate finance. You specialize in analyzing financial statements, identifying market trends, and " +
	"providing data-driven investment recommendations. You follow strict regulatory compliance and base your " +
	"analysis on factual financial data read from the provided document. Your recommendations are conservative, " +
	"well-researched, and aligned with best practices in financial analysis. Always read the document with the " +
	"read_financial_document tool before drawing any conclusion."

const verifierInstructions = "You are a certified document verification specialist with expertise in financial " +
	"compliance. You have extensive experience in identifying legitimate financial documents and ensuring data " +
	"integrity. You follow strict verification protocols and maintain high standards for document authenticity. " +
	"Read the document with the read_financial_document tool and report whether it contains valid financial data."

const investmentAdvisorInstructions = "You are a certified financial planner with 20+ years of experience in " +
	"investment advisory services. You specialize in portfolio management, risk assessment, and " +
	"regulatory-compliant investment strategies. You prioritize client financial safety and long-term growth " +
	"over high-risk speculative investments. Your recommendations always include proper risk disclosures and " +
	"are based on solid financial fundamentals taken from the provided document."

const riskAssessorInstructions = "You are a risk management expert with extensive experience in financial risk " +
	"assessment. You specialize in identifying, quantifying, and mitigating various types of financial risks. " +
	"Your analysis is based on established risk management frameworks and regulatory guidelines. You provide " +
	"balanced, objective risk assessments that help investors make informed decisions."

// Agents bundles the role-specialized agents. They are configuration objects:
// constructed once at process startup and shared across requests.
type Agents struct {
	FinancialAnalyst  *agents.Agent
	Verifier          *agents.Agent
	InvestmentAdvisor *agents.Agent
	RiskAssessor      *agents.Agent
}

// NewAgents builds the agent ensemble against the configured model. The
// analyst optionally carries the hosted web-search tool for market context.
func NewAgents(llmCfg common.LLMConfig, cfg common.AnalysisConfig, tools *Tools) *Agents {
	settings := modelsettings.ModelSettings{
		Temperature: param.NewOpt(llmCfg.Temperature),
	}

	analystTools := []agents.Tool{tools.ReadDocument, tools.AnalyzeInvestment, tools.AssessRisk}
	if cfg.WebSearchEnabled {
		analystTools = append(analystTools, agents.WebSearchTool{})
	}

	return &Agents{
		FinancialAnalyst: agents.New("SeniorFinancialAnalyst").
			WithInstructions(financialAnalystInstructions).
			WithModel(llmCfg.Model).
			WithModelSettings(settings).
			WithTools(analystTools...),

		Verifier: agents.New("FinancialDocumentVerifier").
			WithInstructions(verifierInstructions).
			WithModel(llmCfg.Model).
			WithModelSettings(settings).
			WithTools(tools.ReadDocument).
			WithOutputType(agents.OutputType[VerificationReport]()),

		InvestmentAdvisor: agents.New("InvestmentAdvisor").
			WithInstructions(investmentAdvisorInstructions).
			WithModel(llmCfg.Model).
			WithModelSettings(settings).
			WithTools(tools.ReadDocument, tools.AnalyzeInvestment),

		RiskAssessor: agents.New("RiskAssessmentSpecialist").
			WithInstructions(riskAssessorInstructions).
			WithModel(llmCfg.Model).
			WithModelSettings(settings).
			WithTools(tools.ReadDocument, tools.AssessRisk),
	}
}
