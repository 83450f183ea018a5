package analysis

import "strings"

// Task is a templated instruction dispatched to a single agent. The
// placeholders {query} and {file_path} are substituted when the task input is
// built for a run.
type Task struct {
	Name           string
	Description    string
	ExpectedOutput string
}

// Input renders the full model input for one run of the task.
func (t Task) Input(query, documentPath string) string {
	r := strings.NewReplacer("{query}", query, "{file_path}", documentPath)
	var sb strings.Builder
	sb.WriteString(r.Replace(t.Description))
	sb.WriteString("\n\nExpected output:\n")
	sb.WriteString(t.ExpectedOutput)
	return sb.String()
}

// AnalyzeFinancialDocument is the task the /analyze pipeline dispatches.
var AnalyzeFinancialDocument = Task{
	Name: "analyze_financial_document",
	Description: `Conduct a thorough analysis of the financial document stored at {file_path} to address the user's query: {query}

Your analysis should include:
1. Read and comprehensively analyze the provided financial document using the read_financial_document tool
2. Extract key financial metrics, ratios, and performance indicators
3. Identify trends, strengths, and areas of concern
4. Provide data-driven insights relevant to the user's specific query
5. Ensure all analysis is based on factual information from the document
6. Follow professional financial analysis standards and best practices`,
	ExpectedOutput: `A comprehensive financial analysis report including:
- Executive summary of key findings
- Detailed financial metrics analysis (revenue, profit margins, debt ratios, etc.)
- Risk assessment and identification of potential concerns
- Investment insights and recommendations based on the data
- Clear, professional conclusions supported by evidence from the financial document`,
}

// InvestmentAnalysis focuses the advisor on recommendation quality.
var InvestmentAnalysis = Task{
	Name: "investment_analysis",
	Description: `Analyze the financial document stored at {file_path} to provide investment recommendations based on the user query: {query}

Focus on:
1. Financial performance metrics and trends from the document
2. Market position and competitive advantages
3. Revenue growth and profitability analysis
4. Balance sheet strength and debt management
5. Cash flow analysis and dividend potential
6. Investment risks and opportunities`,
	ExpectedOutput: `A professional investment analysis including:
- Investment thesis based on financial data from the document
- Key performance indicators and their implications
- Risk-return assessment
- Portfolio fit and investment timeline considerations
- Clear investment recommendation with supporting rationale`,
}

// RiskAssessment drives the risk specialist.
var RiskAssessment = Task{
	Name: "risk_assessment",
	Description: `Conduct a comprehensive risk assessment based on the financial document stored at {file_path} and user query: {query}

Analyze:
1. Financial risks (credit, liquidity, market, operational) from the document
2. Business model sustainability based on financial data
3. Industry and competitive risks evident in the financials
4. Regulatory and compliance risks
5. Macroeconomic sensitivity based on financial performance`,
	ExpectedOutput: `A professional risk assessment report:
- Risk categorization and prioritization based on document analysis
- Quantitative and qualitative risk metrics from financial data
- Risk mitigation strategies and recommendations
- Risk monitoring and early warning indicators`,
}

// Verification asks the verifier agent for its structured report.
var Verification = Task{
	Name: "verification",
	Description: `Verify the authenticity and completeness of the financial document stored at {file_path} for query: {query}

Check for:
1. Document structure and format consistency
2. Presence of required financial statements
3. Data integrity and logical consistency
4. Regulatory compliance markers`,
	ExpectedOutput: `A document verification report with authenticity assessment, completeness findings and a confidence level.`,
}
