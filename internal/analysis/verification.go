package analysis

// VerificationReport is the structured output of the document verifier agent.
type VerificationReport struct {
	Authentic  bool   `json:"authentic" jsonschema_description:"Whether the document appears to be a legitimate financial document."`
	Confidence string `json:"confidence" jsonschema_description:"Verification confidence level: high, medium or low."`
	Findings   string `json:"findings" jsonschema_description:"Summary of completeness, integrity and any discrepancies found."`
}
