package tips

// Tip is one AI-generated health recommendation. Kept for the response shape
// even while generation is switched off.
type Tip struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity" enum:"low,medium,high"`
}

// TipsResult is the output of the travel-tips generator.
type TipsResult struct {
	Tips []Tip `json:"tips"`
}

// AnalysisResult is the output of the family-history analyzer.
type AnalysisResult struct {
	RiskFactors     string `json:"riskFactors"`
	Recommendations string `json:"recommendations"`
}
