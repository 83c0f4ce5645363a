package classifier

// Verdict is the classifier's output for one URL.
type Verdict string

const (
	VerdictLegitimate Verdict = "Legitimate"
	VerdictPhishing   Verdict = "Phishing"
)
