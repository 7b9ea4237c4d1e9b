package runner

type Status string

const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusError Status = "error"
)

type CaseResult struct {
	CaseID     string
	EngineName string
	Expression string
	Status     Status
	Value      float64
	Formatted  string
	ErrorCode  string
	// Detail explains a failure or executor error.
	Detail    string
	Reference *ReferenceCheck
	Latency   LatencyStats
}

// ReferenceCheck records the expr-lang cross-check of a successful case.
type ReferenceCheck struct {
	Value float64
	Match bool
	Error string
}

type SuiteResult struct {
	SuiteName   string
	Results     map[string]map[string]CaseResult // [caseID][engineName]
	CaseOrder   []string
	EngineNames []string
	Config      Config
}

func (sr *SuiteResult) Get(caseID, engineName string) (CaseResult, bool) {
	byEngine, ok := sr.Results[caseID]
	if !ok {
		return CaseResult{}, false
	}
	cr, ok := byEngine[engineName]
	return cr, ok
}

// Passed reports whether every case passed on every engine.
func (sr *SuiteResult) Passed() bool {
	for _, byEngine := range sr.Results {
		for _, cr := range byEngine {
			if cr.Status != StatusPass {
				return false
			}
		}
	}
	return true
}
