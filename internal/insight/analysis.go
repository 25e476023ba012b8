package insight

// Insight is one message of a category analysis, optionally paired with a
// pre-rendered tip line.
type Insight struct {
	Message string
	Tip     string
}

// Analysis is the result of running one category's rules over a batch.
//
// Career and health accumulate Score as a sum of independent sub-scores;
// marriage assigns one of three absolute tiers. The two contracts are
// intentionally different and must not be unified.
type Analysis struct {
	Priority int
	Title    string
	Metrics  map[string]string
	Insights []Insight
	Score    int // 0-100, meaningful only when HasData is true
	HasData  bool
}

func (a *Analysis) addInsight(message, tip string) {
	a.Insights = append(a.Insights, Insight{Message: message, Tip: tip})
}

// Analyzer runs the fixed category rules over a single batch. It holds no
// state beyond the batch: every report is recomputed fresh and two runs over
// the same batch produce identical output.
type Analyzer struct {
	batch Batch
}

func NewAnalyzer(batch Batch) *Analyzer {
	return &Analyzer{batch: batch}
}

// TotalDays is the denominator for all rate calculations.
func (a *Analyzer) TotalDays() int {
	return len(a.batch)
}
