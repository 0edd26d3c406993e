package models

// PerformanceMetric is one scored dimension of delivered value.
// Score is in [0,100], Weight in [0,1].
type PerformanceMetric struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// OverallPerformanceIndex is the weighted composite of the six performance
// metrics. OverallScore is in [0,100]; ValueMultiplier is the linear map of
// the score into [0.95,1.15].
type OverallPerformanceIndex struct {
	OverallScore    float64             `json:"overallScore"`
	Metrics         []PerformanceMetric `json:"metrics"`
	ValueMultiplier float64             `json:"valueMultiplier"`
}
