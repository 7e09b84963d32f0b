package insight

type InsightResponse struct {
	Insight   string `json:"insight"`
	Generated bool   `json:"generated"`
}
