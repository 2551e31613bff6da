package settlement

type ComputeRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
	Force bool   `form:"force"`
}

type InvalidateRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
