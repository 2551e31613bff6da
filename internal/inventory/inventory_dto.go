package inventory

type IssuePartRequest struct {
	TaskID      string `json:"task_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=120"`
	Quantity    int64  `json:"quantity" binding:"required,gte=1"`
	TotalAmount int64  `json:"total_amount" binding:"required,gte=0"`
	IssuedAt    string `json:"issued_at" binding:"required"`
}

type OutboundPartResponse struct {
	ID          string `json:"id"`
	TaskID      string `json:"task_id"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	TotalAmount int64  `json:"total_amount"`
	Reason      string `json:"reason"`
	IssuedAt    string `json:"issued_at"`
}
