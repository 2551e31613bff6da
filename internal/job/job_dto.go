package job

type CreateJobRequest struct {
	Client string `json:"client" binding:"required,max=200"`
	Worker string `json:"worker" binding:"required,max=300"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Fee    int64  `json:"fee" binding:"gte=0"`
	Parts  string `json:"parts"`
	Date   string `json:"date" binding:"required"`
	Note   string `json:"note"`
}

type UpdateJobRequest struct {
	Client string `json:"client" binding:"required,max=200"`
	Worker string `json:"worker" binding:"required,max=300"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Fee    int64  `json:"fee" binding:"gte=0"`
	Parts  string `json:"parts"`
	Date   string `json:"date" binding:"required"`
	Note   string `json:"note"`
}

type ListJobsFilterRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=OPEN DONE CANCELLED"`
	Start  string `form:"start"`
	End    string `form:"end"`
	Page   int    `form:"page" binding:"omitempty,gte=1"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

type JobResponse struct {
	ID          string     `json:"id"`
	Client      string     `json:"client"`
	Worker      string     `json:"worker"`
	TeamLead    string     `json:"team_lead"`
	Amount      int64      `json:"amount"`
	Fee         int64      `json:"fee"`
	Parts       []PartLine `json:"parts"`
	Status      string     `json:"status"`
	Date        string     `json:"date"`
	Note        string     `json:"note,omitempty"`
	CompletedAt *string    `json:"completed_at,omitempty"`
}
