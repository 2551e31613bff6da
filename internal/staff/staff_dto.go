package staff

type CreateStaffRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Type          string  `json:"type" binding:"required,oneof=executive contract_worker"`
	Ratio         float64 `json:"ratio" binding:"omitempty,gte=0"`
	AllowanceRate float64 `json:"allowance_rate" binding:"omitempty,gte=0,lte=100"`
	Phone         string  `json:"phone" binding:"omitempty,max=30"`
}

type UpdateStaffRequest struct {
	Name          string  `json:"name" binding:"required,max=100"`
	Type          string  `json:"type" binding:"required,oneof=executive contract_worker"`
	Ratio         float64 `json:"ratio" binding:"omitempty,gte=0"`
	AllowanceRate float64 `json:"allowance_rate" binding:"omitempty,gte=0,lte=100"`
	Phone         string  `json:"phone" binding:"omitempty,max=30"`
	Active        *bool   `json:"active" binding:"required"`
}

type StaffResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Ratio         float64 `json:"ratio"`
	AllowanceRate float64 `json:"allowance_rate"`
	Active        bool    `json:"active"`
	Phone         string  `json:"phone,omitempty"`
}
