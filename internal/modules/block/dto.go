package block

type CreateBlockRequest struct {
	Date      string `json:"date" binding:"required"`
	IsFullDay bool   `json:"is_full_day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}
