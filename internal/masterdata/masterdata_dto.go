package masterdata

type CreateMasterRecordRequest struct {
	Name string `json:"name" binding:"required"`
}

type MasterRecordResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
