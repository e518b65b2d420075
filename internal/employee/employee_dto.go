package employee

type CreateEmployeeRequest struct {
	EmployeeNumber string   `json:"employee_number"`
	FirstName      string   `json:"first_name" binding:"required"`
	MiddleName     string   `json:"middle_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone"`
	Gender         string   `json:"gender"`
	DateOfBirth    string   `json:"date_of_birth"`
	JoiningDate    string   `json:"joining_date" binding:"required"`
	Status         string   `json:"status" binding:"omitempty,oneof=active inactive"`
	WorkerType     string   `json:"worker_type"`
	DepartmentID   string   `json:"department_id"`
	LocationID     string   `json:"location_id"`
	DesignationID  string   `json:"designation_id"`
	LPA            *float64 `json:"lpa"`
	BasicPct       *float64 `json:"basic_pct"`
	HRAPct         *float64 `json:"hra_pct"`
}

type UpdateEmployeeRequest struct {
	FirstName     string   `json:"first_name" binding:"required"`
	MiddleName    string   `json:"middle_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Phone         string   `json:"phone"`
	Status        string   `json:"status" binding:"required,oneof=active inactive"`
	WorkerType    string   `json:"worker_type"`
	ExitDate      string   `json:"exit_date"`
	DepartmentID  string   `json:"department_id"`
	LocationID    string   `json:"location_id"`
	DesignationID string   `json:"designation_id"`
	LPA           *float64 `json:"lpa"`
	BasicPct      *float64 `json:"basic_pct"`
	HRAPct        *float64 `json:"hra_pct"`
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	EmployeeNumber string   `json:"employee_number"`
	FirstName      string   `json:"first_name"`
	MiddleName     string   `json:"middle_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Status         string   `json:"status"`
	WorkerType     string   `json:"worker_type,omitempty"`
	JoiningDate    string   `json:"joining_date,omitempty"`
	ExitDate       string   `json:"exit_date,omitempty"`
	DepartmentID   string   `json:"department_id,omitempty"`
	LocationID     string   `json:"location_id,omitempty"`
	DesignationID  string   `json:"designation_id,omitempty"`
	LPA            *float64 `json:"lpa,omitempty"`
	BasicPct       *float64 `json:"basic_pct,omitempty"`
	HRAPct         *float64 `json:"hra_pct,omitempty"`
}
