package paydetail

type PayDetailResponse struct {
	EmployeeID         string   `json:"employee_id"`
	Basic              *float64 `json:"basic"`
	HRA                *float64 `json:"hra"`
	MedicalAllowance   *float64 `json:"medical_allowance"`
	TransportAllowance *float64 `json:"transport_allowance"`
	SpecialAllowance   *float64 `json:"special_allowance"`
	MealCoupons        *float64 `json:"meal_coupons"`
}
