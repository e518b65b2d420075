package ingest

import "strings"

// synonyms maps a canonical field name to the spreadsheet headers accepted
// for it, in priority order. Header matching is insensitive to case, spaces
// and underscores, so each snake_case canonical name already matches its
// PascalCase and spaced variants; only genuinely different spellings need an
// entry here.
var synonyms = map[string][]string{
	"employee_number":   {"EmployeeNumber", "Employee Number", "EmpNo"},
	"location":          {"Location", "LocationName"},
	"department":        {"Department"},
	"sub_department":    {"SubDepartment", "Sub Department"},
	"designation":       {"Designation", "JobTitle"},
	"business_unit":     {"BusinessUnit"},
	"legal_entity":      {"LegalEntity"},
	"cost_center":       {"CostCenter", "CostCenterCode"},
	"band":              {"Band"},
	"pay_grade":         {"PayGrade", "Pay Grade"},
	"reporting_manager": {"ReportingManager", "Reporting Manager"},
	"leave_plan":        {"LeavePlan"},
	"shift":             {"Shift"},
	"weekly_off":        {"WeeklyOff", "WeeklyOffPolicy"},
	"attendance_policy": {"AttendancePolicy"},
	"capture_scheme":    {"CaptureScheme", "AttendanceCaptureScheme"},
	"holiday_list":      {"HolidayList"},
	"expense_policy":    {"ExpensePolicy"},
	"date_of_birth":     {"DateOfBirth", "DOB", "BirthDate"},
	"joining_date":      {"JoiningDate", "DateOfJoining", "DOJ"},
	"exit_date":         {"ExitDate", "DateOfExit", "LastWorkingDate"},
	"phone":             {"Phone", "Mobile", "MobileNumber"},
	"lpa":               {"LPA", "CTC", "AnnualCTC"},
	"basic_pct":         {"BasicPct", "BasicPercent", "Basic %"},
	"hra_pct":           {"HraPct", "HRAPercent", "HRA %"},
	"loss_of_pay_days":  {"LossOfPayDays", "LOPDays", "LOP Days"},
	"meal_coupons":      {"MealCoupons", "Meal Coupon"},
	"payroll_month":     {"PayrollMonth", "Payroll Month", "Month"},
	"payroll_type":      {"PayrollType", "Payroll Type"},
}

// normalizeKey folds a header or canonical field name into its comparable
// form: lowercased with spaces and underscores removed.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// headerCandidates returns the normalized header keys accepted for a
// canonical field, the canonical name itself first.
func headerCandidates(canonical string) []string {
	keys := []string{normalizeKey(canonical)}
	seen := map[string]bool{keys[0]: true}
	for _, syn := range synonyms[canonical] {
		key := normalizeKey(syn)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}
