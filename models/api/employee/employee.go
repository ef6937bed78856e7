package employeeapimodels

type UserView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	JobTitle  string `json:"job_title"`
	Role      string `json:"role"`
	RoleName  string `json:"role_name"`
	DarkTheme bool   `json:"dark_theme"`
}

type ProfileSettingsData struct {
	DarkTheme bool `json:"dark_theme"` // темная тема оформления
}

// EmployeeView - строка реестра сотрудников.
// Счетчики выводятся из сдач работ, а не хранятся отдельно.
type EmployeeView struct {
	UserView
	TotalSubmissions    int64 `json:"total_submissions"`
	PendingSubmissions  int64 `json:"pending_submissions"`
	ApprovedSubmissions int64 `json:"approved_submissions"`
}
