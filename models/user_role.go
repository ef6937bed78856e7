package models

type UserRole string

const (
	EmployeeRole UserRole = "EMPLOYEE_ROLE"
	ManagerRole  UserRole = "MANAGER_ROLE"
)

var roleHumanName = map[UserRole]string{
	EmployeeRole: "Сотрудник",
	ManagerRole:  "Руководитель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsManager() bool {
	return r == ManagerRole
}
