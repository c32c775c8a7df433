// Package models holds the persistent domain types of the kudos server.
package models

import "time"

// Department is the fixed enumeration of teams a profile can belong to.
type Department string

const (
	DepartmentMarketing   Department = "MARKETING"
	DepartmentSales       Department = "SALES"
	DepartmentEngineering Department = "ENGINEERING"
	DepartmentHR          Department = "HR"
)

// ValidDepartment reports whether d is one of the known departments.
func ValidDepartment(d Department) bool {
	switch d {
	case DepartmentMarketing, DepartmentSales, DepartmentEngineering, DepartmentHR:
		return true
	}
	return false
}

// Profile holds the display attributes attached 1:1 to a user. It is created
// together with the user row and mutated by the profile and avatar updates.
type Profile struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Department     Department `json:"department,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
}

// User is an authenticable account. PasswordHash holds the bcrypt hash and is
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
}
