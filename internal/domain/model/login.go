package model

import (
	"errors"
	"strings"
	"time"
)

// LoginRequest carries credentials for the stored-procedure login check.
type LoginRequest struct {
	Username string    `json:"username"`
	Password string    `json:"password"`
	Database Partition `json:"database"`
}

// Validate validates the LoginRequest fields.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if !r.Database.Valid() {
		return ErrInvalidPartition
	}
	return nil
}

// User is the directory record reshaped from the login procedure's result row.
type User struct {
	UserID      int64      `json:"user_id"`
	UserName    string     `json:"user_name"`
	EmployeeID  int64      `json:"employee_id"`
	Role        string     `json:"role,omitempty"`
	Partition   Partition  `json:"partition"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
