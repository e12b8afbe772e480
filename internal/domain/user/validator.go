package user

import (
	"fmt"
	"strings"
)

const (
	MinNameLen     = 1
	MaxNameLen     = 64
	MinPasswordLen = 4
)

// Validator checks registration and login input. The rules are deliberately
// light: this is a simulated local login, not production credential handling.
type Validator interface {
	ValidateRegister(name, password string) error
	ValidateLogin(username string) error
}

type InputValidator struct{}

func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

func (v *InputValidator) ValidateRegister(name, password string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must be at most %d characters", MaxNameLen)
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	return nil
}

func (v *InputValidator) ValidateLogin(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}

	return nil
}
