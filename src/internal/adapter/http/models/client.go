package models

import (
	"errors"
	"strings"
	"time"
)

// BirthDateLayout is the DD-MM-YYYY format clients are registered with.
const BirthDateLayout = "02-01-2006"

type RegisterClientRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	CPF       string `json:"cpf"`
	Address   string `json:"address"`
}

func (r RegisterClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(r.BirthDate) == "" {
		errs = append(errs, "birthDate is required")
	} else if _, err := time.Parse(BirthDateLayout, strings.TrimSpace(r.BirthDate)); err != nil {
		errs = append(errs, "birthDate must be in DD-MM-YYYY format")
	}
	if cpf := strings.TrimSpace(r.CPF); cpf == "" {
		errs = append(errs, "cpf is required")
	} else if !digitsOnly(cpf) {
		errs = append(errs, "cpf must contain digits only")
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ClientResponse struct {
	CPF            string  `json:"cpf"`
	Name           string  `json:"name"`
	BirthDate      string  `json:"birthDate"`
	Address        string  `json:"address"`
	AccountNumbers []int64 `json:"accountNumbers"`
	CreatedAt      string  `json:"createdAt"`
}

func digitsOnly(value string) bool {
	if value == "" {
		return false
	}

	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}
