package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, ProductValidationError{Field: "Title", Description: "Title is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Count < 0 {
		errs = append(errs, ProductValidationError{Field: "Count", Description: "Count cannot be negative"})
	}
	return errs
}

func validateOrderLines(lines []OrderLineRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if len(lines) == 0 {
		errs = append(errs, ProductValidationError{Field: "Lines", Description: "Order must contain at least one line item"})
		return errs
	}
	for _, line := range lines {
		if strings.TrimSpace(line.Title) == "" {
			errs = append(errs, ProductValidationError{Field: "Title", Description: "Title is required"})
		}
		if line.Count <= 0 {
			errs = append(errs, ProductValidationError{Field: "Count", Description: "Count must be greater than zero"})
		}
	}
	return errs
}
