package handlers

import (
	"taller/internal/domain/catalogs/employee"
	"taller/internal/domain/catalogs/payment_method"
	"taller/internal/infrastructure/http/v1/dto"
)

// PaymentMethodHTTPHandler serves the payment method catalog.
type PaymentMethodHTTPHandler = CatalogHandler[
	*payment_method.PaymentMethod,
	dto.CreatePaymentMethodRequest,
	dto.UpdatePaymentMethodRequest,
]

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(base *BaseHandler, service *payment_method.Service) *PaymentMethodHTTPHandler {
	cfg := CatalogHandlerConfig[
		*payment_method.PaymentMethod,
		dto.CreatePaymentMethodRequest,
		dto.UpdatePaymentMethodRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "payment_method",
		MapCreateDTO: func(req dto.CreatePaymentMethodRequest) (*payment_method.PaymentMethod, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdatePaymentMethodRequest, existing *payment_method.PaymentMethod) (*payment_method.PaymentMethod, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return NewCatalogHandler(base, cfg)
}

// EmployeeHTTPHandler serves the employee catalog.
type EmployeeHTTPHandler = CatalogHandler[
	*employee.Employee,
	dto.CreateEmployeeRequest,
	dto.UpdateEmployeeRequest,
]

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHTTPHandler {
	cfg := CatalogHandlerConfig[
		*employee.Employee,
		dto.CreateEmployeeRequest,
		dto.UpdateEmployeeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "employee",
		MapCreateDTO: func(req dto.CreateEmployeeRequest) (*employee.Employee, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateEmployeeRequest, existing *employee.Employee) (*employee.Employee, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
	}

	return NewCatalogHandler(base, cfg)
}
