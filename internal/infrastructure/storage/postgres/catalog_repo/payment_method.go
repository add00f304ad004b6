package catalog_repo

import (
	"taller/internal/domain/catalogs/payment_method"
	"taller/internal/infrastructure/storage/postgres"
)

const paymentMethodTable = "cat_payment_methods"

// PaymentMethodRepo implements payment_method.Repository.
type PaymentMethodRepo struct {
	*BaseCatalogRepo[*payment_method.PaymentMethod]
}

// NewPaymentMethodRepo creates a new payment method repository.
func NewPaymentMethodRepo() *PaymentMethodRepo {
	return &PaymentMethodRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*payment_method.PaymentMethod](
			paymentMethodTable,
			postgres.ExtractDBColumns[payment_method.PaymentMethod](),
			func() *payment_method.PaymentMethod { return &payment_method.PaymentMethod{} },
		),
	}
}
