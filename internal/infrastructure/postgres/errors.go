package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// constraintFields campo expuesto al cliente por cada restricción del esquema.
var constraintFields = map[string]string{
	"user_email_key":                   "email",
	"buyer_id_number_key":              "id_number",
	"seller_company_name_key":          "company_name",
	"seller_identification_number_key": "identification_number",
	"category_name_key":                "name",
	"store_name_key":                   "name",
	"buyer_user_id_fkey":               "user_id",
	"seller_user_id_fkey":              "user_id",
	"store_seller_id_fkey":             "seller_id",
	"product_category_id_fkey":         "category_id",
	"product_store_id_fkey":            "store_id",
	"product_to_buy_buyer_id_fkey":     "buyer_id",
	"product_to_buy_product_id_fkey":   "product_id",
}

// mapError traduce violaciones de restricciones a errores de dominio.
// El resto se devuelve envuelto con op.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicate, field)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, field)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
