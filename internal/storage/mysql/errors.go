package mysql

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"

	"furniture-backend/internal/storage"
)

const (
	errDuplicateEntry  = 1062
	errRowIsReferenced = 1451
	errNoReferencedRow = 1452
	errCheckViolated   = 3819
)

// keyFields — имена уникальных индексов схемы и поле API, по которому
// произошёл конфликт.
var keyFields = map[string]string{
	"uq_product_type_name":  "name",
	"uq_material_type_name": "name",
	"uq_workshop_type_name": "name",
	"uq_workshop_name":      "name",
	"uq_product_name":       "name",
	"uq_product_article":    "article",
	"uq_product_workshop":   "workshop_id",
}

// translateError переводит ошибки ограничений MySQL в классификацию из
// пакета storage. Всё остальное возвращается как есть (ошибка хранилища).
func translateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return err
	}

	switch mysqlErr.Number {
	case errDuplicateEntry:
		return &storage.ConflictError{Field: conflictField(mysqlErr.Message)}
	case errNoReferencedRow:
		return storage.ErrRefNotFound
	case errRowIsReferenced:
		return storage.ErrDependentRows
	case errCheckViolated:
		return storage.Validationf("value violates a range constraint")
	}

	return err
}

// conflictField вытаскивает поле по имени ключа из текста
// "Duplicate entry '...' for key 'product.uq_product_article'".
func conflictField(msg string) string {
	for key, field := range keyFields {
		if strings.Contains(msg, key) {
			return field
		}
	}
	return ""
}
