package customvalidator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registra as regras de validação específicas do
// domínio no validador compartilhado.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("placa_br", isBrazilianPlate); err != nil {
		return err
	}
	if err := v.RegisterValidation("numero_os", isOrderNumber); err != nil {
		return err
	}
	return nil
}

// Aceita o padrão antigo (ABC-1234 / ABC1234) e o Mercosul (ABC1D23).
var (
	plateLegacyRe   = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$`)
	plateMercosulRe = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

func isBrazilianPlate(fl validator.FieldLevel) bool {
	plate := strings.ToUpper(strings.TrimSpace(fl.Field().String()))
	return plateLegacyRe.MatchString(plate) || plateMercosulRe.MatchString(plate)
}

// Número de OS no formato "OS-<n>" ou apenas dígitos.
var orderNumberRe = regexp.MustCompile(`^(OS-)?\d+$`)

func isOrderNumber(fl validator.FieldLevel) bool {
	return orderNumberRe.MatchString(strings.TrimSpace(fl.Field().String()))
}
