package errors

import "fmt"

var (
	// JWT e tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenNotYetValid     = fmt.Errorf("token ainda não é válido")
	ErrTokenIsNotRefresh    = fmt.Errorf("token não é um refresh token")
	ErrTokenIsNotAccess     = fmt.Errorf("token não é um access token")

	// Autenticação / autorização
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("credenciais inválidas")
	ErrUnauthorized       = fmt.Errorf("não autorizado")
	ErrForbidden          = fmt.Errorf("acesso negado")

	// Contexto
	ErrUserIDNotFoundInContext = fmt.Errorf("usuário não encontrado no contexto da requisição")
	ErrInvalidUserID           = fmt.Errorf("usuário inválido")

	// Gerais
	ErrNotFound       = fmt.Errorf("registro não encontrado")
	ErrBadRequest     = fmt.Errorf("requisição inválida")
	ErrConflict       = fmt.Errorf("registro já existe")
	ErrInternalServer = fmt.Errorf("erro interno do servidor")

	// Domínio
	ErrInvalidTransition  = fmt.Errorf("transição de status não permitida")
	ErrMechanicNotFound   = fmt.Errorf("mecânico não encontrado")
	ErrOrderNotInQueue    = fmt.Errorf("ordem de serviço não pertence à fila informada")
	ErrInsufficientStock  = fmt.Errorf("saldo em estoque insuficiente")
	ErrVehicleInUse       = fmt.Errorf("veículo possui ordens de serviço vinculadas")
	ErrPartInUse          = fmt.Errorf("peça possui movimentações vinculadas")
)

// InvalidInputError carries a user-facing validation message.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError binds an HTTP status code to a user-facing message while keeping
// the internal cause and extra context for the logs only.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
