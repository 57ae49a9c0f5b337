package mcpclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tipos de falha na comunicação com a API do MCP; os textos aparecem na tela do
// gerador, por isso ficam em inglês
var (
	ErrTransport = errors.New("MCP API communication failure")
	ErrTimeout   = errors.New("request timed out")
	ErrCanceled  = errors.New("request canceled")
	ErrDecode    = errors.New("invalid MCP API response")
)

// RequestError carrega o tipo da falha e a causa original
type RequestError struct {
	Kind     error
	Method   string
	Endpoint string
	Err      error
}

func newRequestError(kind error, method, endpoint string, err error) *RequestError {
	return &RequestError{Kind: kind, Method: method, Endpoint: endpoint, Err: err}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %s: %v", e.Method, e.Endpoint, e.Kind, e.Err)
}

// Is permite errors.Is(err, ErrTimeout) e afins
func (e *RequestError) Is(target error) bool {
	return target == e.Kind
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError representa uma resposta fora da faixa 2xx
type StatusError struct {
	Method   string
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: request failed with status %d", e.Method, e.Endpoint, e.Code)
}

// IsStatus informa se err é um StatusError com o código informado
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}
