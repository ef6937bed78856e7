package errs

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// Kind - класс ошибки доменных операций.
// Контроллеры отображают класс в HTTP статус, обработчики - только создают и пробрасывают.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindPermission
	KindInvalidTransition
	KindNotFound
	KindAuthentication
)

type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, message string) error {
	return &Error{kind: kind, message: message}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, message: errors.Errorf(format, args...).Error()}
}

func Validation(message string) error {
	return New(KindValidation, message)
}

func Permission(message string) error {
	return New(KindPermission, message)
}

func InvalidTransition(message string) error {
	return New(KindInvalidTransition, message)
}

func NotFound(message string) error {
	return New(KindNotFound, message)
}

func Authentication(message string) error {
	return New(KindAuthentication, message)
}

// KindOf работает и для ошибок, обернутых через errors.Wrap
func KindOf(err error) Kind {
	var kindErr *Error
	if stderrors.As(err, &kindErr) {
		return kindErr.kind
	}
	return KindUnknown
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

func IsPermission(err error) bool {
	return KindOf(err) == KindPermission
}

func IsInvalidTransition(err error) bool {
	return KindOf(err) == KindInvalidTransition
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsAuthentication(err error) bool {
	return KindOf(err) == KindAuthentication
}
