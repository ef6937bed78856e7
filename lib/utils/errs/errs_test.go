package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Run(`класс определяется по конструктору`, func(t *testing.T) {
		require.Equal(t, KindValidation, KindOf(Validation("пустое поле")))
		require.Equal(t, KindPermission, KindOf(Permission("нет прав")))
		require.Equal(t, KindInvalidTransition, KindOf(InvalidTransition("уже рассмотрена")))
		require.Equal(t, KindNotFound, KindOf(NotFound("не найдено")))
		require.Equal(t, KindAuthentication, KindOf(Authentication("неверный пароль")))
	})

	t.Run(`класс сохраняется через errors.Wrap`, func(t *testing.T) {
		err := errors.Wrap(NotFound("сдача работы не найдена"), "ошибка операции")
		require.Equal(t, KindNotFound, KindOf(err))
		require.True(t, IsNotFound(err))
	})

	t.Run(`посторонняя ошибка без класса`, func(t *testing.T) {
		require.Equal(t, KindUnknown, KindOf(errors.New("что-то пошло не так")))
		require.Equal(t, KindUnknown, KindOf(nil))
	})

	t.Run(`Newf подставляет аргументы`, func(t *testing.T) {
		err := Newf(KindValidation, "неизвестный фильтр статуса: %v", "archived")
		require.Equal(t, "неизвестный фильтр статуса: archived", err.Error())
		require.True(t, IsValidation(err))
	})
}
