package domain

import (
	"errors"
	"net/url"
)

// ErrNoSession — в ссылке запуска нет user_id или token.
// Это фатальная ошибка инициализации, восстановления нет.
var ErrNoSession = errors.New("no session in launch url")

// Session идентифицирует запуск MiniApp. Заполняется один раз
// из параметров ссылки запуска и не меняется до конца работы.
type Session struct {
	UserID string
	Token  string
}

// ParseLaunchURL достаёт user_id и token из query-параметров ссылки запуска.
func ParseLaunchURL(raw string) (*Session, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	s := &Session{
		UserID: q.Get("user_id"),
		Token:  q.Get("token"),
	}
	if s.UserID == "" || s.Token == "" {
		return nil, ErrNoSession
	}
	return s, nil
}
