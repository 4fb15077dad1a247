package admin

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

const (
	fallbackLogin    = "admin"
	fallbackPassword = "admin"
)

// Credentials учётные данные администратора из конфигурации
type Credentials struct {
	Login        string
	Password     string
	PasswordHash string // bcrypt, имеет приоритет над Password
}

// Service проверка статических учётных данных администратора
type Service struct {
	login        string
	password     []byte
	passwordHash []byte
	logger       Logger
}

// NewService создает сервис. Если логин или пароль не заданы,
// используется admin/admin и пишется предупреждение.
func NewService(creds Credentials, logger Logger) *Service {
	s := &Service{
		login:  creds.Login,
		logger: logger,
	}

	switch {
	case creds.PasswordHash != "":
		s.passwordHash = []byte(creds.PasswordHash)
	case creds.Password != "":
		s.password = []byte(creds.Password)
	}

	if s.login == "" || (s.password == nil && s.passwordHash == nil) {
		logger.Warn("Admin credentials are not configured, falling back to %s/%s. Set ADMIN_LOGIN and ADMIN_PASSWORD",
			fallbackLogin, fallbackPassword)
		s.login = fallbackLogin
		s.password = []byte(fallbackPassword)
		s.passwordHash = nil
	}

	return s
}

// Verify проверяет логин и пароль
func (s *Service) Verify(login, password string) bool {
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(s.login)) == 1

	var passwordOK bool
	if s.passwordHash != nil {
		passwordOK = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), s.password) == 1
	}

	if !loginOK || !passwordOK {
		s.logger.Warn("Verify: failed login attempt for login=%q", login)
		return false
	}

	return true
}
