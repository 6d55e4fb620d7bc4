package payload

import (
	"errors"
	"net/url"
	"todolist/internal/core"

	"github.com/jellydator/validation"
)

// bcrypt refuses longer passwords.
const maxPasswordBytes = 72

var errPasswordTooLong = errors.New("must be at most 72 bytes long")

// AuthForm is the body of both the register and the login form.
type AuthForm struct {
	Username string
	Password string
}

func (a *AuthForm) BindForm(values url.Values) {
	a.Username = values.Get("username")
	a.Password = values.Get("password")
}

func (a AuthForm) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&a.Password, validation.Required, validation.By(passwordBytes)),
	)
}

func passwordBytes(value interface{}) error {
	if password, _ := value.(string); len(password) > maxPasswordBytes {
		return errPasswordTooLong
	}
	return nil
}

func (a AuthForm) ToAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
