package email

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/go-playground/validator/v10"
)

type SendEmailInput struct {
	To      string
	Subject string
	Body    string
}

type Sender interface {
	Send(input SendEmailInput) error
}

var validate = validator.New()

// GenerateBodyFromHTML renders the html template at templatePath into Body.
func (e *SendEmailInput) GenerateBodyFromHTML(templatePath string, data interface{}) error {
	t, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("parse file failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		return fmt.Errorf("email data injection failed: %w", err)
	}

	e.Body = buf.String()

	return nil
}

func (e *SendEmailInput) Validate() error {
	if e.To == "" {
		return errors.New("empty to")
	}

	if e.Subject == "" || e.Body == "" {
		return errors.New("empty subject/body")
	}

	if !IsEmailValid(e.To) {
		return errors.New("invalid to email")
	}

	return nil
}

func IsEmailValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}
