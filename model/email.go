// model/email.go
package model

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}
