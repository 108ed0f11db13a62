package main

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/raphi011/onboard/internal/config"
	"github.com/raphi011/onboard/internal/onboarding"
	"github.com/raphi011/onboard/internal/ui/prompt"
)

// errPromptCancelled is returned when the user aborts the sign-up prompt.
var errPromptCancelled = errors.New("sign-up cancelled")

// askFunc asks for a single value. It returns errPromptCancelled when the
// user aborts.
type askFunc func(label string, opts prompt.TextInputOptions) (string, error)

// resolveUser builds the user handed to the wizard. Flags win over the
// configured user (which already carries ONBOARD_NAME / ONBOARD_EMAIL).
// Whatever is still missing is asked for; a nil ask leaves it empty.
func resolveUser(flagName, flagEmail string, conf config.UserConfig, ask askFunc) (*onboarding.User, error) {
	user := &onboarding.User{
		Name:  firstNonEmpty(flagName, conf.Name),
		Email: firstNonEmpty(flagEmail, conf.Email),
	}

	if user.Email != "" {
		if err := validateEmail(user.Email); err != nil {
			return nil, err
		}
	}

	if ask == nil {
		return user, nil
	}

	if user.Name == "" {
		name, err := ask("Full name:", prompt.TextInputOptions{
			Placeholder: "Jane Doe",
			Required:    true,
		})
		if err != nil {
			return nil, err
		}
		user.Name = name
	}

	if user.Email == "" {
		email, err := ask("Email (optional):", prompt.TextInputOptions{
			Placeholder: "jane@example.com",
			Validate: func(s string) error {
				if s == "" {
					return nil
				}
				return validateEmail(s)
			},
		})
		if err != nil {
			return nil, err
		}
		user.Email = email
	}

	return user, nil
}

// promptAsk asks on the terminal with prompt.TextInput.
func promptAsk(label string, opts prompt.TextInputOptions) (string, error) {
	res, err := prompt.TextInput(label, opts)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", errPromptCancelled
	}
	return res.Value, nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
