// Package domain contains core concepts of the chat system.
// This file defines the nickname rules a participant must satisfy.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
	"roomchat/errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const DefaultMaxNicknameLength = 32

var validate = validator.New()

// NicknameRequest carries a nickname candidate through validation.
type NicknameRequest struct {
	Nickname string `validate:"required"`
}

// NormalizeNickname trims the candidate and checks it can be used as a
// single whisper token. maxLength counts runes.
func NormalizeNickname(raw string, maxLength int) (string, error) {
	nickname := strings.TrimSpace(raw)
	if err := validate.Struct(NicknameRequest{Nickname: nickname}); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidNickname, err)
	}
	if maxLength > 0 && len([]rune(nickname)) > maxLength {
		return "", fmt.Errorf("%w: longer than %d characters", errors.ErrInvalidNickname, maxLength)
	}
	if strings.IndexFunc(nickname, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: contains whitespace", errors.ErrInvalidNickname)
	}
	return nickname, nil
}
