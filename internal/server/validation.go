package server

import (
	"errors"
	"fmt"
	"strings"
)

const maxNicknameLength = 50

func validateNickname(nickname string) (string, error) {
	trimmed := normalizeText(nickname)
	if trimmed == "" {
		return "", errors.New("nickname is required")
	}
	if len(trimmed) > maxNicknameLength {
		return "", fmt.Errorf("nickname must be %d characters or fewer", maxNicknameLength)
	}
	if !isSafeText(trimmed) {
		return "", errors.New("nickname contains unsupported characters")
	}
	return trimmed, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

func isSafeText(text string) bool {
	for _, r := range text {
		if r > 127 {
			return false
		}
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		switch r {
		case ' ', '-', '_', '\'', '.', '!', '?':
			continue
		default:
			return false
		}
	}
	return true
}

func validateRoomCode(code string) (string, error) {
	normalized := normalizeCode(code)
	if len(normalized) != 6 {
		return "", errors.New("room code must be 6 characters")
	}
	for _, r := range normalized {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", errors.New("room code contains unsupported characters")
		}
	}
	return normalized, nil
}
