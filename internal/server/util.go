package server

import "crypto/rand"

// newRoomCode returns 6 characters from [A-Z0-9], the format clients type
// in to join a room. Lookups are case-insensitive; codes are stored upper.
// Bytes of 252 and above are rejected (252 is the largest multiple of 36
// that fits a byte) so every character is equally likely.
func newRoomCode() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	code := make([]byte, 0, 6)
	buf := make([]byte, 16)
	for len(code) < 6 {
		if _, err := rand.Read(buf); err != nil {
			return "AAAAAA"
		}
		for _, b := range buf {
			if b >= 252 {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == 6 {
				break
			}
		}
	}
	return string(code)
}
