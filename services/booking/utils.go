package booking

import "crypto/rand"

// shareCodeLength is the length of the short booking code printed in emails.
const shareCodeLength = 6

// shareCodeAlphabet avoids ambiguous characters (0/O, 1/I/L).
const shareCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// newShareCode returns a random short code for referencing a booking
// without exposing its ID.
func newShareCode() string {
	buf := make([]byte, shareCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform source is broken.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = shareCodeAlphabet[int(b)%len(shareCodeAlphabet)]
	}
	return string(buf)
}
