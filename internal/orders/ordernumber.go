package orders

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber builds a human-readable order number: the millisecond
// timestamp in uppercase base36 plus a 4 character random suffix. Uniqueness
// is enforced by the database; collisions retry with a fresh suffix.
func newOrderNumber(now time.Time) (string, error) {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("order number suffix: %w", err)
	}
	suffix := make([]byte, len(buf))
	for i, b := range buf {
		suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return stamp + string(suffix), nil
}
