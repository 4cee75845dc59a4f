package orders

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	number, err := newOrderNumber(now)
	require.NoError(t, err)

	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	require.True(t, strings.HasPrefix(number, stamp))
	suffix := strings.TrimPrefix(number, stamp)
	assert.Len(t, suffix, 4)
	for _, r := range suffix {
		assert.Contains(t, orderNumberAlphabet, string(r))
	}
}

func TestNewOrderNumberSuffixVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		number, err := newOrderNumber(now)
		require.NoError(t, err)
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}
