package refid

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Format(t *testing.T) {
	ref := New()

	assert.True(t, strings.HasPrefix(ref, Prefix))
	assert.Greater(t, len(ref), len(Prefix)+suffixLength)

	// Только заглавные base36-символы после префикса
	for _, r := range ref[len(Prefix):] {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z'),
			"unexpected character %q in ref %q", r, ref)
	}
}

func TestNewAt_TimestampOrdering(t *testing.T) {
	earlier := NewAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	later := NewAt(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	// Timestamp в base36 одной длины сортируется лексикографически
	assert.Less(t, earlier[:len(earlier)-suffixLength], later[:len(later)-suffixLength])
}

func TestNew_CollisionsNegligibleUnderConcurrency(t *testing.T) {
	const (
		goroutines = 8
		perG       = 12500
		total      = goroutines * perG
	)

	refs := make(chan string, total)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				refs <- New()
			}
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]struct{}, total)
	duplicates := 0
	for ref := range refs {
		if _, dup := seen[ref]; dup {
			duplicates++
			continue
		}
		seen[ref] = struct{}{}
	}

	// Формат не гарантирует уникальность (её обеспечивает UNIQUE-констрейнт
	// с повторной генерацией при коллизии), но коллизии должны быть
	// пренебрежимо редки даже под конкурентной нагрузкой
	require.LessOrEqual(t, duplicates, 2, "too many ref collisions: %d of %d", duplicates, total)
}

func TestRandomSuffix_FixedLength(t *testing.T) {
	for i := 0; i < 1000; i++ {
		assert.Len(t, randomSuffix(), suffixLength)
	}
}
