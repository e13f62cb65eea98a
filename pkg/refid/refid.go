package refid

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Prefix префикс всех референсов бронирований
const Prefix = "BKT"

// suffixLength длина случайного суффикса в символах base36
const suffixLength = 5

// New генерирует референс бронирования вида BKT<timestamp><suffix>:
// timestamp - микросекунды Unix в base36, suffix - 5 символов base36
// из криптографически случайного UUID.
//
// Сам по себе формат уникальность не гарантирует - она обеспечивается
// UNIQUE-констрейнтом на bookings.ref_id; при коллизии вызывающий код
// повторяет транзакцию бронирования с новым референсом.
func New() string {
	return NewAt(time.Now())
}

// NewAt генерирует референс для заданного момента времени
func NewAt(t time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(t.UnixMicro(), 36))
	return Prefix + ts + randomSuffix()
}

// randomSuffix возвращает 5 случайных символов base36
func randomSuffix() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8])

	// 36^5 вариантов суффикса
	const space = 36 * 36 * 36 * 36 * 36
	s := strings.ToUpper(strconv.FormatUint(n%space, 36))

	// Дополняем нулями слева до фиксированной длины
	for len(s) < suffixLength {
		s = "0" + s
	}
	return s
}
