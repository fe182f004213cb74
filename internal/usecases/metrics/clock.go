package metrics

import "time"

// Clock fornece o instante atual para os cálculos que dependem de "hoje"
type Clock interface {
	Now() time.Time
}

// SystemClock usa o relógio do sistema no fuso configurado
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock retorna sempre o mesmo instante
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
