package schedule

import "time"

// DateRange é um intervalo de datas inclusivo nas duas pontas.
// Intervalos de um dia (Start == End) são válidos.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange valida a ordenação das datas. Datas invertidas são
// rejeitadas, nunca trocadas silenciosamente.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps aplica o teste padrão de sobreposição de intervalos:
// max(s1,s2) <= min(e1,e2). Pontas compartilhadas contam como
// sobreposição.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.Start.After(o.End) && !o.Start.After(r.End)
}

// Contains informa se a data cai dentro do intervalo (inclusivo).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
