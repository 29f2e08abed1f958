package repository

import (
	"database/sql"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func nullDate(d *domain.Date) sql.NullTime {
	if d == nil || d.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func dateFromNull(nt sql.NullTime) *domain.Date {
	if !nt.Valid {
		return nil
	}
	d := domain.DateOf(nt.Time)
	return &d
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
