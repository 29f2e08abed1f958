package aggregator

import (
	"sort"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// ExpiringSoonDays is the inclusive window for "expiring soon".
const ExpiringSoonDays = 30

// ClassifyCertificate is the only place expiry state is derived.
func ClassifyCertificate(c domain.Certificate, today domain.Date) domain.CertificateStatus {
	st := domain.CertificateStatus{Certificate: c}
	if c.ExpiryDate == nil || c.ExpiryDate.IsZero() {
		return st
	}
	if c.ExpiryDate.Before(today) {
		st.IsExpired = true
		return st
	}
	st.DaysUntilExpiry = today.DaysUntil(*c.ExpiryDate)
	st.ExpiringSoon = st.DaysUntilExpiry <= ExpiringSoonDays
	return st
}

// ClassifyCertificates classifies every certificate against today and
// returns the totals. Input order is preserved.
func ClassifyCertificates(all []domain.Certificate, today domain.Date) ([]domain.CertificateStatus, domain.CertificateCounts) {
	out := make([]domain.CertificateStatus, 0, len(all))
	counts := domain.CertificateCounts{Total: len(all)}
	for _, c := range all {
		st := ClassifyCertificate(c, today)
		if !st.IsExpired {
			counts.Active++
		}
		if st.ExpiringSoon {
			counts.ExpiringSoon++
		}
		out = append(out, st)
	}
	return out, counts
}

// SortCertificatesByIssue orders certificates newest issue date first,
// ignoring the admin-set order.
func SortCertificatesByIssue(all []domain.Certificate) []domain.Certificate {
	out := append([]domain.Certificate{}, all...)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].IssueDate.Equal(out[j].IssueDate) {
			return out[i].IssueDate.After(out[j].IssueDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// RecentCertificates returns the n most recently issued certificates.
func RecentCertificates(all []domain.Certificate, n int) []domain.Certificate {
	out := SortCertificatesByIssue(all)
	if n < 0 {
		n = 0
	}
	if len(out) > n {
		out = out[:n]
	}
	return out
}
