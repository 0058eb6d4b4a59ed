package dto

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PaginationQuery is bound from the skip/limit query string of list endpoints
type PaginationQuery struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// Normalize clamps skip and limit into the accepted range
func (q PaginationQuery) Normalize() PaginationQuery {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}
