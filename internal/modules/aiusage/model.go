// README: Monthly trip-generation allowance per user.
package aiusage

import "errors"

// ErrQuotaExhausted is returned when a user has no generations left for the current month.
var ErrQuotaExhausted = errors.New("monthly trip generation quota exhausted")

// DefaultMonthlyQuota is the number of generations granted per month.
const DefaultMonthlyQuota = 20

const periodLayout = "2006-01"
