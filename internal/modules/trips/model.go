// README: Saved trip records and their persistence backends.
package trips

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
)

var ErrNotFound = errors.New("trip not found")

const StatusActive = "active"

// Owner identifies the signed-in user a trip belongs to.
type Owner struct {
	UID   string
	Email string
	Name  string
}

// Choice is what the user asked for.
type Choice struct {
	prompt.Request
	PlaceID   string `json:"placeId,omitempty"`
	Travelers string `json:"travelers,omitempty"`
}

// Trip is the stored record handed to the persistence collaborator.
type Trip struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	UserEmail   string            `json:"userEmail"`
	UserName    string            `json:"userName,omitempty"`
	Choice      Choice            `json:"userChoice"`
	Plan        *tripplan.Plan    `json:"tripData"`
	TotalBudget map[string]string `json:"totalBudget"`
	Status      string            `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"lastModified"`
}

// New builds an active trip record for a validated plan.
func New(owner Owner, choice Choice, plan *tripplan.Plan, now time.Time) *Trip {
	now = now.UTC()
	return &Trip{
		ID:          uuid.NewString(),
		UserID:      owner.UID,
		UserEmail:   owner.Email,
		UserName:    owner.Name,
		Choice:      choice,
		Plan:        plan,
		TotalBudget: TotalBudget(plan),
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TotalBudget summarizes the plan's budget breakdown. Plans without one get
// the four standard categories marked "N/A".
func TotalBudget(plan *tripplan.Plan) map[string]string {
	if plan != nil {
		src := plan.BudgetBreakdown
		if len(src) == 0 && plan.AdditionalInfo != nil {
			src = plan.AdditionalInfo.Budget
		}
		if len(src) > 0 {
			out := make(map[string]string, len(src))
			for k, v := range src {
				out[k] = string(v)
			}
			return out
		}
	}
	return map[string]string{
		"accommodation":  "N/A",
		"activities":     "N/A",
		"transportation": "N/A",
		"food":           "N/A",
	}
}
