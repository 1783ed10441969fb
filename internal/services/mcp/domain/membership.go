package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// GetMembershipInput represents the MCP tool input for a membership lookup.
type GetMembershipInput struct {
	UserID string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// MembershipPointsPayload groups the loyalty point balances.
type MembershipPointsPayload struct {
	Current  int `json:"current"`
	Lifetime int `json:"lifetime"`
}

// MembershipPerksPayload groups the perk flags with a display-formatted
// discount.
type MembershipPerksPayload struct {
	DiscountPercent string `json:"discountPercent"`
	FreeShipping    bool   `json:"freeShipping"`
	PrioritySupport bool   `json:"prioritySupport"`
}

// MembershipPayload is the get_membership reply body.
type MembershipPayload struct {
	UserID          string                  `json:"userId"`
	Tier            string                  `json:"tier"`
	TierDescription string                  `json:"tierDescription"`
	Status          string                  `json:"status"`
	StartDate       string                  `json:"startDate"`
	RenewalDate     string                  `json:"renewalDate"`
	Benefits        []string                `json:"benefits"`
	Points          MembershipPointsPayload `json:"points"`
	Perks           MembershipPerksPayload  `json:"perks"`
}

// GetMembershipTool declares the membership lookup tool.
func GetMembershipTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_membership",
		Description: "Retrieve membership details for a user, including tier, benefits, points balance, and discount information.",
	}
}

// GetMembershipHandler returns the loyalty record for a user. The not-found
// reply carries a suggestion naming the seeded demo users so agents can
// self-correct.
func GetMembershipHandler(st *store.Store) mcp.ToolHandlerFor[GetMembershipInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetMembershipInput) (*mcp.CallToolResult, any, error) {
		userID := resolveUserID(input.UserID)
		membership, ok := st.Membership(userID)
		if !ok {
			suggestion := fmt.Sprintf(
				"This user may not have a membership yet. Available demo users: %s",
				strings.Join(st.MembershipUserIDs(), ", "),
			)
			return errorResultWithSuggestion(fmt.Sprintf("No membership found for user: %s", userID), suggestion), nil, nil
		}

		result, err := successResult(MembershipPayload{
			UserID:          membership.UserID,
			Tier:            string(membership.Tier),
			TierDescription: tierDescription(membership.Tier),
			Status:          string(membership.Status),
			StartDate:       formatTimestamp(membership.StartDate),
			RenewalDate:     formatTimestamp(membership.RenewalDate),
			Benefits:        membership.Benefits,
			Points: MembershipPointsPayload{
				Current:  membership.PointsBalance,
				Lifetime: membership.LifetimePoints,
			},
			Perks: MembershipPerksPayload{
				DiscountPercent: fmt.Sprintf("%d%%", membership.DiscountPercent),
				FreeShipping:    membership.FreeShipping,
				PrioritySupport: membership.PrioritySupport,
			},
		})
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}
