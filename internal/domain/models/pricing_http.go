package models

// Requests for the pricing HTTP endpoints. Defined in domain for consistency
// and reuse.

// FactorOptionsRequest carries the optional factor toggles on the wire.
// Pointers distinguish "omitted" from "explicitly false"; defaults.Set fills
// omitted fields with true before validation.
type FactorOptionsRequest struct {
	IncludeRelationshipStrength *bool `json:"includeRelationshipStrength" default:"true"`
	IncludeMarketConditions     *bool `json:"includeMarketConditions" default:"true"`
	IncludeDiscountAgreement    *bool `json:"includeDiscountAgreement" default:"true"`
	IncludeLiquidityStatus      *bool `json:"includeLiquidityStatus" default:"true"`
}

// ToFactorOptions resolves the wire toggles into the explicit all-required
// domain configuration.
func (r *FactorOptionsRequest) ToFactorOptions() FactorOptions {
	opts := DefaultFactorOptions()
	if r == nil {
		return opts
	}
	if r.IncludeRelationshipStrength != nil {
		opts.IncludeRelationshipStrength = *r.IncludeRelationshipStrength
	}
	if r.IncludeMarketConditions != nil {
		opts.IncludeMarketConditions = *r.IncludeMarketConditions
	}
	if r.IncludeDiscountAgreement != nil {
		opts.IncludeDiscountAgreement = *r.IncludeDiscountAgreement
	}
	if r.IncludeLiquidityStatus != nil {
		opts.IncludeLiquidityStatus = *r.IncludeLiquidityStatus
	}
	return opts
}

// EstimateRequest is the body of POST /api/estimate.
type EstimateRequest struct {
	CustomerID           string                `json:"customerId" validate:"required"`
	ProductID            string                `json:"productId" validate:"required"`
	Quantity             int                   `json:"quantity" validate:"required,gt=0"`
	DesiredMarginPercent *float64              `json:"desiredMarginPercent" validate:"omitempty,gte=0,lte=100"`
	Options              *FactorOptionsRequest `json:"options"`
}
