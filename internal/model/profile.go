package model

// AssetProfile is a human-friendly label for how an asset's cash flows line
// up with the state of the world. Keep these values stable; they appear in
// API responses and CSV output.
type AssetProfile string

const (
	ProfileProCyclical     AssetProfile = "PAYS_MORE_IN_GOOD_TIMES"
	ProfileCounterCyclical AssetProfile = "PAYS_MORE_IN_BAD_TIMES"
	ProfileStateNeutral    AssetProfile = "STATE_NEUTRAL"
)

func ProfileFromCashFlows(cashFlowUp, cashFlowDown float64) AssetProfile {
	switch {
	case cashFlowUp > cashFlowDown:
		return ProfileProCyclical
	case cashFlowUp < cashFlowDown:
		return ProfileCounterCyclical
	default:
		return ProfileStateNeutral
	}
}
