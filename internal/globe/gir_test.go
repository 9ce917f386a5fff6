package globe_test

import (
	"testing"

	"globe-api/internal/globe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func girEntry(jurisdiction string, fani, taxes float64) globe.JurisdictionCalcEntry {
	return globe.JurisdictionCalcEntry{
		Jurisdiction: jurisdiction,
		FANI:         fani,
		CurrentTax:   taxes,
	}
}

func TestComputeGIR_PerJurisdictionIndependence(t *testing.T) {
	input := globe.GIRInput{
		MNEName:    "Acme Group",
		FiscalYear: "2024",
		Entities: []globe.EntityData{
			{ID: "e1", Name: "Acme HoldCo", Jurisdiction: "IE", EntityType: "UPE"},
			{ID: "e2", Name: "Acme GmbH", Jurisdiction: "DE", EntityType: "CE", DirectParent: "e1", OwnershipPct: 100},
		},
		Calculations: []globe.JurisdictionCalcEntry{
			girEntry("IE", 10_000_000, 500_000),
			girEntry("DE", 8_000_000, 2_000_000),
		},
	}

	result := globe.ComputeGIR(input)

	require.Len(t, result.Jurisdictions, 2)

	ie := result.Jurisdictions[0]
	assert.Equal(t, "IE", ie.Jurisdiction)
	assert.InDelta(t, 5.0, ie.ETR, 0.001)
	assert.Equal(t, globe.StatusLowTaxed, ie.Status)
	assert.InDelta(t, 1_000_000, ie.NetTopUp, 0.01)

	de := result.Jurisdictions[1]
	assert.Equal(t, "DE", de.Jurisdiction)
	assert.InDelta(t, 25.0, de.ETR, 0.001)
	assert.Equal(t, globe.StatusCompliant, de.Status)
	assert.Zero(t, de.NetTopUp)

	// Swapping row order must not change either jurisdiction's numbers:
	// there is no cross-jurisdiction blending.
	input.Calculations = []globe.JurisdictionCalcEntry{
		girEntry("DE", 8_000_000, 2_000_000),
		girEntry("IE", 10_000_000, 500_000),
	}
	swapped := globe.ComputeGIR(input)
	assert.Equal(t, ie, swapped.Jurisdictions[1])
	assert.Equal(t, de, swapped.Jurisdictions[0])
}

// The GIR grid and the standalone calculator share the same formula,
// so a jurisdiction computed either way yields the same chain.
func TestComputeGIR_MatchesSingleJurisdictionEngine(t *testing.T) {
	entry := globe.JurisdictionCalcEntry{
		Jurisdiction:   "IE",
		FANI:           28_000_000,
		NetTaxes:       3_500_000,
		CurrentTax:     3_000_000,
		DeferredTax:    800_000,
		PayrollCosts:   19_000_000,
		TangibleAssets: 17_000_000,
	}

	gir := globe.ComputeGIR(globe.GIRInput{
		MNEName:      "Acme Group",
		FiscalYear:   "2024",
		Calculations: []globe.JurisdictionCalcEntry{entry},
	})

	single := globe.ComputeGloBE(globe.GloBEInput{
		Jurisdiction:   "IE",
		FiscalYear:     "2024",
		FANI:           "28000000",
		NetTaxes:       "3500000",
		CurrentTax:     "3000000",
		DeferredTax:    "800000",
		PayrollCosts:   "19000000",
		TangibleAssets: "17000000",
	})

	require.Len(t, gir.Jurisdictions, 1)
	got := gir.Jurisdictions[0]
	assert.Equal(t, single.GloBEIncome, got.GloBEIncome)
	assert.Equal(t, single.AdjustedCoveredTaxes, got.AdjustedCoveredTaxes)
	assert.Equal(t, single.TotalSBIE, got.TotalSBIE)
	assert.Equal(t, single.ETR, got.ETR)
	assert.Equal(t, single.NetTopUp, got.NetTopUp)
	assert.Equal(t, single.Status, got.Status)
}

func TestComputeGIR_MissingJurisdictions(t *testing.T) {
	input := globe.GIRInput{
		MNEName:    "Acme Group",
		FiscalYear: "2024",
		Entities: []globe.EntityData{
			{ID: "e1", Name: "HoldCo", Jurisdiction: "IE"},
			{ID: "e2", Name: "GmbH", Jurisdiction: "DE"},
			{ID: "e3", Name: "BV", Jurisdiction: "NL"},
			{ID: "e4", Name: "Second GmbH", Jurisdiction: "DE"},
		},
		Calculations: []globe.JurisdictionCalcEntry{
			girEntry("IE", 1_000_000, 200_000),
			girEntry("DE", 1_000_000, 200_000),
		},
	}

	result := globe.ComputeGIR(input)

	// NL has structure entries but no computation row; that is surfaced
	// for the user but the present jurisdictions still computed.
	assert.Equal(t, []string{"NL"}, result.MissingJurisdictions)
	assert.Len(t, result.Jurisdictions, 2)

	// 3 distinct structure jurisdictions > 2 rows.
	assert.False(t, result.JurisdictionMatch)
}

// JurisdictionMatch is a cardinality check, not set equality: enough
// rows of the wrong jurisdiction still pass it, while the set
// difference is reported separately.
func TestComputeGIR_JurisdictionMatchIsCardinalityOnly(t *testing.T) {
	result := globe.ComputeGIR(globe.GIRInput{
		MNEName:    "Acme Group",
		FiscalYear: "2024",
		Entities: []globe.EntityData{
			{ID: "e1", Name: "HoldCo", Jurisdiction: "IE"},
			{ID: "e2", Name: "GmbH", Jurisdiction: "DE"},
		},
		Calculations: []globe.JurisdictionCalcEntry{
			girEntry("IE", 1_000_000, 200_000),
			girEntry("IE", 2_000_000, 400_000),
		},
	})

	assert.True(t, result.JurisdictionMatch)
	assert.Equal(t, []string{"DE"}, result.MissingJurisdictions)
}

func TestCheckEntityStructure(t *testing.T) {
	t.Run("clean tree", func(t *testing.T) {
		warnings := globe.CheckEntityStructure([]globe.EntityData{
			{ID: "e1", Name: "HoldCo", Jurisdiction: "IE"},
			{ID: "e2", Name: "GmbH", Jurisdiction: "DE", DirectParent: "e1"},
			{ID: "e3", Name: "BV", Jurisdiction: "NL", DirectParent: "e1"},
		})
		assert.Empty(t, warnings)
	})

	t.Run("dangling parent reference", func(t *testing.T) {
		warnings := globe.CheckEntityStructure([]globe.EntityData{
			{ID: "e1", Name: "GmbH", Jurisdiction: "DE", DirectParent: "ghost"},
		})
		require.Len(t, warnings, 1)
		assert.Equal(t, "entities.e1.direct_parent", warnings[0].Field)
		assert.Contains(t, warnings[0].Message, "unknown parent")
	})

	t.Run("ownership cycle", func(t *testing.T) {
		warnings := globe.CheckEntityStructure([]globe.EntityData{
			{ID: "e1", Name: "A", Jurisdiction: "IE", DirectParent: "e2"},
			{ID: "e2", Name: "B", Jurisdiction: "DE", DirectParent: "e1"},
		})
		require.Len(t, warnings, 2)
		for _, w := range warnings {
			assert.Contains(t, w.Message, "ownership cycle")
		}
	})

	t.Run("cycle does not block computation", func(t *testing.T) {
		result := globe.ComputeGIR(globe.GIRInput{
			MNEName:    "Acme Group",
			FiscalYear: "2024",
			Entities: []globe.EntityData{
				{ID: "e1", Name: "A", Jurisdiction: "IE", DirectParent: "e2"},
				{ID: "e2", Name: "B", Jurisdiction: "IE", DirectParent: "e1"},
			},
			Calculations: []globe.JurisdictionCalcEntry{
				girEntry("IE", 1_000_000, 200_000),
			},
		})

		assert.Len(t, result.Jurisdictions, 1)
		assert.NotEmpty(t, result.StructureWarnings)
	})
}

func TestValidateGIR(t *testing.T) {
	errs := globe.ValidateGIR(globe.GIRInput{})
	require.Len(t, errs, 2)
	assert.Equal(t, "mne_name", errs[0].Field)
	assert.Equal(t, "fiscal_year", errs[1].Field)

	assert.Empty(t, globe.ValidateGIR(globe.GIRInput{MNEName: "Acme", FiscalYear: "2024"}))
}
