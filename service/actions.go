package service

import (
	"nyaay-backend/models"
)

// generateActions derives the recommended next steps for a category. The
// numeric prefixes are part of the fixed step text, not computed from list
// position: a category outside both gated groups goes straight from step 1
// to step 5, matching the documents this service has always produced.
func generateActions(category models.Category, tags []string) []string {
	actions := []string{
		"1. Collect and safely store all relevant documents, messages, emails, screenshots and payment proofs.",
	}

	switch category {
	case models.CategoryConsumer, models.CategoryTenancy, models.CategoryEmployment:
		actions = append(actions,
			"2. First try to resolve the issue in writing (email/WhatsApp/letter) in a polite and clear manner.",
			"3. If there is no proper response, consider sending a formal legal notice through an advocate.",
		)
	}

	switch category {
	case models.CategoryCybercrime, models.CategoryCriminal, models.CategoryDomestic:
		actions = append(actions,
			"2. For serious threats, violence, fraud or online offences, you can approach the local police station or cyber cell with all evidence.",
		)
	}

	switch category {
	case models.CategoryConsumer:
		actions = append(actions,
			"4. You may file a consumer complaint before the appropriate Consumer Commission if the value and facts justify it.",
		)
	case models.CategoryTenancy:
		actions = append(actions,
			"4. Check your rent agreement and local state tenancy laws. Avoid handing over possession or keys without proper written record.",
		)
	case models.CategoryEmployment:
		actions = append(actions,
			"4. If it relates to harassment at workplace, you can approach HR or the Internal Complaints Committee (ICC), if applicable.",
		)
	}

	actions = append(actions,
		"5. Laws and procedures vary by state and facts. Consult a qualified advocate to get personalised advice before taking legal action.",
	)

	return actions
}
