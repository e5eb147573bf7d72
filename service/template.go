package service

import (
	"fmt"
	"strings"

	"nyaay-backend/models"
)

// templateTypesByCategory is the fixed category to template-family table.
// Categories not listed fall back to the general complaint.
var templateTypesByCategory = map[models.Category]models.TemplateType{
	models.CategoryCybercrime: models.TemplatePoliceComplaint,
	models.CategoryCriminal:   models.TemplatePoliceComplaint,
	models.CategoryDomestic:   models.TemplatePoliceComplaint,
	models.CategoryConsumer:   models.TemplateConsumerComplaint,
	models.CategoryTenancy:    models.TemplateLegalNotice,
	models.CategoryEmployment: models.TemplateLegalNotice,
	models.CategoryBanking:    models.TemplateLegalNotice,
}

func guessTemplateType(category models.Category) models.TemplateType {
	if t, ok := templateTypesByCategory[category]; ok {
		return t
	}
	return models.TemplateGeneralComplaint
}

// generateComplaintTemplate renders the fixed template for a family,
// interpolating the classification and issue summary. Bracketed tokens like
// [FULL NAME] stay literal for later fill.
func generateComplaintTemplate(templateType models.TemplateType, issueSummary string, c models.Classification) string {
	cat := string(c.Category)
	subject := cat
	if c.SubCategory != nil && *c.SubCategory != "" {
		subject = *c.SubCategory
	}
	tagsText := strings.Join(c.Tags, ", ")

	switch templateType {
	case models.TemplatePoliceComplaint:
		keyAspects := tagsText
		if keyAspects == "" {
			keyAspects = "N/A"
		}
		return fmt.Sprintf(policeComplaintTemplate, subject, cat, keyAspects)
	case models.TemplateConsumerComplaint:
		return fmt.Sprintf(consumerComplaintTemplate, issueSummary)
	case models.TemplateLegalNotice:
		return fmt.Sprintf(legalNoticeTemplate, subject, issueSummary)
	default:
		return fmt.Sprintf(generalComplaintTemplate, subject, issueSummary)
	}
}

// FillData carries the user-supplied values substituted into a rendered
// template. Empty optional fields replace their placeholders with nothing.
type FillData struct {
	FullName             string
	Address              string
	OppositePartyName    string
	OppositePartyAddress string
	Date                 string
	MobileNumber         string
	EmailID              string
	Signature            string
}

// fillTemplateText replaces every known placeholder with the supplied
// values. The placeholders are disjoint, so replacement order does not
// matter; aliases of the same field all resolve to one source value.
func fillTemplateText(template string, data FillData) string {
	signature := data.Signature
	if signature == "" {
		signature = data.FullName
	}
	contactDetails := strings.TrimSpace(data.MobileNumber + " " + data.EmailID)

	replacements := []struct {
		placeholder string
		value       string
	}{
		{"[FULL NAME]", data.FullName},
		{"[YOUR FULL NAME]", data.FullName},
		{"[COMPLAINANT NAME]", data.FullName},
		{"[COMPLAINANT SIGNATURE]", data.FullName},

		{"[FULL ADDRESS]", data.Address},
		{"[YOUR ADDRESS]", data.Address},
		{"[COMPLAINANT ADDRESS]", data.Address},

		{"[OPPOSITE PARTY NAME]", data.OppositePartyName},
		{"[OPPOSITE PARTY ADDRESS]", data.OppositePartyAddress},

		{"[DATE]", data.Date},
		{"[MOBILE NUMBER]", data.MobileNumber},
		{"[EMAIL ID]", data.EmailID},
		{"[CONTACT DETAILS]", contactDetails},
		{"[SIGNATURE]", signature},
	}

	for _, r := range replacements {
		template = strings.ReplaceAll(template, r.placeholder, r.value)
	}
	return template
}

const policeComplaintTemplate = `To,
The Station House Officer,
[POLICE STATION NAME],
[PLACE]

Date: [DATE]

Subject: Complaint regarding %s

Respected Sir/Madam,

1. I, [FULL NAME], residing at [FULL ADDRESS], respectfully submit this complaint for your necessary action.
2. The brief facts of the incident are as follows:
   (a) On or about [INCIDENT DATE], at around [TIME], at [PLACE], the following incident occurred:
       [INCIDENT DETAILS – WRITE CLEARLY IN SIMPLE POINTS].
   (b) The persons involved / accused are: [NAMES / DETAILS IF KNOWN].
3. Because of the above acts, I am facing serious hardship and mental stress. The issue broadly relates to: %s. Key aspects include: %s.
4. I request you to kindly register my complaint, investigate the matter, and take appropriate action under the relevant provisions of the Indian Penal Code and other applicable laws.

I am enclosing copies of the relevant documents/evidence for your reference.

Thank you,

Yours faithfully,

[FULL NAME]
[MOBILE NUMBER]
[EMAIL ID]
[SIGNATURE]`

const consumerComplaintTemplate = `BEFORE THE HON'BLE CONSUMER DISPUTES REDRESSAL COMMISSION
[LEVEL AND PLACE]

IN THE MATTER OF:

[COMPLAINANT NAME],
[COMPLAINANT ADDRESS],
...Complainant

Versus

[OPPOSITE PARTY NAME],
[OPPOSITE PARTY ADDRESS],
...Opposite Party

COMPLAINT UNDER THE CONSUMER PROTECTION ACT, 2019

Most Respectfully Showeth:

1. That the Complainant is a consumer within the meaning of the Consumer Protection Act, 2019.
2. That the Opposite Party is engaged in the business of providing goods/services, namely [DETAILS OF GOODS/SERVICES].
3. Brief facts of the case:
   (a) The Complainant availed the said goods/services on [DATE] for a consideration of Rs. [AMOUNT].
   (b) The following issues/deficiencies arose: %s
4. Due to the above deficiency in service / defect in goods, the Complainant has suffered loss, mental agony and harassment.
5. Cause of action arose on [DATE] when the Opposite Party failed to rectify/replace/refund despite requests.

PRAYER

In view of the above, the Complainant humbly prays that this Hon'ble Commission may be pleased to:

a) Direct the Opposite Party to refund Rs. [AMOUNT] with interest.
b) Award compensation of Rs. [COMPENSATION AMOUNT] for mental agony and harassment.
c) Award litigation costs of Rs. [LITIGATION COST].
d) Pass any other order(s) as this Hon'ble Commission may deem fit and proper.

Place: [PLACE]
Date: [DATE]

[COMPLAINANT SIGNATURE]
[COMPLAINANT NAME]`

const legalNoticeTemplate = `LEGAL NOTICE

From:
[YOUR FULL NAME]
[YOUR ADDRESS]
[CONTACT DETAILS]

To:
[OPPOSITE PARTY NAME]
[OPPOSITE PARTY ADDRESS]

Date: [DATE]

Subject: Legal Notice regarding %s

Sir/Madam,

1. Under instructions and on behalf of my client, [YOUR FULL NAME], I hereby serve upon you the following legal notice:
2. That you and my client had the following arrangement/relationship: [BRIEFLY DESCRIBE AGREEMENT/EMPLOYMENT/TENANCY ETC.].
3. That the factual background is as under:
   (a) [FACT 1 – WITH DATE AND PLACE]
   (b) [FACT 2]
   (c) [FACT 3]
   The dispute broadly relates to: %s
4. That your above acts/omissions amount to breach of legal and contractual obligations and have caused my client financial loss and mental harassment.
5. By this notice, I hereby call upon you to:
   (a) [PAY / PERFORM / REFUND] Rs. [AMOUNT] within [NUMBER OF DAYS] days from receipt of this notice; and
   (b) Cease and desist from repeating the complained acts.

Failing compliance within the above period, my client shall be constrained to initiate appropriate civil/criminal proceedings at your risk as to cost and consequences.

This notice is issued without prejudice to all other rights and remedies available in law and equity.

Yours faithfully,

[YOUR FULL NAME]
[CONTACT DETAILS]
[SIGNATURE]`

const generalComplaintTemplate = `GENERAL COMPLAINT TEMPLATE

To,
[AUTHORITY / ORGANISATION NAME],
[ADDRESS]

Date: [DATE]

Subject: Complaint regarding %s

Respected Sir/Madam,

1. I, [FULL NAME], residing at [FULL ADDRESS], wish to submit this complaint for your consideration.
2. The facts of my case are as follows:
   [DETAILED FACTS IN NUMBERED POINTS – INCLUDE DATES, PLACES, AMOUNTS].
3. In summary, the issue relates to: %s
4. Due to the above, I have suffered loss and mental harassment.

I therefore request you to kindly look into the matter and take appropriate action as per law.

Thank you,

Yours faithfully,

[FULL NAME]
[MOBILE NUMBER]
[EMAIL ID]
[SIGNATURE]`
