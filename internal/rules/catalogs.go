package rules

// Names of structural rules that orchestrators look up directly.
const (
	RuleNoHTTPS         = "No HTTPS"
	RuleNewDomain       = "Newly Registered Domain"
	RuleNoContactInfo   = "No Contact Info"
	RulePoorGrammar     = "Poor Grammar / Unusual Formatting"
	RuleFreeEmailDomain = "Free Email Domain"
)

// paymentKeywords flag direct requests for money. Ksh/KES cover Kenyan
// shilling amounts common in the scams this service targets.
var paymentKeywords = []string{"payment", "fee", "charge", "cost", "send money", "Ksh", "KES"}

var urgencyKeywords = []string{"urgent", "immediately", "now", "limited time", "act fast"}

var promiseKeywords = []string{"guaranteed income", "high salary", "no experience needed", "work from home"}

// Message returns the catalog applied to raw message text.
func Message() *Catalog {
	return NewCatalog(
		NewKeywordRule("Payment Request", 50, paymentKeywords,
			"Requests for payment are a major red flag. Legitimate employers do not ask for money.",
			"Never send money for a job application or offer."),
		NewKeywordRule("Urgency Manipulation", 25, urgencyKeywords,
			"Scammers create a sense of urgency to prevent you from thinking critically.",
			"Take your time to evaluate any job offer. High-pressure tactics are suspicious."),
		NewRegexRule("Off-Platform Communication", 30, `\b(whatsapp|telegram)\b`,
			"Recruiters moving conversations to personal messaging apps may be trying to evade platform safety features.",
			"Keep communication on official platforms (e.g., LinkedIn, company email)."),
		NewRegexRule("Free Email Recruiter", 20, `[\w.-]+@(gmail|yahoo|outlook)\.com`,
			"Legitimate recruiters usually use corporate email addresses. Free email accounts can be a sign of a scam.",
			"Verify the recruiter's email address and cross-reference it with the company's official domain."),
		NewKeywordRule("Unrealistic Job Promises", 35, promiseKeywords,
			"Offers that sound too good to be true often are. Be wary of promises of high income for little work.",
			"Research typical salaries and requirements for the role you are applying for."),
	)
}

// Email returns the catalog applied to email body and sender domain.
func Email() *Catalog {
	return NewCatalog(
		NewDomainRule(RuleFreeEmailDomain, 40,
			[]string{"gmail.com", "yahoo.com", "outlook.com", "aol.com"},
			"The email was sent from a free email domain, which is uncommon for legitimate companies.",
			"Verify the sender's email address and cross-reference it with the company's official domain."),
		NewKeywordRule("Payment Request", 50, paymentKeywords,
			"The email requests payment, which is a major red flag for job scams.",
			"Never send money for a job application or offer."),
		NewKeywordRule("Urgency Manipulation", 25, urgencyKeywords,
			"The email creates a sense of urgency to pressure you into making a quick decision.",
			"Take your time to evaluate any job offer. High-pressure tactics are suspicious."),
		NewStructuralRule(RulePoorGrammar, 15,
			"The email contains grammatical errors or has unusual formatting, which can be a sign of a scam.",
			"Read emails carefully and be wary of unprofessional communication."),
	)
}

// LinkNetwork returns the pre-fetch catalog for link analysis (transport and
// domain checks that do not depend on page content).
func LinkNetwork() *Catalog {
	return NewCatalog(
		NewStructuralRule(RuleNoHTTPS, 20,
			"The website does not use HTTPS, which is a basic security measure. This can be a sign of a fraudulent website.",
			"Avoid entering personal information on unencrypted websites."),
		NewStructuralRule(RuleNewDomain, 30,
			"The website's domain was registered very recently. Scammers often use new domains for short-lived fraudulent websites.",
			"Be cautious with new websites, especially if they are asking for personal information or payment."),
	)
}

// LinkContent returns the post-fetch catalog applied to extracted page text.
func LinkContent() *Catalog {
	return NewCatalog(
		NewKeywordRule("Payment Instructions in Text", 40, paymentKeywords,
			"The website contains instructions for making a payment. Legitimate job sites do not ask for payment.",
			"Do not make any payments for job applications or training."),
		NewStructuralRule(RuleNoContactInfo, 25,
			"The website does not provide clear contact information, such as an address or phone number.",
			"Legitimate companies provide multiple ways to contact them. Lack of contact info is a red flag."),
		NewKeywordRule("Unrealistic Promises", 35, promiseKeywords,
			"The website makes unrealistic promises about salary or job requirements.",
			"If a job offer sounds too good to be true, it probably is."),
	)
}
