package core

// Helpline is a crisis resource shown by `mw sos`.
type Helpline struct {
	Name         string
	Phone        string
	Text         string
	URL          string
	Description  string
	Availability string
}

// Helplines are US resources, most urgent first.
var Helplines = []Helpline{
	{
		Name:         "988 Suicide & Crisis Lifeline",
		Phone:        "988",
		Text:         "Text 988",
		URL:          "https://988lifeline.org",
		Description:  "Free and confidential emotional support",
		Availability: "24/7",
	},
	{
		Name:         "Crisis Text Line",
		Text:         "Text HOME to 741741",
		URL:          "https://crisistextline.org",
		Description:  "Free crisis support via text message",
		Availability: "24/7",
	},
	{
		Name:         "NAMI Helpline",
		Phone:        "1-800-950-6264",
		URL:          "https://nami.org",
		Description:  "Mental health information and support",
		Availability: "Mon-Fri 10am-10pm ET",
	},
	{
		Name:         "SAMHSA Helpline",
		Phone:        "1-800-662-4357",
		URL:          "https://samhsa.gov",
		Description:  "Treatment referral and information service",
		Availability: "24/7",
	},
	{
		Name:         "Emergency Services",
		Phone:        "911",
		Description:  "Immediate emergency medical assistance",
		Availability: "24/7",
	},
}
