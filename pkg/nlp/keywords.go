package nlp

// Expense category labels. Other is the fallback for text that matches no
// keyword table.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategoryOther         = "Other"
)

type categoryKeywords struct {
	category string
	keywords []string
}

// Keyword tables per category in English, Malayalam, Hindi, Tamil, Telugu and
// Kannada. Matching is plain substring containment over the lower-cased input,
// so short keywords like "bus" also hit inside longer words. The slice order is
// the tie-break order of the categorizer: the first category to reach the
// winning vote count keeps it.
var categoryTable = []categoryKeywords{
	{
		category: CategoryFood,
		keywords: []string{
			"food", "lunch", "dinner", "breakfast", "snacks", "restaurant",
			"cafe", "coffee", "pizza", "burger", "grocery", "groceries",
			"meal", "eating", "dine",
			"ഭക്ഷണം", "ഭക്ഷണ", "ഭക്ഷണത്തിന്", "ഭക്ഷണത്തിനായി", "ഭക്ഷണത്തിനു",
			"भोजन", "खाना", "खाने", "नाश्ता", "दोपहर", "रात",
			"உணவு", "சாப்பாடு", "உணவுக்கு",
			"ఆహారం", "భోజనం", "తిండి",
			"ಆಹಾರ", "ಊಟ",
		},
	},
	{
		category: CategoryTransport,
		keywords: []string{
			"uber", "ola", "taxi", "bus", "metro", "train", "auto",
			"rickshaw", "fuel", "petrol", "diesel", "gas", "transport",
			"travel", "ride",
			"യാത്ര", "യാത്രയ്ക്ക", "യാത്രക്ക്", "ഓട്ടോ", "ടാക്സി", "ബസ്",
			"यात्रा", "परिवहन", "टैक्सी", "बस", "मेट्रो", "पेट्रोल",
			"பயணம்", "போக்குவரத்து", "டாக்சி",
			"ప్రయాణం", "రవాణా", "టాక్సీ",
			"ಪ್ರಯಾಣ", "ಸಾರಿಗೆ",
		},
	},
	{
		category: CategoryShopping,
		keywords: []string{
			"shopping", "clothes", "dress", "shirt", "shoes", "jeans",
			"amazon", "flipkart", "mall", "purchase", "buy", "bought",
			"ഷോപ്പിംഗ്", "വാങ്ങി", "വാങ്ങൽ", "വസ്ത്രം", "വസ്ത്രത്തിന്",
			"खरीदारी", "खरीदा", "कपड़े", "शॉपिंग", "वस्त्र",
			"ஷாப்பிங்", "வாங்கினேன்", "உடை",
			"షాపింగ్", "కొనుగోలు", "బట్టలు",
			"ಶಾಪಿಂಗ್", "ಖರೀದಿ", "ಬಟ್ಟೆ",
		},
	},
	{
		category: CategoryBills,
		keywords: []string{
			"rent", "electricity", "water", "internet", "wifi", "mobile",
			"phone", "bill", "utility", "recharge", "subscription",
			"ബിൽ", "വൈദ്യുതി", "വാടക", "ഇന്റർനെറ്റ്", "മൊബൈൽ",
			"बिल", "किराया", "बिजली", "पानी", "इंटरनेट", "मोबाइल",
			"பில்", "வாடகை", "மின்சாரம்",
			"బిల్లు", "అద్దె", "విద్యుత్",
			"ಬಿಲ್", "ಬಾಡಿಗೆ", "ವಿದ್ಯುತ್",
		},
	},
	{
		category: CategoryEntertainment,
		keywords: []string{
			"movie", "cinema", "theatre", "netflix", "prime", "spotify",
			"game", "party", "concert", "entertainment", "music", "show",
			"സിനിമ", "സിനിമയ്ക്ക", "വിനോദം",
			"फिल्म", "सिनेमा", "मनोरंजन",
			"சினிமா", "திரைப்படம்", "பொழுதுபோக்கு",
			"సినిమా", "వినోదం",
			"ಚಿತ್ರ", "ಸಿನೆಮಾ", "ಮನರಂಜನೆ",
		},
	},
	{
		category: CategoryHealth,
		keywords: []string{
			"medicine", "doctor", "hospital", "pharmacy", "medical",
			"health", "clinic", "dentist", "checkup", "treatment", "drug",
			"ആരോഗ്യം", "മരുന്ന്", "ഡോക്ടർ", "ആശുപത്രി",
			"स्वास्थ्य", "दवा", "डॉक्टर", "अस्पताल", "चिकित्सा",
			"மருத்துவம்", "மருந்து", "மருத்துவர்",
			"ఆరోగ్యం", "మందు", "వైద్యుడు",
			"ಆರೋಗ್ಯ", "ಔಷಧ", "ವೈದ್ಯ",
		},
	},
	{
		category: CategoryEducation,
		keywords: []string{
			"book", "course", "class", "tuition", "school", "college",
			"education", "study", "exam",
			"വിദ്യാഭ്യാസം", "പഠനം", "പുസ്തകം",
			"शिक्षा", "पढ़ाई", "किताब",
			"கல்வி", "புத்தகம்",
			"విద్య", "పుస్తకం",
			"ಶಿಕ್ಷಣ", "ಪುಸ್ತಕ",
		},
	},
}

// categories returns the fixed category enumeration, Other last.
func categories() []string {
	out := make([]string, 0, len(categoryTable)+1)
	for _, entry := range categoryTable {
		out = append(out, entry.category)
	}
	return append(out, CategoryOther)
}

// IsValidCategory reports whether label is one of the fixed categories.
func IsValidCategory(label string) bool {
	if label == CategoryOther {
		return true
	}
	for _, entry := range categoryTable {
		if entry.category == label {
			return true
		}
	}
	return false
}
