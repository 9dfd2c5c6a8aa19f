package triage

func intPtr(i int) *int { return &i }

// defaultVocabulary is the closed symptom vocabulary. Order is fixed: it is
// the display order and the feature-vector index order.
var defaultVocabulary = []Symptom{
	"fever",
	"cough",
	"fatigue",
	"headache",
	"body_ache",
	"sore_throat",
	"runny_nose",
	"nausea",
	"vomiting",
	"diarrhea",
	"stomach_pain",
	"heartburn",
	"chest_pain",
	"shortness_of_breath",
	"dizziness",
	"rapid_heartbeat",
	"sweating",
	"loss_of_appetite",
	"weakness",
	"chills",
}

var defaultProfiles = []ConditionProfile{
	{
		Name: "Flu",
		Symptoms: []Symptom{
			"fever", "cough", "fatigue", "headache", "body_ache",
			"sore_throat", "chills", "weakness",
		},
		Description: "Influenza (flu) is a viral infection that attacks the respiratory system. Common during seasonal changes.",
		Severity:    SeverityMedium,
		Precautions: []string{
			"Get adequate rest (7-9 hours sleep)",
			"Stay hydrated (drink plenty of water)",
			"Avoid contact with others to prevent spread",
			"Monitor temperature regularly",
			"Consult doctor if symptoms worsen after 3-4 days",
		},
	},
	{
		Name: "Viral Infection",
		Symptoms: []Symptom{
			"fever", "cough", "fatigue", "sore_throat", "runny_nose",
			"headache", "body_ache",
		},
		Description: "Common viral infections affecting the upper respiratory tract. Usually self-limiting.",
		Severity:    SeverityLow,
		Precautions: []string{
			"Rest and allow your body to recover",
			"Drink warm fluids",
			"Avoid cold foods and beverages",
			"Practice good hygiene",
			"Isolate to prevent transmission",
		},
	},
	{
		Name: "Acidity",
		Symptoms: []Symptom{
			"heartburn", "stomach_pain", "nausea", "vomiting",
			"loss_of_appetite",
		},
		Description: "Excess acid production in the stomach causing discomfort and heartburn.",
		Severity:    SeverityLow,
		Precautions: []string{
			"Avoid spicy and oily foods",
			"Eat smaller, frequent meals",
			"Avoid lying down immediately after eating",
			"Reduce caffeine and alcohol intake",
			"Maintain healthy weight",
		},
	},
	{
		Name: ConditionCardiacRisk,
		Symptoms: []Symptom{
			"chest_pain", "shortness_of_breath", "dizziness",
			"rapid_heartbeat", "sweating", "nausea",
		},
		Description: "CRITICAL: Symptoms suggesting potential cardiac/heart-related issues requiring immediate medical evaluation.",
		Severity:    SeverityHigh,
		Precautions: []string{
			"SEEK IMMEDIATE EMERGENCY MEDICAL CARE",
			"Do NOT attempt self-medication",
			"Call emergency services (108/102 in India, 911 in USA)",
			"If conscious, sit upright and stay calm",
			"Have someone stay with the patient",
		},
	},
}

// defaultCatalog lists medicines per condition, in recommendation order.
// Cardiac Risk is deliberately absent: the registry rejects any catalog
// that attaches medicines to it.
var defaultCatalog = map[string][]MedicineEntry{
	"Flu": {
		{
			Name:              "Paracetamol",
			Category:          "Fever reducer & Pain reliever",
			Contraindications: []string{"paracetamol", "acetaminophen"},
			Notes:             "Standard fever and pain management",
		},
		{
			Name:              "Cetirizine",
			Category:          "Antihistamine",
			MinimumAge:        intPtr(2),
			Contraindications: []string{"cetirizine"},
			Notes:             "For runny nose and allergic symptoms",
		},
		{
			Name:     "Vitamin C",
			Category: "Supplement",
			Notes:    "Immune support",
		},
		{
			Name:     "Zinc supplements",
			Category: "Supplement",
			Notes:    "May reduce duration of symptoms",
		},
	},
	"Viral Infection": {
		{
			Name:              "Paracetamol",
			Category:          "Fever reducer",
			Contraindications: []string{"paracetamol", "acetaminophen"},
			Notes:             "For fever management",
		},
		{
			Name:              "Cetirizine",
			Category:          "Antihistamine",
			MinimumAge:        intPtr(2),
			Contraindications: []string{"cetirizine"},
			Notes:             "For cold symptoms",
		},
		{
			Name:       "Honey (warm water)",
			Category:   "Natural remedy",
			MinimumAge: intPtr(1),
			Notes:      "Soothes throat, natural antimicrobial",
		},
		{
			Name:     "Steam inhalation",
			Category: "Home remedy",
			Notes:    "Helps clear nasal congestion",
		},
	},
	"Acidity": {
		{
			Name:              "Omeprazole",
			Category:          "Proton pump inhibitor",
			MinimumAge:        intPtr(18),
			Contraindications: []string{"omeprazole"},
			Notes:             "Reduces stomach acid production",
		},
		{
			Name:              "Famotidine",
			Category:          "H2 blocker",
			MinimumAge:        intPtr(12),
			Contraindications: []string{"famotidine"},
			Notes:             "Alternative acid reducer",
		},
		{
			Name:     "Antacid",
			Category: "Antacid",
			Notes:    "Quick relief from heartburn",
		},
		{
			Name:     "Probiotics",
			Category: "Supplement",
			Notes:    "Supports digestive health",
		},
	},
}

// KeywordEntry maps one symptom to its free-text phrase variants, checked
// in order.
type KeywordEntry struct {
	Symptom Symptom
	Phrases []string
}

// defaultKeywords drives text extraction. Entry order is the extraction
// output order.
var defaultKeywords = []KeywordEntry{
	{"fever", []string{"fever", "temperature", "hot", "burning up", "pyrexia"}},
	{"cough", []string{"cough", "coughing", "throat clearing"}},
	{"fatigue", []string{"tired", "fatigue", "exhausted", "weakness", "weak", "low energy"}},
	{"headache", []string{"headache", "head pain", "migraine"}},
	{"body_ache", []string{"body ache", "muscle pain", "body pain", "aching", "soreness"}},
	{"sore_throat", []string{"sore throat", "throat pain", "throat hurts"}},
	{"runny_nose", []string{"runny nose", "nasal discharge", "stuffy nose", "congestion"}},
	{"nausea", []string{"nausea", "nauseated", "feel sick", "queasy"}},
	{"vomiting", []string{"vomit", "vomiting", "throwing up", "puking"}},
	{"diarrhea", []string{"diarrhea", "loose motions", "loose stools"}},
	{"stomach_pain", []string{"stomach pain", "abdominal pain", "belly pain", "stomach ache"}},
	{"heartburn", []string{"heartburn", "acid reflux", "burning chest", "indigestion"}},
	{"chest_pain", []string{"chest pain", "chest discomfort", "chest pressure", "chest tightness"}},
	{"shortness_of_breath", []string{"shortness of breath", "breathing difficulty", "can't breathe", "breathless", "dyspnea"}},
	{"dizziness", []string{"dizzy", "dizziness", "lightheaded", "vertigo"}},
	{"rapid_heartbeat", []string{"rapid heartbeat", "racing heart", "palpitations", "heart racing"}},
	{"sweating", []string{"sweating", "perspiring", "cold sweat"}},
	{"loss_of_appetite", []string{"loss of appetite", "no appetite", "not hungry"}},
	{"weakness", []string{"weakness", "weak", "feeble"}},
	{"chills", []string{"chills", "shivering", "shaking", "cold"}},
}
