package riskfactor

// Recommendation is a short lifestyle suggestion.
type Recommendation struct {
	Title       string
	Description string
}

var diabeticRecommendations = []Recommendation{ //nolint: gochecknoglobals
	{Title: "Consult a Professional", Description: "Schedule a diabetes screening"},
	{Title: "Regular Monitoring", Description: "Check blood glucose regularly"},
	{Title: "Dietary Changes", Description: "Consider a low-glycemic diet"},
	{Title: "Physical Activity", Description: "150+ minutes exercise weekly"},
	{Title: "Medication Review", Description: "Discuss treatments with your doctor"},
}

var preventiveRecommendations = []Recommendation{ //nolint: gochecknoglobals
	{Title: "Regular Check-ups", Description: "Annual health screenings"},
	{Title: "Balanced Nutrition", Description: "Vegetables and whole grains"},
	{Title: "Stay Active", Description: "30+ minutes exercise daily"},
	{Title: "Healthy Weight", Description: "Maintain optimal BMI"},
	{Title: "Quality Sleep", Description: "7-9 hours per night"},
}

// Recommendations returns the recommended actions for a positive prediction,
// or the health maintenance tips otherwise. The returned slice is a copy.
func Recommendations(isPositiveClass bool) []Recommendation {
	if isPositiveClass {
		return append([]Recommendation(nil), diabeticRecommendations...)
	}

	return append([]Recommendation(nil), preventiveRecommendations...)
}

// RecommendationsTitle is the heading shown above Recommendations.
func RecommendationsTitle(isPositiveClass bool) string {
	if isPositiveClass {
		return "Recommended Actions"
	}

	return "Maintain Your Health"
}
