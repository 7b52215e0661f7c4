package service

import "fmt"

// itineraryPrompt builds the instruction sent to the completion service.
func itineraryPrompt(destination string, days int) string {
	return fmt.Sprintf(`Create a detailed %d-day itinerary for %s.
Include:
- Daily activities with timing
- Restaurant recommendations for each meal
- Transportation tips between locations
- Estimated costs for major activities
- Local customs and etiquette tips

Format it as a clear day-by-day breakdown with sections for each day.`, days, destination)
}
