package domain

// AllowedTags is the fixed vocabulary of catalog categories. Upstream repo
// topics outside this list are kept in AllTopics but never shown as tags.
var AllowedTags = []string{
	"library",
	"framework",
	"tool",
	"cli",
	"gui",
	"game",
	"graphics",
	"audio",
	"network",
	"web",
	"database",
	"science",
	"security",
	"testing",
	"education",
	"other",
}

// FilterTopics reduces raw repository topics to the allowed vocabulary.
// A repo that has topics but none of them allowed falls back to ["other"];
// a repo with no topics at all stays empty.
func FilterTopics(raw []string) []string {
	allowed := make(map[string]bool, len(AllowedTags))
	for _, tag := range AllowedTags {
		allowed[tag] = true
	}

	var filtered []string
	for _, topic := range raw {
		if allowed[topic] {
			filtered = append(filtered, topic)
		}
	}

	if len(filtered) == 0 && len(raw) > 0 {
		return []string{"other"}
	}
	return filtered
}
